package table

import "errors"

var ErrTable = errors.New("table error")
