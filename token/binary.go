package token

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const BinaryTag = "!binary"

// EncodeBinary renders b as a tagged base64 scalar.
func EncodeBinary(b []byte) string {
	return EncodeBinaryText(base64.StdEncoding.EncodeToString(b))
}

// DecodeBinary accepts the output of EncodeBinary, the bare or quoted
// base64 text, or a block of base64 lines.
func DecodeBinary(tok string) ([]byte, error) {
	s := strings.TrimSpace(tok)
	s = strings.TrimSpace(strings.TrimPrefix(s, BinaryTag))
	s = strings.TrimPrefix(s, "|")
	s = DecodeString(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
	res, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBinary, err)
	}
	return res, nil
}

// EncodeBinaryText tags base64 text which is already encoded.
func EncodeBinaryText(b64 string) string {
	return BinaryTag + " " + Quote(b64)
}
