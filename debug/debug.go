package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Encode  bool
	Parse   bool
	Anchors bool
	Table   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("RMAP_DEBUG_ENCODE")
	d.Parse = boolEnv("RMAP_DEBUG_PARSE")
	d.Anchors = boolEnv("RMAP_DEBUG_ANCHORS")
	d.Table = boolEnv("RMAP_DEBUG_TABLE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Parse() bool {
	return d.Parse
}
func Anchors() bool {
	return d.Anchors
}
func Table() bool {
	return d.Table
}
