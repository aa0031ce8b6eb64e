package roundtrip

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff returns a unified style line diff from a to b, showing only
// changed lines.
func LineDiff(a, b string, colors bool) string {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	add, del := color.New(color.FgGreen), color.New(color.FgRed)
	if colors {
		add.EnableColor()
		del.EnableColor()
	} else {
		add.DisableColor()
		del.DisableColor()
	}
	res := &strings.Builder{}
	for _, d := range diffs {
		var prefix string
		var c *color.Color
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix, c = "+", add
		case diffpatch.DiffDelete:
			prefix, c = "-", del
		default:
			continue
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res.WriteString(c.Sprint(prefix + strings.TrimSuffix(ln, "\n")))
			res.WriteByte('\n')
		}
	}
	return res.String()
}
