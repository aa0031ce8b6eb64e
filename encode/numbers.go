package encode

import (
	"math"
	"strconv"
	"strings"

	"github.com/signadot/rpgmap/ir"
)

func formatNumber(v *ir.Node) string {
	switch {
	case v.Int64 != nil:
		return strconv.FormatInt(*v.Int64, 10)
	case v.Float64 != nil:
		return formatFloat(*v.Float64)
	default:
		return v.Number
	}
}

// formatFloat always leaves a decimal point or exponent, so the value
// reads back as a float.
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	fc := byte('f')
	if abs := math.Abs(f); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fc = 'e'
	}
	s := strconv.FormatFloat(f, fc, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
