package encode

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/rpgmap/ir"
	"github.com/signadot/rpgmap/token"
)

// EncodeJSON writes node as JSON indented by 2 spaces. Object keys keep
// their order, and non-ASCII text is written as is.
func EncodeJSON(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	buf := bytes.NewBuffer(nil)
	es.writeJSON(buf, node, 0)
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func jsonNewline(buf *bytes.Buffer, depth int) {
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat("  ", depth))
}

func (es *EncState) writeJSON(buf *bytes.Buffer, node *ir.Node, depth int) {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		for i, f := range node.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			jsonNewline(buf, depth+1)
			buf.WriteString(es.color(ir.ObjectType, FieldColor, token.Quote(f.String)))
			buf.WriteString(": ")
			es.writeJSON(buf, node.Values[i], depth+1)
		}
		jsonNewline(buf, depth)
		buf.WriteByte('}')
	case ir.ArrayType:
		if len(node.Values) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for i, v := range node.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			jsonNewline(buf, depth+1)
			es.writeJSON(buf, v, depth+1)
		}
		jsonNewline(buf, depth)
		buf.WriteByte(']')
	case ir.StringType:
		buf.WriteString(es.color(ir.StringType, ValueColor, token.Quote(node.String)))
	case ir.NumberType:
		buf.WriteString(es.color(ir.NumberType, ValueColor, jsonNumber(node)))
	case ir.BoolType:
		buf.WriteString(es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	default:
		buf.WriteString(es.color(ir.NullType, ValueColor, "null"))
	}
}

func jsonNumber(node *ir.Node) string {
	if node.Float64 != nil {
		f := *node.Float64
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return "null"
		}
	}
	return formatNumber(node)
}
