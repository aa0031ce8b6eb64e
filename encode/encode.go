package encode

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/signadot/rpgmap/classify"
	"github.com/signadot/rpgmap/debug"
	"github.com/signadot/rpgmap/ir"
	"github.com/signadot/rpgmap/token"
)

type EncState struct {
	lines  []string
	anchor int

	// location of the command being written, for warnings
	event, page, command int64

	log   *slog.Logger
	Color func(ir.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{log: debug.Log, event: -1, page: -1, command: -1}
	for _, opt := range opts {
		opt(es)
	}
	if es.log == nil {
		es.log = debug.Discard
	}
	return es
}

// Encode writes the tagged document for the JSON map layout doc.
func Encode(doc *ir.Node, w io.Writer, opts ...EncodeOption) error {
	lines, err := Lines(doc, opts...)
	if err != nil {
		return err
	}
	for _, ln := range lines {
		if err := writeString(w, ln+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns the tagged document for doc as a sequence of lines.
func Lines(doc *ir.Node, opts ...EncodeOption) ([]string, error) {
	if doc == nil || doc.Type != ir.ObjectType {
		t := "nothing"
		if doc != nil {
			t = doc.Type.String()
		}
		return nil, fmt.Errorf("%w: document is %s, not an object", ErrEncoding, t)
	}
	es := newEncState(opts)
	es.document(doc)
	return es.lines, nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) emit(indent int, s string) {
	es.lines = append(es.lines, strings.Repeat(" ", indent)+s)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) warn(msg string, args ...any) {
	loc := make([]any, 0, 6+len(args))
	if es.event >= 0 {
		loc = append(loc, "event", es.event)
	}
	if es.page >= 0 {
		loc = append(loc, "page", es.page)
	}
	if es.command >= 0 {
		loc = append(loc, "command", es.command)
	}
	es.log.Warn(msg, append(loc, args...)...)
}

func (es *EncState) key(k string) string {
	return es.color(ir.ObjectType, FieldColor, token.EncodeKey(k)) + ":"
}

func (es *EncState) tag(t string) string {
	return es.color(ir.ObjectType, TagColor, t)
}

// tagFor returns the tag of an object value: its own tag if it has
// one, otherwise the classified tag, or def when classification finds
// nothing specific.
func tagFor(v *ir.Node, def classify.Tag) string {
	if v.Tag != "" {
		return v.Tag
	}
	t := classify.Node(v)
	if t == classify.Generic {
		t = def
	}
	return t.String()
}

func (es *EncState) scalar(v *ir.Node) string {
	var s string
	switch v.Type {
	case ir.StringType:
		s = token.EncodeString(v.String)
	case ir.NumberType:
		s = formatNumber(v)
	case ir.BoolType:
		s = strconv.FormatBool(v.Bool)
	default:
		s = "null"
	}
	return es.color(v.Type, ValueColor, s)
}

func (es *EncState) binary(v *ir.Node) string {
	raw := ir.Get(v, ir.BinaryKey).String
	if es.Color == nil {
		return token.EncodeBinaryText(raw)
	}
	return es.tag(token.BinaryTag) + " " + es.color(ir.StringType, ValueColor, token.Quote(raw))
}

// field writes key: v at indent. Object values which classify as
// generic get the tag def.
func (es *EncState) field(indent int, key string, v *ir.Node, def classify.Tag) {
	k := es.key(key)
	switch {
	case v == nil:
		es.emit(indent, k+" "+es.color(ir.NullType, ValueColor, "null"))
	case ir.IsBinary(v):
		es.emit(indent, k+" "+es.binary(v))
	case v.Type == ir.ObjectType:
		tag := es.tag(tagFor(v, def))
		if len(v.Fields) == 0 {
			es.emit(indent, k+" "+tag+" {}")
			return
		}
		es.emit(indent, k+" "+tag)
		es.fields(indent+2, v)
	case v.Type == ir.ArrayType:
		if len(v.Values) == 0 {
			es.emit(indent, k+" []")
			return
		}
		es.emit(indent, k)
		es.items(indent, v.Values)
	default:
		es.emit(indent, k+" "+es.scalar(v))
	}
}

func (es *EncState) fields(indent int, v *ir.Node) {
	for i, f := range v.Fields {
		es.field(indent, f.String, v.Values[i], classify.Generic)
	}
}

func (es *EncState) items(indent int, vs []*ir.Node) {
	for _, v := range vs {
		es.item(indent, v, "", classify.Generic)
	}
}

// item writes v as a sequence entry whose dash is at indent, anchored
// when anchor is not empty.
func (es *EncState) item(indent int, v *ir.Node, anchor string, def classify.Tag) {
	dash := "-"
	if anchor != "" {
		dash += " " + es.color(ir.ObjectType, AnchorColor, "&"+anchor)
	}
	switch {
	case ir.IsBinary(v):
		es.emit(indent, dash+" "+es.binary(v))
	case v.Type == ir.ObjectType:
		tag := es.tag(tagFor(v, def))
		if len(v.Fields) == 0 {
			es.emit(indent, dash+" "+tag+" {}")
			return
		}
		es.emit(indent, dash+" "+tag)
		es.fields(indent+2, v)
	case v.Type == ir.ArrayType:
		if len(v.Values) == 0 {
			es.emit(indent, dash+" []")
			return
		}
		if anchor != "" {
			es.emit(indent, dash)
			es.items(indent+2, v.Values)
			return
		}
		start := len(es.lines)
		es.items(indent+2, v.Values)
		first := es.lines[start]
		es.lines[start] = strings.Repeat(" ", indent) + dash + " " + first[indent+2:]
	default:
		es.emit(indent, dash+" "+es.scalar(v))
	}
}

func (es *EncState) alias(indent int, label int) {
	es.emit(indent, "- "+es.color(ir.ObjectType, AnchorColor, "*"+strconv.Itoa(label)))
}
