package roundtrip

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"

	"github.com/signadot/rpgmap"
	"github.com/signadot/rpgmap/encode"
	"github.com/signadot/rpgmap/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/zeebo/blake3"
)

type Report struct {
	Faithful bool
	// YAML is the intermediate tagged document.
	YAML   []byte
	Digest [32]byte
	// MergePatch is the RFC 7386 patch taking the input to the round
	// tripped document. It is nil when the round trip is faithful.
	MergePatch []byte
	Want, Got  string
}

func (r *Report) DigestString() string {
	return hex.EncodeToString(r.Digest[:])
}

type Option func(*checker)

func Logger(l *slog.Logger) Option {
	return func(c *checker) { c.log = l }
}

type checker struct {
	log *slog.Logger
}

// Check converts the JSON document d to the tagged document, reads it
// back and compares the result with d. Events are compared in id order.
func Check(d []byte, opts ...Option) (*Report, error) {
	c := &checker{}
	for _, opt := range opts {
		opt(c)
	}
	var cOpts []rpgmap.ConvertOpt
	if c.log != nil {
		cOpts = append(cOpts, rpgmap.ConvertLogger(c.log))
	}
	in, err := rpgmap.ReadJSON(d)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := rpgmap.WriteYAML(in, buf, cOpts...); err != nil {
		return nil, err
	}
	out, err := rpgmap.ReadYAML(buf.Bytes(), cOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: reading back: %w", rpgmap.ErrInternal, err)
	}
	want, got := Normalize(in), Normalize(out)
	r := &Report{
		Faithful: ir.Equal(want, got),
		YAML:     buf.Bytes(),
		Digest:   blake3.Sum256(buf.Bytes()),
	}
	if r.Faithful {
		return r, nil
	}
	wantJ, err := ir.MarshalJSON(want)
	if err != nil {
		return nil, err
	}
	gotJ, err := ir.MarshalJSON(got)
	if err != nil {
		return nil, err
	}
	r.MergePatch, err = jsonpatch.CreateMergePatch(wantJ, gotJ)
	if err != nil {
		return nil, fmt.Errorf("%w: merge patch: %w", rpgmap.ErrInternal, err)
	}
	if r.Want, err = sortedText(wantJ); err != nil {
		return nil, err
	}
	if r.Got, err = sortedText(gotJ); err != nil {
		return nil, err
	}
	return r, nil
}

// sortedText gives the indented form of compact, key sorted JSON.
func sortedText(d []byte) (string, error) {
	node, err := ir.FromJSON(d)
	if err != nil {
		return "", err
	}
	buf := &bytes.Buffer{}
	if err := encode.EncodeJSON(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Normalize returns a copy of doc with events as an array sorted by id.
func Normalize(doc *ir.Node) *ir.Node {
	res := doc.Clone()
	evs := ir.Get(res, "events")
	if evs == nil {
		return res
	}
	var list []*ir.Node
	switch evs.Type {
	case ir.ArrayType:
		list = append(list, evs.Values...)
	case ir.ObjectType:
		for i, f := range evs.Fields {
			ev := evs.Values[i]
			if ev.Type == ir.ObjectType && !ev.Has("id") {
				if id, err := strconv.ParseInt(f.String, 10, 64); err == nil {
					ev.Set("id", ir.FromInt(id))
				}
			}
			list = append(list, ev)
		}
	default:
		return res
	}
	sort.SliceStable(list, func(i, j int) bool {
		a, _ := ir.AsInt(ir.Get(list[i], "id"))
		b, _ := ir.AsInt(ir.Get(list[j], "id"))
		return a < b
	})
	res.Set("events", ir.FromSlice(list))
	return res
}

// Print writes a human readable summary of r.
func (r *Report) Print(w io.Writer, colors bool) error {
	if r.Faithful {
		_, err := fmt.Fprintf(w, "round trip ok, yaml blake3 %s\n", r.DigestString())
		return err
	}
	b := &bytes.Buffer{}
	fmt.Fprintf(b, "round trip differs, yaml blake3 %s\n", r.DigestString())
	fmt.Fprintf(b, "merge patch: %s\n", r.MergePatch)
	b.WriteString(LineDiff(r.Want, r.Got, colors))
	_, err := w.Write(b.Bytes())
	return err
}
