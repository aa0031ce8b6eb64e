package rpgmap

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/signadot/rpgmap/debug"
	"github.com/signadot/rpgmap/encode"
	"github.com/signadot/rpgmap/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies the RFC 6902 patch p to doc and returns the result.
// doc is not modified. Fields keep the order they have in doc; fields
// added by p follow them.
func Patch(doc *ir.Node, p []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("%w: patch: %w", ErrMalformedJSON, err)
	}
	d, err := docJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: patch: %w", ErrMalformedJSON, err)
	}
	if debug.Encode() {
		debug.Logf("patched %d ops\n", len(ops))
	}
	return patched(out, doc)
}

// MergePatch applies the RFC 7386 merge patch p to doc, keeping field
// order like Patch.
func MergePatch(doc *ir.Node, p []byte) (*ir.Node, error) {
	d, err := docJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("%w: merge patch: %w", ErrMalformedJSON, err)
	}
	return patched(out, doc)
}

func docJSON(doc *ir.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := encode.EncodeJSON(doc, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func patched(out []byte, doc *ir.Node) (*ir.Node, error) {
	res, err := ir.FromJSON(out)
	if err != nil {
		return nil, err
	}
	keepOrder(res, doc)
	return res, nil
}

// keepOrder reorders the fields of n to follow those of ref. Fields ref
// lacks go last, in the order they already have.
func keepOrder(n, ref *ir.Node) {
	if n == nil || ref == nil || n.Type != ref.Type {
		return
	}
	switch n.Type {
	case ir.ArrayType:
		for i, v := range n.Values {
			if i < len(ref.Values) {
				keepOrder(v, ref.Values[i])
			}
		}
	case ir.ObjectType:
		rank := make(map[string]int, len(ref.Fields))
		for i, f := range ref.Fields {
			rank[f.String] = i
		}
		idx := make([]int, len(n.Fields))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			ra, oka := rank[n.Fields[idx[a]].String]
			rb, okb := rank[n.Fields[idx[b]].String]
			if oka && okb {
				return ra < rb
			}
			return oka && !okb
		})
		fields := make([]*ir.Node, len(idx))
		values := make([]*ir.Node, len(idx))
		for i, j := range idx {
			fields[i], values[i] = n.Fields[j], n.Values[j]
			fields[i].ParentIndex = i
			values[i].ParentIndex = i
		}
		n.Fields, n.Values = fields, values
		for i, f := range n.Fields {
			if j, ok := rank[f.String]; ok {
				keepOrder(n.Values[i], ref.Values[j])
			}
		}
	}
}
