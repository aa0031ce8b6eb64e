package parse

import (
	"errors"
	"log/slog"
	"math"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"

	"github.com/signadot/rpgmap/classify"
	"github.com/signadot/rpgmap/debug"
	"github.com/signadot/rpgmap/ir"
	rtoken "github.com/signadot/rpgmap/token"
)

const (
	strTag   = "!!str"
	mergeKey = "<<"
)

// MaxAliasNodes bounds the number of nodes a document may copy through
// aliases.
const MaxAliasNodes = 1 << 20

type converter struct {
	anchors   map[string]*ir.Node
	positions map[*ir.Node]Pos
	log       *slog.Logger
	aliased   int
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{log: debug.Log}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.log == nil {
		pOpts.log = debug.Discard
	}
	return pOpts
}

// ParseGeneric parses the first document of d into a node tree without
// reshaping it. An empty document gives a null node.
func ParseGeneric(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return parseGeneric(d, newOpts(opts))
}

func parseGeneric(d []byte, pOpts *parseOpts) (*ir.Node, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, syntaxError(err)
	}
	c := &converter{
		anchors:   map[string]*ir.Node{},
		positions: pOpts.positions,
		log:       pOpts.log,
	}
	if len(f.Docs) == 0 || f.Docs[0] == nil || f.Docs[0].Body == nil {
		return ir.Null(), nil
	}
	if len(f.Docs) > 1 {
		c.log.Warn("only the first document is read", "documents", len(f.Docs))
	}
	return c.node(f.Docs[0].Body)
}

// syntaxError converts an error from the YAML parser, keeping the
// position it carries.
func syntaxError(err error) error {
	res := &PosError{Msg: err.Error()}
	var withTok interface{ GetToken() *token.Token }
	if errors.As(err, &withTok) {
		res.Pos = tokenPos(withTok.GetToken())
	}
	var withMsg interface{ GetMessage() string }
	if errors.As(err, &withMsg) {
		res.Msg = withMsg.GetMessage()
	}
	return res
}

func (c *converter) node(n ast.Node) (*ir.Node, error) {
	res, err := c.convert(n)
	if err != nil {
		return nil, err
	}
	if c.positions != nil && n != nil {
		if _, ok := c.positions[res]; !ok {
			c.positions[res] = nodePos(n)
		}
	}
	return res, nil
}

func (c *converter) convert(n ast.Node) (*ir.Node, error) {
	switch n := n.(type) {
	case nil:
		return ir.Null(), nil
	case *ast.DocumentNode:
		return c.node(n.Body)
	case *ast.MappingNode:
		return c.mapping(n.Values)
	case *ast.MappingValueNode:
		return c.mapping([]*ast.MappingValueNode{n})
	case *ast.MappingKeyNode:
		return c.node(n.Value)
	case *ast.SequenceNode:
		res := ir.FromSlice(nil)
		for _, v := range n.Values {
			val, err := c.node(v)
			if err != nil {
				return nil, err
			}
			res.Append(val)
		}
		return res, nil
	case *ast.StringNode:
		return ir.FromString(n.Value), nil
	case *ast.LiteralNode:
		if n.Value == nil {
			return ir.FromString(""), nil
		}
		return ir.FromString(n.Value.Value), nil
	case *ast.IntegerNode:
		switch v := n.Value.(type) {
		case int64:
			return ir.FromInt(v), nil
		case uint64:
			if v <= math.MaxInt64 {
				return ir.FromInt(int64(v)), nil
			}
		}
		return ir.FromNumber(tokenText(n)), nil
	case *ast.FloatNode:
		return ir.FromFloat(n.Value), nil
	case *ast.InfinityNode:
		return ir.FromFloat(n.Value), nil
	case *ast.NanNode:
		return ir.FromFloat(math.NaN()), nil
	case *ast.BoolNode:
		return ir.FromBool(n.Value), nil
	case *ast.NullNode:
		return ir.Null(), nil
	case *ast.TagNode:
		return c.tagged(n)
	case *ast.AnchorNode:
		val, err := c.node(n.Value)
		if err != nil {
			return nil, err
		}
		name := tokenText(n.Name)
		if debug.Parse() {
			debug.Logf("parse: anchor &%s at %s\n", name, nodePos(n))
		}
		c.anchors[name] = val
		return val, nil
	case *ast.AliasNode:
		name := tokenText(n.Value)
		val, ok := c.anchors[name]
		if !ok {
			return nil, posError(n, "unknown alias *%s", name)
		}
		c.aliased += countNodes(val, MaxAliasNodes-c.aliased+1)
		if c.aliased > MaxAliasNodes {
			return nil, posError(n, "alias *%s: more than %d nodes copied through aliases", name, MaxAliasNodes)
		}
		return val.Clone(), nil
	case *ast.CommentGroupNode, *ast.CommentNode:
		return ir.Null(), nil
	default:
		return nil, posError(n, "unsupported %s node", n.Type())
	}
}

// countNodes returns the size of y, stopping once it reaches limit.
func countNodes(y *ir.Node, limit int) int {
	n := 1
	for _, vs := range [2][]*ir.Node{y.Fields, y.Values} {
		for _, v := range vs {
			if n >= limit {
				return n
			}
			n += countNodes(v, limit-n)
		}
	}
	return n
}

func (c *converter) mapping(mvs []*ast.MappingValueNode) (*ir.Node, error) {
	res := ir.FromKeyVals(nil)
	for _, mv := range mvs {
		val, err := c.node(mv.Value)
		if err != nil {
			return nil, err
		}
		if _, ok := mv.Key.(*ast.MergeKeyNode); ok {
			c.merge(res, val, mv)
			continue
		}
		key, err := c.key(mv.Key)
		if err != nil {
			return nil, err
		}
		if res.Has(key) {
			c.log.Warn("duplicate key, keeping the last value", "key", key, "pos", nodePos(mv.Key).String())
		}
		res.Set(key, val)
	}
	return res, nil
}

// merge applies a << merge key: fields of val not already present are
// added to res.
func (c *converter) merge(res, val *ir.Node, mv *ast.MappingValueNode) {
	srcs := []*ir.Node{val}
	if val.Type == ir.ArrayType {
		srcs = val.Values
	}
	for _, src := range srcs {
		if src.Type != ir.ObjectType {
			c.log.Warn("merge value is not a mapping, ignoring it", "pos", nodePos(mv).String())
			continue
		}
		for i, f := range src.Fields {
			if !res.Has(f.String) {
				res.Set(f.String, src.Values[i].Clone())
			}
		}
	}
}

func (c *converter) key(k ast.MapKeyNode) (string, error) {
	v, err := c.node(k)
	if err != nil {
		return "", err
	}
	switch v.Type {
	case ir.StringType:
		return v.String, nil
	case ir.NullType:
		return "", nil
	case ir.NumberType, ir.BoolType:
		return tokenText(k), nil
	default:
		return "", posError(k, "%s used as a mapping key", strings.ToLower(v.Type.String()))
	}
}

func (c *converter) tagged(n *ast.TagNode) (*ir.Node, error) {
	tag := ""
	if n.Start != nil {
		tag = n.Start.Value
	}
	switch tag {
	case rtoken.BinaryTag:
		text, ok := scalarText(n.Value)
		if !ok {
			return nil, posError(n, "%s tag on a non-scalar value", tag)
		}
		return ir.FromBinary(text), nil
	case strTag:
		text, ok := scalarText(n.Value)
		if !ok {
			return nil, posError(n, "%s tag on a non-scalar value", tag)
		}
		return ir.FromString(text), nil
	}
	val, err := c.node(n.Value)
	if err != nil {
		return nil, err
	}
	if _, ok := classify.FromString(tag); ok {
		val.Tag = tag
	}
	return val, nil
}

// scalarText returns the text of a scalar node as written, without
// quotes.
func scalarText(n ast.Node) (string, bool) {
	switch n := n.(type) {
	case *ast.StringNode:
		return n.Value, true
	case *ast.LiteralNode:
		if n.Value == nil {
			return "", true
		}
		return n.Value.Value, true
	case *ast.NullNode:
		return "", true
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode, *ast.InfinityNode, *ast.NanNode:
		return tokenText(n), true
	default:
		return "", false
	}
}

func tokenText(n ast.Node) string {
	if n == nil {
		return ""
	}
	tok := n.GetToken()
	if tok == nil {
		return ""
	}
	return tok.Value
}
