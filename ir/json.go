package ir

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/tidwall/jsonc"
)

// FromJSON decodes a JSON document into a Node, preserving object key
// order. Comments and trailing commas are tolerated.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(d)))
	dec.UseNumber()
	res, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("trailing data after document")
		}
		return nil, fmt.Errorf("%w: offset %d: %w", ErrJSON, dec.InputOffset(), err)
	}
	return res, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: offset %d: %w", ErrJSON, dec.InputOffset(), err)
	}
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("%w: offset %d: unexpected %q", ErrJSON, dec.InputOffset(), v)
		}
	case string:
		return FromString(v), nil
	case json.Number:
		return FromNumber(string(v)), nil
	case bool:
		return FromBool(v), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %T", ErrJSON, tok)
	}
}

func decodeObject(dec *json.Decoder) (*Node, error) {
	res := &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: offset %d: %w", ErrJSON, dec.InputOffset(), err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: offset %d: object key is %T", ErrJSON, dec.InputOffset(), tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		res.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: offset %d: %w", ErrJSON, dec.InputOffset(), err)
	}
	return res, nil
}

func decodeArray(dec *json.Decoder) (*Node, error) {
	res := &Node{Type: ArrayType, Values: []*Node{}}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		res.Append(val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: offset %d: %w", ErrJSON, dec.InputOffset(), err)
	}
	return res, nil
}

// FromNumber makes a number node from its textual form, keeping the
// text for numbers that fit neither int64 nor float64.
func FromNumber(v string) *Node {
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return FromInt(i)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return FromFloat(f)
	}
	return &Node{Type: NumberType, Number: v}
}

// ToJSONAny converts y to the values encoding/json produces when
// decoding into an any.
func ToJSONAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToJSONAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToJSONAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return int(*node.Int64)
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// MarshalJSON encodes node as compact JSON. Object keys come out sorted.
func MarshalJSON(node *Node) ([]byte, error) {
	return json.Marshal(ToJSONAny(node))
}
