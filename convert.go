package rpgmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/signadot/rpgmap/encode"
	"github.com/signadot/rpgmap/ir"
	"github.com/signadot/rpgmap/parse"
)

type ConvertConfig struct {
	Log    *slog.Logger
	Colors *encode.Colors
	Patch  []byte

	MergePatch []byte
}

type ConvertOpt func(*ConvertConfig)

func ConvertLogger(l *slog.Logger) ConvertOpt {
	return func(c *ConvertConfig) { c.Log = l }
}

func ConvertColors(c *encode.Colors) ConvertOpt {
	return func(cfg *ConvertConfig) { cfg.Colors = c }
}

// ConvertPatch applies an RFC 6902 patch to the JSON document before
// it is written as YAML.
func ConvertPatch(p []byte) ConvertOpt {
	return func(c *ConvertConfig) { c.Patch = p }
}

// ConvertMergePatch applies an RFC 7386 merge patch to the JSON
// document, after any ConvertPatch, before it is written as YAML.
func ConvertMergePatch(p []byte) ConvertOpt {
	return func(c *ConvertConfig) { c.MergePatch = p }
}

func newConfig(opts []ConvertOpt) *ConvertConfig {
	cfg := &ConvertConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *ConvertConfig) encOpts() []encode.EncodeOption {
	var res []encode.EncodeOption
	if c.Log != nil {
		res = append(res, encode.EncodeLogger(c.Log))
	}
	if c.Colors != nil {
		res = append(res, encode.EncodeColors(c.Colors))
	}
	return res
}

// ReadJSON decodes a JSON map document.
func ReadJSON(d []byte) (*ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, fmt.Errorf("%w: empty json", ErrMissingInput)
	}
	doc, err := ir.FromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	if doc.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: top level is %s, not an object", ErrMalformedJSON, doc.Type)
	}
	return doc, nil
}

// ReadYAML decodes a tagged map document into its JSON layout.
func ReadYAML(d []byte, opts ...ConvertOpt) (*ir.Node, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMissingInput)
	}
	cfg := newConfig(opts)
	var pOpts []parse.ParseOption
	if cfg.Log != nil {
		pOpts = append(pOpts, parse.ParseLogger(cfg.Log))
	}
	doc, err := parse.Parse(d, pOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}
	return doc, nil
}

// ToYAML converts the JSON map document d and writes the tagged
// document to w.
func ToYAML(d []byte, w io.Writer, opts ...ConvertOpt) error {
	cfg := newConfig(opts)
	doc, err := ReadJSON(d)
	if err != nil {
		return err
	}
	if cfg.Patch != nil {
		doc, err = Patch(doc, cfg.Patch)
		if err != nil {
			return err
		}
	}
	if cfg.MergePatch != nil {
		doc, err = MergePatch(doc, cfg.MergePatch)
		if err != nil {
			return err
		}
	}
	return WriteYAML(doc, w, opts...)
}

// WriteYAML writes doc, a JSON map layout, as a tagged document.
func WriteYAML(doc *ir.Node, w io.Writer, opts ...ConvertOpt) error {
	cfg := newConfig(opts)
	if err := encode.Encode(doc, w, cfg.encOpts()...); err != nil {
		if errors.Is(err, encode.ErrEncoding) {
			return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
		}
		return err
	}
	return nil
}

// ToJSON converts the tagged document d and writes its JSON layout to w.
func ToJSON(d []byte, w io.Writer, opts ...ConvertOpt) error {
	doc, err := ReadYAML(d, opts...)
	if err != nil {
		return err
	}
	return encode.EncodeJSON(doc, w)
}

// Convert runs fn and turns a panic into an *InternalError.
func Convert(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &InternalError{Value: r, Stack: debug.Stack()}
		}
	}()
	return fn()
}
