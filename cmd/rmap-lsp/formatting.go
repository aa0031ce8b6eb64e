package main

import (
	"bytes"
	"context"
	"strings"

	"github.com/signadot/rpgmap"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return formatEdits(doc.text)
}

// formatEdits re-emits text in canonical form as a single edit
// replacing the whole document. Text that does not parse is left alone.
func formatEdits(text string) ([]protocol.TextEdit, error) {
	doc, err := rpgmap.ReadYAML([]byte(text), rpgmap.ConvertLogger(theLog))
	if err != nil {
		return nil, nil
	}
	buf := &bytes.Buffer{}
	if err := rpgmap.WriteYAML(doc, buf, rpgmap.ConvertLogger(theLog)); err != nil {
		return nil, err
	}
	if buf.String() == text {
		return nil, nil
	}
	return []protocol.TextEdit{{
		Range:   protocol.Range{End: endPosition(text)},
		NewText: buf.String(),
	}}, nil
}

func endPosition(text string) protocol.Position {
	lines := strings.Split(text, "\n")
	last := lines[len(lines)-1]
	return protocol.Position{Line: uint32(len(lines) - 1), Character: uint32(len(last))}
}
