package main

import (
	"context"
	"strings"

	"github.com/signadot/rpgmap/classify"
	"github.com/signadot/rpgmap/token"

	"go.lsp.dev/protocol"
)

var completionTags = []classify.Tag{
	classify.Map,
	classify.Table,
	classify.Event,
	classify.Page,
	classify.EventCommand,
	classify.AudioFile,
	classify.Color,
	classify.MoveRoute,
	classify.MoveCommand,
	classify.Condition,
	classify.Graphic,
	classify.Generic,
}

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	items := tagCompletions(doc.text, int(params.Position.Line), int(params.Position.Character))
	if items == nil {
		return nil, nil
	}
	return &protocol.CompletionList{Items: items}, nil
}

// tagCompletions offers the tags starting with the word being typed
// after a '!' at the given 0 based position.
func tagCompletions(text string, line, col int) []protocol.CompletionItem {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return nil
	}
	ln := lines[line]
	if col > len(ln) {
		col = len(ln)
	}
	start := strings.LastIndexAny(ln[:col], " \t")
	word := ln[start+1 : col]
	if !strings.HasPrefix(word, "!") {
		return nil
	}
	var res []protocol.CompletionItem
	cands := []string{token.BinaryTag}
	for _, t := range completionTags {
		cands = append(cands, t.String())
	}
	for i, c := range cands {
		if !strings.HasPrefix(c, word) {
			continue
		}
		detail := "binary string"
		if i > 0 {
			detail = tagDescriptions[completionTags[i-1]]
		}
		res = append(res, protocol.CompletionItem{
			Label:      c,
			Kind:       protocol.CompletionItemKindClass,
			Detail:     detail,
			FilterText: c,
			InsertText: c[len(word):],
		})
	}
	return res
}
