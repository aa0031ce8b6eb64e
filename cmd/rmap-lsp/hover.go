package main

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/signadot/rpgmap/classify"
	"github.com/signadot/rpgmap/ir"
	"github.com/signadot/rpgmap/parse"
	"github.com/signadot/rpgmap/rpg"

	"go.lsp.dev/protocol"
)

var tagRE = regexp.MustCompile(`!ruby/object:[A-Za-z:]*`)

var tagDescriptions = map[classify.Tag]string{
	classify.Generic:      "object without a record type",
	classify.Map:          "map document",
	classify.Table:        "tile grid; `data` holds the `init w h l` table text",
	classify.Event:        "event placed on the map",
	classify.Page:         "event page: flags, graphic, condition, move route and command list",
	classify.EventCommand: "event command: code, indent, parameters",
	classify.AudioFile:    "audio file: name, volume, pitch",
	classify.Color:        "color: red, green, blue, alpha",
	classify.MoveCommand:  "move command: code, parameters",
	classify.MoveRoute:    "move route: repeat, skippable, list",
	classify.Condition:    "page condition: switches, variable, self switch",
	classify.Graphic:      "page graphic: character sheet, direction, pattern, opacity, blending",
}

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	text := hoverText(doc, int(params.Position.Line), int(params.Position.Character))
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// hoverText describes what is at the 0 based line and column of doc: a
// record tag written there, or else the closest parsed value on the
// line.
func hoverText(doc *document, line, col int) string {
	lines := strings.Split(doc.text, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	for _, loc := range tagRE.FindAllStringIndex(lines[line], -1) {
		if col >= loc[0] && col <= loc[1] {
			return tagHover(lines[line][loc[0]:loc[1]])
		}
	}
	if doc.node == nil {
		return ""
	}
	return nodeHover(findNodeAtPosition(doc.node, doc.positions, line+1, col+1))
}

func tagHover(text string) string {
	t, ok := classify.FromString(text)
	if !ok {
		return ""
	}
	desc, ok := tagDescriptions[t]
	if !ok {
		desc = "unknown record type"
	}
	return fmt.Sprintf("**Tag:** `%s`\n\n%s", text, desc)
}

func findNodeAtPosition(root *ir.Node, positions map[*ir.Node]parse.Pos, line, col int) *ir.Node {
	var bestNode *ir.Node
	var bestPos parse.Pos
	var visit func(*ir.Node)
	visit = func(node *ir.Node) {
		if node == nil {
			return
		}
		if pos, ok := positions[node]; ok && pos.Line == line {
			if bestNode == nil || abs(pos.Column-col) < abs(bestPos.Column-col) {
				bestNode = node
				bestPos = pos
			}
		}
		for _, child := range node.Values {
			visit(child)
		}
	}
	visit(root)
	return bestNode
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func isMoveCommand(y *ir.Node) bool {
	if y == nil || y.Type != ir.ObjectType {
		return false
	}
	if t, ok := classify.FromString(y.Tag); ok {
		return t == classify.MoveCommand
	}
	return classify.Node(y) == classify.MoveCommand
}

func nodeHover(node *ir.Node) string {
	if node == nil {
		return ""
	}
	if isMoveCommand(node) {
		code, _ := ir.AsInt(ir.Get(node, "code"))
		return fmt.Sprintf("**Move command:** %s", rpg.MoveCommandName(code))
	}
	if node.ParentField == "code" && node.Parent != nil {
		code, ok := ir.AsInt(node)
		if !ok {
			return ""
		}
		if isMoveCommand(node.Parent) {
			return fmt.Sprintf("**Move command %d:** %s", code, rpg.MoveCommandName(code))
		}
		return fmt.Sprintf("**Event command %d:** %s", code, rpg.CommandName(code))
	}
	if ir.IsBinary(node) {
		return "**Type:** binary"
	}
	if node.Tag != "" {
		return tagHover(node.Tag)
	}
	return fmt.Sprintf("**Type:** %s", node.Type)
}
