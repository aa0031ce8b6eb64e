package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/rpgmap"
	"github.com/signadot/rpgmap/debug"
	"github.com/signadot/rpgmap/parse"

	"go.lsp.dev/protocol"
)

const lspDoc = `--- !ruby/object:RPG::Map
events:
  1: !ruby/object:RPG::Event
    pages:
    - !ruby/object:RPG::Event::Page
      list:
      - !ruby/object:RPG::EventCommand
        code: 209
        indent: 0
        parameters:
        - -1
        - !ruby/object:RPG::MoveRoute
          repeat: false
          skippable: false
          list:
          - &1 !ruby/object:RPG::MoveCommand
            code: 4
            parameters: []
          - !ruby/object:RPG::MoveCommand
            code: 0
            parameters: []
      - !ruby/object:RPG::EventCommand
        code: 509
        indent: 0
        parameters:
        - *1
`

func init() {
	theLog = debug.Discard
}

func TestHoverText(t *testing.T) {
	doc := load(lspDoc)
	if doc.err != nil {
		t.Fatal(doc.err)
	}
	tests := []struct {
		line, col int
		want      string
	}{
		{2, 10, "**Tag:** `!ruby/object:RPG::Event`\n\nevent placed on the map"},
		{7, 14, "**Event command 209:** Set Movement Route"},
		{16, 18, "**Move command 4:** Move Up"},
		{22, 14, "**Event command 509:** Movement Command"},
		{25, 10, "**Move command:** Move Up"},
		{100, 0, ""},
	}
	for _, tc := range tests {
		if got := hoverText(doc, tc.line, tc.col); got != tc.want {
			t.Errorf("hover at %d:%d: got %q want %q", tc.line, tc.col, got, tc.want)
		}
	}
}

func TestDiagnostics(t *testing.T) {
	if got := diagnostics(nil); len(got) != 0 {
		t.Errorf("got %v", got)
	}
	got := diagnostics(&parse.PosError{Pos: parse.Pos{Line: 3, Column: 5}, Msg: "bad"})
	want := []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: 2, Character: 4},
			End:   protocol.Position{Line: 2, Character: 5},
		},
		Severity: protocol.DiagnosticSeverityError,
		Source:   lsName,
		Message:  "bad",
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if doc := load("- a\n- b\n"); len(diagnostics(doc.err)) != 1 {
		t.Errorf("expected a diagnostic for a sequence root")
	}
	if doc := load(lspDoc); len(diagnostics(doc.err)) != 0 {
		t.Errorf("unexpected diagnostics: %v", doc.err)
	}
}

func TestTagCompletions(t *testing.T) {
	labels := func(items []protocol.CompletionItem) []string {
		var res []string
		for _, it := range items {
			res = append(res, it.Label)
		}
		return res
	}
	got := tagCompletions("  1: !ruby/object:RPG::Ev", 0, 25)
	want := []string{
		"!ruby/object:RPG::Event",
		"!ruby/object:RPG::Event::Page",
		"!ruby/object:RPG::EventCommand",
		"!ruby/object:RPG::Event::Page::Condition",
		"!ruby/object:RPG::Event::Page::Graphic",
	}
	if diff := cmp.Diff(want, labels(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got[0].InsertText != "ent" {
		t.Errorf("insert text %q", got[0].InsertText)
	}
	if diff := cmp.Diff([]string{"!binary"}, labels(tagCompletions("name: !b", 0, 8))); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := tagCompletions("name: x", 0, 7); got != nil {
		t.Errorf("got %v", labels(got))
	}
}

func TestFormatEdits(t *testing.T) {
	buf := &bytes.Buffer{}
	in := `{"map_data": {"tileset_id": 1, "width": 1, "height": 1,
	  "grid_info": {"width": 1, "height": 1, "layers": 1, "grids": {"0": [[3]]}}}, "events": []}`
	if err := rpgmap.ToYAML([]byte(in), buf, rpgmap.ConvertLogger(debug.Discard)); err != nil {
		t.Fatal(err)
	}
	edits, err := formatEdits(buf.String())
	if err != nil {
		t.Fatal(err)
	}
	if edits != nil {
		t.Errorf("canonical text reformatted: %v", edits)
	}

	loose := "--- !ruby/object:RPG::Map\nevents: {}\n"
	edits, err = formatEdits(loose)
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 {
		t.Fatalf("got %d edits", len(edits))
	}
	if !strings.HasPrefix(edits[0].NewText, "--- !ruby/object:RPG::Map\ntileset_id: 0\n") {
		t.Errorf("new text:\n%s", edits[0].NewText)
	}
	if want := (protocol.Position{Line: 2, Character: 0}); edits[0].Range.End != want {
		t.Errorf("end %v", edits[0].Range.End)
	}

	if edits, _ := formatEdits("a: [\n"); edits != nil {
		t.Errorf("broken text formatted")
	}
}
