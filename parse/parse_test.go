package parse

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/signadot/rpgmap/debug"
	"github.com/signadot/rpgmap/encode"
	"github.com/signadot/rpgmap/ir"
)

const mapJSON = `{
  "map_data": {"tileset_id": 2, "width": 2, "height": 2,
    "grid_info": {"width": 2, "height": 2, "layers": 1, "grids": {"0": [[1, 2], [3, 4]]}}},
  "autoplay_bgm": true,
  "bgm": {"name": "Town", "volume": 80, "pitch": 100},
  "autoplay_bgs": false,
  "bgs": {"name": "", "volume": 100, "pitch": 100},
  "encounter_list": [1, 2],
  "encounter_step": 30,
  "events": [
    {"id": 1, "name": {"__binary_content__": "RVYwMDE="}, "x": 3, "y": 4, "pages": [
      {"page_index": 0, "through": false, "trigger": 1,
       "graphic": {"character_name": "true", "character_index": 0, "direction": 2,
                   "pattern": 0, "opacity": 255, "blend_type": 0},
       "condition": {"switch1_valid": false, "self_switch_ch": "A", "switch1_id": 1,
                     "switch2_valid": false, "variable_value": 0, "self_switch_valid": false,
                     "variable_id": 1, "variable_valid": false, "switch2_id": 1},
       "move_route": {"repeat": true, "skippable": false, "list": [{"code": 0, "parameters": []}]},
       "commands": [
         {"code": 101, "indent": 0, "parameters": ["a: b", "- x", "[1,2]", "", "true", "naïve 'q' \"dq\""]},
         {"code": 209, "indent": 0, "parameters": [-1, {"repeat": false, "skippable": true, "list": [
           {"code": 1, "parameters": []}, {"code": 15, "parameters": [4]}, {"code": 0, "parameters": []}]}]},
         {"code": 509, "indent": 0, "parameters": [{"code": 1, "parameters": []}]},
         {"code": 509, "indent": 0, "parameters": [{"code": 15, "parameters": [4]}]},
         {"code": 250, "indent": 1, "parameters": [{"name": "Bell", "volume": 80, "pitch": 100}]},
         {"code": 0, "indent": 0, "parameters": []}
       ]}
    ]},
    {"id": 7, "name": "Door", "x": 0, "y": 1, "note": 1.5, "pages": []}
  ]
}`

func mustJSON(t *testing.T, node *ir.Node) string {
	t.Helper()
	d, err := ir.MarshalJSON(node)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestRoundTrip(t *testing.T) {
	doc, err := ir.FromJSON([]byte(mapJSON))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := encode.Encode(doc, buf, encode.EncodeLogger(debug.Discard)); err != nil {
		t.Fatal(err)
	}
	got, err := Parse(buf.Bytes(), ParseLogger(debug.Discard))
	if err != nil {
		t.Fatalf("%v\n%s", err, buf.String())
	}
	if !ir.Equal(doc, got) {
		t.Errorf("round trip differs\nwant %s\ngot  %s\nyaml:\n%s", mustJSON(t, doc), mustJSON(t, got), buf.String())
	}
}

func TestParseNormalizes(t *testing.T) {
	in := `--- !ruby/object:RPG::Map
events:
  3: !ruby/object:RPG::Event
    name: Chest
    pages:
    - !ruby/object:RPG::Event::Page
      list:
      - !ruby/object:RPG::EventCommand
        code: 0
`
	got, err := Parse([]byte(in), ParseLogger(debug.Discard))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"autoplay_bgm":false,"autoplay_bgs":false,` +
		`"bgm":{"name":"","pitch":100,"volume":100},"bgs":{"name":"","pitch":100,"volume":100},` +
		`"encounter_list":[],"encounter_step":30,` +
		`"events":[{"id":3,"name":"Chest","pages":[{"commands":[{"code":0,"indent":0,"parameters":[]}],"page_index":0}],"x":0,"y":0}],` +
		`"map_data":{"height":0,"tileset_id":0,"width":0}}`
	if g := mustJSON(t, got); g != want {
		t.Errorf("got  %s\nwant %s", g, want)
	}
	if keys := strings.Join(got.Keys(), ","); keys != "map_data,autoplay_bgm,bgm,autoplay_bgs,bgs,encounter_list,encounter_step,events" {
		t.Errorf("key order %s", keys)
	}
}

func TestParseGenericAlias(t *testing.T) {
	in := "a: &x\n  k: 1\nb: *x\n"
	got, err := ParseGeneric([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	a, b := ir.Get(got, "a"), ir.Get(got, "b")
	if !ir.Equal(a, b) {
		t.Errorf("alias did not resolve: %s", mustJSON(t, got))
	}
	if a == b {
		t.Error("alias should be a copy")
	}
}

func TestParseGenericUnknownAlias(t *testing.T) {
	_, err := ParseGeneric([]byte("a: *nope\n"))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	var pe *PosError
	if !errors.As(err, &pe) {
		t.Errorf("expected a PosError, got %T", err)
	}
}

func TestParseGenericAliasLimit(t *testing.T) {
	buf := &strings.Builder{}
	buf.WriteString("a: &a [x, x, x, x, x, x, x, x, x, x]\n")
	prev := "a"
	for _, name := range []string{"b", "c", "d", "e", "f", "g", "h"} {
		fmt.Fprintf(buf, "%s: &%s [%s]\n", name, name, strings.TrimSuffix(strings.Repeat("*"+prev+", ", 10), ", "))
		prev = name
	}
	_, err := ParseGeneric([]byte(buf.String()))
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	if !strings.Contains(err.Error(), "through aliases") {
		t.Errorf("got %v", err)
	}

	got, err := ParseGeneric([]byte("a: &a [1, 2]\nb: &b [*a, *a]\nc: [*b, *b]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n := countNodes(got, MaxAliasNodes); n != 29 {
		t.Errorf("expected 29 nodes, got %d", n)
	}
}

func TestParseGenericTags(t *testing.T) {
	in := `bgm: !ruby/object:RPG::AudioFile
  name: a
  volume: 1
  pitch: 2
bin: !binary |
  aGVs
  bG8=
s: !!str 12
`
	got, err := ParseGeneric([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if tag := ir.Get(got, "bgm").Tag; tag != "!ruby/object:RPG::AudioFile" {
		t.Errorf("tag %q", tag)
	}
	bin := ir.Get(got, "bin")
	if !ir.IsBinary(bin) {
		t.Fatalf("expected binary placeholder, got %s", mustJSON(t, bin))
	}
	if raw := ir.Get(bin, ir.BinaryKey).String; strings.TrimSpace(raw) != "aGVs\nbG8=" {
		t.Errorf("raw binary text %q", raw)
	}
	if s := ir.Get(got, "s"); s.Type != ir.StringType || s.String != "12" {
		t.Errorf("expected string 12, got %s", mustJSON(t, s))
	}
}

func TestParseBadTable(t *testing.T) {
	in := `--- !ruby/object:RPG::Map
data: !ruby/object:Table
  data: "init x"
`
	logs := &bytes.Buffer{}
	got, err := Parse([]byte(in), ParseLogger(debug.NewLogger(logs)))
	if err != nil {
		t.Fatal(err)
	}
	if ir.Get(got, "map_data").Has("grid_info") {
		t.Error("expected grid_info to be omitted")
	}
	if !strings.Contains(logs.String(), "bad table") {
		t.Errorf("expected warning, got %q", logs.String())
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"a: [1, 2\n", "- 1\n- 2\n", ""} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse([]byte(in), ParseLogger(debug.Discard))
			if !errors.Is(err, ErrParse) {
				t.Errorf("expected ErrParse, got %v", err)
			}
		})
	}
}

func TestParsePositions(t *testing.T) {
	pos := map[*ir.Node]Pos{}
	got, err := ParseGeneric([]byte("a: 1\nb:\n  c: x\n"), ParsePositions(pos))
	if err != nil {
		t.Fatal(err)
	}
	c := ir.Get(ir.Get(got, "b"), "c")
	if p := pos[c]; p.Line != 3 {
		t.Errorf("expected line 3, got %v", p)
	}
}
