package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/rpgmap/debug"
	"github.com/signadot/rpgmap/ir"
)

func encodeJSONText(t *testing.T, in string) (string, string) {
	t.Helper()
	doc, err := ir.FromJSON([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	if err := Encode(doc, out, EncodeLogger(debug.NewLogger(logs))); err != nil {
		t.Fatal(err)
	}
	return out.String(), logs.String()
}

func TestEncodeDocument(t *testing.T) {
	in := `{
  "map_data": {"tileset_id": 1, "width": 2, "height": 1,
    "grid_info": {"width": 2, "height": 1, "layers": 1, "grids": {"0": [[5, 6]]}}},
  "autoplay_bgm": true,
  "bgm": {"name": "Town", "volume": 80, "pitch": 100},
  "encounter_list": [],
  "events": [
    {"id": 2, "name": "B", "x": 1, "y": 0, "pages": []},
    {"id": 1, "name": "EV001", "x": 0, "y": 0, "pages": [
      {"page_index": 0, "trigger": 0, "through": false,
       "graphic": {"character_name": "", "character_index": 0, "direction": 2,
                   "pattern": 0, "opacity": 255, "blend_type": 0},
       "commands": [
         {"code": 101, "indent": 0, "parameters": ["Hello: world"]},
         {"code": 0, "indent": 0}
       ]}
    ]}
  ]
}`
	want := `--- !ruby/object:RPG::Map
tileset_id: 1
width: 2
height: 1
autoplay_bgm: true
bgm: !ruby/object:RPG::AudioFile
  name: Town
  volume: 80
  pitch: 100
autoplay_bgs: false
bgs: !ruby/object:RPG::AudioFile
  name: ""
  volume: 100
  pitch: 100
encounter_list: []
encounter_step: 30
data: !ruby/object:Table
  data: |
    init 2 1 1
    z = 0
    5 6
events:
  1: !ruby/object:RPG::Event
    id: 1
    name: EV001
    x: 0
    y: 0
    pages:
    - !ruby/object:RPG::Event::Page
      through: false
      trigger: 0
      graphic: !ruby/object:RPG::Event::Page::Graphic
        character_name: ""
        character_index: 0
        direction: 2
        pattern: 0
        opacity: 255
        blend_type: 0
      list:
      - !ruby/object:RPG::EventCommand
        parameters:
        - "Hello: world"
        indent: 0
        code: 101
      - !ruby/object:RPG::EventCommand
        parameters: []
        indent: 0
        code: 0
  2: !ruby/object:RPG::Event
    id: 2
    name: B
    x: 1
    y: 0
    pages: []
`
	got, _ := encodeJSONText(t, in)
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeMoveRouteAliases(t *testing.T) {
	in := `{"events": [{"id": 1, "pages": [{"commands": [
  {"code": 209, "indent": 0, "parameters": [-1, {"repeat": false, "skippable": false, "list": [
    {"code": 1, "parameters": []},
    {"code": 14, "parameters": [1, 0]},
    {"code": 0, "parameters": []}]}]},
  {"code": 509, "indent": 0, "parameters": [{"code": 1, "parameters": []}]},
  {"code": 509, "indent": 0, "parameters": [{"code": 14, "parameters": [1, 0]}]},
  {"code": 0, "indent": 0, "parameters": []}
]}]}]}`
	want := `      list:
      - !ruby/object:RPG::EventCommand
        parameters:
        - -1
        - !ruby/object:RPG::MoveRoute
          repeat: false
          skippable: false
          list:
          - &1 !ruby/object:RPG::MoveCommand
            code: 1
            parameters: []
          - &2 !ruby/object:RPG::MoveCommand
            code: 14
            parameters:
            - 1
            - 0
          - !ruby/object:RPG::MoveCommand
            code: 0
            parameters: []
        indent: 0
        code: 209
      - !ruby/object:RPG::EventCommand
        parameters:
        - *1
        indent: 0
        code: 509
      - !ruby/object:RPG::EventCommand
        parameters:
        - *2
        indent: 0
        code: 509
      - !ruby/object:RPG::EventCommand
        parameters: []
        indent: 0
        code: 0
`
	got, logs := encodeJSONText(t, in)
	if !strings.HasSuffix(got, want) {
		t.Errorf("got:\n%s\nwant suffix:\n%s", got, want)
	}
	if strings.Contains(logs, "movement command") {
		t.Errorf("unexpected warnings: %s", logs)
	}
}

func TestEncodeAnchorsCountPerDocument(t *testing.T) {
	route := `{"code": 209, "parameters": [0, {"repeat": true, "skippable": false, "list": [
    {"code": 3, "parameters": []}, {"code": 0, "parameters": []}]}]}`
	in := `{"events": [
  {"id": 1, "pages": [{"commands": [` + route + `]}, {"commands": [` + route + `]}]},
  {"id": 2, "pages": [{"commands": [` + route + `, {"code": 509, "parameters": []}]}]}
]}`
	got, _ := encodeJSONText(t, in)
	for _, a := range []string{"&1 ", "&2 ", "&3 ", "- *3"} {
		if !strings.Contains(got, a) {
			t.Errorf("missing %q in:\n%s", a, got)
		}
	}
	if strings.Contains(got, "&4") {
		t.Errorf("unexpected anchor &4 in:\n%s", got)
	}
}

func TestEncodeMovementCommandFallback(t *testing.T) {
	in := `{"events": [{"id": 1, "pages": [{"commands": [
  {"code": 509, "indent": 0, "parameters": [{"code": 3, "parameters": []}]},
  {"code": 509, "indent": 0}
]}]}]}`
	want := `      list:
      - !ruby/object:RPG::EventCommand
        parameters:
        - !ruby/object:RPG::MoveCommand
          code: 3
          parameters: []
        indent: 0
        code: 509
      - !ruby/object:RPG::EventCommand
        parameters: []
        indent: 0
        code: 509
`
	got, logs := encodeJSONText(t, in)
	if !strings.HasSuffix(got, want) {
		t.Errorf("got:\n%s\nwant suffix:\n%s", got, want)
	}
	if n := strings.Count(logs, "no move route anchor"); n != 2 {
		t.Errorf("expected 2 warnings, got %d: %s", n, logs)
	}
}

func TestEncodeEventDetails(t *testing.T) {
	in := `{"events": [
  {"id": "3", "name": {"__binary_content__": "AAEC"}, "x": 1, "y": 2, "note": "memo",
   "pages": [{"through": true, "custom": [[1, 2], []], "commands": [
     {"code": "101", "indent": "1", "parameters": [{"red": 1.5, "green": 0, "blue": 0, "alpha": 255}, {}]}]}]},
  {"name": "no id"}
]}`
	got, logs := encodeJSONText(t, in)
	wants := []string{
		`  3: !ruby/object:RPG::Event
    note: memo
    id: 3
    name: !binary "AAEC"
    x: 1
    y: 2
    pages:
    - !ruby/object:RPG::Event::Page
      through: true
      custom:
      - - 1
        - 2
      - []
      list:
      - !ruby/object:RPG::EventCommand
        parameters:
        - !ruby/object:Color
          red: 1.5
          green: 0
          blue: 0
          alpha: 255
        - !ruby/object: {}
        indent: 1
        code: 101
`,
	}
	for _, w := range wants {
		if !strings.Contains(got, w) {
			t.Errorf("got:\n%s\nwant:\n%s", got, w)
		}
	}
	if !strings.Contains(logs, "no usable id") {
		t.Errorf("expected skipped event warning, got %q", logs)
	}
}

func TestEncodeDuplicateIDs(t *testing.T) {
	in := `{"events": [{"id": 1, "name": "first"}, {"id": 1, "name": "second"}]}`
	got, logs := encodeJSONText(t, in)
	if strings.Contains(got, "first") || !strings.Contains(got, "name: second") {
		t.Errorf("expected last event to win:\n%s", got)
	}
	if !strings.Contains(logs, "duplicate event id") {
		t.Errorf("expected warning, got %q", logs)
	}
}

func TestEncodeNotObject(t *testing.T) {
	err := Encode(ir.FromSlice(nil), &bytes.Buffer{})
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("expected ErrEncoding, got %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	doc := ir.FromKeyVals(nil)
	plain, err := Lines(doc)
	if err != nil {
		t.Fatal(err)
	}
	colored, err := Lines(doc, EncodeColors(NewColors()), EncodeLogger(debug.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if len(plain) != len(colored) {
		t.Fatalf("line counts differ: %d vs %d", len(plain), len(colored))
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2, "2.0"},
		{0.5, "0.5"},
		{-3.25, "-3.25"},
		{1e21, "1e+21"},
		{1234567.5, "1234567.5"},
	}
	for _, tc := range tests {
		if got := formatFloat(tc.in); got != tc.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
