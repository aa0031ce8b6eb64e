package roundtrip

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/rpgmap/debug"
	"github.com/signadot/rpgmap/ir"
	"github.com/zeebo/blake3"
)

const canonical = `{
  "map_data": {"tileset_id": 1, "width": 1, "height": 1,
    "grid_info": {"width": 1, "height": 1, "layers": 1, "grids": {"0": [[7]]}}},
  "autoplay_bgm": false,
  "bgm": {"name": "", "volume": 100, "pitch": 100},
  "autoplay_bgs": false,
  "bgs": {"name": "", "volume": 100, "pitch": 100},
  "encounter_list": [],
  "encounter_step": 30,
  "events": [
    {"id": 5, "name": "B", "x": 0, "y": 0, "pages": []},
    {"id": 2, "name": "A", "x": 0, "y": 0, "pages": []}
  ]
}`

func TestCheckFaithful(t *testing.T) {
	r, err := Check([]byte(canonical), Logger(debug.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if !r.Faithful {
		t.Fatalf("not faithful: %s\n%s", r.MergePatch, LineDiff(r.Want, r.Got, false))
	}
	if r.MergePatch != nil {
		t.Errorf("unexpected patch %s", r.MergePatch)
	}
	if r.Digest != blake3.Sum256(r.YAML) {
		t.Errorf("digest mismatch")
	}
	out := &bytes.Buffer{}
	if err := r.Print(out, false); err != nil {
		t.Fatal(err)
	}
	if want := "round trip ok, yaml blake3 " + r.DigestString() + "\n"; out.String() != want {
		t.Errorf("got %q want %q", out.String(), want)
	}
}

func TestCheckDefaultsDiffer(t *testing.T) {
	in := `{"map_data": {"tileset_id": 1, "width": 1, "height": 1,
	  "grid_info": {"width": 1, "height": 1, "layers": 1, "grids": {"0": [[7]]}}},
	  "events": []}`
	r, err := Check([]byte(in), Logger(debug.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if r.Faithful {
		t.Fatal("expected defaults to show up as differences")
	}
	if !strings.Contains(string(r.MergePatch), `"autoplay_bgs":false`) {
		t.Errorf("merge patch %s", r.MergePatch)
	}
	d := LineDiff(r.Want, r.Got, false)
	if !strings.HasPrefix(d, "+") && !strings.Contains(d, "\n+") {
		t.Errorf("no added lines in diff")
	}
}

func TestNormalize(t *testing.T) {
	doc, err := ir.FromJSON([]byte(`{"events": {"9": {"name": "x"}, "3": {"id": 3, "name": "y"}}}`))
	if err != nil {
		t.Fatal(err)
	}
	got, err := ir.MarshalJSON(Normalize(doc))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"events":[{"id":3,"name":"y"},{"id":9,"name":"x"}]}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if ir.Get(doc, "events").Type != ir.ObjectType {
		t.Errorf("input modified")
	}
}

func TestLineDiff(t *testing.T) {
	got := LineDiff("a\nb\nc\n", "a\nd\nc\n", false)
	if diff := cmp.Diff("-b\n+d\n", got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := LineDiff("same\n", "same\n", false); got != "" {
		t.Errorf("got %q", got)
	}
}
