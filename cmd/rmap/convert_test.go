package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/signadot/rpgmap"
	"github.com/signadot/rpgmap/format"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		dir, prefix, out string
		want             string
	}{
		{"/bin", "resultat_", "map.yml", "/bin/resultat_map.yml"},
		{"/bin", "resultat_", "some/where/Map001.yml", "/bin/resultat_Map001.yml"},
		{"out", "", "a.yml", "out/a.yml"},
		{"/tmp/x", "p-", "/abs/b.yaml", "/tmp/x/p-b.yaml"},
	}
	for _, tc := range tests {
		got := outputPath(tc.dir, tc.prefix, tc.out)
		if got != filepath.FromSlash(tc.want) {
			t.Errorf("outputPath(%q, %q, %q) = %q, want %q", tc.dir, tc.prefix, tc.out, got, tc.want)
		}
	}
}

func TestOutputPathDefaultDir(t *testing.T) {
	got := outputPath("", defaultPrefix, "x/Map.yml")
	if filepath.Base(got) != "resultat_Map.yml" {
		t.Errorf("got %q", got)
	}
	if filepath.Dir(got) != programDir() {
		t.Errorf("got dir %q, want %q", filepath.Dir(got), programDir())
	}
}

func TestInputFormat(t *testing.T) {
	tests := []struct {
		path, data string
		want       format.Format
	}{
		{"a.json", "", format.JSONFormat},
		{"a.JSON", "", format.JSONFormat},
		{"a.yml", "{}", format.YAMLFormat},
		{"a.yaml", "", format.YAMLFormat},
		{"-", "  {\"events\": []}", format.JSONFormat},
		{"-", "--- !ruby/object:RPG::Map\n", format.YAMLFormat},
		{"noext", "[]", format.JSONFormat},
	}
	for _, tc := range tests {
		if got := inputFormat(tc.path, []byte(tc.data)); got != tc.want {
			t.Errorf("inputFormat(%q, %q) = %s, want %s", tc.path, tc.data, got, tc.want)
		}
	}
}

func TestFileArg(t *testing.T) {
	if got := fileArg(nil); got != "-" {
		t.Errorf("got %q", got)
	}
	if got := fileArg([]string{"a", "b"}); got != "a" {
		t.Errorf("got %q", got)
	}
}

func TestConvertErrStack(t *testing.T) {
	buf := &bytes.Buffer{}
	err := rpgmap.Convert(func() error { panic("bad index") })
	err = convertErr(buf, "Map001.json", err)
	if !errors.Is(err, rpgmap.ErrInternal) {
		t.Errorf("got %v", err)
	}
	if !strings.Contains(err.Error(), "error converting Map001.json") {
		t.Errorf("got %q", err)
	}
	if !strings.Contains(buf.String(), "goroutine") || !strings.Contains(buf.String(), "TestConvertErrStack") {
		t.Errorf("expected stack, got %q", buf.String())
	}

	buf.Reset()
	err = convertErr(buf, "Map001.json", rpgmap.ErrMalformedJSON)
	if !errors.Is(err, rpgmap.ErrMalformedJSON) || buf.Len() != 0 {
		t.Errorf("got %v, output %q", err, buf.String())
	}
}

func TestPatchOpts(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "merge.json")
	if err := os.WriteFile(p, []byte(`{"encounter_step": 10}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &ToYAMLConfig{MainConfig: &MainConfig{Quiet: true}}
	if n := len(cfg.patchOpts()); n != 1 {
		t.Errorf("expected only the logger option, got %d", n)
	}
	if _, err := cfg.mergePatchOpt(nil, p); err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.mergePatchOpt(nil, filepath.Join(dir, "nope.json")); err == nil {
		t.Errorf("expected error for missing file")
	}
	if string(cfg.MergePatch) != `{"encounter_step": 10}` {
		t.Errorf("got %q", cfg.MergePatch)
	}
	out := &bytes.Buffer{}
	in := `{"events": [], "encounter_step": 30}`
	if err := rpgmap.ToYAML([]byte(in), out, cfg.patchOpts()...); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\nencounter_step: 10\n") {
		t.Errorf("merge patch not applied:\n%s", out.String())
	}
}
