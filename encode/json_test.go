package encode

import (
	"bytes"
	"testing"

	"github.com/signadot/rpgmap/ir"
)

func TestEncodeJSON(t *testing.T) {
	node, err := ir.FromJSON([]byte(`{"z": "é<>\n", "b": [1, 2.5, true, null], "c": {}, "d": []}`))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	if err := EncodeJSON(node, buf); err != nil {
		t.Fatal(err)
	}
	want := `{
  "z": "é<>\n",
  "b": [
    1,
    2.5,
    true,
    null
  ],
  "c": {},
  "d": []
}
`
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
