package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromJSONKeepsOrder(t *testing.T) {
	node, err := FromJSON([]byte(`{"z": 1, "a": [true, null, 2.5], "m": {"k": "v"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, node.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	a := Get(node, "a")
	if a.Type != ArrayType || len(a.Values) != 3 {
		t.Fatalf("got %v", a.Type)
	}
	if a.Values[2].Float64 == nil || *a.Values[2].Float64 != 2.5 {
		t.Errorf("expected float 2.5")
	}
	if i, ok := AsInt(Get(node, "z")); !ok || i != 1 {
		t.Errorf("expected int 1, got %d %t", i, ok)
	}
	if got := Get(node, "m").Values[0].Path(); got != "$.m.k" {
		t.Errorf("path %q", got)
	}
}

func TestFromJSONComments(t *testing.T) {
	node, err := FromJSON([]byte("{\n  // comment\n  \"a\": 1,\n}"))
	if err != nil {
		t.Fatal(err)
	}
	if !node.Has("a") {
		t.Error("missing a")
	}
}

func TestFromJSONErrors(t *testing.T) {
	for _, in := range []string{`{"a": `, `[1, 2`, `{} {}`, ``} {
		t.Run(in, func(t *testing.T) {
			_, err := FromJSON([]byte(in))
			if !errors.Is(err, ErrJSON) {
				t.Errorf("expected ErrJSON, got %v", err)
			}
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: "b", Val: FromSlice([]*Node{FromInt(1), FromFloat(0.5)})},
		{Key: "a", Val: Null()},
	})
	d, err := MarshalJSON(node)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(d), `{"a":null,"b":[1,0.5]}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestIsBinary(t *testing.T) {
	if !IsBinary(FromBinary("AAEC")) {
		t.Error("expected binary placeholder")
	}
	other := FromKeyVals([]KeyVal{{Key: BinaryKey, Val: FromInt(1)}})
	if IsBinary(other) {
		t.Error("non-string content is not binary")
	}
	if IsBinary(FromString("x")) {
		t.Error("string is not binary")
	}
}
