package rpg

import "testing"

func TestCommandName(t *testing.T) {
	tests := []struct {
		code int64
		want string
	}{
		{101, "Show Text"},
		{209, "Set Movement Route"},
		{509, "Movement Command"},
		{0, "End"},
		{999, "Unknown Command (999)"},
	}
	for _, tc := range tests {
		if got := CommandName(tc.code); got != tc.want {
			t.Errorf("CommandName(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestMoveCommandName(t *testing.T) {
	tests := []struct {
		code int64
		want string
	}{
		{1, "Move Down"},
		{15, "Wait..."},
		{16, "Turn Down"},
		{45, "Script..."},
		{0, "End of Route"},
		{46, "Code 46"},
	}
	for _, tc := range tests {
		if got := MoveCommandName(tc.code); got != tc.want {
			t.Errorf("MoveCommandName(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestPageFields(t *testing.T) {
	for _, k := range []string{"through", "graphic", "commands", "list", "page_index"} {
		if !IsPageField(k) {
			t.Errorf("%s should be a page field", k)
		}
	}
	if IsPageField("custom") {
		t.Error("custom is extra")
	}
	if !IsEventField("pages") || IsEventField("note") {
		t.Error("event fields")
	}
}
