package query

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/rpgmap/ir"
	"github.com/signadot/rpgmap/rpg"
)

// Describe writes a readable listing of ev: its header, then for each
// page the command names indented by command depth. Move routes list
// their move commands.
func Describe(w io.Writer, ev *ir.Node) error {
	s := summarize(ev)
	b := &strings.Builder{}
	fmt.Fprintf(b, "Event %d %q at (%d,%d)\n", s.ID, s.Name, s.X, s.Y)
	for i, pg := range Pages(ev) {
		idx, ok := ir.AsInt(ir.Get(pg, "page_index"))
		if !ok {
			idx = int64(i)
		}
		fmt.Fprintf(b, "  page %d\n", idx)
		for _, c := range Commands(pg) {
			describeCommand(b, c)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func describeCommand(b *strings.Builder, c *ir.Node) {
	code, _ := ir.AsInt(ir.Get(c, "code"))
	indent, _ := ir.AsInt(ir.Get(c, "indent"))
	pad := strings.Repeat("  ", int(indent)+2)
	params := ir.Get(c, "parameters")
	switch code {
	case rpg.CodeSetMoveRoute:
		fmt.Fprintf(b, "%s%s\n", pad, rpg.CommandName(code))
		if params != nil && len(params.Values) > 1 {
			for _, mc := range values(ir.Get(params.Values[1], "list")) {
				mcode, _ := ir.AsInt(ir.Get(mc, "code"))
				fmt.Fprintf(b, "%s  : %s\n", pad, rpg.MoveCommandName(mcode))
			}
		}
		return
	case rpg.CodeMoveCommand:
		if params != nil && len(params.Values) > 0 {
			mcode, _ := ir.AsInt(ir.Get(params.Values[0], "code"))
			fmt.Fprintf(b, "%s: %s\n", pad, rpg.MoveCommandName(mcode))
			return
		}
	}
	fmt.Fprintf(b, "%s%s%s\n", pad, rpg.CommandName(code), paramText(params))
}

func paramText(params *ir.Node) string {
	if params == nil || len(params.Values) == 0 {
		return ""
	}
	parts := make([]string, len(params.Values))
	for i, p := range params.Values {
		if p.Type == ir.StringType {
			parts[i] = fmt.Sprintf("%q", p.String)
			continue
		}
		parts[i] = Text(p)
	}
	return ": " + strings.Join(parts, ", ")
}

func values(n *ir.Node) []*ir.Node {
	if n == nil || n.Type != ir.ArrayType {
		return nil
	}
	return n.Values
}
