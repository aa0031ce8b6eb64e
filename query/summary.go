package query

import (
	"encoding/base64"
	"fmt"
	"sort"

	"github.com/signadot/rpgmap/ir"
)

type Summary struct {
	ID       int64
	Name     string
	X, Y     int64
	Pages    int
	Commands int
	Codes    []int64

	Event *ir.Node
}

func (s *Summary) String() string {
	return fmt.Sprintf("%4d %-20q (%d,%d) pages=%d commands=%d", s.ID, s.Name, s.X, s.Y, s.Pages, s.Commands)
}

func (s *Summary) env() map[string]any {
	codes := make([]int, len(s.Codes))
	for i, c := range s.Codes {
		codes[i] = int(c)
	}
	return map[string]any{
		"id":       int(s.ID),
		"name":     s.Name,
		"x":        int(s.X),
		"y":        int(s.Y),
		"pages":    s.Pages,
		"commands": s.Commands,
		"codes":    codes,
	}
}

// Events returns the events of a map document sorted by id. An events
// object keyed by id is accepted as well as an array.
func Events(doc *ir.Node) []*ir.Node {
	evs := ir.Get(doc, "events")
	if evs == nil {
		return nil
	}
	var res []*ir.Node
	for _, ev := range evs.Values {
		if ev.Type == ir.ObjectType {
			res = append(res, ev)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return eventID(res[i]) < eventID(res[j])
	})
	return res
}

func eventID(ev *ir.Node) int64 {
	if id, ok := ir.AsInt(ir.Get(ev, "id")); ok {
		return id
	}
	if ev.ParentField != "" {
		if id, ok := ir.AsInt(ir.FromString(ev.ParentField)); ok {
			return id
		}
	}
	return -1
}

// Find returns the event with the given id, or nil.
func Find(doc *ir.Node, id int64) *ir.Node {
	for _, ev := range Events(doc) {
		if eventID(ev) == id {
			return ev
		}
	}
	return nil
}

// Summarize returns one summary per event of doc, in id order.
func Summarize(doc *ir.Node) []*Summary {
	evs := Events(doc)
	res := make([]*Summary, 0, len(evs))
	for _, ev := range evs {
		res = append(res, summarize(ev))
	}
	return res
}

func summarize(ev *ir.Node) *Summary {
	s := &Summary{ID: eventID(ev), Name: Text(ir.Get(ev, "name")), Event: ev}
	s.X, _ = ir.AsInt(ir.Get(ev, "x"))
	s.Y, _ = ir.AsInt(ir.Get(ev, "y"))
	seen := map[int64]bool{}
	for _, pg := range Pages(ev) {
		s.Pages++
		for _, c := range Commands(pg) {
			s.Commands++
			code, _ := ir.AsInt(ir.Get(c, "code"))
			if !seen[code] {
				seen[code] = true
				s.Codes = append(s.Codes, code)
			}
		}
	}
	return s
}

func Pages(ev *ir.Node) []*ir.Node {
	pgs := ir.Get(ev, "pages")
	if pgs == nil || pgs.Type != ir.ArrayType {
		return nil
	}
	return pgs.Values
}

// Commands returns the command list of a page, taken from "commands"
// or else "list".
func Commands(pg *ir.Node) []*ir.Node {
	cmds := ir.Get(pg, "commands")
	if cmds == nil {
		cmds = ir.Get(pg, "list")
	}
	if cmds == nil || cmds.Type != ir.ArrayType {
		return nil
	}
	return cmds.Values
}

// Text gives a display string for a scalar, decoding binary blobs.
func Text(n *ir.Node) string {
	if n == nil {
		return ""
	}
	switch {
	case n.Type == ir.StringType:
		return n.String
	case ir.IsBinary(n):
		d, err := base64.StdEncoding.DecodeString(ir.Get(n, ir.BinaryKey).String)
		if err != nil {
			return ir.Get(n, ir.BinaryKey).String
		}
		return string(d)
	}
	d, err := ir.MarshalJSON(n)
	if err != nil {
		return n.Type.String()
	}
	return string(d)
}
