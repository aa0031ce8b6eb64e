package encode

import (
	"github.com/signadot/rpgmap/debug"
	"github.com/signadot/rpgmap/ir"
	"github.com/signadot/rpgmap/rpg"
)

// routeParam is the index of the move route among the parameters of a
// set move route command.
const routeParam = 1

// anchorTable records, for one page, the anchor labels given to the
// move commands of each set move route command.
type anchorTable struct {
	cmds   []*ir.Node
	labels map[int][]int
	moves  map[int][]*ir.Node
}

// moveRoute returns the move commands of a set move route command, or
// false if c is not one.
func moveRoute(c *ir.Node) ([]*ir.Node, bool) {
	code, ok := commandCode(c)
	if !ok || code != rpg.CodeSetMoveRoute {
		return nil, false
	}
	params := ir.Get(c, "parameters")
	if params == nil || params.Type != ir.ArrayType || len(params.Values) <= routeParam {
		return nil, false
	}
	route := params.Values[routeParam]
	if route.Type != ir.ObjectType || ir.IsBinary(route) {
		return nil, false
	}
	list := ir.Get(route, "list")
	if list == nil || list.Type != ir.ArrayType {
		return nil, false
	}
	return list.Values, true
}

// buildAnchors allocates labels for every move command of every move
// route in cmds, except the last of each route. Labels continue from
// the document counter.
func (es *EncState) buildAnchors(cmds []*ir.Node) *anchorTable {
	at := &anchorTable{
		cmds:   cmds,
		labels: map[int][]int{},
		moves:  map[int][]*ir.Node{},
	}
	for i, c := range cmds {
		moves, ok := moveRoute(c)
		if !ok {
			continue
		}
		labels := []int{}
		for range max(len(moves)-1, 0) {
			es.anchor++
			labels = append(labels, es.anchor)
		}
		at.labels[i] = labels
		at.moves[i] = moves
		if debug.Anchors() {
			debug.Logf("anchors: event %d page %d command %d -> %v\n", es.event, es.page, i, labels)
		}
	}
	return at
}

func (at *anchorTable) isRoute(i int) bool {
	_, ok := at.labels[i]
	return ok
}

// alias finds the anchor a movement command at index i refers to. A
// run of movement commands following a set move route command refers
// to the route's move commands in order.
func (at *anchorTable) alias(i int) (int, *ir.Node, bool) {
	k := i
	for k > 0 {
		code, _ := commandCode(at.cmds[k-1])
		if code != rpg.CodeMoveCommand {
			break
		}
		k--
	}
	if k == 0 {
		return 0, nil, false
	}
	labels, ok := at.labels[k-1]
	if !ok {
		return 0, nil, false
	}
	p := i - k
	if p >= len(labels) {
		return 0, nil, false
	}
	return labels[p], at.moves[k-1][p], true
}
