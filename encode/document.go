package encode

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/rpgmap/classify"
	"github.com/signadot/rpgmap/debug"
	"github.com/signadot/rpgmap/ir"
	"github.com/signadot/rpgmap/rpg"
	"github.com/signadot/rpgmap/table"
)

var pageRecordTags = map[string]classify.Tag{
	"graphic":    classify.Graphic,
	"condition":  classify.Condition,
	"move_route": classify.MoveRoute,
}

func orDefault(v, def *ir.Node) *ir.Node {
	if v == nil {
		return def
	}
	return v
}

func (es *EncState) document(doc *ir.Node) {
	mapData := ir.Get(doc, "map_data")
	es.emit(0, es.color(ir.ObjectType, SepColor, "---")+" "+es.tag(classify.Map.String()))
	es.field(0, "tileset_id", orDefault(ir.Get(mapData, "tileset_id"), ir.FromInt(0)), classify.Generic)
	es.field(0, "width", orDefault(ir.Get(mapData, "width"), ir.FromInt(0)), classify.Generic)
	es.field(0, "height", orDefault(ir.Get(mapData, "height"), ir.FromInt(0)), classify.Generic)
	es.field(0, "autoplay_bgm", orDefault(ir.Get(doc, "autoplay_bgm"), ir.FromBool(false)), classify.Generic)
	es.field(0, "bgm", orDefault(ir.Get(doc, "bgm"), rpg.DefaultAudio()), classify.AudioFile)
	es.field(0, "autoplay_bgs", orDefault(ir.Get(doc, "autoplay_bgs"), ir.FromBool(false)), classify.Generic)
	es.field(0, "bgs", orDefault(ir.Get(doc, "bgs"), rpg.DefaultAudio()), classify.AudioFile)
	es.field(0, "encounter_list", orDefault(ir.Get(doc, "encounter_list"), ir.FromSlice(nil)), classify.Generic)
	es.field(0, "encounter_step", orDefault(ir.Get(doc, "encounter_step"), ir.FromInt(rpg.DefaultEncounterStep)), classify.Generic)
	es.table(ir.Get(mapData, "grid_info"))
	es.events(ir.Get(doc, "events"))
}

func (es *EncState) table(info *ir.Node) {
	g := table.FromNode(info, es.log)
	es.emit(0, es.key("data")+" "+es.tag(classify.Table.String()))
	es.emit(2, es.key("data")+" |")
	for _, ln := range strings.Split(table.Encode(g), "\n") {
		es.emit(4, es.color(ir.StringType, LiteralMultiColor, ln))
	}
}

type eventEntry struct {
	id   int64
	node *ir.Node
}

// sortedEvents returns the events with a usable id, ordered by id.
// When two events share an id the later one wins.
func (es *EncState) sortedEvents(evs *ir.Node) []eventEntry {
	if evs == nil || evs.Type == ir.NullType {
		return nil
	}
	if evs.Type != ir.ArrayType && evs.Type != ir.ObjectType {
		es.warn("events is not a list, ignoring it", "type", evs.Type)
		return nil
	}
	byID := map[int64]int{}
	var res []eventEntry
	for _, ev := range evs.Values {
		if ev.Type != ir.ObjectType {
			es.warn("event is not an object, skipping it", "path", ev.Path())
			continue
		}
		id, ok := ir.AsInt(ir.Get(ev, "id"))
		if !ok {
			es.warn("event has no usable id, skipping it", "path", ev.Path())
			continue
		}
		if i, dup := byID[id]; dup {
			es.warn("duplicate event id, keeping the last one", "id", id)
			res[i].node = ev
			continue
		}
		byID[id] = len(res)
		res = append(res, eventEntry{id: id, node: ev})
	}
	slices.SortStableFunc(res, func(a, b eventEntry) int { return cmp.Compare(a.id, b.id) })
	return res
}

func (es *EncState) events(evs *ir.Node) {
	entries := es.sortedEvents(evs)
	if len(entries) == 0 {
		es.emit(0, es.key("events")+" {}")
		return
	}
	es.emit(0, es.key("events"))
	for _, e := range entries {
		es.event = e.id
		es.eventBody(e.id, e.node)
	}
	es.event, es.page, es.command = -1, -1, -1
}

func (es *EncState) eventBody(id int64, ev *ir.Node) {
	idText := strconv.FormatInt(id, 10)
	es.emit(2, es.color(ir.NumberType, FieldColor, idText)+": "+es.tag(classify.Event.String()))
	for i, f := range ev.Fields {
		if rpg.IsEventField(f.String) {
			continue
		}
		es.field(4, f.String, ev.Values[i], classify.Generic)
	}
	es.field(4, "id", ir.FromInt(id), classify.Generic)
	es.field(4, "name", orDefault(ir.Get(ev, "name"), ir.FromString("")), classify.Generic)
	es.field(4, "x", orDefault(ir.Get(ev, "x"), ir.FromInt(0)), classify.Generic)
	es.field(4, "y", orDefault(ir.Get(ev, "y"), ir.FromInt(0)), classify.Generic)

	pages := ir.Get(ev, "pages")
	if debug.Encode() {
		n := 0
		if pages != nil {
			n = len(pages.Values)
		}
		debug.Logf("encode: event %d with %d pages\n", id, n)
	}
	switch {
	case pages == nil || pages.Type == ir.NullType:
		es.emit(4, es.key("pages")+" []")
	case pages.Type != ir.ArrayType:
		es.warn("pages is not a list, writing it as is")
		es.field(4, "pages", pages, classify.Generic)
	case len(pages.Values) == 0:
		es.emit(4, es.key("pages")+" []")
	default:
		es.emit(4, es.key("pages"))
		for i, p := range pages.Values {
			es.page = int64(i)
			es.pageItem(4, p)
		}
		es.page = -1
	}
}

func (es *EncState) pageItem(indent int, p *ir.Node) {
	if p.Type != ir.ObjectType {
		es.warn("page is not an object, writing it as is")
		es.item(indent, p, "", classify.Generic)
		return
	}
	es.emit(indent, "- "+es.tag(classify.Page.String()))
	body := indent + 2
	for _, f := range rpg.PageFlags {
		if v := ir.Get(p, f); v != nil {
			es.field(body, f, v, classify.Generic)
		}
	}
	for _, f := range rpg.PageRecords {
		if v := ir.Get(p, f); v != nil {
			es.field(body, f, v, pageRecordTags[f])
		}
	}
	for i, f := range p.Fields {
		if rpg.IsPageField(f.String) {
			continue
		}
		es.field(body, f.String, p.Values[i], classify.Generic)
	}
	cmds := ir.Get(p, "commands")
	if cmds == nil {
		cmds = ir.Get(p, "list")
	}
	es.commandList(body, cmds)
}

func (es *EncState) commandList(indent int, cmds *ir.Node) {
	switch {
	case cmds == nil || cmds.Type == ir.NullType:
		es.emit(indent, es.key("list")+" []")
		return
	case cmds.Type != ir.ArrayType:
		es.warn("commands is not a list, writing it as is")
		es.field(indent, "list", cmds, classify.Generic)
		return
	case len(cmds.Values) == 0:
		es.emit(indent, es.key("list")+" []")
		return
	}
	at := es.buildAnchors(cmds.Values)
	es.emit(indent, es.key("list"))
	for i, c := range cmds.Values {
		es.command = int64(i)
		es.commandItem(indent, i, c, at)
	}
	es.command = -1
}

func commandCode(c *ir.Node) (int64, bool) {
	return ir.AsInt(ir.Get(c, "code"))
}

// intField returns the integer value of c[key], converting numeric
// strings, or def when the field is absent.
func (es *EncState) intField(c *ir.Node, key string, def int64) *ir.Node {
	v := ir.Get(c, key)
	if v == nil {
		return ir.FromInt(def)
	}
	if n, ok := ir.AsInt(v); ok {
		return ir.FromInt(n)
	}
	es.warn("command field is not an integer, writing it as is", "field", key)
	return v
}

func (es *EncState) commandItem(indent int, i int, c *ir.Node, at *anchorTable) {
	if c.Type != ir.ObjectType {
		es.warn("command is not an object, writing it as is")
		es.item(indent, c, "", classify.Generic)
		return
	}
	es.emit(indent, "- "+es.tag(classify.EventCommand.String()))
	body := indent + 2
	params := ir.Get(c, "parameters")
	code, _ := commandCode(c)
	switch {
	case code == rpg.CodeSetMoveRoute && at.isRoute(i):
		es.routeParams(body, params, at.labels[i])
	case code == rpg.CodeMoveCommand:
		label, target, ok := at.alias(i)
		if !ok {
			es.warn("no move route anchor for movement command, writing its parameters")
			es.params(body, params)
			break
		}
		if params != nil && len(params.Values) > 0 &&
			!(len(params.Values) == 1 && ir.Equal(params.Values[0], target)) {
			es.warn("movement command parameters differ from the move route, aliasing the route", "anchor", label)
		}
		es.emit(body, es.key("parameters"))
		es.alias(body, label)
	default:
		es.params(body, params)
	}
	es.field(body, "indent", es.intField(c, "indent", 0), classify.Generic)
	es.field(body, "code", es.intField(c, "code", 0), classify.Generic)
	for j, f := range c.Fields {
		switch f.String {
		case "parameters", "indent", "code":
			continue
		}
		es.field(body, f.String, c.Values[j], classify.Generic)
	}
}

func (es *EncState) params(indent int, params *ir.Node) {
	if params == nil || params.Type == ir.NullType {
		es.emit(indent, es.key("parameters")+" []")
		return
	}
	es.field(indent, "parameters", params, classify.Generic)
}

// routeParams writes the parameters of a set move route command,
// anchoring the move commands of its route.
func (es *EncState) routeParams(indent int, params *ir.Node, labels []int) {
	es.emit(indent, es.key("parameters"))
	for j, p := range params.Values {
		if j != routeParam {
			es.item(indent, p, "", classify.Generic)
			continue
		}
		es.emit(indent, "- "+es.tag(tagFor(p, classify.MoveRoute)))
		for k, f := range p.Fields {
			v := p.Values[k]
			if f.String != "list" || len(v.Values) == 0 {
				es.field(indent+2, f.String, v, classify.Generic)
				continue
			}
			es.emit(indent+2, es.key("list"))
			for m, mc := range v.Values {
				anchor := ""
				if m < len(labels) {
					anchor = strconv.Itoa(labels[m])
				}
				es.item(indent+2, mc, anchor, classify.MoveCommand)
			}
		}
	}
}
