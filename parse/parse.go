package parse

import (
	"log/slog"
	"strconv"

	"github.com/signadot/rpgmap/ir"
	"github.com/signadot/rpgmap/rpg"
	"github.com/signadot/rpgmap/table"
)

// Parse reads a tagged map document and returns its JSON layout.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := newOpts(opts)
	root, err := parseGeneric(d, pOpts)
	if err != nil {
		return nil, err
	}
	if root.Type != ir.ObjectType {
		return nil, &PosError{Pos: Pos{Line: 1, Column: 1}, Msg: "document root is " + root.Type.String() + ", not a mapping"}
	}
	r := &reshaper{log: pOpts.log}
	return r.document(root), nil
}

type reshaper struct {
	log *slog.Logger
}

func getOr(y *ir.Node, field string, def *ir.Node) *ir.Node {
	if v := ir.Get(y, field); v != nil {
		return v
	}
	return def
}

func (r *reshaper) document(root *ir.Node) *ir.Node {
	mapData := ir.FromKeyVals([]ir.KeyVal{
		{Key: "tileset_id", Val: getOr(root, "tileset_id", ir.FromInt(0))},
		{Key: "width", Val: getOr(root, "width", ir.FromInt(0))},
		{Key: "height", Val: getOr(root, "height", ir.FromInt(0))},
	})
	if info := r.gridInfo(root); info != nil {
		mapData.Set("grid_info", info)
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "map_data", Val: mapData},
		{Key: "autoplay_bgm", Val: getOr(root, "autoplay_bgm", ir.FromBool(false))},
		{Key: "bgm", Val: getOr(root, "bgm", rpg.DefaultAudio())},
		{Key: "autoplay_bgs", Val: getOr(root, "autoplay_bgs", ir.FromBool(false))},
		{Key: "bgs", Val: getOr(root, "bgs", rpg.DefaultAudio())},
		{Key: "encounter_list", Val: getOr(root, "encounter_list", ir.FromSlice(nil))},
		{Key: "encounter_step", Val: getOr(root, "encounter_step", ir.FromInt(rpg.DefaultEncounterStep))},
		{Key: "events", Val: r.events(ir.Get(root, "events"))},
	})
}

// gridInfo decodes the Table block under data.data. A missing or
// broken table gives nil.
func (r *reshaper) gridInfo(root *ir.Node) *ir.Node {
	text := ir.Get(ir.Get(root, "data"), "data")
	if text == nil || text.Type != ir.StringType || text.String == "" {
		return nil
	}
	g, err := table.Decode(text.String)
	if err != nil {
		r.log.Warn("bad table, omitting grid_info", "error", err)
		return nil
	}
	return g.ToNode()
}

func (r *reshaper) events(evs *ir.Node) *ir.Node {
	res := ir.FromSlice(nil)
	if evs == nil {
		return res
	}
	switch evs.Type {
	case ir.ObjectType:
		for i, f := range evs.Fields {
			id := ir.FromString(f.String)
			if n, err := strconv.ParseInt(f.String, 10, 64); err == nil {
				id = ir.FromInt(n)
			}
			if ev := r.event(id, evs.Values[i]); ev != nil {
				res.Append(ev)
			}
		}
	case ir.ArrayType:
		for _, v := range evs.Values {
			if ev := r.event(getOr(v, "id", ir.FromInt(0)), v); ev != nil {
				res.Append(ev)
			}
		}
	case ir.NullType:
	default:
		r.log.Warn("events is not a mapping, ignoring it", "type", evs.Type)
	}
	return res
}

func (r *reshaper) event(id, ev *ir.Node) *ir.Node {
	if ev.Type != ir.ObjectType {
		r.log.Warn("event is not a mapping, skipping it", "path", ev.Path())
		return nil
	}
	res := ir.FromKeyVals([]ir.KeyVal{
		{Key: "id", Val: id},
		{Key: "name", Val: getOr(ev, "name", ir.FromString(""))},
		{Key: "x", Val: getOr(ev, "x", ir.FromInt(0))},
		{Key: "y", Val: getOr(ev, "y", ir.FromInt(0))},
		{Key: "pages", Val: r.pages(ir.Get(ev, "pages"))},
	})
	for i, f := range ev.Fields {
		if rpg.IsEventField(f.String) {
			continue
		}
		res.Set(f.String, ev.Values[i])
	}
	return res
}

func (r *reshaper) pages(ps *ir.Node) *ir.Node {
	res := ir.FromSlice(nil)
	if ps == nil || ps.Type != ir.ArrayType {
		if ps != nil && ps.Type != ir.NullType {
			r.log.Warn("pages is not a sequence, ignoring it", "path", ps.Path())
		}
		return res
	}
	for i, p := range ps.Values {
		if p.Type != ir.ObjectType {
			r.log.Warn("page is not a mapping, skipping it", "path", p.Path())
			continue
		}
		page := ir.FromKeyVals([]ir.KeyVal{{Key: "page_index", Val: ir.FromInt(int64(i))}})
		var cmds *ir.Node
		for j, f := range p.Fields {
			switch f.String {
			case "list", "commands":
				if cmds == nil || f.String == "list" {
					cmds = p.Values[j]
				}
				continue
			case "page_index":
				continue
			}
			page.Set(f.String, p.Values[j])
		}
		page.Set("commands", r.commands(cmds))
		res.Append(page)
	}
	return res
}

func (r *reshaper) commands(cmds *ir.Node) *ir.Node {
	res := ir.FromSlice(nil)
	if cmds == nil || cmds.Type != ir.ArrayType {
		if cmds != nil && cmds.Type != ir.NullType {
			r.log.Warn("command list is not a sequence, ignoring it", "path", cmds.Path())
		}
		return res
	}
	for _, c := range cmds.Values {
		if c.Type != ir.ObjectType {
			r.log.Warn("command is not a mapping, skipping it", "path", c.Path())
			continue
		}
		params := ir.Get(c, "parameters")
		if params == nil || params.Type == ir.NullType {
			params = ir.FromSlice(nil)
		}
		cmd := ir.FromKeyVals([]ir.KeyVal{
			{Key: "code", Val: getOr(c, "code", ir.FromInt(0))},
			{Key: "indent", Val: getOr(c, "indent", ir.FromInt(0))},
			{Key: "parameters", Val: params},
		})
		for i, f := range c.Fields {
			switch f.String {
			case "code", "indent", "parameters":
				continue
			}
			cmd.Set(f.String, c.Values[i])
		}
		res.Append(cmd)
	}
	return res
}
