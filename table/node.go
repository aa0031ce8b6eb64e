package table

import (
	"log/slog"
	"strconv"

	"github.com/signadot/rpgmap/debug"
	"github.com/signadot/rpgmap/ir"
	"github.com/signadot/rpgmap/rpg"
)

// FromNode builds a well formed grid from a grid_info object. Layer
// data may be a list of rows or one flat list of cells. Every repair
// made along the way is reported to log.
func FromNode(info *ir.Node, log *slog.Logger) *Grid {
	if log == nil {
		log = debug.Log
	}
	if info == nil || info.Type != ir.ObjectType {
		log.Warn("grid_info missing, using default grid",
			"width", rpg.DefaultGridWidth, "height", rpg.DefaultGridHeight, "layers", rpg.DefaultGridLayers)
		return Default()
	}
	width := dim(info, "width", 0, log)
	height := dim(info, "height", 0, log)
	layers := dim(info, "layers", rpg.DefaultGridLayers, log)
	if !Fits(width, height, layers) {
		log.Warn("grid_info too large, using default grid",
			"width", width, "height", height, "layers", layers, "max_cells", MaxCells)
		return Default()
	}
	g := New(width, height, layers)
	grids := ir.Get(info, "grids")
	for z := 0; z < layers; z++ {
		var data *ir.Node
		if grids != nil {
			switch grids.Type {
			case ir.ObjectType:
				data = ir.Get(grids, strconv.Itoa(z))
			case ir.ArrayType:
				if z < len(grids.Values) {
					data = grids.Values[z]
				}
			}
		}
		fillLayer(g.Cells[z], data, z, log)
	}
	return g
}

func dim(info *ir.Node, key string, def int, log *slog.Logger) int {
	v := ir.Get(info, key)
	if v == nil {
		return def
	}
	n, ok := ir.AsInt(v)
	if !ok || n < 0 {
		log.Warn("bad grid dimension", "field", key, "value", v.Path(), "default", def)
		return def
	}
	return int(n)
}

func fillLayer(layer [][]int64, data *ir.Node, z int, log *slog.Logger) {
	width := 0
	if len(layer) > 0 {
		width = len(layer[0])
	}
	if data == nil || data.Type != ir.ArrayType {
		if len(layer) > 0 {
			log.Warn("grid layer missing, filling with zeros", "layer", z)
		}
		return
	}
	if isRows(data) {
		for y, row := range layer {
			if y >= len(data.Values) {
				log.Warn("grid row missing, filling with zeros", "layer", z, "row", y)
				continue
			}
			src := data.Values[y].Values
			if len(src) < width {
				log.Warn("grid row short, padding with zeros", "layer", z, "row", y, "have", len(src), "want", width)
			}
			for x := range row {
				if x < len(src) {
					row[x] = cell(src[x], log)
				}
			}
		}
		return
	}
	cells := data.Values
	if len(cells) < width*len(layer) {
		log.Warn("grid layer short, padding with zeros", "layer", z, "have", len(cells), "want", width*len(layer))
	}
	for y, row := range layer {
		for x := range row {
			i := y*width + x
			if i < len(cells) {
				row[x] = cell(cells[i], log)
			}
		}
	}
}

// isRows reports whether data is a list of lists.
func isRows(data *ir.Node) bool {
	for _, v := range data.Values {
		if v.Type != ir.ArrayType {
			return false
		}
	}
	return len(data.Values) > 0
}

func cell(v *ir.Node, log *slog.Logger) int64 {
	n, ok := ir.AsInt(v)
	if !ok {
		log.Warn("grid cell is not an integer, using 0", "cell", v.Path())
		return 0
	}
	return n
}

// ToNode returns the grid_info object for g, with layers keyed by their
// index under "grids".
func (g *Grid) ToNode() *ir.Node {
	grids := ir.FromKeyVals(nil)
	for z := 0; z < g.Layers; z++ {
		var rows []*ir.Node
		if z < len(g.Cells) {
			for _, row := range g.Cells[z] {
				cells := make([]*ir.Node, len(row))
				for x, c := range row {
					cells[x] = ir.FromInt(c)
				}
				rows = append(rows, ir.FromSlice(cells))
			}
		}
		grids.Set(strconv.Itoa(z), ir.FromSlice(rows))
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "width", Val: ir.FromInt(int64(g.Width))},
		{Key: "height", Val: ir.FromInt(int64(g.Height))},
		{Key: "layers", Val: ir.FromInt(int64(g.Layers))},
		{Key: "grids", Val: grids},
	})
}
