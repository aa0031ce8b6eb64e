package table

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/rpgmap/debug"
)

const (
	headerWord   = "init"
	markerPrefix = "z ="
)

// Encode renders g as table text. The output always holds Height rows
// of Width cells for each of the Layers layers.
func Encode(g *Grid) string {
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "%s %d %d %d", headerWord, g.Width, g.Height, g.Layers)
	for z := 0; z < g.Layers; z++ {
		fmt.Fprintf(buf, "\n%s %d", markerPrefix, z)
		for y := 0; y < g.Height; y++ {
			buf.WriteByte('\n')
			for x := 0; x < g.Width; x++ {
				if x != 0 {
					buf.WriteByte(' ')
				}
				buf.WriteString(strconv.FormatInt(g.At(x, y, z), 10))
			}
		}
	}
	return buf.String()
}

// Decode parses table text. Rows are kept as found; their number and
// length are not checked against the header.
func Decode(text string) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	g, err := decodeHeader(lines[0])
	if err != nil {
		return nil, err
	}
	g.Cells = make([][][]int64, g.Layers)
	for z := range g.Cells {
		g.Cells[z] = [][]int64{}
	}
	z := -1
	for i, line := range lines[1:] {
		lineNo := i + 2
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "z") && strings.Contains(line, "=") {
			z, err = decodeMarker(line, g.Layers)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrTable, lineNo, err)
			}
			continue
		}
		if z == -1 {
			if debug.Table() {
				debug.Logf("table: row before first layer marker at line %d\n", lineNo)
			}
			continue
		}
		row, err := decodeRow(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrTable, lineNo, err)
		}
		g.Cells[z] = append(g.Cells[z], row)
	}
	return g, nil
}

func decodeHeader(line string) (*Grid, error) {
	fs := strings.Fields(line)
	if len(fs) != 4 || fs[0] != headerWord {
		return nil, fmt.Errorf("%w: bad header %q", ErrTable, line)
	}
	dims := [3]int{}
	for i := range dims {
		n, err := strconv.Atoi(fs[i+1])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad header %q", ErrTable, line)
		}
		dims[i] = n
	}
	if !Fits(dims[0], dims[1], dims[2]) {
		return nil, fmt.Errorf("%w: %dx%dx%d exceeds %d cells", ErrTable, dims[0], dims[1], dims[2], MaxCells)
	}
	return &Grid{Width: dims[0], Height: dims[1], Layers: dims[2]}, nil
}

func decodeMarker(line string, layers int) (int, error) {
	_, v, _ := strings.Cut(line, "=")
	z, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return -1, fmt.Errorf("bad layer marker %q", line)
	}
	if z < 0 || z >= layers {
		return -1, fmt.Errorf("layer %d out of range [0, %d)", z, layers)
	}
	return z, nil
}

func decodeRow(line string) ([]int64, error) {
	if strings.HasPrefix(line, "[") {
		row := []int64{}
		if err := json.Unmarshal([]byte(line), &row); err != nil {
			return nil, fmt.Errorf("bad row %q: %w", line, err)
		}
		return row, nil
	}
	fs := strings.Fields(line)
	row := make([]int64, len(fs))
	for i, f := range fs {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad cell %q", f)
		}
		row[i] = n
	}
	return row, nil
}
