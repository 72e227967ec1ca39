package game

import "slices"

// Cell represents a spatial partition cell holding bubble indices
type Cell struct {
	Indices []int
}

// Clear removes all indices from the cell (but keeps capacity)
func (c *Cell) Clear() {
	c.Indices = c.Indices[:0]
}

// Grid is a uniform broad-phase grid over the screen.
// Bubbles are only stored in the cell holding their center, so CellSize must be at least
// the largest query distance for the 3x3 neighborhood to find every candidate.
// Positions outside the screen are clamped to the border cells.
type Grid struct {
	CellSize float64
	cols     int
	rows     int
	cells    []Cell
}

// NewGrid creates a grid covering width x height
func NewGrid(width, height, cellSize float64) *Grid {
	cols := max(1, int(width/cellSize)+1)
	rows := max(1, int(height/cellSize)+1)
	return &Grid{
		CellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([]Cell, cols*rows),
	}
}

// WorldToCell converts screen coordinates to clamped cell coordinates
func (g *Grid) WorldToCell(p Vec2) (int, int) {
	cx := int(p.X / g.CellSize)
	cy := int(p.Y / g.CellSize)
	if p.X < 0 {
		cx = 0
	}
	if p.Y < 0 {
		cy = 0
	}
	return min(cx, g.cols-1), min(cy, g.rows-1)
}

// GetCell returns the cell at the given cell coordinates
func (g *Grid) GetCell(cx, cy int) *Cell {
	if cx < 0 || cx >= g.cols || cy < 0 || cy >= g.rows {
		return nil
	}
	return &g.cells[cy*g.cols+cx]
}

// Rebuild clears the grid and registers every bubble by index
func (g *Grid) Rebuild(bubbles []*Bubble) {
	for i := range g.cells {
		g.cells[i].Clear()
	}
	for i, b := range bubbles {
		cell := g.GetCell(g.WorldToCell(b.Pos))
		cell.Indices = append(cell.Indices, i)
	}
}

// Near appends to dst the indices of every bubble whose center lies in the 3x3
// neighborhood of p, in ascending order.
func (g *Grid) Near(dst []int, p Vec2) []int {
	start := len(dst)
	cx, cy := g.WorldToCell(p)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if cell := g.GetCell(cx+dx, cy+dy); cell != nil {
				dst = append(dst, cell.Indices...)
			}
		}
	}
	slices.Sort(dst[start:])
	return dst
}
