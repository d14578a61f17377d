package physics

import (
	"math"
	"sort"
)

// SpatialGrid is a uniform grid for broad-phase collision detection over a
// bounded field. Items are inserted by the center of their hitbox and
// queried through the 3x3 cell neighborhood around a point.
//
// Cell size must be >= the largest center-to-center distance at which two
// hitboxes can still overlap, i.e. half the sum of the largest sides.
type SpatialGrid struct {
	cellSize    float64
	invCellSize float64
	cols        int
	rows        int
	cells       []gridCell
	found       []int
}

// gridCell stores indices of items whose center falls inside the cell.
// The slice is reused between frames.
type gridCell struct {
	items []int
}

// NewSpatialGrid creates a grid covering a worldW x worldH field.
func NewSpatialGrid(worldW, worldH, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(worldW / cellSize))
	rows := int(math.Ceil(worldH / cellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	return &SpatialGrid{
		cellSize:    cellSize,
		invCellSize: 1.0 / cellSize,
		cols:        cols,
		rows:        rows,
		cells:       make([]gridCell, cols*rows),
	}
}

// Clear removes all items without releasing cell memory.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i].items = g.cells[i].items[:0]
	}
}

// Insert adds the item with the given index at its hitbox center.
func (g *SpatialGrid) Insert(r Rect, index int) {
	cx, cy := r.Center()
	col, row := g.posToCell(cx, cy)
	idx := row*g.cols + col
	g.cells[idx].items = append(g.cells[idx].items, index)
}

// Candidates returns the indices stored in the 3x3 neighborhood around the
// center of r, sorted in descending order. The returned slice is reused by
// the next call.
func (g *SpatialGrid) Candidates(r Rect) []int {
	cx, cy := r.Center()
	col, row := g.posToCell(cx, cy)

	g.found = g.found[:0]
	for dr := -1; dr <= 1; dr++ {
		rr := row + dr
		if rr < 0 || rr >= g.rows {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if c < 0 || c >= g.cols {
				continue
			}
			g.found = append(g.found, g.cells[rr*g.cols+c].items...)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(g.found)))
	return g.found
}

// posToCell converts a position to cell coordinates. Positions outside the
// field (spawning enemies sit above the top edge) land in the border cells.
func (g *SpatialGrid) posToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x * g.invCellSize))
	if col < 0 {
		col = 0
	} else if col >= g.cols {
		col = g.cols - 1
	}

	row = int(math.Floor(y * g.invCellSize))
	if row < 0 {
		row = 0
	} else if row >= g.rows {
		row = g.rows - 1
	}

	return col, row
}
