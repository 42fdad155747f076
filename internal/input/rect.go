package input

// Rect is a cell-aligned screen region. X and Y are the top-left cell.
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
