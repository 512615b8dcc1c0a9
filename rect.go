package kdtree2d

import "fmt"

// Rect is an axis-aligned bounding box. Trees record the extent covered by
// each subtree for diagnostics only; search never consults it.
type Rect struct {
	Top, Left     int
	Width, Height int
}

// NewRect builds a Rect from the (top, left, height, width) tuple used by
// simulation hosts. Note that height precedes width.
func NewRect(top, left, height, width int) Rect {
	return Rect{Top: top, Left: left, Width: width, Height: height}
}

// Bottom returns Top + Height.
func (r Rect) Bottom() int { return r.Top + r.Height }

// Right returns Left + Width.
func (r Rect) Right() int { return r.Left + r.Width }

func (r Rect) String() string {
	return fmt.Sprintf("Rect from (%d, %d) to (%d, %d)", r.Top, r.Left, r.Bottom(), r.Right())
}

// splitLeft returns the part of r below the splitting plane through p.
func (r Rect) splitLeft(p Point, onX bool) Rect {
	if onX {
		return Rect{Top: r.Top, Left: r.Left, Width: p.X - r.Left, Height: r.Height}
	}
	return Rect{Top: r.Top, Left: r.Left, Width: r.Width, Height: p.Y - r.Top}
}

// splitRight returns the part of r at or above the splitting plane through p.
func (r Rect) splitRight(p Point, onX bool) Rect {
	if onX {
		return Rect{Top: r.Top, Left: p.X, Width: r.Right() - p.X, Height: r.Height}
	}
	return Rect{Top: p.Y, Left: r.Left, Width: r.Width, Height: r.Bottom() - p.Y}
}
