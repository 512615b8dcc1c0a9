package kdtree2d

import "fmt"

// Point is an integer coordinate tagged with the identity of the object
// that occupies it. The tree does not require ObjectID to be unique.
type Point struct {
	X, Y     int
	ObjectID int
}

// Location returns the coordinate part of p.
func (p Point) Location() Location { return Location{X: p.X, Y: p.Y} }

func (p Point) String() string {
	return fmt.Sprintf("Object %d at (%d, %d)", p.ObjectID, p.X, p.Y)
}

// Location is a query coordinate.
type Location struct {
	X, Y int
}

// coord returns the component of l on the requested axis.
func (l Location) coord(onX bool) int {
	if onX {
		return l.X
	}
	return l.Y
}

// coord returns the component of p on the requested axis.
func (p Point) coord(onX bool) int {
	if onX {
		return p.X
	}
	return p.Y
}

// reducedDistance is the squared Euclidean distance between p and l.
// Search compares reduced distances and only takes the root once, on the
// way out. Components are widened to int64 before squaring.
func reducedDistance(p Point, l Location) int64 {
	dx := int64(p.X) - int64(l.X)
	dy := int64(p.Y) - int64(l.Y)
	return dx*dx + dy*dy
}

// planeDistance is the squared perpendicular distance from l to the
// splitting plane through p.
func planeDistance(p Point, l Location, onX bool) int64 {
	d := int64(p.coord(onX)) - int64(l.coord(onX))
	return d * d
}
