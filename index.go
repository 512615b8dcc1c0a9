package kdtree2d

// Index is the read interface shared by KDTree and BruteForce.
type Index interface {
	// Nearest returns the closest stored point whose ObjectID differs from
	// exclude. The second result is false when no such point exists.
	Nearest(loc Location, exclude int) (Neighbor, bool)

	// NumPoints returns the number of points in the index.
	NumPoints() int
}

var (
	_ Index = (*KDTree)(nil)
	_ Index = (*BruteForce)(nil)
)

// BruteForce answers the same queries as KDTree by scanning every point.
// It is the reference the tree is tested against, and it is competitive
// for very small point sets.
type BruteForce struct {
	points []Point
}

// NewBruteForce returns a linear-scan index over a copy of points.
// Unlike New, an empty point list is allowed; every query then reports
// no neighbor.
func NewBruteForce(points []Point) *BruteForce {
	buf := make([]Point, len(points))
	copy(buf, points)
	return &BruteForce{points: buf}
}

func (b *BruteForce) NumPoints() int { return len(b.points) }

// Nearest scans all points in input order. On ties the earliest point wins.
func (b *BruteForce) Nearest(loc Location, exclude int) (Neighbor, bool) {
	s := search{loc: loc, exclude: exclude}
	for _, p := range b.points {
		s.offer(p)
	}
	return s.result()
}
