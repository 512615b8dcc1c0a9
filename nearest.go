package kdtree2d

import "math"

// Neighbor is the answer to a nearest-neighbor query.
type Neighbor struct {
	ObjectID int
	Distance float64 // Euclidean
}

// search carries the running best through one query. It lives on the
// caller's stack so concurrent queries never share state.
type search struct {
	loc     Location
	exclude int

	found  bool
	bestSq int64
	bestID int
}

// offer records p as the best candidate if it is eligible and strictly
// closer than the current best.
func (s *search) offer(p Point) {
	if p.ObjectID == s.exclude {
		return
	}
	d := reducedDistance(p, s.loc)
	if !s.found || d < s.bestSq {
		s.found = true
		s.bestSq = d
		s.bestID = p.ObjectID
	}
}

// mayBeat reports whether a region at squared distance d could still hold a
// closer candidate than the current best.
func (s *search) mayBeat(d int64) bool {
	return !s.found || d < s.bestSq
}

func (s *search) result() (Neighbor, bool) {
	if !s.found {
		return Neighbor{}, false
	}
	return Neighbor{ObjectID: s.bestID, Distance: math.Sqrt(float64(s.bestSq))}, true
}

// Nearest returns the stored point closest to loc whose ObjectID differs
// from exclude, with its Euclidean distance. The second result is false if
// every stored point carries the excluded id.
//
// Ties are resolved in favour of the first candidate found; callers should
// not rely on which of two equidistant objects is returned.
func (t *KDTree) Nearest(loc Location, exclude int) (Neighbor, bool) {
	if t == nil {
		return Neighbor{}, false
	}
	s := search{loc: loc, exclude: exclude}
	t.nearest(&s)
	return s.result()
}

// nearest is the branch-and-bound descent. The child on the query's side of
// the splitting plane is searched first; the other child only if the plane
// itself is closer than the best point found so far.
func (t *KDTree) nearest(s *search) {
	t.mustHold()

	if t.point.ObjectID == s.exclude {
		// The stored point cannot answer, so its plane gives no useful
		// bound for either side. Search each child once.
		if t.left != nil {
			t.left.nearest(s)
		}
		if t.right != nil {
			t.right.nearest(s)
		}
		return
	}

	near, far := t.sides(s.loc)
	if near != nil {
		near.nearest(s)
	}
	s.offer(t.point)
	if far != nil && s.mayBeat(planeDistance(t.point, s.loc, t.splitsOnX)) {
		far.nearest(s)
	}
}

// sides returns t's children ordered (near, far) relative to loc. Points
// strictly below the split coordinate on t's axis are near the left child.
func (t *KDTree) sides(loc Location) (near, far *KDTree) {
	if loc.coord(t.splitsOnX) < t.point.coord(t.splitsOnX) {
		return t.left, t.right
	}
	return t.right, t.left
}
