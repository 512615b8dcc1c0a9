package kdtree2d

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ErrNoPoints is returned when a tree is built from an empty point list.
var ErrNoPoints = errors.New("kdtree2d: cannot build a tree from an empty point list")

// KDTree is a 2D KD-tree node. The root returned by New owns the whole
// tree; every node owns its two children outright and no node refers back
// to its parent.
//
// Each node stores exactly one point, the median of the points it was
// built from along its splitting axis. The axis alternates between x and
// y from one level to the next, starting with x at the root.
//
// A tree is immutable once built and is safe for concurrent readers.
type KDTree struct {
	area      Rect
	depth     int
	splitsOnX bool
	point     Point
	size      int // points in this subtree, including point
	left      *KDTree
	right     *KDTree
}

// New builds a KD-tree over points. area describes the extent of the whole
// tree and is split alongside the points for diagnostics. points is not
// modified. New returns ErrNoPoints if points is empty.
func New(area Rect, points []Point) (*KDTree, error) {
	return NewWithConfig(area, points, DefaultConfig())
}

// NewWithConfig is New with explicit configuration.
func NewWithConfig(area Rect, points []Point, cfg Config) (*KDTree, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}

	// Copy so that sorting never reorders the caller's slice.
	buf := make([]Point, len(points))
	copy(buf, points)

	t := build(area, 0, buf, true)

	cfg.Logger.Debug("kd-tree built",
		zap.Int("points", t.size),
		zap.Int("height", t.Height()),
		zap.Stringer("area", area),
	)
	return t, nil
}

// build recursively builds the subtree for points, which must be non-empty.
// points is sorted in place; children receive disjoint subslices of it.
func build(area Rect, depth int, points []Point, splitsOnX bool) *KDTree {
	t := &KDTree{
		area:      area,
		depth:     depth,
		splitsOnX: splitsOnX,
		size:      len(points),
	}

	if len(points) == 1 {
		t.point = points[0]
		return t
	}

	// Stable so that ties keep input order and builds are reproducible.
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].coord(splitsOnX) < points[j].coord(splitsOnX)
	})

	median := len(points) / 2
	t.point = points[median]

	if lo := points[:median]; len(lo) > 0 {
		t.left = build(area.splitLeft(t.point, splitsOnX), depth+1, lo, !splitsOnX)
	}
	if hi := points[median+1:]; len(hi) > 0 {
		t.right = build(area.splitRight(t.point, splitsOnX), depth+1, hi, !splitsOnX)
	}
	return t
}

// Area returns the bounding rectangle recorded for this subtree.
func (t *KDTree) Area() Rect { return t.area }

// Depth returns the distance from the root; the root has depth 0.
func (t *KDTree) Depth() int { return t.depth }

// SplitsOnX reports whether this node partitions its children by x.
func (t *KDTree) SplitsOnX() bool { return t.splitsOnX }

// Point returns the point stored at this node.
func (t *KDTree) Point() Point { return t.point }

// Left returns the subtree below the splitting plane, or nil.
func (t *KDTree) Left() *KDTree { return t.left }

// Right returns the subtree at or above the splitting plane, or nil.
func (t *KDTree) Right() *KDTree { return t.right }

// IsLeaf reports whether t has no children.
func (t *KDTree) IsLeaf() bool { return t.left == nil && t.right == nil }

// NumPoints returns the number of points stored in the subtree rooted at t.
func (t *KDTree) NumPoints() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the greatest number of edges between t and a node below
// it. A single leaf has height 0; a tree over N points has height
// floor(log2 N).
func (t *KDTree) Height() int {
	if t == nil || t.IsLeaf() {
		return 0
	}
	return 1 + max(t.left.Height(), t.right.Height())
}

// Do calls fn for every node of the subtree in pre-order (node, left,
// right) and stops as soon as fn returns true. It reports whether the walk
// was stopped early.
func (t *KDTree) Do(fn func(n *KDTree) (done bool)) bool {
	if t == nil {
		return false
	}
	if fn(t) {
		return true
	}
	if t.left.Do(fn) {
		return true
	}
	return t.right.Do(fn)
}

// Points returns the stored points in pre-order.
func (t *KDTree) Points() []Point {
	out := make([]Point, 0, t.NumPoints())
	t.Do(func(n *KDTree) bool {
		out = append(out, n.point)
		return false
	})
	return out
}

// String returns a multi-line description of the subtree: each node's
// depth, area and point, with children indented below their parent.
func (t *KDTree) String() string {
	if t == nil {
		return "Empty tree."
	}
	var sb strings.Builder
	t.write(&sb, "")
	return sb.String()
}

func (t *KDTree) write(sb *strings.Builder, indent string) {
	fmt.Fprintf(sb, "Tree of depth %d at %s. Point is %s", t.depth, t.area, t.point)
	if t.left != nil {
		fmt.Fprintf(sb, "\n%s  Left: ", indent)
		t.left.write(sb, indent+"  ")
	}
	if t.right != nil {
		fmt.Fprintf(sb, "\n%s  Right: ", indent)
		t.right.write(sb, indent+"  ")
	}
}

// mustHold panics if t does not hold a point. Nodes built by New always
// do; a zero KDTree does not.
func (t *KDTree) mustHold() {
	if t.size == 0 {
		panic("kdtree2d: tree node holds no point; trees must be built with New")
	}
}
