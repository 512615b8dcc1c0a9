// Package kdtree2d implements a two-dimensional KD-tree for "closest other
// object" queries over integer points.
//
// A tree is built once from a fixed set of points, each tagged with an
// object ID, and is read-only afterwards. Queries name a location and an
// object ID to exclude, which lets an object ask for its nearest neighbor
// without finding itself.
//
// Basic usage:
//
//	area := kdtree2d.NewRect(0, 0, 600, 800) // top, left, height, width
//	tree, err := kdtree2d.New(area, points)
//	if err != nil {
//		// err is kdtree2d.ErrNoPoints
//	}
//	nb, ok := tree.Nearest(kdtree2d.Location{X: 10, Y: 20}, self.ID)
//	// ok is false when every stored point carries self.ID
//	// nb.ObjectID is the closest other object, nb.Distance its Euclidean distance
//
// # Construction
//
// Each node stores the median of its points along its splitting axis; the
// points before the median form the left subtree and those after it the
// right. The axis alternates x, y, x, ... starting at the root, so a tree
// over N points has height floor(log2 N).
//
// # Concurrency
//
// A built tree is never mutated, so any number of goroutines may query it
// at once. [NearestBatch] and [NearestAll] fan a batch of queries out over
// a worker pool, as a simulation does once per tick.
package kdtree2d
