package kdtree2d

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gonumkd "gonum.org/v1/gonum/spatial/kdtree"
)

// gonumTree builds an independent k-d tree over the same coordinates.
func gonumTree(pts []Point) *gonumkd.Tree {
	data := make(gonumkd.Points, len(pts))
	for i, p := range pts {
		data[i] = gonumkd.Point{float64(p.X), float64(p.Y)}
	}
	return gonumkd.New(data, false)
}

func TestNearest_AgreesWithGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(500)
		pts := randomPoints(rng, n, 1000)
		tree, err := New(NewRect(0, 0, 1000, 1000), pts)
		require.NoError(t, err)
		ref := gonumTree(pts)

		for q := 0; q < 50; q++ {
			loc := Location{X: rng.Intn(1000), Y: rng.Intn(1000)}
			got, ok := tree.Nearest(loc, -1)
			require.True(t, ok)

			_, sqDist := ref.Nearest(gonumkd.Point{float64(loc.X), float64(loc.Y)})
			assert.InDelta(t, math.Sqrt(sqDist), got.Distance, floatTol, "trial=%d loc=%v", trial, loc)
		}
	}
}

func TestNearestAll_AgreesWithGonum(t *testing.T) {
	// The second-closest point to a stored point, counting the point
	// itself, is its nearest other point.
	rng := rand.New(rand.NewSource(123))
	pts := randomPoints(rng, 400, 100)
	tree, err := New(NewRect(0, 0, 100, 100), pts)
	require.NoError(t, err)
	ref := gonumTree(pts)

	for _, p := range pts {
		keep := gonumkd.NewNKeeper(2)
		ref.NearestSet(keep, gonumkd.Point{float64(p.X), float64(p.Y)})
		require.Len(t, keep.Heap, 2)
		second := math.Max(keep.Heap[0].Dist, keep.Heap[1].Dist)

		got, ok := tree.Nearest(p.Location(), p.ObjectID)
		require.True(t, ok)
		assert.InDelta(t, math.Sqrt(second), got.Distance, floatTol, "point %v", p)
	}
}
