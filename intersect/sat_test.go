package intersect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func translated(verts []float64, dx, dy float64) []float64 {
	out := make([]float64, len(verts))
	for i := 0; i < len(verts); i += 2 {
		out[i] = verts[i] + dx
		out[i+1] = verts[i+1] + dy
	}
	return out
}

func TestOverlapConvexPolygons(t *testing.T) {
	square1 := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	square2 := []float64{0.5, 0.5, 1.5, 0.5, 1.5, 1.5, 0.5, 1.5}

	var mtv MinimumTranslationVector
	require.True(t, OverlapConvexPolygons(square1, 0, len(square1), square2, 0, len(square2), &mtv))

	assert.InDelta(t, 0.5, mtv.Depth, 1e-9)
	// Unit normal on a cardinal axis: the two candidate axes tie at 0.5
	assert.InDelta(t, 1, math.Abs(mtv.Normal.X)+math.Abs(mtv.Normal.Y), 1e-9)
	assert.True(t, mtv.Normal.X == 0 || mtv.Normal.Y == 0)

	// Pushing the first square by the vector plus a hair must separate them
	pushed := translated(square1, mtv.Normal.X*(mtv.Depth+1e-6), mtv.Normal.Y*(mtv.Depth+1e-6))
	assert.False(t, OverlapConvexPolygons(pushed, 0, len(pushed), square2, 0, len(square2), nil))
}

func TestOverlapConvexPolygonsSeparated(t *testing.T) {
	square1 := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	square2 := []float64{3, 0, 4, 0, 4, 1, 3, 1}
	assert.False(t, OverlapConvexPolygons(square1, 0, len(square1), square2, 0, len(square2), nil))

	// Diagonal separation only a non-cardinal axis can prove
	diamond1 := []float64{1, 0, 2, 1, 1, 2, 0, 1}
	diamond2 := []float64{2.2, 1.2, 3.2, 2.2, 2.2, 3.2, 1.2, 2.2}
	assert.False(t, OverlapConvexPolygons(diamond1, 0, len(diamond1), diamond2, 0, len(diamond2), nil))
}

func TestOverlapConvexPolygonsContained(t *testing.T) {
	outer := []float64{0, 0, 10, 0, 10, 10, 0, 10}
	inner := []float64{4, 4, 6, 4, 6, 6, 4, 6}

	var mtv MinimumTranslationVector
	require.True(t, OverlapConvexPolygons(inner, 0, len(inner), outer, 0, len(outer), &mtv))

	// Escaping containment takes the inner span plus the shorter way out
	assert.InDelta(t, 6, mtv.Depth, 1e-9)
	pushed := translated(inner, mtv.Normal.X*(mtv.Depth+1e-6), mtv.Normal.Y*(mtv.Depth+1e-6))
	assert.False(t, OverlapConvexPolygons(pushed, 0, len(pushed), outer, 0, len(outer), nil))
}

func TestOverlapConvexPolygonsWithOffset(t *testing.T) {
	padded1 := []float64{-9, -9, 0, 0, 1, 0, 1, 1, 0, 1, -9, -9}
	padded2 := []float64{-9, -9, 0.5, 0.5, 1.5, 0.5, 1.5, 1.5, 0.5, 1.5, -9, -9}

	var mtv MinimumTranslationVector
	require.True(t, OverlapConvexPolygons(padded1, 2, 8, padded2, 2, 8, &mtv))
	assert.InDelta(t, 0.5, mtv.Depth, 1e-9)
}

func TestOverlapConvexPolygonsPushDirection(t *testing.T) {
	// The first square sits left of the second's center; the minimum push
	// must move it further left, away from the overlap.
	square1 := []float64{0, 0, 2, 0, 2, 2, 0, 2}
	square2 := []float64{1.5, 0, 3.5, 0, 3.5, 2, 1.5, 2}

	var mtv MinimumTranslationVector
	require.True(t, OverlapConvexPolygons(square1, 0, len(square1), square2, 0, len(square2), &mtv))
	assert.InDelta(t, 0.5, mtv.Depth, 1e-9)
	assert.InDelta(t, -1, mtv.Normal.X, 1e-9)
	assert.InDelta(t, 0, mtv.Normal.Y, 1e-9)
}

func TestOverlapConvexPolygonsNilMTV(t *testing.T) {
	square1 := []float64{0, 0, 1, 0, 1, 1, 0, 1}
	assert.True(t, OverlapConvexPolygons(square1, 0, len(square1), square1, 0, len(square1), nil))
}
