package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectIntersectionConcrete(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	got := Intersection(a, b)
	require.NotNil(t, got)
	assert.True(t, got.Equals(NewRect(5, 5, 5, 5)))

	// Inputs are untouched by the allocating form.
	assert.True(t, a.Equals(NewRect(0, 0, 10, 10)))
	assert.True(t, b.Equals(NewRect(5, 5, 10, 10)))

	// The mutating form shrinks the receiver.
	ok := a.Intersection(b)
	assert.True(t, ok)
	assert.True(t, a.Equals(NewRect(5, 5, 5, 5)))
}

func TestRectIntersectionMiss(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	b := NewRect(10, 10, 4, 4)

	assert.Nil(t, Intersection(a, b))

	ok := a.Intersection(b)
	assert.False(t, ok)
	assert.True(t, a.Equals(NewRect(0, 0, 4, 4)), "failed intersection must not mutate")
}

func TestRectIntersectionEdgeTouch(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(10, 0, 5, 10)

	// Rects that only touch along an edge still intersect, with a
	// degenerate result.
	assert.True(t, Intersects(a, b))
	got := Intersection(a, b)
	require.NotNil(t, got)
	assert.Equal(t, 0.0, got.Width)
	assert.Equal(t, 10.0, got.Height)

	corner := NewRect(10, 10, 5, 5)
	assert.True(t, Intersects(a, corner))
	got = Intersection(a, corner)
	require.NotNil(t, got)
	assert.Equal(t, 0.0, got.Area())
}

func TestIntersectionNilIffNotIntersects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	others := []*Rect{
		NewRect(5, 5, 10, 10),
		NewRect(10, 10, 5, 5),
		NewRect(11, 0, 5, 5),
		NewRect(-20, -20, 5, 5),
		NewRect(2, 2, 2, 2),
		NewRect(0, 10, 10, 3),
		NewRect(-5, -5, 5, 5),
	}
	for _, b := range others {
		assert.Equal(t, Intersects(a, b), Intersection(a, b) != nil, "a=%v b=%v", a, b)
		assert.Equal(t, Intersects(a, b), a.Intersects(b))
	}
}

func TestDifferenceNoOverlap(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	b := NewRect(10, 10, 4, 4)

	got := Difference(a, b)
	require.Len(t, got, 1)
	assert.True(t, got[0].Equals(a))
	assert.NotSame(t, a, got[0], "expected a clone, not the input")
}

func TestDifferenceDegenerateOverlap(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(10, 0, 5, 10)

	// A zero-width overlap removes nothing.
	got := Difference(a, b)
	require.Len(t, got, 1)
	assert.True(t, got[0].Equals(a))
}

func TestDifferenceConcrete(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	got := Difference(a, b)
	require.Len(t, got, 2)
	// Band order is fixed: top first, then left over the shrunk window.
	assert.True(t, got[0].Equals(NewRect(0, 0, 10, 5)), "top band, got %v", got[0])
	assert.True(t, got[1].Equals(NewRect(0, 5, 5, 5)), "left band, got %v", got[1])
	assert.Equal(t, 75.0, got[0].Area()+got[1].Area())
}

func TestDifferenceContained(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(3, 3, 4, 4)

	got := Difference(a, b)
	require.Len(t, got, 4)
	assert.True(t, got[0].Equals(NewRect(0, 0, 10, 3)), "top band, got %v", got[0])
	assert.True(t, got[1].Equals(NewRect(0, 7, 10, 3)), "bottom band, got %v", got[1])
	assert.True(t, got[2].Equals(NewRect(0, 3, 3, 4)), "left band, got %v", got[2])
	assert.True(t, got[3].Equals(NewRect(7, 3, 3, 4)), "right band, got %v", got[3])
}

func TestDifferenceProperties(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	cases := []*Rect{
		NewRect(5, 5, 10, 10),
		NewRect(3, 3, 4, 4),
		NewRect(-5, -5, 8, 8),
		NewRect(-5, 2, 30, 4),
		NewRect(2, -5, 4, 30),
		NewRect(-5, -5, 30, 30),
		NewRect(0, 0, 10, 10),
	}
	for _, b := range cases {
		got := Difference(a, b)
		overlap := Intersection(a, b)
		require.NotNil(t, overlap)

		// Bands are pairwise disjoint: any shared region is degenerate.
		for i := 0; i < len(got); i++ {
			for j := i + 1; j < len(got); j++ {
				if x := Intersection(got[i], got[j]); x != nil {
					assert.Equal(t, 0.0, x.Area(), "bands %v and %v overlap", got[i], got[j])
				}
			}
		}

		// The bands plus the overlap tile a exactly.
		sum := overlap.Area()
		for _, d := range got {
			sum += d.Area()
			assert.True(t, a.ContainsRect(d), "band %v escapes %v", d, a)
		}
		assert.Equal(t, a.Area(), sum, "b=%v", b)
	}
}

func TestBoundingRect(t *testing.T) {
	a := NewRect(0, 0, 2, 2)
	b := NewRect(5, 5, 2, 2)

	got := BoundingRect(a, b)
	require.NotNil(t, got)
	assert.True(t, got.Equals(NewRect(0, 0, 7, 7)))
	assert.True(t, a.Equals(NewRect(0, 0, 2, 2)), "allocating form must not mutate")

	assert.Nil(t, BoundingRect(nil, b))
	assert.Nil(t, BoundingRect(a, nil))

	// Mutating form, with the second input ahead of the receiver on
	// both axes.
	r := NewRect(4, 6, 2, 2)
	r.BoundingRect(NewRect(0, 0, 3, 3))
	assert.True(t, r.Equals(NewRect(0, 0, 6, 8)))
}

func TestRectBoxRoundTrip(t *testing.T) {
	cases := []*Rect{
		NewRect(0, 0, 10, 10),
		NewRect(-3, 7, 0, 4),
		NewRect(1.5, -2.5, 3.25, 0),
	}
	for _, r := range cases {
		back := NewRectFromBox(r.ToBox())
		assert.True(t, back.Equals(r), "round trip changed %v to %v", r, back)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	assert.True(t, r.ContainsRect(r), "containment is reflexive")
	assert.True(t, r.ContainsRect(NewRect(2, 2, 4, 4)))
	assert.True(t, r.ContainsRect(NewRect(0, 0, 10, 10)))
	assert.False(t, r.ContainsRect(NewRect(5, 5, 10, 10)))

	assert.True(t, r.ContainsCoordinate(NewCoordinate(5, 5)))
	assert.True(t, r.ContainsCoordinate(NewCoordinate(0, 0)), "boundary is inside")
	assert.True(t, r.ContainsCoordinate(NewCoordinate(10, 10)), "boundary is inside")
	assert.False(t, r.ContainsCoordinate(NewCoordinate(10.1, 5)))
}

func TestRectFactories(t *testing.T) {
	r := NewRectAtOffset(NewCoordinate(3, 4), NewSize(10, 20))
	assert.True(t, r.Equals(NewRect(3, 4, 10, 20)))

	r = NewRectAroundCenter(NewCoordinate(5, 5), NewSize(4, 2))
	assert.True(t, r.Equals(NewRect(3, 4, 4, 2)))
	assert.True(t, MidPoint(r.Offset(), NewCoordinate(r.Right(), r.Bottom())).Equals(NewCoordinate(5, 5)))
}

func TestRectEqualsNegativeExtent(t *testing.T) {
	// The same area described with a flipped extent is a different
	// rect; extents are never normalized.
	a := NewRect(0, 0, 10, 10)
	b := NewRect(10, 10, -10, -10)
	assert.False(t, a.Equals(b))
}

func TestRectAccessors(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	assert.Equal(t, 4.0, r.Right())
	assert.Equal(t, 6.0, r.Bottom())
	assert.True(t, r.Offset().Equals(NewCoordinate(1, 2)))
	assert.True(t, r.Size().Equals(NewSize(3, 4)))
	assert.Equal(t, 12.0, r.Area())
	assert.Equal(t, -12.0, NewRect(0, 0, -3, 4).Area())
}

func TestRectTransforms(t *testing.T) {
	r := NewRect(1, 2, 3, 4).Translate(10, 20)
	assert.True(t, r.Equals(NewRect(11, 22, 3, 4)))

	r.TranslateX(-1)
	assert.True(t, r.Equals(NewRect(10, 22, 3, 4)))

	r.TranslateCoordinate(NewCoordinate(-10, -22))
	assert.True(t, r.Equals(NewRect(0, 0, 3, 4)))

	// Scaling is about the origin: the offset scales too.
	r = NewRect(1, 2, 3, 4).ScaleXY(2, 3)
	assert.True(t, r.Equals(NewRect(2, 6, 6, 12)))

	r = NewRect(1.2, 2.8, 3.5, 4.4)
	assert.True(t, r.Clone().Ceil().Equals(NewRect(2, 3, 4, 5)))
	assert.True(t, r.Clone().Floor().Equals(NewRect(1, 2, 3, 4)))
	assert.True(t, r.Clone().Round().Equals(NewRect(1, 3, 4, 4)))
}

func TestRandomInside(t *testing.T) {
	r := NewRect(10, 20, 5, 8)
	for i := 0; i < 100; i++ {
		c := r.RandomInside()
		assert.True(t, r.ContainsCoordinate(c), "point %v escaped %v", c, r)
	}
}

func TestRectString(t *testing.T) {
	assert.Equal(t, "(10, 20 - 30w x 40h)", NewRect(10, 20, 30, 40).String())
}
