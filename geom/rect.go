package geom

import (
	"fmt"
	"math"
	"math/rand"
)

// Rect is an axis-aligned rectangle stored as origin plus extent. Right
// and Bottom are always derived, never stored. Width and Height may be
// negative; such rects are kept raw, never normalized, since normalizing
// changes what Equals and Difference report.
type Rect struct {
	Left, Top, Width, Height float64
}

func NewRect(left, top, width, height float64) *Rect {
	return &Rect{Left: left, Top: top, Width: width, Height: height}
}

// NewRectFromBox converts edge offsets to origin+extent. Width and
// Height come out negative when the box's right/bottom sit before its
// left/top; this is not validated.
func NewRectFromBox(b *Box) *Rect {
	return &Rect{
		Left:   b.Left,
		Top:    b.Top,
		Width:  b.Right - b.Left,
		Height: b.Bottom - b.Top,
	}
}

// NewRectAtOffset places size with its top-left corner at offset.
func NewRectAtOffset(offset *Coordinate, size *Size) *Rect {
	return &Rect{
		Left:   offset.X,
		Top:    offset.Y,
		Width:  size.Width,
		Height: size.Height,
	}
}

// NewRectAroundCenter places size with its midpoint at center.
func NewRectAroundCenter(center *Coordinate, size *Size) *Rect {
	return &Rect{
		Left:   center.X - size.Width/2,
		Top:    center.Y - size.Height/2,
		Width:  size.Width,
		Height: size.Height,
	}
}

func (r *Rect) Clone() *Rect {
	return &Rect{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
}

// Equals compares the raw Left/Top/Width/Height fields. Two rects
// covering the same area through different negative-extent encodings are
// not equal.
func (r *Rect) Equals(other *Rect) bool {
	if r == other {
		return true
	}
	return r.Left == other.Left && r.Top == other.Top &&
		r.Width == other.Width && r.Height == other.Height
}

func (r *Rect) Right() float64 {
	return r.Left + r.Width
}

func (r *Rect) Bottom() float64 {
	return r.Top + r.Height
}

func (r *Rect) ToBox() *Box {
	return &Box{
		Top:    r.Top,
		Right:  r.Left + r.Width,
		Bottom: r.Top + r.Height,
		Left:   r.Left,
	}
}

// Offset returns the top-left corner.
func (r *Rect) Offset() *Coordinate {
	return &Coordinate{X: r.Left, Y: r.Top}
}

func (r *Rect) Size() *Size {
	return &Size{Width: r.Width, Height: r.Height}
}

// Area returns width times height, which may be negative.
func (r *Rect) Area() float64 {
	return r.Width * r.Height
}

// Intersection shrinks this rect to its overlap with other and returns
// true, or returns false and leaves the rect untouched when there is no
// overlap. The test is edge-inclusive: rects that merely touch along an
// edge intersect, with a zero-width or zero-height result. This form
// never allocates; use the package-level Intersection for a fresh rect.
func (r *Rect) Intersection(other *Rect) bool {
	x0 := max(r.Left, other.Left)
	x1 := min(r.Left+r.Width, other.Left+other.Width)
	if x0 <= x1 {
		y0 := max(r.Top, other.Top)
		y1 := min(r.Top+r.Height, other.Top+other.Height)
		if y0 <= y1 {
			r.Left = x0
			r.Top = y0
			r.Width = x1 - x0
			r.Height = y1 - y0
			return true
		}
	}
	return false
}

// Intersection returns the overlap of a and b as a new rect, or nil when
// they do not intersect. Inputs are untouched. The logic deliberately
// duplicates the mutating form rather than delegating to it.
func Intersection(a, b *Rect) *Rect {
	x0 := max(a.Left, b.Left)
	x1 := min(a.Left+a.Width, b.Left+b.Width)
	if x0 <= x1 {
		y0 := max(a.Top, b.Top)
		y1 := min(a.Top+a.Height, b.Top+b.Height)
		if y0 <= y1 {
			return NewRect(x0, y0, x1-x0, y1-y0)
		}
	}
	return nil
}

// Intersects is the boolean-only form of the edge-inclusive overlap
// test.
func Intersects(a, b *Rect) bool {
	return a.Left <= b.Left+b.Width && b.Left <= a.Left+a.Width &&
		a.Top <= b.Top+b.Height && b.Top <= a.Top+a.Height
}

func (r *Rect) Intersects(other *Rect) bool {
	return Intersects(r, other)
}

// Difference returns the area of a not covered by b as zero to four
// disjoint rects. When a and b do not overlap, or the overlap is
// degenerate, the result is a single clone of a.
//
// Bands are stripped in a fixed order: top, bottom, left, right. The
// vertical window shrinks as the top and bottom bands are consumed, so
// the left and right bands never re-cover a corner. Reordering the
// checks would double-count corner regions.
func Difference(a, b *Rect) []*Rect {
	overlap := Intersection(a, b)
	if overlap == nil || overlap.Height == 0 || overlap.Width == 0 {
		return []*Rect{a.Clone()}
	}

	result := make([]*Rect, 0, 4)
	top := a.Top
	height := a.Height

	ar := a.Left + a.Width
	ab := a.Top + a.Height
	br := b.Left + b.Width
	bb := b.Top + b.Height

	if b.Top > a.Top {
		result = append(result, NewRect(a.Left, a.Top, a.Width, b.Top-a.Top))
		top = b.Top
		height -= b.Top - a.Top
	}
	if bb < ab {
		result = append(result, NewRect(a.Left, bb, a.Width, ab-bb))
		height = bb - top
	}
	if b.Left > a.Left {
		result = append(result, NewRect(a.Left, top, b.Left-a.Left, height))
	}
	if br < ar {
		result = append(result, NewRect(br, top, ar-br, height))
	}
	return result
}

// BoundingRect grows this rect to the smallest rect containing both it
// and other. Right and bottom are computed before left and top are
// overwritten; the other order would read already-mutated fields.
func (r *Rect) BoundingRect(other *Rect) *Rect {
	right := max(r.Left+r.Width, other.Left+other.Width)
	bottom := max(r.Top+r.Height, other.Top+other.Height)
	r.Left = min(r.Left, other.Left)
	r.Top = min(r.Top, other.Top)
	r.Width = right - r.Left
	r.Height = bottom - r.Top
	return r
}

// BoundingRect is the allocating form; it returns nil when either input
// is nil.
func BoundingRect(a, b *Rect) *Rect {
	if a == nil || b == nil {
		return nil
	}
	return a.Clone().BoundingRect(b)
}

// ContainsRect reports whether other lies entirely within this rect,
// non-strict on all four sides.
func (r *Rect) ContainsRect(other *Rect) bool {
	return r.Left <= other.Left &&
		r.Left+r.Width >= other.Left+other.Width &&
		r.Top <= other.Top &&
		r.Top+r.Height >= other.Top+other.Height
}

// ContainsCoordinate reports whether c is inside this rect, boundary
// included.
func (r *Rect) ContainsCoordinate(c *Coordinate) bool {
	return c.X >= r.Left && c.X <= r.Left+r.Width &&
		c.Y >= r.Top && c.Y <= r.Top+r.Height
}

// RandomInside returns a point with each axis independently uniform over
// the rect's extent.
func (r *Rect) RandomInside() *Coordinate {
	return &Coordinate{
		X: r.Left + rand.Float64()*r.Width,
		Y: r.Top + rand.Float64()*r.Height,
	}
}

func (r *Rect) Ceil() *Rect {
	r.Left = math.Ceil(r.Left)
	r.Top = math.Ceil(r.Top)
	r.Width = math.Ceil(r.Width)
	r.Height = math.Ceil(r.Height)
	return r
}

func (r *Rect) Floor() *Rect {
	r.Left = math.Floor(r.Left)
	r.Top = math.Floor(r.Top)
	r.Width = math.Floor(r.Width)
	r.Height = math.Floor(r.Height)
	return r
}

func (r *Rect) Round() *Rect {
	r.Left = math.Round(r.Left)
	r.Top = math.Round(r.Top)
	r.Width = math.Round(r.Width)
	r.Height = math.Round(r.Height)
	return r
}

func (r *Rect) Translate(tx, ty float64) *Rect {
	r.Left += tx
	r.Top += ty
	return r
}

func (r *Rect) TranslateX(tx float64) *Rect {
	r.Left += tx
	return r
}

func (r *Rect) TranslateCoordinate(c *Coordinate) *Rect {
	r.Left += c.X
	r.Top += c.Y
	return r
}

// Scale multiplies all four fields by f, scaling about the origin, not
// the rect's own center.
func (r *Rect) Scale(f float64) *Rect {
	return r.ScaleXY(f, f)
}

func (r *Rect) ScaleXY(sx, sy float64) *Rect {
	r.Left *= sx
	r.Width *= sx
	r.Top *= sy
	r.Height *= sy
	return r
}

func (r *Rect) String() string {
	return fmt.Sprintf("(%v, %v - %vw x %vh)", r.Left, r.Top, r.Width, r.Height)
}
