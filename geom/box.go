package geom

import (
	"fmt"
	"math"
)

// Box is an axis-aligned rectangle stored as its four edge offsets.
// Unlike Rect, Right and Bottom are stored directly. Nothing enforces
// Right >= Left or Bottom >= Top.
type Box struct {
	Top, Right, Bottom, Left float64
}

func NewBox(top, right, bottom, left float64) *Box {
	return &Box{Top: top, Right: right, Bottom: bottom, Left: left}
}

// BoundingBox returns the smallest box containing all the given
// coordinates, or nil when called with none.
func BoundingBox(coords ...*Coordinate) *Box {
	if len(coords) == 0 {
		return nil
	}
	b := NewBox(coords[0].Y, coords[0].X, coords[0].Y, coords[0].X)
	for _, c := range coords[1:] {
		b.ExpandToIncludeCoordinate(c)
	}
	return b
}

// NewBoxAtOffset places size with its top-left corner at offset.
func NewBoxAtOffset(offset *Coordinate, size *Size) *Box {
	return &Box{
		Top:    offset.Y,
		Right:  offset.X + size.Width,
		Bottom: offset.Y + size.Height,
		Left:   offset.X,
	}
}

// NewBoxAroundCenter places size with its midpoint at center.
func NewBoxAroundCenter(center *Coordinate, size *Size) *Box {
	return &Box{
		Top:    center.Y - size.Height/2,
		Right:  center.X + size.Width/2,
		Bottom: center.Y + size.Height/2,
		Left:   center.X - size.Width/2,
	}
}

func (b *Box) Clone() *Box {
	return &Box{Top: b.Top, Right: b.Right, Bottom: b.Bottom, Left: b.Left}
}

func (b *Box) Equals(other *Box) bool {
	if b == other {
		return true
	}
	return b.Top == other.Top && b.Right == other.Right &&
		b.Bottom == other.Bottom && b.Left == other.Left
}

func (b *Box) String() string {
	return fmt.Sprintf("(%vt, %vr, %vb, %vl)", b.Top, b.Right, b.Bottom, b.Left)
}

func (b *Box) TopLeft() *Coordinate {
	return &Coordinate{X: b.Left, Y: b.Top}
}

func (b *Box) TopRight() *Coordinate {
	return &Coordinate{X: b.Right, Y: b.Top}
}

func (b *Box) BottomLeft() *Coordinate {
	return &Coordinate{X: b.Left, Y: b.Bottom}
}

func (b *Box) BottomRight() *Coordinate {
	return &Coordinate{X: b.Right, Y: b.Bottom}
}

// ContainsBox reports whether other lies entirely within this box,
// non-strict on all four edges.
func (b *Box) ContainsBox(other *Box) bool {
	return other.Top >= b.Top && other.Right <= b.Right &&
		other.Bottom <= b.Bottom && other.Left >= b.Left
}

// ContainsCoordinate reports whether c is inside this box, boundary
// included.
func (b *Box) ContainsCoordinate(c *Coordinate) bool {
	return c.X >= b.Left && c.X <= b.Right &&
		c.Y >= b.Top && c.Y <= b.Bottom
}

// Expand grows the box outward by the four margins. All four are
// required. Positive margins grow the area: top and left move their
// edges outward by subtraction, right and bottom by addition.
func (b *Box) Expand(top, right, bottom, left float64) *Box {
	b.Top -= top
	b.Right += right
	b.Bottom += bottom
	b.Left -= left
	return b
}

// ExpandMargins is the object form of Expand: margins' four fields are
// the four margins.
func (b *Box) ExpandMargins(margins *Box) *Box {
	return b.Expand(margins.Top, margins.Right, margins.Bottom, margins.Left)
}

// ExpandToInclude grows the box to contain other. Hot path; no
// allocation, no chaining return.
func (b *Box) ExpandToInclude(other *Box) {
	b.Left = min(b.Left, other.Left)
	b.Top = min(b.Top, other.Top)
	b.Right = max(b.Right, other.Right)
	b.Bottom = max(b.Bottom, other.Bottom)
}

// ExpandToIncludeCoordinate grows the box to contain c.
func (b *Box) ExpandToIncludeCoordinate(c *Coordinate) {
	b.Left = min(b.Left, c.X)
	b.Top = min(b.Top, c.Y)
	b.Right = max(b.Right, c.X)
	b.Bottom = max(b.Bottom, c.Y)
}

func (b *Box) Size() *Size {
	return &Size{Width: b.Right - b.Left, Height: b.Bottom - b.Top}
}

func (b *Box) Area() float64 {
	return (b.Right - b.Left) * (b.Bottom - b.Top)
}

// RelativePositionX returns the signed horizontal distance from c to the
// nearest vertical edge of the box, or zero when c.X is within
// [Left, Right].
func (b *Box) RelativePositionX(c *Coordinate) float64 {
	if c.X < b.Left {
		return c.X - b.Left
	}
	if c.X > b.Right {
		return c.X - b.Right
	}
	return 0
}

// RelativePositionY returns the signed vertical distance from c to the
// nearest horizontal edge of the box, or zero when c.Y is within
// [Top, Bottom].
func (b *Box) RelativePositionY(c *Coordinate) float64 {
	if c.Y < b.Top {
		return c.Y - b.Top
	}
	if c.Y > b.Bottom {
		return c.Y - b.Bottom
	}
	return 0
}

// Distance returns the distance from c to the nearest point on the box
// boundary, or zero when c is inside the box. Corner cases fall out
// correctly because the relative position on an enclosing axis is zero.
func (b *Box) Distance(c *Coordinate) float64 {
	return math.Hypot(b.RelativePositionX(c), b.RelativePositionY(c))
}

// Intersects reports edge-inclusive overlap of a and b.
func (b *Box) Intersects(other *Box) bool {
	return b.Left <= other.Right && other.Left <= b.Right &&
		b.Top <= other.Bottom && other.Top <= b.Bottom
}

// IntersectsWithPadding is Intersects with every bound relaxed by
// padding.
func (b *Box) IntersectsWithPadding(other *Box, padding float64) bool {
	return b.Left <= other.Right+padding && other.Left <= b.Right+padding &&
		b.Top <= other.Bottom+padding && other.Top <= b.Bottom+padding
}

func (b *Box) Ceil() *Box {
	b.Top = math.Ceil(b.Top)
	b.Right = math.Ceil(b.Right)
	b.Bottom = math.Ceil(b.Bottom)
	b.Left = math.Ceil(b.Left)
	return b
}

func (b *Box) Floor() *Box {
	b.Top = math.Floor(b.Top)
	b.Right = math.Floor(b.Right)
	b.Bottom = math.Floor(b.Bottom)
	b.Left = math.Floor(b.Left)
	return b
}

func (b *Box) Round() *Box {
	b.Top = math.Round(b.Top)
	b.Right = math.Round(b.Right)
	b.Bottom = math.Round(b.Bottom)
	b.Left = math.Round(b.Left)
	return b
}

// Translate moves all four edges by tx horizontally and ty vertically.
func (b *Box) Translate(tx, ty float64) *Box {
	b.Left += tx
	b.Right += tx
	b.Top += ty
	b.Bottom += ty
	return b
}

func (b *Box) TranslateX(tx float64) *Box {
	b.Left += tx
	b.Right += tx
	return b
}

func (b *Box) TranslateCoordinate(c *Coordinate) *Box {
	return b.Translate(c.X, c.Y)
}

// Scale multiplies all four edges by f, scaling about the origin.
func (b *Box) Scale(f float64) *Box {
	return b.ScaleXY(f, f)
}

func (b *Box) ScaleXY(sx, sy float64) *Box {
	b.Left *= sx
	b.Right *= sx
	b.Top *= sy
	b.Bottom *= sy
	return b
}
