package geom

import (
	"fmt"
	"math"
)

// Size is a width/height extent. Negative and zero dimensions are
// allowed; nothing is enforced.
type Size struct {
	Width, Height float64
}

func NewSize(width, height float64) *Size {
	return &Size{Width: width, Height: height}
}

// NewSizeFromCoordinate reinterprets x as width and y as height.
func NewSizeFromCoordinate(c *Coordinate) *Size {
	return &Size{Width: c.X, Height: c.Y}
}

func (s *Size) Clone() *Size {
	return &Size{Width: s.Width, Height: s.Height}
}

func (s *Size) Equals(other *Size) bool {
	if s == other {
		return true
	}
	return s.Width == other.Width && s.Height == other.Height
}

func (s *Size) String() string {
	return fmt.Sprintf("(%v x %v)", s.Width, s.Height)
}

// ToCoordinate reinterprets width as x and height as y.
func (s *Size) ToCoordinate() *Coordinate {
	return &Coordinate{X: s.Width, Y: s.Height}
}

func (s *Size) Longest() float64 {
	return max(s.Width, s.Height)
}

func (s *Size) Shortest() float64 {
	return min(s.Width, s.Height)
}

func (s *Size) Area() float64 {
	return s.Width * s.Height
}

func (s *Size) Perimeter() float64 {
	return 2 * (s.Width + s.Height)
}

// AspectRatio returns width over height. A zero height yields an
// infinity; nothing is guarded.
func (s *Size) AspectRatio() float64 {
	return s.Width / s.Height
}

// IsEmpty reports whether the area is exactly zero. A negative area is
// non-zero and therefore not empty.
func (s *Size) IsEmpty() bool {
	return s.Area() == 0
}

// FitsInside reports whether this size fits within target without
// scaling. The comparison is non-strict on both dimensions.
func (s *Size) FitsInside(target *Size) bool {
	return s.Width <= target.Width && s.Height <= target.Height
}

func (s *Size) Ceil() *Size {
	s.Width = math.Ceil(s.Width)
	s.Height = math.Ceil(s.Height)
	return s
}

func (s *Size) Floor() *Size {
	s.Width = math.Floor(s.Width)
	s.Height = math.Floor(s.Height)
	return s
}

func (s *Size) Round() *Size {
	s.Width = math.Round(s.Width)
	s.Height = math.Round(s.Height)
	return s
}

// Scale multiplies both dimensions by f.
func (s *Size) Scale(f float64) *Size {
	return s.ScaleXY(f, f)
}

func (s *Size) ScaleXY(sx, sy float64) *Size {
	s.Width *= sx
	s.Height *= sy
	return s
}

// ScaleToFit scales uniformly so the size just fits inside target,
// preserving aspect ratio. The limiting dimension picks the scale
// factor. Both sizes must have strictly positive dimensions; this is not
// validated.
func (s *Size) ScaleToFit(target *Size) *Size {
	var f float64
	if s.AspectRatio() > target.AspectRatio() {
		f = target.Width / s.Width
	} else {
		f = target.Height / s.Height
	}
	return s.Scale(f)
}
