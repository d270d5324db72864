package geom

import (
	"fmt"
	"math"
	"math/rand"
)

// Coordinate is a point in 2-space. It doubles as a free vector, so the
// rotation, dot product and magnitude operations live here too.
type Coordinate struct {
	X, Y float64
}

func NewCoordinate(x, y float64) *Coordinate {
	return &Coordinate{X: x, Y: y}
}

func (c *Coordinate) Clone() *Coordinate {
	return &Coordinate{X: c.X, Y: c.Y}
}

// Equals reports exact field equality. There is no epsilon tolerance.
func (c *Coordinate) Equals(other *Coordinate) bool {
	if c == other {
		return true
	}
	return c.X == other.X && c.Y == other.Y
}

func (c *Coordinate) String() string {
	return fmt.Sprintf("(%v, %v)", c.X, c.Y)
}

// Distance returns the Euclidean distance between two coordinates.
func Distance(a, b *Coordinate) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// SquaredDistance returns the square of the Euclidean distance. Kept for
// symmetry with Distance rather than as an optimization.
func SquaredDistance(a, b *Coordinate) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// Magnitude returns the distance from the origin.
func (c *Coordinate) Magnitude() float64 {
	return math.Hypot(c.X, c.Y)
}

func (c *Coordinate) SquaredMagnitude() float64 {
	return c.X*c.X + c.Y*c.Y
}

// Azimuth returns the angle in degrees from the positive X axis to a,
// measured about the origin and normalized to [0, 360).
func Azimuth(a *Coordinate) float64 {
	deg := math.Atan2(a.Y, a.X) * 180 / math.Pi
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// Dot returns the vector dot product of a and b.
func Dot(a, b *Coordinate) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Lerp interpolates each component linearly between a (t=0) and b (t=1).
func Lerp(a, b *Coordinate, t float64) *Coordinate {
	return &Coordinate{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}

// MidPoint returns the point halfway between a and b.
func MidPoint(a, b *Coordinate) *Coordinate {
	return Lerp(a, b, 0.5)
}

// Translate adds tx and ty to the respective components in place.
func (c *Coordinate) Translate(tx, ty float64) *Coordinate {
	c.X += tx
	c.Y += ty
	return c
}

// TranslateX adds tx to the X component only.
func (c *Coordinate) TranslateX(tx float64) *Coordinate {
	c.X += tx
	return c
}

// TranslateCoordinate adds the other coordinate componentwise.
func (c *Coordinate) TranslateCoordinate(other *Coordinate) *Coordinate {
	c.X += other.X
	c.Y += other.Y
	return c
}

// Scale multiplies both components by s.
func (c *Coordinate) Scale(s float64) *Coordinate {
	return c.ScaleXY(s, s)
}

func (c *Coordinate) ScaleXY(sx, sy float64) *Coordinate {
	c.X *= sx
	c.Y *= sy
	return c
}

// Rotate rotates the coordinate about the origin by angle radians,
// in place.
func (c *Coordinate) Rotate(angle float64) *Coordinate {
	sin := math.Sin(angle)
	cos := math.Cos(angle)
	x := c.X*cos - c.Y*sin
	y := c.X*sin + c.Y*cos
	c.X = x
	c.Y = y
	return c
}

// RotateAroundPoint rotates v about axis by angle radians and returns the
// result as a new coordinate. v is left untouched.
func RotateAroundPoint(v, axis *Coordinate, angle float64) *Coordinate {
	res := v.Clone()
	res.Translate(-axis.X, -axis.Y)
	res.Rotate(angle)
	res.Translate(axis.X, axis.Y)
	return res
}

// Min lowers each component to the minimum of this coordinate's and the
// other's, in place.
func (c *Coordinate) Min(other *Coordinate) *Coordinate {
	c.X = min(c.X, other.X)
	c.Y = min(c.Y, other.Y)
	return c
}

// Max raises each component to the maximum of this coordinate's and the
// other's, in place.
func (c *Coordinate) Max(other *Coordinate) *Coordinate {
	c.X = max(c.X, other.X)
	c.Y = max(c.Y, other.Y)
	return c
}

// Clamp restricts each component to [lo, hi] componentwise, in place.
func (c *Coordinate) Clamp(lo, hi *Coordinate) *Coordinate {
	return c.Max(lo).Min(hi)
}

// MinCoordinate is the allocating form of Min.
func MinCoordinate(a, b *Coordinate) *Coordinate {
	return a.Clone().Min(b)
}

// MaxCoordinate is the allocating form of Max.
func MaxCoordinate(a, b *Coordinate) *Coordinate {
	return a.Clone().Max(b)
}

// ClampCoordinate is the allocating form of Clamp.
func ClampCoordinate(c, lo, hi *Coordinate) *Coordinate {
	return c.Clone().Clamp(lo, hi)
}

// Normalize scales the coordinate to magnitude 1. A zero-magnitude
// coordinate produces non-finite components; callers must guard.
func (c *Coordinate) Normalize() *Coordinate {
	return c.Scale(1 / c.Magnitude())
}

func (c *Coordinate) Ceil() *Coordinate {
	c.X = math.Ceil(c.X)
	c.Y = math.Ceil(c.Y)
	return c
}

func (c *Coordinate) Floor() *Coordinate {
	c.X = math.Floor(c.X)
	c.Y = math.Floor(c.Y)
	return c
}

func (c *Coordinate) Round() *Coordinate {
	c.X = math.Round(c.X)
	c.Y = math.Round(c.Y)
	return c
}

// RandomUnit returns a random coordinate on the unit circle.
func RandomUnit() *Coordinate {
	angle := rand.Float64() * math.Pi * 2
	return &Coordinate{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Random returns a random coordinate uniformly distributed over the unit
// disc. The sqrt on the radius keeps the distribution area-uniform.
func Random() *Coordinate {
	mag := math.Sqrt(rand.Float64())
	return RandomUnit().Scale(mag)
}

// RandomPositive returns a coordinate with each component independently
// uniform in [0, 1).
func RandomPositive() *Coordinate {
	return &Coordinate{X: rand.Float64(), Y: rand.Float64()}
}
