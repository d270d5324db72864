package viewer

import (
	"fmt"
	"planar/geom"
	"planar/paint"
)

// Scene is a fixed subject rectangle with a clip rectangle the pointer
// drags around. Every repaint runs the region algebra on the pair.
type Scene struct {
	Subject  *geom.Rect
	Clip     *geom.Rect
	pointer  *geom.Coordinate
	dragging bool
}

func NewScene() *Scene {
	return &Scene{
		Subject: geom.NewRect(150, 120, 320, 240),
		Clip:    geom.NewRect(300, 220, 240, 180),
		pointer: geom.NewCoordinate(0, 0),
	}
}

// PointerAt records the pointer position and, while dragging, recenters
// the clip rect on it.
func (s *Scene) PointerAt(x, y float64) {
	s.pointer.X = x
	s.pointer.Y = y
	if s.dragging {
		center := geom.NewCoordinate(x, y)
		moved := geom.NewRectAroundCenter(center, s.Clip.Size())
		s.Clip.Left = moved.Left
		s.Clip.Top = moved.Top
	}
}

func (s *Scene) SetDragging(dragging bool) {
	s.dragging = dragging
}

// Reset puts both rectangles back where they started.
func (s *Scene) Reset() {
	fresh := NewScene()
	s.Subject = fresh.Subject
	s.Clip = fresh.Clip
}

// Paint builds the command list for one frame: the difference bands of
// subject minus clip, the intersection, the bounding rect and box, and
// a pointer marker with hit-test feedback.
func (s *Scene) Paint() []paint.Command {
	cmds := []paint.Command{}

	for _, band := range geom.Difference(s.Subject, s.Clip) {
		cmds = append(cmds, paint.NewDrawRect(band, "lightblue"))
	}

	if overlap := geom.Intersection(s.Subject, s.Clip); overlap != nil {
		cmds = append(cmds, paint.NewDrawRect(overlap, "salmon"))
	}

	cmds = append(cmds, paint.NewDrawOutline(s.Subject, "steelblue", 2))
	cmds = append(cmds, paint.NewDrawOutline(s.Clip, "darkred", 2))

	if bounding := geom.BoundingRect(s.Subject, s.Clip); bounding != nil {
		cmds = append(cmds, paint.NewDrawOutline(bounding, "gray", 1))
	}

	// The box form of the same bound, inflated a little so both are
	// visible.
	hull := geom.BoundingBox(
		s.Subject.Offset(), geom.NewCoordinate(s.Subject.Right(), s.Subject.Bottom()),
		s.Clip.Offset(), geom.NewCoordinate(s.Clip.Right(), s.Clip.Bottom()),
	)
	cmds = append(cmds, paint.NewDrawBox(hull.Expand(6, 6, 6, 6), "silver", 1))

	marker := "coral"
	if s.Subject.ContainsCoordinate(s.pointer) {
		marker = "green"
	}
	label := fmt.Sprintf("%v  d=%.1f", s.pointer, s.Clip.ToBox().Distance(s.pointer))
	cmds = append(cmds, paint.NewDrawMarker(s.pointer.Clone(), 5, marker, label))

	return cmds
}
