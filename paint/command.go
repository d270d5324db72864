// Package paint renders geometry values onto a gg raster canvas through
// a small list of paint commands.
package paint

import (
	"fmt"
	"planar/geom"

	"github.com/fogleman/gg"
)

type Command interface {
	Execute(canvas *gg.Context)
	String() string
}

// Draw executes the commands in order.
func Draw(canvas *gg.Context, list []Command) {
	for _, cmd := range list {
		cmd.Execute(canvas)
	}
}

type DrawRect struct {
	rect  *geom.Rect
	color string
}

func NewDrawRect(rect *geom.Rect, color string) *DrawRect {
	return &DrawRect{
		rect:  rect,
		color: color,
	}
}

func (d *DrawRect) Execute(canvas *gg.Context) {
	canvas.SetColor(ParseColor(d.color))
	canvas.DrawRectangle(d.rect.Left, d.rect.Top, d.rect.Width, d.rect.Height)
	canvas.Fill()
}

func (d *DrawRect) String() string {
	return fmt.Sprint("DrawRect(rect=", d.rect, ", color='", d.color, "')")
}

type DrawOutline struct {
	rect      *geom.Rect
	color     string
	thickness float64
}

func NewDrawOutline(rect *geom.Rect, color string, thickness float64) *DrawOutline {
	return &DrawOutline{
		rect:      rect,
		color:     color,
		thickness: thickness,
	}
}

func (d *DrawOutline) Execute(canvas *gg.Context) {
	canvas.SetColor(ParseColor(d.color))
	canvas.DrawRectangle(d.rect.Left, d.rect.Top, d.rect.Width, d.rect.Height)
	canvas.SetLineWidth(d.thickness)
	canvas.Stroke()
}

func (d *DrawOutline) String() string {
	return fmt.Sprint("DrawOutline(rect=", d.rect, ", color='", d.color, "', thickness=", d.thickness, ")")
}

type DrawBox struct {
	box       *geom.Box
	color     string
	thickness float64
}

func NewDrawBox(box *geom.Box, color string, thickness float64) *DrawBox {
	return &DrawBox{
		box:       box,
		color:     color,
		thickness: thickness,
	}
}

func (d *DrawBox) Execute(canvas *gg.Context) {
	canvas.SetColor(ParseColor(d.color))
	canvas.DrawRectangle(d.box.Left, d.box.Top, d.box.Right-d.box.Left, d.box.Bottom-d.box.Top)
	canvas.SetLineWidth(d.thickness)
	canvas.Stroke()
}

func (d *DrawBox) String() string {
	return fmt.Sprint("DrawBox(box=", d.box, ", color='", d.color, "')")
}

// DrawMarker paints a cross at a coordinate, with an optional label to
// its upper right.
type DrawMarker struct {
	at    *geom.Coordinate
	size  float64
	color string
	label string
}

func NewDrawMarker(at *geom.Coordinate, size float64, color, label string) *DrawMarker {
	return &DrawMarker{
		at:    at,
		size:  size,
		color: color,
		label: label,
	}
}

func (d *DrawMarker) Execute(canvas *gg.Context) {
	canvas.SetColor(ParseColor(d.color))
	canvas.DrawLine(d.at.X-d.size, d.at.Y, d.at.X+d.size, d.at.Y)
	canvas.DrawLine(d.at.X, d.at.Y-d.size, d.at.X, d.at.Y+d.size)
	canvas.SetLineWidth(1)
	canvas.Stroke()
	if d.label != "" {
		canvas.SetFontFace(GetFont(13))
		canvas.DrawStringAnchored(d.label, d.at.X+d.size+2, d.at.Y-d.size, 0, 1)
	}
}

func (d *DrawMarker) String() string {
	return fmt.Sprint("DrawMarker(at=", d.at, ", label='", d.label, "')")
}

type DrawText struct {
	at    *geom.Coordinate
	text  string
	color string
}

func NewDrawText(at *geom.Coordinate, text, color string) *DrawText {
	return &DrawText{
		at:    at,
		text:  text,
		color: color,
	}
}

func (d *DrawText) Execute(canvas *gg.Context) {
	canvas.SetColor(ParseColor(d.color))
	canvas.SetFontFace(GetFont(13))
	canvas.DrawStringAnchored(d.text, d.at.X, d.at.Y, 0, 1)
}

func (d *DrawText) String() string {
	return fmt.Sprint("DrawText(at=", d.at, ", text='", d.text, "')")
}

func PrintCommands(list []Command) {
	for _, cmd := range list {
		fmt.Println("Command:", cmd)
	}
}
