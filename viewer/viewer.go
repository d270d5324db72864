// Package viewer shows the region algebra live in an SDL window: drag
// the clip rectangle over the subject and watch the difference bands.
package viewer

import (
	"image"
	"image/color"
	"unsafe"

	"planar/paint"

	"github.com/fogleman/gg"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

type Viewer struct {
	sdl_window   *sdl.Window
	root_surface *gg.Context
	scene        *Scene
	RED_MASK     uint32
	GREEN_MASK   uint32
	BLUE_MASK    uint32
	ALPHA_MASK   uint32
}

func NewViewer() *Viewer {
	viewer := &Viewer{
		scene: NewScene(),
	}

	window, err := sdl.CreateWindow("planar", sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		DefaultWidth, DefaultHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		panic("Could not create sdl window")
	}
	viewer.sdl_window = window

	viewer.root_surface = gg.NewContext(DefaultWidth, DefaultHeight)

	if sdl.BYTEORDER == sdl.BIG_ENDIAN {
		viewer.RED_MASK = 0xff000000
		viewer.GREEN_MASK = 0x00ff0000
		viewer.BLUE_MASK = 0x0000ff00
		viewer.ALPHA_MASK = 0x000000ff
	} else {
		viewer.RED_MASK = 0x000000ff
		viewer.GREEN_MASK = 0x0000ff00
		viewer.BLUE_MASK = 0x00ff0000
		viewer.ALPHA_MASK = 0xff000000
	}

	return viewer
}

func (v *Viewer) Scene() *Scene {
	return v.scene
}

func (v *Viewer) Draw() {
	canvas := v.root_surface
	canvas.SetColor(color.White)
	canvas.Clear()

	paint.Draw(canvas, v.scene.Paint())

	gg_img := canvas.Image()
	gg_bytes, ok := gg_img.(*image.RGBA)
	if !ok {
		panic("Image is not RGBA")
	}

	depth := 32
	pitch := int(4 * DefaultWidth)
	sdl_surface, err := sdl.CreateRGBSurfaceFrom(
		unsafe.Pointer(&gg_bytes.Pix[0]),
		DefaultWidth, DefaultHeight, depth, pitch,
		v.RED_MASK, v.GREEN_MASK, v.BLUE_MASK, v.ALPHA_MASK,
	)
	if err != nil {
		panic("Cannot create rgb surface")
	}
	defer sdl_surface.Free()

	rect := &sdl.Rect{X: 0, Y: 0, W: DefaultWidth, H: DefaultHeight}
	window_surface, err := v.sdl_window.GetSurface()
	if err != nil {
		panic("Cannot get window surface")
	}
	sdl_surface.Blit(rect, window_surface, rect)
	v.sdl_window.UpdateSurface()
}

func (v *Viewer) HandleHover(x, y float64) {
	v.scene.PointerAt(x, y)
	v.Draw()
}

func (v *Viewer) HandleButton(pressed bool) {
	v.scene.SetDragging(pressed)
	v.Draw()
}

func (v *Viewer) HandleReset() {
	v.scene.Reset()
	v.Draw()
}

func (v *Viewer) HandleQuit() {
	v.sdl_window.Destroy()
}
