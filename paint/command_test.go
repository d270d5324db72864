package paint

import (
	"image/color"
	"planar/geom"
	"testing"

	"github.com/fogleman/gg"
)

func TestParseColor(t *testing.T) {
	r, g, b, _ := ParseColor("red").RGBA()
	if r>>8 != 255 || g != 0 || b != 0 {
		t.Errorf("Expected pure red, got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}

	// Unparseable strings fall back to black.
	r, g, b, _ = ParseColor("not-a-color").RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected black fallback, got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

func TestDrawRect(t *testing.T) {
	canvas := gg.NewContext(40, 40)
	canvas.SetColor(color.White)
	canvas.Clear()

	Draw(canvas, []Command{
		NewDrawRect(geom.NewRect(10, 10, 20, 20), "red"),
	})

	img := canvas.Image()
	r, g, b, _ := img.At(20, 20).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("Expected red inside the rect, got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(5, 5).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("Expected white outside the rect, got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}

func TestDrawOutline(t *testing.T) {
	canvas := gg.NewContext(40, 40)
	canvas.SetColor(color.White)
	canvas.Clear()

	NewDrawOutline(geom.NewRect(10, 10, 20, 20), "blue", 2).Execute(canvas)

	img := canvas.Image()
	// The interior stays white; only the border is stroked.
	r, g, b, _ := img.At(20, 20).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("Expected white interior, got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
	_, _, b, _ = img.At(10, 20).RGBA()
	if b>>8 != 255 {
		t.Errorf("Expected blue on the border, got blue channel %d", b>>8)
	}
}

func TestDrawBoxMatchesRect(t *testing.T) {
	box := geom.NewBox(10, 30, 30, 10)
	rect := geom.NewRectFromBox(box)

	a := gg.NewContext(40, 40)
	a.SetColor(color.White)
	a.Clear()
	NewDrawBox(box, "green", 1).Execute(a)

	b := gg.NewContext(40, 40)
	b.SetColor(color.White)
	b.Clear()
	NewDrawOutline(rect, "green", 1).Execute(b)

	for _, p := range []struct{ x, y int }{{10, 10}, {30, 30}, {20, 10}, {5, 5}} {
		if a.Image().At(p.x, p.y) != b.Image().At(p.x, p.y) {
			t.Errorf("Box and converted rect disagree at (%d, %d)", p.x, p.y)
		}
	}
}
