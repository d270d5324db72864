package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"

	"planar/paint"
	"planar/viewer"

	"github.com/fogleman/gg"
	"github.com/veandco/go-sdl2/sdl"
)

func main() {
	output := flag.String("o", "", "render one frame to a PNG instead of opening a window")
	flag.Parse()

	if *output != "" {
		snapshot(*output)
		return
	}

	err := sdl.Init(sdl.INIT_EVENTS)
	if err != nil {
		panic("Could not init sdl")
	}

	v := viewer.NewViewer()
	v.Draw()
	mainloop(v)
}

func snapshot(path string) {
	scene := viewer.NewScene()
	canvas := gg.NewContext(viewer.DefaultWidth, viewer.DefaultHeight)
	canvas.SetColor(color.White)
	canvas.Clear()
	paint.Draw(canvas, scene.Paint())
	if err := canvas.SavePNG(path); err != nil {
		fmt.Println("Could not write", path, ":", err.Error())
		os.Exit(1)
	}
}

func mainloop(v *viewer.Viewer) {
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				v.HandleQuit()
				sdl.Quit()
				os.Exit(0)
			case *sdl.MouseButtonEvent:
				v.HandleButton(e.State == sdl.PRESSED)
			case *sdl.MouseMotionEvent:
				v.HandleHover(float64(e.X), float64(e.Y))
			case *sdl.KeyboardEvent:
				if e.State == sdl.PRESSED {
					if e.Keysym.Sym == sdl.K_r {
						v.HandleReset()
					} else if e.Keysym.Sym == sdl.K_q || e.Keysym.Sym == sdl.K_ESCAPE {
						v.HandleQuit()
						sdl.Quit()
						os.Exit(0)
					}
				}
			}
		}

		sdl.Delay(1)
	}
}
