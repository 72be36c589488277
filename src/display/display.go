// Package display shows a rendered chart in a desktop window.
package display

import (
	"image"
	"os"
	"runtime"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Available reports whether a window can be opened on this machine.
func Available() bool { return available(runtime.GOOS, os.Getenv) }

func available(goos string, getenv func(string) string) bool {
	switch goos {
	case "darwin", "windows":
		return true
	}
	return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
}

// Chart is one image to put on screen.
type Chart struct {
	Title string
	Image image.Image
}

// Show opens one window per chart and blocks until they are all closed. A
// fyne app can only run once per process, so callers collect every chart
// they want shown and make a single call.
func Show(charts ...Chart) error {
	if len(charts) == 0 {
		return nil
	}
	a := app.New()
	for _, c := range charts {
		w := a.NewWindow(c.Title)
		ci := canvas.NewImageFromImage(c.Image)
		ci.FillMode = canvas.ImageFillContain
		w.SetContent(ci)
		b := c.Image.Bounds()
		// 12x8in at 300 DPI is far larger than a screen; open at a third of that
		w.Resize(fyne.NewSize(float32(b.Dx())/3, float32(b.Dy())/3))
		w.Show()
	}
	a.Run()
	return nil
}
