package ndscene

import (
	"image/color"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0.25, 0.5, 0.75)
	if c.A != 1.0 {
		t.Errorf("RGB alpha = %v, want 1.0", c.A)
	}
	if c.R != 0.25 || c.G != 0.5 || c.B != 0.75 {
		t.Errorf("RGB components = %+v, want (0.25, 0.5, 0.75)", c)
	}
}

func TestRGBAColor(t *testing.T) {
	got := RGB(1, 0, 0).Color()
	want := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestRGBAColorClamps(t *testing.T) {
	got := RGBA{R: 2, G: -1, B: 0, A: 1}.Color()
	want := color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	if got != want {
		t.Errorf("Color() = %v, want %v", got, want)
	}
}

func TestDefaultColorScheme(t *testing.T) {
	cs := DefaultColorScheme()
	if cs.Background != (RGBA{R: 0.45, G: 0.45, B: 0.65, A: 1}) {
		t.Errorf("Background = %+v, want (0.45, 0.45, 0.65, 1)", cs.Background)
	}
	if cs.Wireframe != (RGBA{R: 1, G: 1, B: 1, A: 1}) {
		t.Errorf("Wireframe = %+v, want (1, 1, 1, 1)", cs.Wireframe)
	}
	if cs.Surface != (RGBA{R: 1, G: 1, B: 1, A: 0.1}) {
		t.Errorf("Surface = %+v, want (1, 1, 1, 0.1)", cs.Surface)
	}
}
