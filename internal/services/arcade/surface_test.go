package arcade

import (
	"strings"
	"testing"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/animation"
	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	return screen
}

func cellAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := range w {
		r := cellAt(screen, x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

var white = animation.MustHex("#ffffff")

func TestSurfaceFillRectMapsPixelsToCells(t *testing.T) {
	t.Parallel()

	screen := newSimScreen(t, 10, 5)
	defer screen.Fini()
	s := NewSurface(screen)

	s.FillRect(animation.Rect{X: 8, Y: 16, W: 8, H: 16}, white, 1)
	if got := cellAt(screen, 1, 1); got != '█' {
		t.Fatalf("cell(1,1) = %q, want full block", got)
	}
	if got := cellAt(screen, 0, 0); got == '█' {
		t.Fatal("cell(0,0) should be untouched")
	}
	if got := cellAt(screen, 2, 1); got == '█' {
		t.Fatal("cell(2,1) should be untouched")
	}
}

func TestSurfaceShadesByAlpha(t *testing.T) {
	t.Parallel()

	tests := []struct {
		alpha float64
		want  rune
	}{
		{alpha: 0.2, want: '░'},
		{alpha: 0.5, want: '▒'},
		{alpha: 0.9, want: '█'},
	}
	for _, tc := range tests {
		if got := shade(tc.alpha); got != tc.want {
			t.Fatalf("shade(%v) = %q, want %q", tc.alpha, got, tc.want)
		}
	}
}

func TestSurfaceTextIsCentered(t *testing.T) {
	t.Parallel()

	screen := newSimScreen(t, 10, 3)
	defer screen.Fini()

	NewSurface(screen).Text(40, 0, "HI", white)
	if got := rowText(screen, 0); !strings.HasPrefix(got, "    HI") {
		t.Fatalf("row 0 = %q, want HI at column 4", got)
	}
}

func TestSurfaceOriginAndClear(t *testing.T) {
	t.Parallel()

	screen := newSimScreen(t, 10, 5)
	defer screen.Fini()
	s := NewSurface(screen)

	s.At(2, 1).FillRect(animation.Rect{W: 8, H: 16}, white, 1)
	if got := cellAt(screen, 2, 1); got != '█' {
		t.Fatalf("cell(2,1) = %q, want full block", got)
	}

	s.Clear(animation.Rect{})
	if got := cellAt(screen, 2, 1); got != ' ' {
		t.Fatalf("cell(2,1) after clear = %q, want blank", got)
	}
}

func TestSurfaceClipsToScreen(t *testing.T) {
	t.Parallel()

	screen := newSimScreen(t, 4, 2)
	defer screen.Fini()

	NewSurface(screen).FillRect(animation.Rect{X: -100, Y: -100, W: 1000, H: 1000}, white, 1)
	for y := range 2 {
		for x := range 4 {
			if got := cellAt(screen, x, y); got != '█' {
				t.Fatalf("cell(%d,%d) = %q, want full block", x, y, got)
			}
		}
	}
}
