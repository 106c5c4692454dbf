package arcade

import (
	"math"
	"unicode/utf8"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/animation"
	"github.com/gdamore/tcell/v2"
)

// One terminal cell stands in for a block of surface pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

// Surface adapts a tcell screen to animation.Surface. Pixel coordinates are
// translated by the origin cell before being mapped onto the grid.
type Surface struct {
	screen  tcell.Screen
	originX int
	originY int
}

// NewSurface draws onto screen with the top-left pixel at cell (0,0).
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// At returns a surface sharing the screen with its origin moved to the
// given cell.
func (s *Surface) At(col, row int) *Surface {
	return &Surface{screen: s.screen, originX: col, originY: row}
}

// Bounds returns the visible area in surface pixels.
func (s *Surface) Bounds() animation.Rect {
	w, h := s.screen.Size()
	return animation.Rect{W: float64((w - s.originX) * CellWidth), H: float64((h - s.originY) * CellHeight)}
}

func (s *Surface) cells(r animation.Rect) (x0, y0, x1, y1 int) {
	if r.W == 0 && r.H == 0 {
		w, h := s.screen.Size()
		return 0, 0, w, h
	}
	x0 = s.originX + int(math.Floor(r.X/CellWidth))
	y0 = s.originY + int(math.Floor(r.Y/CellHeight))
	x1 = s.originX + int(math.Ceil((r.X+r.W)/CellWidth))
	y1 = s.originY + int(math.Ceil((r.Y+r.H)/CellHeight))
	w, h := s.screen.Size()
	return max(x0, 0), max(y0, 0), min(x1, w), min(y1, h)
}

// Clear blanks every cell touched by r.
func (s *Surface) Clear(r animation.Rect) {
	x0, y0, x1, y1 := s.cells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
		}
	}
}

// FillRect shades every cell touched by r. Opacity picks the block glyph.
func (s *Surface) FillRect(r animation.Rect, c animation.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	glyph := shade(alpha)
	style := tcell.StyleDefault.Foreground(toColor(c))
	x0, y0, x1, y1 := s.cells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, glyph, nil, style)
		}
	}
}

// Text writes str centered on the cell containing (x, y).
func (s *Surface) Text(x, y float64, str string, c animation.Color) {
	style := tcell.StyleDefault.Foreground(toColor(c)).Bold(true)
	col := s.originX + int(x/CellWidth) - utf8.RuneCountInString(str)/2
	row := s.originY + int(y/CellHeight)
	drawString(s.screen, col, row, str, style)
}

func shade(alpha float64) rune {
	switch {
	case alpha < 0.34:
		return '░'
	case alpha < 0.67:
		return '▒'
	default:
		return '█'
	}
}

func toColor(c animation.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawString(screen tcell.Screen, col, row int, str string, style tcell.Style) {
	w, h := screen.Size()
	if row < 0 || row >= h {
		return
	}
	for _, r := range str {
		if col >= 0 && col < w {
			screen.SetContent(col, row, r, nil, style)
		}
		col++
	}
}

var _ animation.Surface = (*Surface)(nil)
