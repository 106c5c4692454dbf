// Package animationfakes provides in-memory animation surfaces for tests.
package animationfakes

import "github.com/AkshayRaj367/Game-Smiths-Club/internal/animation"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFill
	OpText
)

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind
	Rect  animation.Rect
	Color animation.Color
	Alpha float64
	Text  string
}

// Recorder is an animation.Surface fake that keeps every drawing call.
type Recorder struct {
	Ops []Op
}

// Clear records a clear.
func (r *Recorder) Clear(rect animation.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Rect: rect})
}

// FillRect records a fill.
func (r *Recorder) FillRect(rect animation.Rect, c animation.Color, alpha float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Rect: rect, Color: c, Alpha: alpha})
}

// Text records a text draw.
func (r *Recorder) Text(x, y float64, s string, c animation.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Rect: animation.Rect{X: x, Y: y}, Color: c, Text: s})
}

// Reset drops recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns how many recorded calls have kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Texts returns recorded text in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

var _ animation.Surface = (*Recorder)(nil)
