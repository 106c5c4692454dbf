package arcade

import (
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/animation/counter"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/timeouts"
	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
)

const connectionErrorNotice = "Connection Error"

// HUD shows the animated registration count and transient notices.
type HUD struct {
	counter     *counter.Animator
	loaded      bool
	notice      string
	noticeUntil time.Time
}

// NewHUD starts with no count loaded.
func NewHUD() *HUD {
	return &HUD{counter: counter.New(0, counter.DefaultDuration, counter.DefaultTick)}
}

// SetCount restarts the reveal toward n.
func (h *HUD) SetCount(n int) {
	h.counter.Retarget(n)
	h.loaded = true
	h.notice = ""
}

// Fail shows the connection notice until now plus the revert delay.
func (h *HUD) Fail(now time.Time) {
	h.notice = connectionErrorNotice
	h.noticeUntil = now.Add(timeouts.NoticeRevert)
}

// Step advances the count reveal.
func (h *HUD) Step(dt time.Duration) {
	h.counter.Step(dt)
}

// CountLabel returns what the count slot shows at now.
func (h *HUD) CountLabel(now time.Time) string {
	if h.notice != "" && now.Before(h.noticeUntil) {
		return h.notice
	}
	h.notice = ""
	if !h.loaded {
		return "Registered: --"
	}
	return "Registered: " + humanize.Comma(int64(h.counter.Value()))
}

func scoreLabel(score int) string {
	return "Score: " + humanize.Comma(int64(score))
}

// Draw renders the HUD line on the top row.
func (h *HUD) Draw(screen tcell.Screen, now time.Time, left string) {
	w, _ := screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	for x := range w {
		screen.SetContent(x, 0, ' ', nil, style)
	}
	drawString(screen, 1, 0, left, style)
	label := h.CountLabel(now)
	drawString(screen, w-len([]rune(label))-1, 0, label, style)
}
