// Package pong implements the single-paddle Pong mini-game.
package pong

import (
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/animation"
)

const (
	Width  = 600.0
	Height = 400.0

	PaddleX      = 10.0
	PaddleWidth  = 10.0
	PaddleHeight = 80.0
	// PaddleFace is the x at or below which the ball can touch the paddle.
	PaddleFace = PaddleX + PaddleWidth

	BallSize     = 16.0
	BallSpeed    = 4.0
	ReturnPoints = 10
)

var (
	backgroundColor = animation.MustHex("#000000")
	paddleColor     = animation.MustHex("#00ffff")
	ballColor       = animation.MustHex("#ff00ff")
)

// State is the game lifecycle phase.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateGameOver State = "game_over"
)

// Contact describes what the ball hit during a tick.
type Contact int

const (
	ContactNone Contact = iota
	ContactPaddle
	ContactFarWall
	ContactMiss
)

// Game is one Pong session. The zero value is idle and does not tick.
type Game struct {
	paddleY float64
	ballX   float64
	ballY   float64
	dx      float64
	dy      float64
	score   int
	state   State
	version uint64
}

// New returns an idle game.
func New() *Game {
	return &Game{state: StateIdle, paddleY: Height/2 - PaddleHeight/2}
}

// Start re-initializes paddle, ball and score and enters Running.
func (g *Game) Start() {
	g.paddleY = Height/2 - PaddleHeight/2
	g.ballX = Width / 2
	g.ballY = Height / 2
	g.dx = BallSpeed
	g.dy = BallSpeed
	g.score = 0
	g.state = StateRunning
	g.version++
}

// MovePaddle centers the paddle on a pointer y.
func (g *Game) MovePaddle(y float64) {
	g.setPaddle(y - PaddleHeight/2)
}

// NudgePaddle shifts the paddle by dy for keyboard and touch input.
func (g *Game) NudgePaddle(dy float64) {
	g.setPaddle(g.paddleY + dy)
}

func (g *Game) setPaddle(y float64) {
	y = min(max(y, 0), Height-PaddleHeight)
	if y != g.paddleY {
		g.paddleY = y
		g.version++
	}
}

// Tick advances the ball one step and reports what it touched.
func (g *Game) Tick() Contact {
	if g.state != StateRunning {
		return ContactNone
	}
	g.version++
	g.ballX += g.dx
	g.ballY += g.dy

	if (g.ballY <= 0 && g.dy < 0) || (g.ballY >= Height && g.dy > 0) {
		g.dy = -g.dy
	}
	g.ballY = min(max(g.ballY, 0), Height)

	switch {
	case g.ballX >= Width && g.dx > 0:
		g.dx = -g.dx
		g.ballX = Width
		return ContactFarWall
	case g.dx < 0 && g.ballX <= PaddleFace && g.onPaddle(g.ballY):
		g.dx = -g.dx
		g.score += ReturnPoints
		return ContactPaddle
	case g.ballX <= 0:
		g.state = StateGameOver
		return ContactMiss
	}
	return ContactNone
}

func (g *Game) onPaddle(y float64) bool {
	return y >= g.paddleY && y <= g.paddleY+PaddleHeight
}

// Step ticks once per frame while running.
func (g *Game) Step(time.Duration) {
	g.Tick()
}

// Draw paints the field, paddle, ball and the game over banner.
func (g *Game) Draw(s animation.Surface) {
	if s == nil {
		return
	}
	s.FillRect(animation.Rect{W: Width, H: Height}, backgroundColor, 1)
	s.FillRect(animation.Rect{X: PaddleX, Y: g.paddleY, W: PaddleWidth, H: PaddleHeight}, paddleColor, 1)
	if g.state != StateIdle {
		s.FillRect(animation.Rect{X: g.ballX - BallSize/2, Y: g.ballY - BallSize/2, W: BallSize, H: BallSize}, ballColor, 1)
	}
	if g.state == StateGameOver {
		s.Text(Width/2, Height/2, "GAME OVER", ballColor)
	}
}

// State returns the lifecycle phase.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Version increases every time the observable game state changes.
func (g *Game) Version() uint64 {
	return g.version
}

// Snapshot is an immutable copy of the game for transport and rendering.
type Snapshot struct {
	State   State   `json:"state"`
	Score   int     `json:"score"`
	PaddleY float64 `json:"paddleY"`
	BallX   float64 `json:"ballX"`
	BallY   float64 `json:"ballY"`
	DX      float64 `json:"dx"`
	DY      float64 `json:"dy"`
}

// Snapshot copies the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:   g.state,
		Score:   g.score,
		PaddleY: g.paddleY,
		BallX:   g.ballX,
		BallY:   g.ballY,
		DX:      g.dx,
		DY:      g.dy,
	}
}
