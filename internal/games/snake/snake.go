// Package snake implements the grid Snake mini-game.
//
// The simulation is discrete: Tick moves the snake one cell. Step layers a
// fixed-delay gate over the frame clock so the snake moves at its own pace
// regardless of frame rate.
package snake

import (
	"math/rand/v2"
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/animation"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/frameclock"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/random"
)

const (
	// TileCount is the grid edge in cells.
	TileCount = 20
	// GridSize is the cell edge in pixels.
	GridSize = 20
	// CanvasSize is the playfield edge in pixels.
	CanvasSize = TileCount * GridSize
	// TickInterval is the delay between moves.
	TickInterval = 100 * time.Millisecond
	// FoodPoints is the score awarded per food.
	FoodPoints = 10

	maxFoodAttempts = 64
)

// StartCell is where every game begins.
var StartCell = Point{X: 10, Y: 10}

var (
	backgroundColor = animation.MustHex("#000000")
	bodyColor       = animation.MustHex("#00ff99")
	headColor       = animation.MustHex("#00ffff")
	foodColor       = animation.MustHex("#ff00ff")
)

// State is the game lifecycle phase.
type State string

const (
	StateIdle     State = "idle"
	StateRunning  State = "running"
	StateGameOver State = "game_over"
)

// Point is a grid cell.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Game is one Snake session.
type Game struct {
	rng  *rand.Rand
	gate *frameclock.Gate

	body    []Point
	heading Dir
	pending Dir
	food    Point
	score   int
	state   State
	version uint64
}

// New returns an idle game with the snake on the start cell. A nil rng is
// seeded from crypto/rand.
func New(rng *rand.Rand) *Game {
	if rng == nil {
		rng = random.NewSeeded()
	}
	g := &Game{
		rng:   rng,
		gate:  frameclock.NewGate(TickInterval, 3),
		state: StateIdle,
	}
	g.reset()
	return g
}

func (g *Game) reset() {
	g.body = []Point{StartCell}
	g.heading = DirNone
	g.pending = DirNone
	g.score = 0
	g.gate.Reset()
	g.food, _ = g.placeFood()
}

// Start resets the board and enters Running. Starting a running game
// restarts it.
func (g *Game) Start() {
	g.reset()
	g.state = StateRunning
	g.version++
}

// Turn queues a heading for the next tick. Only headings orthogonal to the
// current one are accepted, which rules out reversing into the body.
func (g *Game) Turn(d Dir) bool {
	if g.state != StateRunning || !d.Orthogonal(g.heading) {
		return false
	}
	g.pending = d
	return true
}

// Tick moves the snake one cell and reports whether the game changed.
func (g *Game) Tick() bool {
	if g.state != StateRunning {
		return false
	}
	g.heading = g.pending
	if g.heading == DirNone {
		return false
	}

	dx, dy := g.heading.Delta()
	head := Point{X: g.body[0].X + dx, Y: g.body[0].Y + dy}

	if !inBounds(head) || g.occupied(head) {
		g.state = StateGameOver
		g.version++
		return true
	}

	g.body = append(g.body, Point{})
	copy(g.body[1:], g.body)
	g.body[0] = head

	if head == g.food {
		g.score += FoodPoints
		food, ok := g.placeFood()
		if !ok {
			// Board is full; nothing left to eat.
			g.state = StateGameOver
		}
		g.food = food
	} else {
		g.body = g.body[:len(g.body)-1]
	}
	g.version++
	return true
}

// Step feeds the frame delta through the move gate.
func (g *Game) Step(dt time.Duration) {
	if g.state != StateRunning {
		return
	}
	for range g.gate.Advance(dt) {
		g.Tick()
	}
}

func inBounds(p Point) bool {
	return p.X >= 0 && p.X < TileCount && p.Y >= 0 && p.Y < TileCount
}

func (g *Game) occupied(p Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// placeFood rejection-samples a free cell, falling back to a scan of free
// cells when the board is crowded. It reports false when no cell is free.
func (g *Game) placeFood() (Point, bool) {
	for range maxFoodAttempts {
		p := Point{X: g.rng.IntN(TileCount), Y: g.rng.IntN(TileCount)}
		if !g.occupied(p) {
			return p, true
		}
	}
	var free []Point
	for y := range TileCount {
		for x := range TileCount {
			if p := (Point{X: x, Y: y}); !g.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return g.body[0], false
	}
	return free[g.rng.IntN(len(free))], true
}

// Draw paints the board, food, body, head and the game over banner.
func (g *Game) Draw(s animation.Surface) {
	if s == nil {
		return
	}
	s.FillRect(animation.Rect{W: CanvasSize, H: CanvasSize}, backgroundColor, 1)
	s.FillRect(cellRect(g.food), foodColor, 1)
	for i := len(g.body) - 1; i >= 0; i-- {
		c := bodyColor
		if i == 0 {
			c = headColor
		}
		s.FillRect(cellRect(g.body[i]), c, 1)
	}
	if g.state == StateGameOver {
		s.Text(CanvasSize/2, CanvasSize/2, "GAME OVER", foodColor)
	}
}

func cellRect(p Point) animation.Rect {
	return animation.Rect{
		X: float64(p.X * GridSize),
		Y: float64(p.Y * GridSize),
		W: GridSize - 2,
		H: GridSize - 2,
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
