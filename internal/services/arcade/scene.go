package arcade

import (
	"math/rand/v2"
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/animation"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/animation/follower"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/animation/trail"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/games/pong"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/games/snake"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/frameclock"
	"github.com/gdamore/tcell/v2"
)

// Mode selects which mini-game owns the play area.
type Mode int

const (
	ModeAttract Mode = iota
	ModeSnake
	ModePong
)

// Action is what the host should do after an input event.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRefresh
)

// paddleNudge is how far one arrow key press moves the Pong paddle.
const paddleNudge = 20

// playRow is the first screen row below the HUD.
const playRow = 1

// Scene owns every simulation shown by the terminal arcade. All methods
// must be called from the frame loop goroutine.
type Scene struct {
	screen  tcell.Screen
	surface *Surface
	session *animation.Session

	trail *trail.Engine
	flock *follower.Flock
	snake *snake.Game
	pong  *pong.Game
	hud   *HUD
	mode  Mode
}

// NewScene wires the simulations to screen. A nil clock uses the system clock.
func NewScene(screen tcell.Screen, clock frameclock.Clock, rng *rand.Rand) *Scene {
	session := animation.NewSession(clock)
	return &Scene{
		screen:  screen,
		surface: NewSurface(screen),
		session: session,
		trail:   trail.New(trail.DefaultOptions(), rng),
		flock:   follower.New(session, rng),
		snake:   snake.New(rng),
		pong:    pong.New(),
		hud:     NewHUD(),
	}
}

// Mode returns the active mini-game.
func (s *Scene) Mode() Mode {
	return s.mode
}

// HUD exposes the count display.
func (s *Scene) HUD() *HUD {
	return s.hud
}

// Snake returns the Snake game.
func (s *Scene) Snake() *snake.Game {
	return s.snake
}

// Pong returns the Pong game.
func (s *Scene) Pong() *pong.Game {
	return s.pong
}

// Handle applies one terminal event.
func (s *Scene) Handle(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		col, row := ev.Position()
		s.pointerAt(col, row)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return ActionNone
}

func (s *Scene) handleKey(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		s.steer("up", -paddleNudge)
	case tcell.KeyDown:
		s.steer("down", paddleNudge)
	case tcell.KeyLeft:
		s.steer("left", 0)
	case tcell.KeyRight:
		s.steer("right", 0)
	case tcell.KeyRune:
		return s.handleRune(ev.Rune())
	}
	return ActionNone
}

func (s *Scene) handleRune(r rune) Action {
	// WASD steering wins over the start keys while Snake is running.
	if s.mode == ModeSnake && s.snake.State() == snake.StateRunning {
		if dir, ok := snake.DirectionForKey(string(r)); ok {
			s.snake.Turn(dir)
			return ActionNone
		}
	}
	switch r {
	case 'q', 'Q':
		return ActionQuit
	case 'r', 'R':
		return ActionRefresh
	case 's', 'S':
		s.mode = ModeSnake
		s.snake.Start()
	case 'p', 'P':
		s.mode = ModePong
		s.pong.Start()
	}
	return ActionNone
}

func (s *Scene) steer(key string, paddleDY float64) {
	switch s.mode {
	case ModeSnake:
		if dir, ok := snake.DirectionForKey(key); ok {
			s.snake.Turn(dir)
		}
	case ModePong:
		if paddleDY != 0 {
			s.pong.NudgePaddle(paddleDY)
		}
	}
}

func (s *Scene) pointerAt(col, row int) {
	x := float64(col*CellWidth + CellWidth/2)
	y := float64(row*CellHeight + CellHeight/2)
	s.session.MovePointer(x, y)
	s.trail.PointerMoved(s.session.Now(), x, y)
	if s.mode == ModePong {
		s.pong.MovePaddle(y - playRow*CellHeight)
	}
}

// Step advances every simulation by one frame.
func (s *Scene) Step(dt time.Duration) {
	s.trail.Step(dt)
	s.flock.Step(dt)
	switch s.mode {
	case ModeSnake:
		s.snake.Step(dt)
	case ModePong:
		s.pong.Step(dt)
	}
	s.hud.Step(dt)
}

// Draw renders the frame without showing it.
func (s *Scene) Draw() {
	s.trail.Draw(s.surface)
	s.flock.Draw(s.surface)

	play := s.surface.At(0, playRow)
	left := "[s] snake  [p] pong  [r] refresh  [q] quit"
	switch s.mode {
	case ModeSnake:
		s.snake.Draw(play)
		left = "SNAKE  " + scoreLabel(s.snake.Score())
	case ModePong:
		s.pong.Draw(play)
		left = "PONG  " + scoreLabel(s.pong.Score())
	}
	s.hud.Draw(s.screen, s.session.Now(), left)
}
