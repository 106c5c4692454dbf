package arcade

import (
	"encoding/json"
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/games/pong"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/games/snake"
)

const (
	gameSnake = "snake"
	gamePong  = "pong"
)

// input is a decoded client frame handed to the loop goroutine.
type input struct {
	kind string
	dir  snake.Dir
	y    float64
}

// machine is the per-connection game model driven by the frame loop.
type machine interface {
	apply(in input)
	Step(dt time.Duration)
	Version() uint64
	state() wsFrame
}

func knownGame(name string) bool {
	return name == gameSnake || name == gamePong
}

func newMachine(name string, opts Options) (machine, bool) {
	switch name {
	case gameSnake:
		return &snakeMachine{game: snake.New(opts.rng())}, true
	case gamePong:
		return &pongMachine{game: pong.New()}, true
	default:
		return nil, false
	}
}

type snakeMachine struct {
	game *snake.Game
}

func (m *snakeMachine) apply(in input) {
	switch in.kind {
	case frameStart:
		m.game.Start()
	case frameTurn:
		m.game.Turn(in.dir)
	}
}

func (m *snakeMachine) Step(dt time.Duration) { m.game.Step(dt) }
func (m *snakeMachine) Version() uint64       { return m.game.Version() }

func (m *snakeMachine) state() wsFrame {
	return stateFrame("snake.state", m.game.Snapshot())
}

type pongMachine struct {
	game *pong.Game
}

func (m *pongMachine) apply(in input) {
	switch in.kind {
	case frameStart:
		m.game.Start()
	case framePaddle:
		m.game.MovePaddle(in.y)
	}
}

func (m *pongMachine) Step(dt time.Duration) { m.game.Step(dt) }
func (m *pongMachine) Version() uint64       { return m.game.Version() }

func (m *pongMachine) state() wsFrame {
	return stateFrame("pong.state", m.game.Snapshot())
}

func stateFrame(kind string, snapshot any) wsFrame {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		// Snapshots are plain structs; this cannot fail.
		payload = []byte("{}")
	}
	return wsFrame{Type: kind, Payload: payload}
}
