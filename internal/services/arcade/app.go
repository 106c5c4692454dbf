// Package arcade hosts the terminal arcade: the pointer trail, ghosts,
// Snake and Pong rendered with tcell and driven by one frame loop.
package arcade

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/frameclock"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/random"
	"github.com/gdamore/tcell/v2"
)

const (
	eventInboxSize  = 64
	resultInboxSize = 4
)

// Config defines the inputs for the terminal arcade.
type Config struct {
	APIBaseURL string
	Tick       time.Duration
}

// CountFetcher loads the registration count shown in the HUD.
type CountFetcher interface {
	Fetch(ctx context.Context) (int, error)
}

type countResult struct {
	count int
	err   error
}

// Run opens the terminal and plays until the user quits or ctx ends.
func Run(ctx context.Context, config Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse()
	return Play(ctx, screen, NewCountClient(config.APIBaseURL), Options{Tick: config.Tick})
}

// Options tunes Play.
type Options struct {
	Tick  time.Duration
	Clock frameclock.Clock
	RNG   *rand.Rand
}

// Play runs the frame loop on an initialized screen and finalizes it on
// return.
func Play(ctx context.Context, screen tcell.Screen, counts CountFetcher, opts Options) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if screen == nil {
		return errors.New("screen is required")
	}
	defer screen.Fini()
	if opts.RNG == nil {
		opts.RNG = random.NewSeeded()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	scene := NewScene(screen, opts.Clock, opts.RNG)
	events := frameclock.NewInbox[tcell.Event](eventInboxSize)
	results := frameclock.NewInbox[countResult](resultInboxSize)
	loop := frameclock.NewLoop(opts.Tick)

	fetch := func() {
		if counts == nil {
			return
		}
		go func() {
			n, err := counts.Fetch(ctx)
			results.Post(countResult{count: n, err: err})
		}()
	}

	loop.Add(frameclock.StepFunc(func(dt time.Duration) {
		events.Drain(func(ev tcell.Event) {
			switch scene.Handle(ev) {
			case ActionQuit:
				loop.Stop()
			case ActionRefresh:
				fetch()
			}
		})
		results.Drain(func(res countResult) {
			if res.err != nil {
				log.Printf("arcade count fetch failed err=%v", res.err)
				scene.HUD().Fail(scene.session.Now())
				return
			}
			scene.HUD().SetCount(res.count)
		})
		scene.Step(dt)
		scene.Draw()
		screen.Show()
	}))

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events.Post(ev)
		}
	}()

	fetch()
	return loop.Run(ctx)
}
