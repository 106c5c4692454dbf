// Package arcade hosts server-side Snake and Pong sessions over websockets.
//
// Each connection owns one frame loop. The reader goroutine decodes client
// frames into an inbox that the loop drains at the start of every tick, so
// game state is only touched by the loop goroutine.
package arcade

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/AkshayRaj367/Game-Smiths-Club/internal/games/snake"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/frameclock"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/httpx"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/platform/timeouts"
	"github.com/AkshayRaj367/Game-Smiths-Club/internal/random"
	"golang.org/x/net/websocket"
)

const (
	frameStart  = "start"
	frameTurn   = "turn"
	framePaddle = "paddle"
	frameError  = "arcade.error"

	maxFramePayloadBytes   = 1024
	maxDecodeErrorsPerConn = 3
	inboxSize              = 32
)

// Options configures arcade sessions.
type Options struct {
	// Interval is the frame loop period; zero uses frameclock.DefaultInterval.
	Interval time.Duration
	// NewRNG seeds Snake food placement; nil uses a crypto seed.
	NewRNG func() *rand.Rand
}

func (o Options) rng() *rand.Rand {
	if o.NewRNG != nil {
		return o.NewRNG()
	}
	return random.NewSeeded()
}

type wsFrame struct {
	Type      string          `json:"type"`
	RequestID string          `json:"request_id,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

type wsError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type turnPayload struct {
	Direction string `json:"direction"`
}

type paddlePayload struct {
	Y *float64 `json:"y"`
}

// NewHandler serves /ws/arcade?game=snake|pong.
func NewHandler(opts Options) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			_ = httpx.WriteJSON(w, http.StatusMethodNotAllowed, httpx.Envelope{Message: "Method not allowed"})
			return
		}
		name := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("game")))
		if !knownGame(name) {
			_ = httpx.WriteJSON(w, http.StatusBadRequest, httpx.Envelope{Message: "Unknown game"})
			return
		}
		websocket.Handler(func(conn *websocket.Conn) {
			handleWSConn(conn, name, opts)
		}).ServeHTTP(w, r)
	})
}

func handleWSConn(conn *websocket.Conn, name string, opts Options) {
	defer func() {
		_ = conn.Close()
	}()

	game, ok := newMachine(name, opts)
	if !ok {
		return
	}
	peer := newWSPeer(conn)
	inbox := frameclock.NewInbox[input](inboxSize)
	loop := frameclock.NewLoop(opts.Interval)

	var lastVersion uint64
	sent := false
	loop.Add(frameclock.StepFunc(func(dt time.Duration) {
		inbox.Drain(game.apply)
		game.Step(dt)
		if sent && game.Version() == lastVersion {
			return
		}
		if err := peer.writeFrame(game.state()); err != nil {
			loop.Stop()
			return
		}
		lastVersion = game.Version()
		sent = true
	}))

	var wg sync.WaitGroup
	wg.Go(func() {
		_ = loop.Run(conn.Request().Context())
		// Unblock the reader when the loop ends first.
		loop.Stop()
		_ = conn.Close()
	})
	defer func() {
		loop.Stop()
		wg.Wait()
	}()

	decoder := json.NewDecoder(conn)
	decodeErrors := 0
	for !loop.Stopped() {
		var frame wsFrame
		if err := decoder.Decode(&frame); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			decodeErrors++
			_ = peer.writeError("", "INVALID_ARGUMENT", "invalid frame payload")
			if decodeErrors >= maxDecodeErrorsPerConn {
				log.Printf("arcade: closing connection game=%s decode_errors=%d err=%v", name, decodeErrors, err)
				return
			}
			continue
		}
		decodeErrors = 0

		if len(frame.Payload) > maxFramePayloadBytes {
			_ = peer.writeError(frame.RequestID, "INVALID_ARGUMENT", "payload too large")
			continue
		}
		in, err := parseInput(name, frame)
		if err != nil {
			_ = peer.writeError(frame.RequestID, "INVALID_ARGUMENT", err.Error())
			continue
		}
		if !inbox.Post(in) {
			_ = peer.writeError(frame.RequestID, "RESOURCE_EXHAUSTED", "too many pending inputs")
		}
	}
}

func parseInput(game string, frame wsFrame) (input, error) {
	switch frame.Type {
	case frameStart:
		return input{kind: frameStart}, nil
	case frameTurn:
		if game != gameSnake {
			return input{}, errors.New("turn is only supported by snake")
		}
		var payload turnPayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil {
			return input{}, errors.New("invalid turn payload")
		}
		dir, ok := snake.DirectionForKey(payload.Direction)
		if !ok {
			return input{}, errors.New("unknown direction")
		}
		return input{kind: frameTurn, dir: dir}, nil
	case framePaddle:
		if game != gamePong {
			return input{}, errors.New("paddle is only supported by pong")
		}
		var payload paddlePayload
		if err := json.Unmarshal(frame.Payload, &payload); err != nil || payload.Y == nil {
			return input{}, errors.New("invalid paddle payload")
		}
		return input{kind: framePaddle, y: *payload.Y}, nil
	default:
		return input{}, errors.New("unsupported frame type")
	}
}

type wsPeer struct {
	mu      sync.Mutex
	conn    *websocket.Conn
	encoder *json.Encoder
}

func newWSPeer(conn *websocket.Conn) *wsPeer {
	return &wsPeer{conn: conn, encoder: json.NewEncoder(conn)}
}

func (p *wsPeer) writeFrame(frame wsFrame) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.conn.SetWriteDeadline(time.Now().Add(timeouts.WebsocketWrite))
	return p.encoder.Encode(frame)
}

func (p *wsPeer) writeError(requestID, code, message string) error {
	payload, err := json.Marshal(wsError{Code: code, Message: message})
	if err != nil {
		return err
	}
	return p.writeFrame(wsFrame{Type: frameError, RequestID: requestID, Payload: payload})
}
