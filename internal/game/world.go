package game

import (
	"math"
	"sync"
)

// maxReflectAngle bounds the outgoing angle after a paddle hit to ±45°
// from horizontal; the impact offset along the paddle scales within it.
const maxReflectAngle = math.Pi / 4

// Vec is an integer point or extent on the canvas grid.
type Vec struct {
	X int
	Y int
}

// Params are the physics tuning values. Zero values are not usable; start
// from DefaultParams and override.
type Params struct {
	PaddleWidth          int     // paddle width in pixels
	PaddleSpeed          int     // pixels moved per tick while Up/Down
	BallSpeed            float64 // pixels travelled per tick while moving
	PaddleHeightFraction float64 // paddle height as a fraction of field height
	PaddleGapFraction    float64 // paddle distance from its edge as a fraction of field width
}

// DefaultParams returns the stock tuning.
func DefaultParams() Params {
	return Params{
		PaddleWidth:          47,
		PaddleSpeed:          17,
		BallSpeed:            30,
		PaddleHeightFraction: 1.0 / 7.0,
		PaddleGapFraction:    1.0 / 9.0,
	}
}

// Key is one of the five logical controls the game reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyP1Up
	KeyP1Down
	KeyP2Up
	KeyP2Down
	KeyStart
)

// World is the authoritative shared game state. One instance lives for the
// whole process. The simulation driver and the input dispatcher mutate it
// under the write lock; render streamers copy fields out under the read
// lock and never hold it across I/O.
type World struct {
	mu sync.RWMutex

	params       Params
	size         Vec // playfield extent, from the canvas SIZE query
	paddleHeight int // derived once at construction

	ball       Vec     // center of the ball
	ballAngle  float64 // travel heading in radians
	ballMoving bool    // false until the first key press, and after a score

	player1 Vec // left paddle, top-left corner
	player2 Vec // right paddle, top-left corner
	intent1 Intent
	intent2 Intent
}

// NewWorld builds the starting state: ball centered and stationary, both
// paddles vertically centered at their gap columns.
func NewWorld(size Vec, params Params) *World {
	paddleHeight := int(math.Floor(params.PaddleHeightFraction * float64(size.Y)))
	gap := int(math.Floor(params.PaddleGapFraction * float64(size.X)))
	paddleY := (size.Y - paddleHeight) / 2
	return &World{
		params:       params,
		size:         size,
		paddleHeight: paddleHeight,
		ball:         Vec{size.X / 2, size.Y / 2},
		player1:      Vec{gap, paddleY},
		player2:      Vec{size.X - gap - params.PaddleWidth, paddleY},
	}
}

// Tick advances the simulation by one fixed step: paddle movement, ball
// translation, wall bounce, paddle collisions, then scoring. The order is
// load-bearing; later steps read what earlier steps wrote, and effects that
// straddle a step boundary resolve on the next tick.
func (w *World) Tick() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.movePaddle(&w.player1, w.intent1)
	w.movePaddle(&w.player2, w.intent2)

	if w.ballMoving {
		w.ball.X += int(math.Cos(w.ballAngle) * w.params.BallSpeed)
		w.ball.Y += int(math.Sin(w.ballAngle) * w.params.BallSpeed)
	}

	// Top/bottom walls reflect; left/right edges are scoring, not bounce.
	if w.ball.Y < 0 || w.ball.Y > w.size.Y {
		w.ballAngle = 2*math.Pi - w.ballAngle
		w.ball.Y = clamp(w.ball.Y, 0, w.size.Y)
	}

	w.collidePaddle1()
	w.collidePaddle2()

	if w.ball.X > w.size.X {
		// Player 1 scores. Park the ball a third of the field right of
		// center, aimed back at player 1, until the next key press.
		w.ballMoving = false
		w.ball = Vec{w.size.X/2 + w.size.X/3, w.size.Y / 2}
		w.ballAngle = math.Pi
	} else if w.ball.X < 0 {
		// Player 2 scores.
		w.ballMoving = false
		w.ball = Vec{w.size.X/2 - w.size.X/3, w.size.Y / 2}
		w.ballAngle = 0
	}
}

func (w *World) movePaddle(p *Vec, intent Intent) {
	switch intent {
	case Up:
		p.Y -= w.params.PaddleSpeed
	case Down:
		p.Y += w.params.PaddleSpeed
	}
	p.Y = clamp(p.Y, 0, w.size.Y-w.paddleHeight)
}

func (w *World) collidePaddle1() {
	if w.ball.X > w.player1.X &&
		w.ball.X < w.player1.X+w.params.PaddleWidth &&
		w.ball.Y > w.player1.Y &&
		w.ball.Y < w.player1.Y+w.paddleHeight &&
		math.Cos(w.ballAngle) < 0 {
		// Impact offset in [-1, 1] relative to the paddle center; the
		// farther from center, the sharper the outgoing angle.
		half := w.paddleHeight / 2
		offset := -float64(half-(w.ball.Y-w.player1.Y)) / float64(half)
		w.ballAngle = maxReflectAngle * offset
	}
}

func (w *World) collidePaddle2() {
	if w.ball.X > w.player2.X &&
		w.ball.X < w.player2.X+w.params.PaddleWidth &&
		w.ball.Y > w.player2.Y &&
		w.ball.Y < w.player2.Y+w.paddleHeight &&
		math.Cos(w.ballAngle) > 0 {
		half := w.paddleHeight / 2
		offset := float64(half-(w.ball.Y-w.player2.Y)) / float64(half)
		w.ballAngle = maxReflectAngle*offset - math.Pi
	}
}

// HandleKey routes one logical key transition into the intent machines.
// Any recognized press also starts the ball, both at match start and after
// a score.
func (w *World) HandleKey(key Key, pressed bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	switch {
	case key == KeyP1Up && pressed:
		w.intent1 = w.intent1.PressUp()
	case key == KeyP1Up && !pressed:
		w.intent1 = w.intent1.ReleaseUp()
	case key == KeyP1Down && pressed:
		w.intent1 = w.intent1.PressDown()
	case key == KeyP1Down && !pressed:
		w.intent1 = w.intent1.ReleaseDown()
	case key == KeyP2Up && pressed:
		w.intent2 = w.intent2.PressUp()
	case key == KeyP2Up && !pressed:
		w.intent2 = w.intent2.ReleaseUp()
	case key == KeyP2Down && pressed:
		w.intent2 = w.intent2.PressDown()
	case key == KeyP2Down && !pressed:
		w.intent2 = w.intent2.ReleaseDown()
	}

	if pressed && key != KeyNone {
		w.ballMoving = true
	}
}

// Ball returns a snapshot of the ball center.
func (w *World) Ball() Vec {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.ball
}

// Paddles returns a snapshot of both paddle top-left corners.
func (w *World) Paddles() (p1, p2 Vec) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.player1, w.player2
}

// Size returns the playfield extent. Fixed after construction.
func (w *World) Size() Vec {
	return w.size
}

// PaddleHeight returns the derived paddle height. Fixed after construction.
func (w *World) PaddleHeight() int {
	return w.paddleHeight
}

// PaddleWidth returns the configured paddle width.
func (w *World) PaddleWidth() int {
	return w.params.PaddleWidth
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
