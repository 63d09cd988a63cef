// Package render holds the pixel streamers: unpaced loops that re-emit a
// game object's sprite to the canvas for as long as the connection lasts.
// The remote canvas retains pixels, so redrawing faster only reduces
// ghosting where a sprite used to be; it never changes game state.
package render

import (
	"image/color"

	"pongxelflut/internal/game"
)

// PixelSink is the slice of the canvas client a streamer writes through.
type PixelSink interface {
	SetPixel(x, y int, c color.RGBA) error
	Flush() error
}

// Style is the shared sprite look: filled body with a contrasting border.
type Style struct {
	BallSize    int // edge length of the ball square
	BorderWidth int
	Fill        color.RGBA
	Border      color.RGBA
}

// isBorder reports whether sprite-local (x, y) falls in the border band of
// a w×h sprite.
func (s Style) isBorder(x, y, w, h int) bool {
	return x < s.BorderWidth || x > w-s.BorderWidth ||
		y < s.BorderWidth || y > h-s.BorderWidth
}

// BallSource is the world slice the ball streamer reads.
type BallSource interface {
	Ball() game.Vec
}

// BallStreamer repaints the ball square around its current center.
type BallStreamer struct {
	World BallSource
	Sink  PixelSink
	Style Style
}

// Run repaints forever, as fast as the sink accepts writes. It returns on
// the first write error; the supervisor reconnects and starts over.
func (s *BallStreamer) Run() error {
	for {
		if err := s.frame(); err != nil {
			return err
		}
	}
}

// frame snapshots the ball center, then paints one full sprite. The
// snapshot is taken before any network write so the world lock is never
// held across I/O.
func (s *BallStreamer) frame() error {
	center := s.World.Ball()
	left := center.X - s.Style.BallSize/2
	top := center.Y - s.Style.BallSize/2
	for x := 0; x < s.Style.BallSize; x++ {
		for y := 0; y < s.Style.BallSize; y++ {
			col := s.Style.Fill
			if s.Style.isBorder(x, y, s.Style.BallSize, s.Style.BallSize) {
				col = s.Style.Border
			}
			if err := s.Sink.SetPixel(left+x, top+y, col); err != nil {
				return err
			}
		}
	}
	return s.Sink.Flush()
}

// PaddleSource is the world slice the paddle streamer reads.
type PaddleSource interface {
	Paddles() (p1, p2 game.Vec)
	PaddleWidth() int
	PaddleHeight() int
}

// PaddleStreamer repaints both paddles, interleaving their pixels so the
// two rectangles stay equally fresh.
type PaddleStreamer struct {
	World PaddleSource
	Sink  PixelSink
	Style Style
}

// Run repaints forever; same contract as BallStreamer.Run.
func (s *PaddleStreamer) Run() error {
	for {
		if err := s.frame(); err != nil {
			return err
		}
	}
}

func (s *PaddleStreamer) frame() error {
	p1, p2 := s.World.Paddles()
	width := s.World.PaddleWidth()
	height := s.World.PaddleHeight()
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			col := s.Style.Fill
			if s.Style.isBorder(x, y, width, height) {
				col = s.Style.Border
			}
			if err := s.Sink.SetPixel(p1.X+x, p1.Y+y, col); err != nil {
				return err
			}
			if err := s.Sink.SetPixel(p2.X+x, p2.Y+y, col); err != nil {
				return err
			}
		}
	}
	return s.Sink.Flush()
}
