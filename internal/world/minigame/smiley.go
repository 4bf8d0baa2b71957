package minigame

import (
	"image"
	"image/color"
	"time"

	"chosenoffset.com/tilewalk/internal/core/input"
	"chosenoffset.com/tilewalk/internal/world/animation"
)

const (
	SmileyWinKind     = "smiley_win"
	SmileyWinDuration = 5000 * time.Millisecond

	SmileySheet  = "smile"
	SmileySize   = 400
	smileyMargin = 50
)

func init() {
	Register(SmileyWinKind, func() Minigame { return &SmileyWin{} })
}

// SmileyWin shows a smiling face and succeeds once it has been on screen
// for SmileyWinDuration. Keys are ignored.
type SmileyWin struct {
	start time.Time
}

func (s *SmileyWin) Kind() string { return SmileyWinKind }

func (s *SmileyWin) Reset(now time.Time) {
	s.start = now
}

func (s *SmileyWin) Update(now time.Time) Result {
	if s.Elapsed(now) >= SmileyWinDuration {
		return Success
	}
	return Processing
}

func (s *SmileyWin) KeyDown(input.Command) {}
func (s *SmileyWin) KeyUp(input.Command)   {}

func (s *SmileyWin) Draw(now time.Time, screen image.Rectangle) []animation.Blit {
	dst := screen.Inset(smileyMargin)
	return []animation.Blit{{
		Sheet: SmileySheet,
		Src:   image.Rect(0, 0, SmileySize, SmileySize),
		Dst: animation.Rect{
			X: float32(dst.Min.X),
			Y: float32(dst.Min.Y),
			W: float32(dst.Dx()),
			H: float32(dst.Dy()),
		},
		Tint: color.RGBA{255, 255, 255, 255},
	}}
}

func (s *SmileyWin) Elapsed(now time.Time) time.Duration {
	if s.start.IsZero() {
		return 0
	}
	return now.Sub(s.start)
}

func (s *SmileyWin) Resume(now time.Time, elapsed time.Duration) {
	s.start = now.Add(-elapsed)
}
