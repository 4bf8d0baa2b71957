package animation

import (
	"image"
	"image/color"
	"time"
)

// Padding is the transparent border around every frame on a sheet.
const Padding = 1

// Rect is a destination rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float32
}

// Blit is a fully resolved draw request: copy Src from Sheet into Dst,
// multiplied by Tint.
type Blit struct {
	Sheet string
	Src   image.Rectangle
	Dst   Rect
	Tint  color.RGBA
	// Depth orders blits; lower draws first.
	Depth float32
}

// SourceRect returns the pixel rectangle of a frame on a padded sheet.
func SourceRect(f Frame, size Size) image.Rectangle {
	x0 := int(f.Col)*(size.W+2*Padding) + Padding
	y0 := int(f.Row)*(size.H+2*Padding) + Padding
	return image.Rect(x0, y0, x0+size.W, y0+size.H)
}

// Blit resolves the current frame into a draw request. At night the frame
// one column to the right is used; sheets keep their night-shaded copy
// there.
func (a *Animation) Blit(now time.Time, dst Rect, night bool, tint color.RGBA) Blit {
	f := a.FrameAt(now)
	if night {
		f.Col++
	}
	return Blit{
		Sheet: a.Sheet,
		Src:   SourceRect(f, a.FrameSize),
		Dst:   dst,
		Tint:  tint,
	}
}
