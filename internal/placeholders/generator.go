// Package placeholders draws flat-colour sprite sheets laid out exactly as
// the built-in animation tables expect, so the game runs before real art
// exists.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"chosenoffset.com/tilewalk/internal/atlas"
	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/animation"
	"chosenoffset.com/tilewalk/internal/world/entity"
	"chosenoffset.com/tilewalk/internal/world/minigame"
	"chosenoffset.com/tilewalk/internal/world/tile"
)

// Palette colours occupants by kind name.
var Palette = map[string]color.RGBA{
	// Tiles
	"base_ground": {70, 65, 60, 255},
	"base_pillar": {130, 125, 115, 255},
	"door":        {140, 100, 60, 255},
	"edge":        {90, 90, 90, 255},
	"grass":       {60, 140, 60, 255},
	"invis_wall":  {0, 0, 0, 0},
	"moon":        {200, 200, 230, 255},
	"sun":         {255, 215, 0, 255},
	"smiley_man":  {255, 180, 60, 255},
	"stair":       {110, 100, 90, 255},
	"warp":        {80, 60, 140, 255},
	"boulder":     {120, 110, 100, 255},
	"cliff_edge":  {100, 80, 60, 255},
	"cliff_face":  {80, 60, 45, 255},
	"rock":        {150, 145, 140, 255},
	"honeycomb":   {230, 170, 30, 255},
	"arrow":       {220, 60, 60, 255},

	// Entities
	"player":  {0, 255, 100, 255},
	"walker":  {255, 50, 50, 255},
	"button":  {200, 0, 200, 255},
	"one_way": {255, 140, 0, 255},
}

// Fallback colour for names missing from the palette.
var Fallback = color.RGBA{200, 200, 200, 255}

// NightFactor darkens the night column drawn next to every frame.
const NightFactor = 0.5

// Sheet accumulates the frames one sprite sheet must contain.
type Sheet struct {
	Name   string
	Size   animation.Size
	frames map[animation.Frame]color.RGBA
}

// NewSheet creates an empty sheet with the given frame size.
func NewSheet(name string, size animation.Size) *Sheet {
	return &Sheet{Name: name, Size: size, frames: make(map[animation.Frame]color.RGBA)}
}

// AddAnimation records every frame a has, coloured col. Frames already
// claimed keep their first colour.
func (s *Sheet) AddAnimation(a animation.Animation, col color.RGBA) {
	s.add(a.Default, col)
	for _, seq := range a.Sequences {
		for _, f := range seq.Frames {
			s.add(f, col)
		}
	}
}

func (s *Sheet) add(f animation.Frame, col color.RGBA) {
	if _, ok := s.frames[f]; !ok {
		s.frames[f] = col
	}
}

// Len returns the number of distinct frames.
func (s *Sheet) Len() int {
	return len(s.frames)
}

// Image draws the sheet. Every frame gets a bordered cell at its padded
// source rect, and its right-hand neighbour a darker copy for night.
func (s *Sheet) Image() *image.RGBA {
	var maxCol, maxRow uint16
	for f := range s.frames {
		maxCol = max(maxCol, f.Col)
		maxRow = max(maxRow, f.Row)
	}
	stepX := s.Size.W + 2*animation.Padding
	stepY := s.Size.H + 2*animation.Padding
	img := image.NewRGBA(image.Rect(0, 0, (int(maxCol)+2)*stepX, (int(maxRow)+1)*stepY))

	// Fill with transparent background
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{0, 0, 0, 0}}, image.Point{}, draw.Src)

	// Night cells first so a real frame in the neighbouring column wins.
	for f, col := range s.frames {
		night := animation.Frame{Col: f.Col + 1, Row: f.Row}
		if _, taken := s.frames[night]; !taken {
			fillCell(img, animation.SourceRect(night, s.Size), Darken(col, NightFactor))
		}
	}
	for f, col := range s.frames {
		fillCell(img, animation.SourceRect(f, s.Size), col)
	}
	return img
}

func fillCell(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r, &image.Uniform{col}, image.Point{}, draw.Src)
	border := Darken(col, 0.7)
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, border)
		img.Set(x, r.Max.Y-1, border)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, border)
		img.Set(r.Max.X-1, y, border)
	}
}

func colorFor(name string) color.RGBA {
	if c, ok := Palette[name]; ok {
		return c
	}
	return Fallback
}

// BuildSheets returns one sheet per built-in sprite sheet, covering every
// kind in every orientation.
func BuildSheets() []*Sheet {
	tiles := NewSheet(tile.Sheet, tile.FrameSize)
	for _, k := range tile.Catalog {
		for _, v := range space.Variants {
			tiles.AddAnimation(tile.DefaultAnimation(k, v), colorFor(k.String()))
		}
	}

	entities := NewSheet(entity.Sheet, entity.FrameSize)
	for _, k := range entity.Catalog {
		for _, v := range space.Variants {
			entities.AddAnimation(entity.DefaultAnimation(k, v), colorFor(k.String()))
		}
	}

	player := NewSheet(entity.PlayerSheet, entity.PlayerFrameSize)
	player.AddAnimation(entity.DefaultAnimation(entity.Player, space.Center), colorFor(entity.Player.String()))

	return []*Sheet{tiles, entities, player}
}

// CreateSmiley draws the minigame face.
func CreateSmiley(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	center := size / 2
	radius := size/2 - 2
	face := color.RGBA{255, 215, 0, 255}
	ink := color.RGBA{40, 30, 20, 255}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-center, y-center
			distSq := dx*dx + dy*dy
			switch {
			case distSq <= radius*radius:
				img.Set(x, y, face)
			case distSq <= (radius+2)*(radius+2):
				img.Set(x, y, ink)
			}
		}
	}

	// Eyes
	eye := size / 12
	for _, ex := range []int{center - size/6, center + size/6} {
		ey := center - size/8
		for y := -eye; y <= eye; y++ {
			for x := -eye; x <= eye; x++ {
				if x*x+y*y <= eye*eye {
					img.Set(ex+x, ey+y, ink)
				}
			}
		}
	}

	// Mouth: lower half of a ring
	inner, outer := size/4, size/4+size/30
	for y := center; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := x-center, y-center
			d := dx*dx + dy*dy
			if d >= inner*inner && d <= outer*outer {
				img.Set(x, y, ink)
			}
		}
	}
	return img
}

// GenerateAndSave writes every placeholder sheet under dir at the paths
// the default atlas manifest expects.
func GenerateAndSave(dir string) error {
	images := make(map[string]image.Image)
	for _, s := range BuildSheets() {
		images[s.Name] = s.Image()
	}
	images[minigame.SmileySheet] = CreateSmiley(minigame.SmileySize)

	manifest := atlas.DefaultManifest()
	for _, sc := range manifest.Sheets {
		img, ok := images[sc.Name]
		if !ok {
			return fmt.Errorf("no placeholder for sheet %s", sc.Name)
		}
		path := manifest.Resolve(sc, dir)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
		}
		if err := SavePNG(img, path); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("  wrote %s (%dx%d)\n", path, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return nil
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
