package placeholders

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/tilewalk/internal/atlas"
	"chosenoffset.com/tilewalk/internal/core/space"
	"chosenoffset.com/tilewalk/internal/world/animation"
	"chosenoffset.com/tilewalk/internal/world/tile"
)

func TestSheetCoversEveryFrame(t *testing.T) {
	for _, s := range BuildSheets() {
		img := s.Image()
		if s.Len() == 0 {
			t.Errorf("Sheet %s has no frames", s.Name)
		}
		for f := range s.frames {
			for _, fr := range []animation.Frame{f, {Col: f.Col + 1, Row: f.Row}} {
				r := animation.SourceRect(fr, s.Size)
				if !r.In(img.Bounds()) {
					t.Errorf("Sheet %s: frame %v at %v outside %v", s.Name, fr, r, img.Bounds())
				}
			}
		}
	}
}

func TestFrameColour(t *testing.T) {
	s := NewSheet(tile.Sheet, tile.FrameSize)
	a := tile.DefaultAnimation(tile.Grass, space.Center)
	s.AddAnimation(a, Palette["grass"])
	img := s.Image()

	r := animation.SourceRect(a.Default, s.Size)
	mid := img.RGBAAt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
	if mid != Palette["grass"] {
		t.Errorf("Expected grass colour %v, got %v", Palette["grass"], mid)
	}

	night := animation.SourceRect(animation.Frame{Col: a.Default.Col + 1, Row: a.Default.Row}, s.Size)
	nmid := img.RGBAAt((night.Min.X+night.Max.X)/2, (night.Min.Y+night.Max.Y)/2)
	if nmid != Darken(Palette["grass"], NightFactor) {
		t.Errorf("Expected darkened night cell, got %v", nmid)
	}
}

func TestEveryKindHasAColour(t *testing.T) {
	for _, k := range tile.Catalog {
		if _, ok := Palette[k.String()]; !ok {
			t.Errorf("Expected palette entry for tile %s", k)
		}
	}
}

func TestGenerateAndSave(t *testing.T) {
	dir := t.TempDir()
	if err := GenerateAndSave(dir); err != nil {
		t.Fatalf("GenerateAndSave failed: %v", err)
	}

	m := atlas.DefaultManifest()
	for _, sc := range m.Sheets {
		f, err := os.Open(filepath.Join(dir, sc.ImagePath))
		if err != nil {
			t.Fatalf("Expected %s written: %v", sc.Name, err)
		}
		if _, err := png.Decode(f); err != nil {
			t.Errorf("Sheet %s is not a valid PNG: %v", sc.Name, err)
		}
		f.Close()
	}
}
