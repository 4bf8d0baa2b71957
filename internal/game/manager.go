package game

import (
	"errors"
	"fmt"
	"time"

	"chosenoffset.com/tilewalk/internal/atlas"
	"chosenoffset.com/tilewalk/internal/logger"
	"chosenoffset.com/tilewalk/internal/render"
	"chosenoffset.com/tilewalk/internal/simulation"
	"chosenoffset.com/tilewalk/internal/world"
	"chosenoffset.com/tilewalk/internal/world/entity"
	"chosenoffset.com/tilewalk/internal/world/region"
	"chosenoffset.com/tilewalk/internal/world/store"
)

// Manager owns the store and the running game, and implements render.Game.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *simulation.Config
	Game         *Game
	Store        store.Store
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Loader       render.ResourceLoader
}

// NewManager creates a new game manager.
func NewManager(cfg *simulation.Config, r render.Renderer, input render.InputManager, loader render.ResourceLoader) *Manager {
	return &Manager{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Config:       cfg,
		Renderer:     r,
		InputMgr:     input,
		Loader:       loader,
	}
}

// Load opens storage, restores or creates the world and loads sprite sheets.
func (m *Manager) Load() error {
	log := logger.For("game")

	s, err := store.Open(m.Config.Storage.Driver, m.Config.StorageLocation())
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	m.Store = s

	w, err := NewWorld(m.Config, s, time.Now())
	if err != nil {
		s.Close()
		return err
	}

	sheets := atlas.NewManager()
	if m.Loader != nil {
		manifest := atlas.DefaultManifest()
		if m.Config.Assets.Manifest != "" {
			manifest, err = atlas.LoadManifest(m.Config.Assets.Manifest)
			if err != nil {
				s.Close()
				return err
			}
		}
		if err := sheets.LoadManifest(manifest, m.Loader, m.Config.Assets.Dir); err != nil {
			// The world still runs; missing art is drawn as flat cells.
			log.WithError(err).Warn("failed to load sprite sheets")
		}
	}

	m.Game = New(w, s, m.Renderer, m.InputMgr, sheets)
	m.Game.ScreenWidth = m.ScreenWidth
	m.Game.ScreenHeight = m.ScreenHeight
	m.Game.TilePx = m.Config.World.TilePx
	m.Game.ViewDistance = m.Config.World.ViewDistance

	log.WithField("world", w.ID).Info("game loaded")
	return nil
}

// NewWorld restores the saved world from s, or builds a fresh one in the
// configured start region.
func NewWorld(cfg *simulation.Config, s store.Store, now time.Time) (*world.World, error) {
	log := logger.For("game")

	doc, err := s.LoadWorld()
	switch {
	case err == nil:
		w, err := world.Restore(doc, s, now)
		if err != nil {
			return nil, fmt.Errorf("failed to restore world: %w", err)
		}
		if !cfg.World.Editor {
			w.Editor = nil
		}
		log.WithField("region", w.Region.Name).Info("world restored")
		return w, nil
	case !errors.Is(err, store.ErrNoWorld):
		return nil, err
	}

	r, err := s.LoadRegion(cfg.World.StartRegion, now)
	if errors.Is(err, region.ErrNotFound) {
		r = region.Starter(cfg.World.StartRegion, cfg.World.WarpRegion, now)
		log.WithField("region", r.Name).Info("generated starter region")
	} else if err != nil {
		return nil, fmt.Errorf("failed to load start region: %w", err)
	}

	w := world.New(r, entity.NewPlayer(region.StarterSpawn), s)
	w.Player.ResetAnim(now)
	w.Region.Update(w.Clock, now)
	if !cfg.World.Editor {
		w.Editor = nil
	}
	return w, nil
}

// Update updates the game state.
func (m *Manager) Update() error {
	if m.Game == nil {
		return nil
	}
	return m.Game.Update()
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	if m.Game != nil {
		m.Game.Draw(screen)
	}
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	m.ScreenWidth = outsideWidth
	m.ScreenHeight = outsideHeight
	if m.Game != nil {
		return m.Game.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Close saves the world and releases storage.
func (m *Manager) Close() error {
	if m.Store == nil {
		return nil
	}
	var errs []error
	if m.Game != nil {
		errs = append(errs, m.Game.Save())
	}
	errs = append(errs, m.Store.Close())
	m.Store = nil
	return errors.Join(errs...)
}
