package main

import (
	"flag"
	"os"

	"chosenoffset.com/tilewalk/internal/game"
	"chosenoffset.com/tilewalk/internal/logger"
	ebitenrender "chosenoffset.com/tilewalk/internal/render/ebiten"
	"chosenoffset.com/tilewalk/internal/simulation"
)

func main() {
	configPath := flag.String("config", "tilewalk.json", "path to the JSON config file")
	flag.Parse()

	logger.Init()
	log := logger.For("main")

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	// Environment overrides the config file.
	level, format := cfg.Log.Level, cfg.Log.Format
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		format = v
	}
	logger.Configure(level, format)

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	gameManager := game.NewManager(cfg, renderer, inputMgr, loader)
	if err := gameManager.Load(); err != nil {
		log.WithError(err).Fatal("failed to load game")
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Info("starting game")
	runErr := engine.RunGame(gameManager)
	if err := gameManager.Close(); err != nil {
		log.WithError(err).Error("failed to save on shutdown")
	}
	if runErr != nil {
		log.WithError(runErr).Fatal("game loop failed")
	}
}
