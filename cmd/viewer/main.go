package main

import (
	"flag"

	"github.com/automoto/doomerang-ai/arena"
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/logger"
	"github.com/automoto/doomerang-ai/viewer"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelName := flag.String("level", "arena", "Bundled arena to view")
	levelFile := flag.String("file", "", "TMX file to view instead of a bundled arena")
	configPath := flag.String("config", "", "YAML tuning overrides")
	difficulty := flag.String("difficulty", config.Arena.Difficulty, "Difficulty preset: easy, normal or hard")
	width := flag.Int("width", 640, "Viewport width in pixels")
	height := flag.Int("height", 360, "Viewport height in pixels")
	scale := flag.Int("scale", 2, "Window scale")
	flag.Parse()

	logger.Init()
	log := logger.Log

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.WithError(err).Fatal("failed to load config")
		}
	}
	preset, _ := config.ParseDifficulty(*difficulty)

	level, err := arena.LoadLevel(*levelName, *levelFile)
	if err != nil {
		log.WithError(err).Fatal("failed to load level")
	}
	a, err := arena.New(level, arena.Options{Difficulty: preset, Log: log})
	if err != nil {
		log.WithError(err).Fatal("failed to build arena")
	}

	ebiten.SetWindowSize(*width**scale, *height**scale)
	ebiten.SetWindowTitle("doomerang-ai: " + level.Name)
	ebiten.SetTPS(a.TickRate())

	if err := ebiten.RunGame(viewer.New(a, *width, *height)); err != nil {
		log.WithError(err).Fatal("viewer exited")
	}
}
