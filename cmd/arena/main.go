package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/doomerang-ai/arena"
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/logger"
	"github.com/automoto/doomerang-ai/systems"
)

func main() {
	levelName := flag.String("level", "arena", "Bundled arena to run")
	levelFile := flag.String("file", "", "TMX file to run instead of a bundled arena")
	configPath := flag.String("config", "", "YAML tuning overrides")
	watch := flag.Bool("watch", false, "Reload -config when it changes (requires -realtime)")
	difficulty := flag.String("difficulty", "", "Difficulty preset: easy, normal or hard (default from -config, then the profile)")
	seconds := flag.Float64("seconds", 30, "Simulated seconds to run")
	realtime := flag.Bool("realtime", false, "Tick on a wall clock instead of as fast as possible")
	remember := flag.Bool("profile", true, "Load and save the last run profile")
	flag.Parse()

	logger.Init()
	log := logger.Log

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var profile *systems.Profile
	if *remember {
		if err := systems.InitPersistence(); err == nil {
			profile, _ = systems.LoadProfile()
		}
		if profile != nil {
			if !set["level"] && !set["file"] && profile.Level != "" {
				*levelName = profile.Level
			}
			if !set["seconds"] && profile.Seconds > 0 {
				*seconds = profile.Seconds
			}
		}
	}

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.WithError(err).Fatal("failed to load config")
		}
	}

	name := resolveDifficulty(*difficulty, set["difficulty"], *configPath != "", profile)
	preset, ok := config.ParseDifficulty(name)
	if !ok {
		log.WithField("difficulty", name).Warn("unknown difficulty, using normal")
	}

	level, err := arena.LoadLevel(*levelName, *levelFile)
	if err != nil {
		log.WithError(err).Fatal("failed to load level")
	}

	a, err := arena.New(level, arena.Options{Difficulty: preset, Log: log})
	if err != nil {
		log.WithError(err).Fatal("failed to build arena")
	}

	if *realtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		loop := arena.NewGameLoop(a, 0).StopAfter(int(*seconds * float64(a.TickRate())))
		if set["difficulty"] {
			loop.PinDifficulty()
		}
		if *watch && *configPath != "" {
			w, err := config.NewWatcher(*configPath)
			if err != nil {
				log.WithError(err).Fatal("failed to watch config")
			}
			defer w.Close()
			loop.WatchConfig(w, *configPath)
		}
		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("game loop failed")
		}
	} else {
		a.Run(*seconds)
	}

	summary := a.Summary()
	if err := summary.WriteText(os.Stdout); err != nil {
		log.WithError(err).Error("failed to write summary")
	}

	if *remember {
		if profile == nil {
			profile = &systems.Profile{}
		}
		if *levelFile == "" {
			profile.Level = level.Name
		}
		profile.Difficulty = preset.String()
		profile.Seconds = *seconds
		profile.Record(summary.TotalKills())
		_ = systems.SaveProfile(profile)
	}
}

// resolveDifficulty picks the preset name: an explicit flag wins, then a
// loaded config file, then the saved profile, then the built-in default.
// It must run after config.LoadFile.
func resolveDifficulty(flagValue string, flagSet, configLoaded bool, profile *systems.Profile) string {
	switch {
	case flagSet:
		return flagValue
	case configLoaded:
		return config.Arena.Difficulty
	case profile != nil && profile.Difficulty != "":
		return profile.Difficulty
	}
	return config.Arena.Difficulty
}
