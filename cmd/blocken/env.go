package main

import (
	"fmt"
	"io"

	"github.com/vovakirdan/blocken/internal/audio"
	"github.com/vovakirdan/blocken/internal/config"
	"github.com/vovakirdan/blocken/internal/core"
	"github.com/vovakirdan/blocken/internal/logging"
	"github.com/vovakirdan/blocken/internal/registry"
	"github.com/vovakirdan/blocken/internal/storage"
)

// envOptions selects what newEnv wires up.
type envOptions struct {
	LogFallback io.Writer // Where logs go without --log-file; nil discards
	Audio       bool      // Start audio cues when the config enables them
}

// newEnv loads the config and opens the logger, the run journal and the
// audio device. The returned cleanup releases all of them.
func newEnv(opts envOptions) (registry.Env, func(), error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return registry.Env{}, nil, err
	}

	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	logger, logCloser, err := logging.New(logging.Options{
		Level:    level,
		File:     flagLogFile,
		Fallback: opts.LogFallback,
	})
	if err != nil {
		return registry.Env{}, nil, err
	}
	logger.Debug("config loaded", "source", cfg.Source)

	store, err := storage.OpenMemory()
	if err != nil {
		logCloser.Close()
		return registry.Env{}, nil, err
	}

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	runtime.FrameRate = flagFPS

	env := registry.Env{
		Config:  cfg,
		Runtime: runtime,
		Logger:  logger,
		Store:   store,
	}

	var sound *audio.SoundManager
	if opts.Audio && cfg.Audio.Enabled {
		sound = audio.NewSoundManager(cfg.Audio.Volume)
		if err := sound.Initialize(); err != nil {
			// The game is playable without sound.
			logger.Warn("audio disabled", "err", err)
			sound = nil
		} else {
			env.Observers = append(env.Observers, audio.NewCues(sound))
		}
	}

	cleanup := func() {
		if sound != nil {
			sound.Cleanup()
		}
		if err := store.Close(); err != nil {
			logger.Warn("cannot close run journal", "err", err)
		}
		logCloser.Close()
	}
	return env, cleanup, nil
}

// runFrontend creates a registered frontend and runs it.
func runFrontend(id string, env registry.Env) error {
	fe, err := registry.Create(id)
	if err != nil {
		return err
	}
	env.Logger.Info("starting", "frontend", fe.Title(), "seed", env.Runtime.Seed)
	if err := fe.Run(env); err != nil {
		return fmt.Errorf("%s: %w", fe.ID(), err)
	}
	return nil
}
