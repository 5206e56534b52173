package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-sweeper/audio"
	"github.com/lixenwraith/vi-sweeper/board"
	"github.com/lixenwraith/vi-sweeper/config"
	"github.com/lixenwraith/vi-sweeper/core"
	"github.com/lixenwraith/vi-sweeper/render"
	"github.com/lixenwraith/vi-sweeper/session"
)

func main() {
	// Panic Recovery: ensure the terminal is restored even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := setupLogging(cfg.Debug, cfg.LogLevel)
	if logFile != nil {
		defer logFile.Close()
	}

	level, err := cfg.Difficulty()
	if errors.Is(err, config.ErrUnknownLevel) || errors.Is(err, config.ErrIncompleteSize) {
		logger.Warn().Err(err).Str("fallback", level.Name).Msg("using preset level")
	}

	var opts []board.Option
	if cfg.Seed != 0 {
		opts = append(opts, board.WithSeed(cfg.Seed))
	}
	b, err := board.New(level.Rows, level.Cols, level.Mines, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid board: %v\n", err)
		os.Exit(1)
	}
	logger.Info().
		Str("level", level.Name).
		Int("rows", level.Rows).
		Int("cols", level.Cols).
		Int("mines", level.Mines).
		Uint64("seed", cfg.Seed).
		Msg("board created")

	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.Audio
	audioCfg.MasterVolume = cfg.MasterVolume()
	sounds := audio.NewSoundManager(audioCfg)
	defer sounds.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.RegisterScreen(screen)
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	// Speaker init may block on the device; plays before it completes are dropped
	core.Go(func() { startAudio(sounds, logger) })

	renderer := render.NewBoardRenderer(screen, render.ParseGlyphSet(cfg.Glyphs))
	game := session.New(b, renderer,
		session.WithSounds(sounds),
		session.WithLogger(logger.With().Str("component", "session").Logger()),
	)
	game.Render()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		if !game.HandleEvent(ev) {
			return
		}
	}
}

// startAudio opens the speaker; failure is non-fatal and the game runs silent
func startAudio(sounds *audio.SoundManager, logger zerolog.Logger) {
	if err := sounds.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable")
		return
	}
	logger.Info().Bool("muted", sounds.IsMuted()).Msg("audio started")
}
