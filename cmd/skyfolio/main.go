package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/skyfolio/audio"
	"github.com/lixenwraith/skyfolio/config"
	"github.com/lixenwraith/skyfolio/core"
	"github.com/lixenwraith/skyfolio/engine"
	"github.com/lixenwraith/skyfolio/game/flappy"
	"github.com/lixenwraith/skyfolio/game/skysim"
	"github.com/lixenwraith/skyfolio/input"
	"github.com/lixenwraith/skyfolio/logging"
	"github.com/lixenwraith/skyfolio/parameter"
	"github.com/lixenwraith/skyfolio/render"
	"github.com/lixenwraith/skyfolio/store"
)

func main() {
	// Panic recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "skyfolio: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "skyfolio: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log, logCloser, err := logging.Setup(logging.Options{
		Debug: cfg.Log.Debug,
		Dir:   cfg.Log.Dir,
		Level: cfg.Log.Level,
	})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer logCloser.Close()

	log.Info().
		Str("game", cfg.Game).
		Dur("tick", cfg.Tick).
		Str("config_file", cfg.File).
		Msg("Starting skyfolio")

	scores, closeStore := openStore(cfg, log)
	defer closeStore()

	bus := engine.NewBus()
	bus.Subscribe(engine.SinkFunc(func(ev engine.Event) {
		log.Debug().Str("kind", ev.Kind.String()).Int("value", ev.Value).Str("reason", ev.Reason).Msg("Game event")
	}))

	metrics, err := engine.NewMetrics()
	if err != nil {
		log.Warn().Err(err).Msg("Metrics unavailable")
	} else {
		bus.Subscribe(metrics)
	}

	var sound *audio.SoundManager
	if cfg.Audio.Enabled {
		sound = audio.NewSoundManager(log)
		if err := sound.Initialize(); err != nil {
			log.Warn().Err(err).Msg("Audio initialization failed, continuing without audio")
			sound = nil
		} else {
			defer sound.Cleanup()
			bus.Subscribe(sound)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	log.Debug().Uint64("seed", seed).Msg("Random source seeded")

	rules, err := newRules(cfg, rng, bus, log)
	if err != nil {
		return err
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	core.RegisterScreen(screen)
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()

	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground.TCell()))
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	canvas := render.NewCanvas(cfg.Surface.Width, cfg.Surface.Height, cols, rows)

	driver := engine.NewDriver(rules, canvas, engine.Options{
		Scores:  scores,
		Sink:    bus,
		Logger:  log,
		Metrics: metrics,
		Present: func() { canvas.Flush(screen) },
	})

	inputs := make(chan input.Event, parameter.InputQueueSize)
	scheduler := engine.NewScheduler(driver, inputs, cfg.Tick, log)
	scheduler.OnResize = func(width, height int) {
		canvas.Resize(width, height)
		screen.Sync()
	}

	// Event polling goroutine, only forwards translated input
	machine := input.NewMachine()
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			translated, ok := machine.Translate(ev)
			if !ok {
				continue
			}
			forward(translated, inputs, sound, log)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = scheduler.Run(ctx)
	log.Info().Uint64("ticks", scheduler.TickCount()).Int("high_score", driver.HighScore()).Msg("Shutting down")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// forward hands the mute toggle to audio and queues everything else for the tick loop
// A full queue drops the event
func forward(ev input.Event, inputs chan<- input.Event, sound *audio.SoundManager, log zerolog.Logger) {
	if ev.Intent == input.IntentMute {
		if sound != nil {
			sound.HandleIntent(ev.Intent)
		}
		return
	}
	select {
	case inputs <- ev:
	default:
		log.Warn().Str("intent", ev.Intent.String()).Msg("Input queue full, event dropped")
	}
}

func newRules(cfg *config.Config, rng *rand.Rand, sink engine.Sink, log zerolog.Logger) (engine.Rules, error) {
	switch cfg.Game {
	case parameter.GameSkySim:
		return skysim.New(rng, sink, cfg.Surface.Width, cfg.Surface.Height, log), nil
	case parameter.GameFlappy:
		return flappy.New(rng, sink), nil
	default:
		return nil, fmt.Errorf("unknown game %q", cfg.Game)
	}
}

// openStore falls back to in-memory scores when persistence is off or unavailable
func openStore(cfg *config.Config, log zerolog.Logger) (store.Store, func()) {
	if !cfg.Store.Enabled {
		return store.NewMemory(), func() {}
	}

	sqlStore, err := store.OpenSQLite(cfg.Store.Path, log)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Store.Path).Msg("High score store unavailable, scores will not persist")
		return store.NewMemory(), func() {}
	}
	return sqlStore, func() {
		if err := sqlStore.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close store")
		}
	}
}
