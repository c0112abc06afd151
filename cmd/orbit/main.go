package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/orbit/asset"
	"github.com/lixenwraith/orbit/audio"
	"github.com/lixenwraith/orbit/behavior"
	"github.com/lixenwraith/orbit/config"
	"github.com/lixenwraith/orbit/core"
	"github.com/lixenwraith/orbit/engine"
	"github.com/lixenwraith/orbit/input"
	"github.com/lixenwraith/orbit/physics"
	"github.com/lixenwraith/orbit/render"
	"github.com/lixenwraith/orbit/service"
	"github.com/lixenwraith/orbit/status"
	"github.com/lixenwraith/orbit/terminal"
)

type options struct {
	configPath string
	assetsDir  string
	logPath    string
	debug      bool
	seed       int64
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "orbit: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("orbit", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	fs.StringVar(&opts.assetsDir, "assets", "", "directory with rocket/, garbage/, explosion/ and game_over.txt")
	fs.StringVar(&opts.logPath, "log", "", "log file path (default: none, logs/orbit.log with -debug)")
	fs.BoolVar(&opts.debug, "debug", false, "debug logging, obstacle frames and status line")
	fs.Int64Var(&opts.seed, "seed", 0, "random seed (0 = time based)")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

// loadConfig applies flags over the file or built-in settings
func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.assetsDir != "" {
		cfg.Assets.Dir = opts.assetsDir
	}
	if opts.debug {
		cfg.Debug.ObstacleFrames = true
		cfg.Debug.StatusLine = true
	}
	if _, err := audio.ParseMode(cfg.Audio.Mode); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func loadAssets(cfg *config.Config) (*asset.Frames, *asset.Timeline, error) {
	var (
		frames *asset.Frames
		err    error
	)
	if cfg.Assets.Dir != "" {
		frames, err = asset.LoadDir(cfg.Assets.Dir)
	} else {
		frames, err = asset.Default()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load frames: %w", err)
	}

	var timeline *asset.Timeline
	if cfg.Assets.Timeline != "" {
		timeline, err = asset.LoadTimeline(cfg.Assets.Timeline)
	} else {
		timeline, err = asset.DefaultTimeline()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load timeline: %w", err)
	}
	return frames, timeline, nil
}

func run() error {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	frames, timeline, err := loadAssets(cfg)
	if err != nil {
		return err
	}

	session := uuid.NewString()
	log, closeLog, err := newLogger(cfg.Logging, logPath(cfg.Logging, opts.logPath, opts.debug), opts.debug, session)
	if err != nil {
		return err
	}
	defer closeLog()
	core.SetCrashLogger(log)

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting", zap.Int64("seed", seed), zap.Duration("tick", cfg.Loop.Tick), zap.String("policy", cfg.Garbage.Policy))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	keyboard := input.NewKeyboard(input.KeyboardConfig{OnQuit: stop, Logger: log})
	hub, err := newHub(log, keyboard, cfg)
	if err != nil {
		return err
	}
	if err := hub.InitAll(); err != nil {
		return err
	}
	defer hub.StopAll()

	// Behavior panics unwind through here before the deferred StopAll
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := hub.StartAll(); err != nil {
		return err
	}
	log.Info("services started", zap.Strings("services", hub.Names()))

	term := service.MustGet[*terminal.TerminalService](hub, "terminal")
	sound := service.MustGet[*audio.AudioService](hub, "audio")

	screen := render.NewScreen(term.Screen(), cfg.Playfield.Border)
	screen.DrawBorder()

	metrics := status.NewRegistry()
	world := engine.NewWorld(engine.WorldConfig{
		Canvas:    screen,
		Controls:  keyboard,
		Sound:     sound.Player(),
		Rand:      rand.New(rand.NewSource(seed)),
		Logger:    log,
		Border:    cfg.Playfield.Border,
		StartYear: cfg.Years.Start,
	})
	scheduler := engine.NewScheduler(world, engine.SchedulerConfig{Tick: cfg.Loop.Tick, Metrics: metrics})

	spawnScene(world, scheduler, cfg, frames, timeline, metrics, seed)
	log.Info("scene ready", zap.Int("rows", world.Rows), zap.Int("columns", world.Columns), zap.Int("live", scheduler.Live()))

	if err := scheduler.Run(ctx); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	log.Info("quit",
		zap.Uint64("ticks", scheduler.Ticks()),
		zap.Int("year", world.State.Year()),
		zap.Bool("game_over", world.State.GameOver()),
		zap.Int64("dropped_keys", keyboard.Dropped()),
	)
	return nil
}

// newHub registers the terminal and the audio service that rings its bell
func newHub(log *zap.Logger, keyboard *input.Keyboard, cfg *config.Config) (*service.Hub, error) {
	mode, err := audio.ParseMode(cfg.Audio.Mode)
	if err != nil {
		return nil, err
	}
	term := terminal.NewService(nil, log)
	hub := service.NewHub(log)
	if err := hub.Register(term, keyboard); err != nil {
		return nil, err
	}
	if err := hub.Register(audio.NewService(term, log), audio.Config{Mode: mode, Volume: cfg.Audio.Volume}); err != nil {
		return nil, err
	}
	return hub, nil
}

// spawnScene adds the initial behaviors in draw order: stars below everything else
func spawnScene(w *engine.World, s *engine.Scheduler, cfg *config.Config, frames *asset.Frames, timeline *asset.Timeline, metrics *status.Registry, seed int64) {
	phases := make([]behavior.TickRange, len(cfg.Stars.Phases))
	for i, p := range cfg.Stars.Phases {
		phases[i] = behavior.TickRange{Min: p.Min, Max: p.Max}
	}
	for _, star := range behavior.PlaceStars(w, behavior.StarfieldConfig{
		Count:      cfg.Stars.Count,
		Symbols:    []rune(cfg.Stars.Symbols),
		Phases:     phases,
		Clustering: cfg.Stars.Clustering,
		Seed:       seed,
	}) {
		s.Spawn(star)
	}

	var policy behavior.DelayPolicy = behavior.RandomDelay{Min: cfg.Garbage.MinDelay, Max: cfg.Garbage.MaxDelay}
	gunYear := cfg.Ship.GunUnlockYear
	if cfg.Garbage.Policy == config.PolicyTimeline {
		policy = behavior.TimelineDelay{Timeline: timeline}
		if gunYear == 0 {
			gunYear = timeline.PlasmaGunYear
		}
	}

	rows, cols := asset.FrameSize(frames.Rocket[0])
	start := engine.Position{Row: float64((w.Rows - rows) / 2), Column: float64((w.Columns - cols) / 2)}
	s.Spawn(behavior.NewShip(start, behavior.ShipConfig{
		Frames:    frames.Rocket,
		FrameHold: cfg.Ship.FrameHoldTicks,
		Physics: physics.Params{
			Acceleration: cfg.Physics.Acceleration,
			Limit:        cfg.Physics.Limit,
			Fading:       cfg.Physics.Fading,
			Epsilon:      cfg.Physics.Epsilon,
		},
		SpeedScale:            cfg.Ship.SpeedScale,
		GunUnlockYear:         gunYear,
		ProjectileRowSpeed:    cfg.Projectile.RowSpeed,
		ProjectileColumnSpeed: cfg.Projectile.ColumnSpeed,
		Explosion:             frames.Explosion,
		Banner:                frames.GameOver,
	}))

	s.Spawn(behavior.NewSpawner(frames.Garbage, cfg.Garbage.Speed, policy))
	s.Spawn(behavior.NewYearCounter(cfg.Years.TicksPerYear, timeline))

	if cfg.Debug.ObstacleFrames {
		s.Spawn(behavior.NewObstacleFrames())
	}
	if cfg.Debug.StatusLine {
		s.Spawn(behavior.NewStatusLine(metrics))
	}
}
