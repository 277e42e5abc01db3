package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/particlefield/audio"
	"github.com/lixenwraith/particlefield/config"
	"github.com/lixenwraith/particlefield/engine"
	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/parameter"
	"github.com/lixenwraith/particlefield/render"
	"github.com/lixenwraith/particlefield/status"
	"github.com/lixenwraith/particlefield/terminal"
)

var (
	configFlag    = flag.String("config", "", "TOML configuration file")
	particlesFlag = flag.Int("particles", 0, "Particle count, overrides preset and file")
	presetFlag    = flag.String("preset", "", "Tuning preset: desktop, tablet, mobile (default by width)")
	fpsFlag       = flag.Int("fps", 60, "Frame rate")
	audioFlag     = flag.Bool("audio", false, "Chime on elastic collision bursts")
	chimeFlag     = flag.Int("chime-threshold", 0, "Collisions per frame that trigger the chime, 0 keeps the default")
	reducedFlag   = flag.String("reduced-motion", "scale", "Reduced motion policy: ignore, scale, stop")
	reduceFlag    = flag.Bool("reduce", false, "Start with the reduced motion preference set")
	adaptiveFlag  = flag.Bool("adaptive", true, "Adapt particle count to measured frame rate")
	hudFlag       = flag.Bool("hud", true, "Show the status line")
	debugFlag     = flag.Bool("debug", false, "Write logs to logs/particlefield.log")
	statsFlag     = flag.Bool("stats", false, "Print a summary on exit")
	seedFlag      = flag.Uint64("seed", 0, "Store seed, 0 picks a time based seed")
	printFlag     = flag.Bool("print-config", false, "Print the effective configuration as TOML and exit")
)

func main() {
	flag.Parse()

	file, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "particlefield: %v\n", err)
		os.Exit(1)
	}

	if *printFlag {
		if err := printConfig(os.Stdout, file); err != nil {
			fmt.Fprintf(os.Stderr, "particlefield: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "particlefield: stdout is not a terminal")
		os.Exit(1)
	}

	logger, logCloser := setupLogging(file.Run.Debug)
	if logCloser != nil {
		defer logCloser.Close()
	}

	if err := run(file, logger); err != nil {
		logger.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "particlefield: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the file when given, then applies flags the user set explicitly
func loadConfig() (config.File, error) {
	file := config.Default()
	if *configFlag != "" {
		var err error
		if file, err = config.Load(*configFlag); err != nil {
			return config.File{}, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "particles":
			file.Field.ParticleCount = field.Ptr(*particlesFlag)
		case "seed":
			file.Field.Seed = field.Ptr(*seedFlag)
		case "preset":
			file.Run.Preset = *presetFlag
		case "fps":
			file.Run.FPS = *fpsFlag
		case "audio":
			file.Run.Audio = *audioFlag
		case "chime-threshold":
			file.Run.ChimeThreshold = *chimeFlag
		case "reduced-motion":
			file.Run.ReducedMotion = *reducedFlag
		case "adaptive":
			file.Run.Adaptive = *adaptiveFlag
		case "hud":
			file.Run.HUD = *hudFlag
		case "debug":
			file.Run.Debug = *debugFlag
		case "stats":
			file.Run.Stats = *statsFlag
		}
	})

	if file.Run.FPS <= 0 {
		return config.File{}, fmt.Errorf("fps %d must be positive", file.Run.FPS)
	}
	return file, nil
}

// printConfig writes file as TOML, the output loads back through -config
func printConfig(w io.Writer, file config.File) error {
	text, err := config.Encode(file)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

func run(file config.File, logger *slog.Logger) error {
	policy, err := engine.ParseReducedMotion(file.Run.ReducedMotion)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	// Restore the terminal before reporting a crash on any goroutine
	crashed := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mPARTICLEFIELD CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	engine.SetCrashHandler(crashed)
	defer func() {
		if r := recover(); r != nil {
			crashed(r)
		}
	}()

	presenter := terminal.NewPresenter(screen)
	width, height := presenter.Size()

	// Lengths are configured in logical pixels, one terminal column stands for several
	cfg, preset, err := file.FieldConfig(int(float64(width)*parameter.TerminalCellPixels), runtime.NumCPU())
	if err != nil {
		screen.Fini()
		return err
	}
	cfg = cfg.Scaled(1 / parameter.TerminalCellPixels)

	if cfg.Colors.Background != "" {
		bg, err := render.ParseColor(cfg.Colors.Background)
		if err != nil {
			screen.Fini()
			return err
		}
		presenter.SetBackground(bg)
	}

	f, err := field.New(cfg, float64(width), float64(height))
	if err != nil {
		screen.Fini()
		return err
	}

	history := newFPSHistory(parameter.FPSHistoryLength)
	var chime *audio.Chime
	if file.Run.Audio {
		sound := audio.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer sound.Close()
			chime = audio.NewChime(sound, sound.SampleRate())
			if file.Run.ChimeThreshold > 0 {
				chime.SetThreshold(file.Run.ChimeThreshold)
			}
		}
	}

	sink := func(s engine.Stats) {
		history.observe(s)
		if chime != nil && chime.Observe(s.Collisions, time.Now()) {
			logger.Debug("chime", "collisions", s.Collisions)
		}
		if file.Run.HUD {
			presenter.SetStatus(statusLine(s))
		}
	}

	var adaptor *engine.Adaptor
	if file.Run.Adaptive {
		adaptor = engine.NewAdaptor()
	}

	clock := engine.SystemClock{}
	registry := status.NewRegistry()
	driver := engine.NewDriver(f, presenter, engine.DriverConfig{
		Scheduler:     engine.NewTickerScheduler(time.Second/time.Duration(file.Run.FPS), clock),
		Clock:         clock,
		Logger:        logger,
		Registry:      registry,
		Sink:          sink,
		Adaptor:       adaptor,
		Preset:        preset,
		ReducedMotion: policy,
	})

	logger.Info("starting",
		"width", width, "height", height,
		"particles", cfg.ParticleCount, "preset", preset, "fps", file.Run.FPS)

	if *reduceFlag {
		if err := driver.SetReducedMotion(true); err != nil {
			logger.Warn("reduced motion failed", "error", err)
		}
	}

	started := time.Now()
	driver.Start()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	engine.Go(func() {
		<-ctx.Done()
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})

	input := terminal.NewInput(driver, logger)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			break
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			break
		}
		if input.Handle(ev) {
			break
		}
	}

	final := driver.Stats()
	driver.Close()
	screen.Fini()

	logger.Info("stopped", "frames", final.Frames, "elapsed", time.Since(started))

	if file.Run.Stats {
		fmt.Println(renderSummary(final, history.snapshot(), registry, time.Since(started)))
	}
	return nil
}
