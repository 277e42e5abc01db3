package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/particlefield/audio"
	"github.com/lixenwraith/particlefield/config"
	"github.com/lixenwraith/particlefield/engine"
	"github.com/lixenwraith/particlefield/field"
	"github.com/lixenwraith/particlefield/render"
)

var (
	configFlag = flag.String("config", "", "TOML configuration file")
	widthFlag  = flag.Int("width", 1280, "Window width")
	heightFlag = flag.Int("height", 720, "Window height")
	debugFlag  = flag.Bool("debug", false, "Log at debug level to stderr")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *debugFlag {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	file := config.Default()
	if *configFlag != "" {
		var err error
		if file, err = config.Load(*configFlag); err != nil {
			return err
		}
	}
	if file.Run.FPS <= 0 {
		return fmt.Errorf("fps %d must be positive", file.Run.FPS)
	}

	policy, err := engine.ParseReducedMotion(file.Run.ReducedMotion)
	if err != nil {
		return err
	}
	cfg, preset, err := file.FieldConfig(*widthFlag, runtime.NumCPU())
	if err != nil {
		return err
	}
	f, err := field.New(cfg, float64(*widthFlag), float64(*heightFlag))
	if err != nil {
		return err
	}

	bg := color.Color(color.Black)
	if cfg.Colors.Background != "" {
		c, err := render.ParseColor(cfg.Colors.Background)
		if err != nil {
			return err
		}
		bg = nrgba(c, 1)
	}

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

	var adaptor *engine.Adaptor
	if file.Run.Adaptive {
		adaptor = engine.NewAdaptor()
	}

	sched := engine.NewManualScheduler()
	rec := render.NewRecorder(*widthFlag, *heightFlag)
	g := &Game{
		sched:   sched,
		rec:     rec,
		frame:   render.NewRecorder(*widthFlag, *heightFlag),
		log:     logger,
		bg:      bg,
		width:   *widthFlag,
		height:  *heightFlag,
		focused: true,
		hud:     file.Run.HUD,
	}

	g.driver = engine.NewDriver(f, rec, engine.DriverConfig{
		Scheduler: sched,
		Logger:    logger,
		Sink: func(s engine.Stats) {
			if chime != nil {
				chime.Observe(s.Collisions, time.Now())
			}
			g.status = fmt.Sprintf("%s particles  %.0f fps  %s links  %s",
				humanize.Comma(int64(s.Particles)), s.FPS, humanize.Comma(int64(s.Connections)), s.Mode)
		},
		Adaptor:       adaptor,
		Preset:        preset,
		ReducedMotion: policy,
	})
	defer g.driver.Close()

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle("particlefield")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	ebiten.SetTPS(file.Run.FPS)

	g.driver.Start()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
