package field

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative count", func(c *Config) { c.ParticleCount = -1 }},
		{"zero radius", func(c *Config) { c.ParticleRadius = 0 }},
		{"jitter too wide", func(c *Config) { c.RadiusJitter = 2 * c.ParticleRadius }},
		{"zero max speed", func(c *Config) { c.MaxSpeed = 0 }},
		{"min above max", func(c *Config) { c.MinSpeed = c.MaxSpeed + 1 }},
		{"friction above one", func(c *Config) { c.Friction = 1.5 }},
		{"zero friction", func(c *Config) { c.Friction = 0 }},
		{"bounce above one", func(c *Config) { c.BounceEnergy = 1.1 }},
		{"negative damping", func(c *Config) { c.CollisionDamping = -0.1 }},
		{"zero connection distance", func(c *Config) { c.ConnectionDistance = 0 }},
		{"negative pointer force", func(c *Config) { c.PointerForce = -1 }},
		{"small glow", func(c *Config) { c.GlowScale = 0.5 }},
		{"alpha above one", func(c *Config) { c.Colors.ConnectionAlpha = 2 }},
		{"unknown pointer mode", func(c *Config) { c.PointerMode = "spin" }},
		{"unknown strategy", func(c *Config) { c.Neighbors = "octree" }},
		{"unknown collision", func(c *Config) { c.Collision = "sticky" }},
		{"unknown color mode", func(c *Config) { c.ColorMode = "rainbow" }},
		{"empty palette", func(c *Config) { c.ColorMode = ColorPalette; c.Colors.Palette = nil }},
		{"bad hex", func(c *Config) { c.Colors.Slow = "#zzz" }},
		{"bad background", func(c *Config) { c.Colors.Background = "black" }},
		{"negative drift", func(c *Config) { c.Drift = -1 }},
		{"friction nan", func(c *Config) { c.Friction = math.NaN() }},
		{"max speed inf", func(c *Config) { c.MaxSpeed = math.Inf(1) }},
		{"initial speed nan", func(c *Config) { c.InitialSpeed = math.NaN() }},
		{"pointer force inf", func(c *Config) { c.PointerForce = math.Inf(1) }},
		{"alpha nan", func(c *Config) { c.Colors.ConnectionAlpha = math.NaN() }},
		{"drift scale nan", func(c *Config) { c.DriftScale = math.NaN() }},
		{"glow scale inf", func(c *Config) { c.GlowScale = math.Inf(1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestMergeAppliesOnlySetFields(t *testing.T) {
	base := DefaultConfig()
	out := base.Merge(Patch{
		ParticleCount: Ptr(7),
		Collision:     Ptr(CollisionElastic),
		Colors:        ColorsPatch{Fast: Ptr("#00ff00")},
	})

	if out.ParticleCount != 7 {
		t.Errorf("Expected count 7, got %d", out.ParticleCount)
	}
	if out.Collision != CollisionElastic {
		t.Errorf("Expected elastic collision, got %s", out.Collision)
	}
	if out.Colors.Fast != "#00ff00" {
		t.Errorf("Expected fast color override, got %s", out.Colors.Fast)
	}
	if out.MaxSpeed != base.MaxSpeed || out.Colors.Slow != base.Colors.Slow {
		t.Errorf("Expected unset fields to keep defaults")
	}
	if base.ParticleCount == 7 {
		t.Errorf("Merge mutated the receiver")
	}
}

func TestMergeDoesNotSharePalette(t *testing.T) {
	palette := []string{"#111111"}
	out := DefaultConfig().Merge(Patch{Colors: ColorsPatch{Palette: palette}})
	palette[0] = "#222222"
	if out.Colors.Palette[0] != "#111111" {
		t.Errorf("Expected merged palette to be a copy, got %s", out.Colors.Palette[0])
	}

	clone := out.Clone()
	clone.Colors.Palette[0] = "#333333"
	if out.Colors.Palette[0] != "#111111" {
		t.Errorf("Expected clone palette to be a copy")
	}
}

func TestPatchCombine(t *testing.T) {
	p := Patch{ParticleCount: Ptr(10), Glow: Ptr(true)}
	q := Patch{ParticleCount: Ptr(20), MaxSpeed: Ptr(3.0)}
	out := p.Combine(q)

	if *out.ParticleCount != 20 {
		t.Errorf("Expected later patch to win, got %d", *out.ParticleCount)
	}
	if out.Glow == nil || !*out.Glow {
		t.Errorf("Expected glow kept from first patch")
	}
	if out.MaxSpeed == nil || *out.MaxSpeed != 3 {
		t.Errorf("Expected max speed from second patch")
	}
}

func TestPresetFor(t *testing.T) {
	tests := []struct {
		width int
		cpus  int
		want  Preset
		mode  string
	}{
		{320, 8, PresetMobile, "low"},
		{767, 8, PresetMobile, "low"},
		{768, 8, PresetTablet, "medium"},
		{1023, 8, PresetTablet, "medium"},
		{1024, 8, PresetDesktop, "high"},
		{2560, 16, PresetDesktop, "high"},
		{2560, 0, PresetDesktop, "high"},
		{2560, 4, PresetTablet, "medium"},
		{1920, 2, PresetTablet, "medium"},
		{1920, 5, PresetDesktop, "high"},
		{400, 2, PresetMobile, "low"},
	}
	for _, tt := range tests {
		got := PresetFor(tt.width, tt.cpus)
		if got != tt.want {
			t.Errorf("PresetFor(%d, %d): expected %s, got %s", tt.width, tt.cpus, tt.want, got)
		}
		if got.Mode() != tt.mode {
			t.Errorf("%s mode: expected %s, got %s", got, tt.mode, got.Mode())
		}
	}
}

func TestPresetPatches(t *testing.T) {
	for _, p := range []Preset{PresetDesktop, PresetTablet, PresetMobile} {
		patch, err := p.Patch()
		if err != nil {
			t.Fatalf("%s: unexpected error %v", p, err)
		}
		cfg := DefaultConfig().Merge(patch)
		if err := cfg.Validate(); err != nil {
			t.Errorf("%s: merged config invalid: %v", p, err)
		}
	}

	mobile, _ := PresetMobile.Patch()
	cfg := DefaultConfig().Merge(mobile)
	if cfg.ParticleCount != 80 || cfg.PointerForce != 0 || cfg.Glow {
		t.Errorf("Unexpected mobile tuning: count %d force %f glow %v", cfg.ParticleCount, cfg.PointerForce, cfg.Glow)
	}

	if _, err := Preset("watch").Patch(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for unknown preset, got %v", err)
	}
}

func TestReducedMotionPatch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinSpeed = 1.0
	out := cfg.Merge(ReducedMotionPatch(cfg))

	if out.MaxSpeed >= cfg.MaxSpeed {
		t.Errorf("Expected reduced max speed, got %f", out.MaxSpeed)
	}
	if out.MinSpeed > out.MaxSpeed {
		t.Errorf("Expected min speed %f <= max speed %f", out.MinSpeed, out.MaxSpeed)
	}
	if out.ParticleCount > 50 {
		t.Errorf("Expected at most 50 particles, got %d", out.ParticleCount)
	}
	if err := out.Validate(); err != nil {
		t.Errorf("Expected reduced config to validate, got %v", err)
	}
}

func TestScaled(t *testing.T) {
	cfg := DefaultConfig()
	out := cfg.Scaled(0.25)

	if out.ParticleRadius != cfg.ParticleRadius*0.25 {
		t.Errorf("Expected radius %f, got %f", cfg.ParticleRadius*0.25, out.ParticleRadius)
	}
	if out.ConnectionDistance != cfg.ConnectionDistance*0.25 {
		t.Errorf("Expected connection distance %f, got %f", cfg.ConnectionDistance*0.25, out.ConnectionDistance)
	}
	if out.MaxSpeed != cfg.MaxSpeed*0.25 || out.MinSpeed != cfg.MinSpeed*0.25 {
		t.Errorf("Expected speeds scaled, got max %f min %f", out.MaxSpeed, out.MinSpeed)
	}
	if out.DriftScale != cfg.DriftScale*4 {
		t.Errorf("Expected noise frequency %f, got %f", cfg.DriftScale*4, out.DriftScale)
	}
	if out.ParticleCount != cfg.ParticleCount || out.Friction != cfg.Friction {
		t.Error("Expected counts and ratios unchanged")
	}
	if err := out.Validate(); err != nil {
		t.Errorf("Expected scaled config to validate, got %v", err)
	}

	same := cfg.Scaled(0)
	if same.ParticleRadius != cfg.ParticleRadius {
		t.Errorf("Expected non-positive factor to keep values, got radius %f", same.ParticleRadius)
	}
}
