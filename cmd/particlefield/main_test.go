package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/particlefield/config"
	"github.com/lixenwraith/particlefield/field"
)

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "particlefield.toml")
	data := "[field]\nparticle_count = 120\ncollision = \"elastic\"\n\n[run]\nfps = 30\naudio = true\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	for name, value := range map[string]string{"config": path, "particles": "40", "fps": "45", "chime-threshold": "3"} {
		if err := flag.Set(name, value); err != nil {
			t.Fatalf("Failed to set flag %s: %v", name, err)
		}
	}

	file, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if *file.Field.ParticleCount != 40 {
		t.Errorf("Expected flag particle count 40, got %d", *file.Field.ParticleCount)
	}
	if file.Run.FPS != 45 {
		t.Errorf("Expected flag fps 45, got %d", file.Run.FPS)
	}
	if *file.Field.Collision != field.CollisionElastic {
		t.Errorf("Expected file collision mode kept, got %s", *file.Field.Collision)
	}
	if !file.Run.Audio {
		t.Error("Expected file audio setting kept when flag is unset")
	}
	if file.Run.ChimeThreshold != 3 {
		t.Errorf("Expected flag chime threshold 3, got %d", file.Run.ChimeThreshold)
	}

	if err := flag.Set("fps", "0"); err != nil {
		t.Fatalf("Failed to set fps: %v", err)
	}
	if _, err := loadConfig(); err == nil {
		t.Error("Expected error for zero fps")
	}
}

func TestPrintConfigLoadsBack(t *testing.T) {
	file := config.Default()
	file.Field.ParticleCount = field.Ptr(64)
	file.Run.ChimeThreshold = 5

	var b strings.Builder
	if err := printConfig(&b, file); err != nil {
		t.Fatalf("printConfig failed: %v", err)
	}
	if !strings.Contains(b.String(), "particle_count = 64") {
		t.Errorf("Expected particle count in output, got:\n%s", b.String())
	}

	back, err := config.Parse(b.String())
	if err != nil {
		t.Fatalf("Parse of printed config failed: %v", err)
	}
	if *back.Field.ParticleCount != 64 || back.Run.ChimeThreshold != 5 || back.Run.FPS != 60 {
		t.Errorf("Printed config did not load back: %+v", back.Run)
	}
}
