package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gonewx/snake/pkg/config"
	"github.com/gonewx/snake/pkg/embedded"
)

func TestLoadGameConfigDefaultsWithoutEmbedded(t *testing.T) {
	embedded.Init(nil)

	cfg, err := loadGameConfig("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Snake.BaseSpeed != config.DefaultSnakeConfig().Snake.BaseSpeed {
		t.Errorf("Expected default base speed, got %f", cfg.Snake.BaseSpeed)
	}
}

func TestLoadGameConfigFromEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		config.DefaultConfigPath: &fstest.MapFile{Data: []byte("snake:\n  baseSpeed: 123\n")},
	})
	defer embedded.Init(nil)

	cfg, err := loadGameConfig("")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Snake.BaseSpeed != 123 {
		t.Errorf("Expected base speed 123, got %f", cfg.Snake.BaseSpeed)
	}
}

func TestLoadGameConfigEmbeddedMissing(t *testing.T) {
	embedded.Init(fstest.MapFS{})
	defer embedded.Init(nil)

	if _, err := loadGameConfig(""); err == nil {
		t.Error("Expected error when embedded config is missing")
	}
}

func TestLoadGameConfigPathOverridesEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		config.DefaultConfigPath: &fstest.MapFile{Data: []byte("snake:\n  baseSpeed: 123\n")},
	})
	defer embedded.Init(nil)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("snake:\n  baseSpeed: 456\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := loadGameConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Snake.BaseSpeed != 456 {
		t.Errorf("Expected base speed 456, got %f", cfg.Snake.BaseSpeed)
	}
}

func TestEbitenInputWindowSize(t *testing.T) {
	in := NewEbitenInput(800, 600)
	w, h, ok := in.WindowSize()
	if !ok || w != 800 || h != 600 {
		t.Errorf("Expected 800x600, got %vx%v (ok=%v)", w, h, ok)
	}

	in.SetWindowSize(0, 0)
	if _, _, ok := in.WindowSize(); ok {
		t.Error("Expected zero-sized window to be reported as unavailable")
	}
}

func TestEbitenInputBeforePoll(t *testing.T) {
	in := NewEbitenInput(800, 600)
	if _, _, ok := in.CursorPosition(); ok {
		t.Error("Expected no cursor before first poll")
	}
	if _, _, ok := in.ClickJustReleased(); ok {
		t.Error("Expected no click before first poll")
	}
	if in.IsPauseJustPressed() {
		t.Error("Expected pause not pressed before first poll")
	}
}

func TestEbitenInputWaitsForCursorMovement(t *testing.T) {
	in := NewEbitenInput(800, 600)

	in.applyCursor(0, 0, false)
	in.applyCursor(0, 0, false)
	if _, _, ok := in.CursorPosition(); ok {
		t.Error("Expected no pointer before the cursor moves")
	}

	in.applyCursor(120, 80, false)
	x, y, ok := in.CursorPosition()
	if !ok || x != 120 || y != 80 {
		t.Errorf("Expected pointer at (120, 80), got (%v, %v) ok=%v", x, y, ok)
	}

	// 回到初始位置后仍然报告指针
	in.applyCursor(0, 0, false)
	if _, _, ok := in.CursorPosition(); !ok {
		t.Error("Expected pointer to stay available once the cursor has moved")
	}
}

func TestEbitenInputClickWithoutMovement(t *testing.T) {
	in := NewEbitenInput(800, 600)

	in.applyCursor(400, 320, false)
	in.applyCursor(400, 320, true)

	if _, _, ok := in.CursorPosition(); !ok {
		t.Error("Expected a click to make the pointer available")
	}
	x, y, ok := in.ClickJustReleased()
	if !ok || x != 400 || y != 320 {
		t.Errorf("Expected click at (400, 320), got (%v, %v) ok=%v", x, y, ok)
	}
}
