package app

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/gonewx/kokaton/pkg/config"
	"github.com/gonewx/kokaton/pkg/game"
)

func testAssets(t *testing.T) fstest.MapFS {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 20, 20))); err != nil {
		t.Fatal(err)
	}
	return fstest.MapFS{
		"3.png":    {Data: buf.Bytes()},
		"star.png": {Data: buf.Bytes()},
		"beam.png": {Data: buf.Bytes()},
	}
}

func TestNewApp(t *testing.T) {
	a, err := NewApp(Config{Verbose: true, Assets: testAssets(t), TPS: 50, Strict: true})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	if a.TPS() != 50 {
		t.Errorf("TPS = %d, want 50", a.TPS())
	}
	if !a.world.Config().Debug.Strict {
		t.Error("strict flag should override the config")
	}
	if w, h := a.Layout(1920, 1080); w != config.ScreenWidth || h != config.ScreenHeight {
		t.Errorf("Layout = %dx%d", w, h)
	}
	if a.world.Tick() != 0 {
		t.Errorf("new world should start at tick 0")
	}
}

func TestNewAppMissingAsset(t *testing.T) {
	assets := testAssets(t)
	delete(assets, "star.png")

	_, err := NewApp(Config{Verbose: true, Assets: assets})
	if !errors.Is(err, game.ErrAssetResolution) {
		t.Errorf("expected ErrAssetResolution, got %v", err)
	}
}

func TestNewAppInvalidKeys(t *testing.T) {
	tuning := config.DefaultTuningConfig()
	tuning.Keys.Jump = "NotAKey"

	if _, err := NewApp(Config{Verbose: true, Assets: testAssets(t), Tuning: tuning}); err == nil {
		t.Error("expected error for invalid key binding")
	}
}
