package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func run(args ...string) error {
	return newApp().Run(append([]string{"go-pathtracer"}, args...))
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "quads", "frame.png")

	err := run("render", "--scene", "quads", "--width", "32", "--spp", "1", "--max-depth", "4",
		"--out", out, "--preview-width", "16")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	img, err := imaging.Open(out)
	if err != nil {
		t.Fatalf("Expected frame at %s: %v", out, err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("Expected 32x32 frame, got %v", img.Bounds())
	}

	preview, err := imaging.Open(filepath.Join(dir, "quads", "frame_preview.png"))
	if err != nil {
		t.Fatalf("Expected preview: %v", err)
	}
	if preview.Bounds().Dx() != 16 {
		t.Errorf("Expected 16 pixel wide preview, got %v", preview.Bounds())
	}
}

func TestRenderCommand_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "render.env")
	if err := os.WriteFile(envFile, []byte("PT_WIDTH=24\nPT_SPP=1\nPT_MAX_DEPTH=3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		for _, key := range []string{"PT_WIDTH", "PT_SPP", "PT_MAX_DEPTH"} {
			os.Unsetenv(key)
		}
	})

	out := filepath.Join(dir, "frame.jpg")
	if err := run("--env-file", envFile, "render", "--scene", "checkered-spheres", "--out", out); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	img, err := imaging.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 24 {
		t.Errorf("Expected width 24 from env file, got %v", img.Bounds())
	}
}

func TestRenderCommand_Errors(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")

	if err := run("render", "--scene", "nonexistent", "--out", out); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
	if err := run("render", "--scene", "quads", "--tile-size", "0", "--out", out); !errors.Is(err, config.ErrInvalidValue) {
		t.Errorf("Expected ErrInvalidValue, got %v", err)
	}
	if err := run("render", "--scene", "earth", "--out", out); !errors.Is(err, scene.ErrMissingTexture) {
		t.Errorf("Expected ErrMissingTexture, got %v", err)
	}
	if err := run("--log-level", "loud", "scenes"); err == nil {
		t.Error("Expected an error for an unknown log level")
	}
	if err := run("--env-file", filepath.Join(t.TempDir(), "missing.env"), "scenes"); err == nil {
		t.Error("Expected an error for a missing env file")
	}
}

func TestScenesAndInspectCommands(t *testing.T) {
	if err := run("scenes"); err != nil {
		t.Errorf("scenes failed: %v", err)
	}
	if err := run("-v", "inspect", "--scene", "cornell"); err != nil {
		t.Errorf("inspect failed: %v", err)
	}
	if err := run("inspect", "--scene", "cornell", "--x", "200", "--y", "300"); err != nil {
		t.Errorf("inspect with pixel probe failed: %v", err)
	}
	if err := run("inspect", "--scene", "quads", "--x", "5000", "--y", "0"); err == nil {
		t.Error("Expected an error for a pixel outside the frame")
	}
	if err := run("inspect", "--scene", "nonexistent"); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
