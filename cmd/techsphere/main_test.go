package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/techsphere/internal/config"
)

func newSceneCmd(t *testing.T, set map[string]string) *cobra.Command {
	t.Helper()
	preset, configFile = "", ""
	cmd := &cobra.Command{Use: "run"}
	addSceneFlags(cmd)
	for k, v := range set {
		if err := cmd.Flags().Set(k, v); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}
	return cmd
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg, err := resolveConfig(newSceneCmd(t, nil))
	if err != nil {
		t.Fatal(err)
	}
	want := config.DefaultConfig()
	if cfg.Icons != want.Icons || cfg.Radius != want.Radius || cfg.FPS != want.FPS {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestResolveConfigPresetThenFlags(t *testing.T) {
	cfg, err := resolveConfig(newSceneCmd(t, map[string]string{"preset": "dense", "fps": "24"}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Preset != "dense" || cfg.Icons != 60 || cfg.Radius != 7.0 {
		t.Errorf("preset not applied: %+v", cfg)
	}
	if cfg.FPS != 24 {
		t.Errorf("fps flag should override preset, got %d", cfg.FPS)
	}
	if len(cfg.Script) == 0 {
		t.Error("preset script lost")
	}
}

func TestResolveConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	data := "icons: 8\nradius: 3\nelastic_range: 0.2\nfps: 30\nduration: 1\ninitial_polar: 1.5\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := resolveConfig(newSceneCmd(t, map[string]string{"config": path, "radius": "4"}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Icons != 8 || cfg.ElasticRange != 0.2 || cfg.FPS != 30 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Radius != 4 {
		t.Errorf("radius flag should override file, got %g", cfg.Radius)
	}
}

func TestResolveConfigErrors(t *testing.T) {
	if _, err := resolveConfig(newSceneCmd(t, map[string]string{"preset": "nope"})); err == nil {
		t.Error("expected unknown preset error")
	}
	_, err := resolveConfig(newSceneCmd(t, map[string]string{"icons": "0"}))
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}
