package app

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasklist.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TASKLIST_FILE", "")
	t.Setenv("TASKLIST_DEBUG", "")

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if filepath.Base(cfg.File) != "tasks.txt" {
		t.Errorf("File = %q", cfg.File)
	}
	if cfg.Theme != DefaultTheme || cfg.Debug || cfg.Notify || cfg.TUI {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, `
file = "data/my-tasks.txt"
theme = "dracula"
notify = true
`)

	tests := []struct {
		name      string
		env       map[string]string
		args      []string
		wantFile  string
		wantTheme string
		wantDebug bool
	}{
		{
			name:      "config file",
			args:      []string{"--config", path},
			wantFile:  filepath.Join(filepath.Dir(path), "data", "my-tasks.txt"),
			wantTheme: "dracula",
		},
		{
			name:      "env overrides file",
			env:       map[string]string{"TASKLIST_FILE": "/tmp/env.txt", "TASKLIST_DEBUG": "1"},
			args:      []string{"--config", path},
			wantFile:  "/tmp/env.txt",
			wantTheme: "dracula",
			wantDebug: true,
		},
		{
			name:      "flags override env",
			env:       map[string]string{"TASKLIST_FILE": "/tmp/env.txt", "TASKLIST_DEBUG": "yes"},
			args:      []string{"--config", path, "--file", "/tmp/flag.txt", "--theme", "nord", "--debug=false"},
			wantFile:  "/tmp/flag.txt",
			wantTheme: "nord",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TASKLIST_FILE", "")
			t.Setenv("TASKLIST_DEBUG", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(newFlagSet(), tt.args)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.File != tt.wantFile {
				t.Errorf("File = %q, want %q", cfg.File, tt.wantFile)
			}
			if cfg.Theme != tt.wantTheme {
				t.Errorf("Theme = %q, want %q", cfg.Theme, tt.wantTheme)
			}
			if cfg.Debug != tt.wantDebug {
				t.Errorf("Debug = %v, want %v", cfg.Debug, tt.wantDebug)
			}
			if !cfg.Notify {
				t.Error("Notify not read from file")
			}
			if cfg.ConfigFile != path {
				t.Errorf("ConfigFile = %q", cfg.ConfigFile)
			}
		})
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `colour = "red"`)
	if _, err := Load(newFlagSet(), []string{"--config", path}); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadMissingExplicitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	if _, err := Load(newFlagSet(), []string{"--config", path}); err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadLeavesPositionalArgs(t *testing.T) {
	t.Setenv("TASKLIST_FILE", "")
	fs := newFlagSet()
	if _, err := Load(fs, []string{"--tui", "extra"}); err != nil {
		t.Fatal(err)
	}
	if got := fs.Args(); len(got) != 1 || got[0] != "extra" {
		t.Errorf("Args = %v", got)
	}
}
