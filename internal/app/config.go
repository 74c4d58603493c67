package app

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dori/tasklist/internal/store"
)

// DefaultConfigFileName is looked up next to the executable
const DefaultConfigFileName = "tasklist.toml"

// DefaultTheme is used when no theme is configured
const DefaultTheme = "nord"

// Config holds application configuration
type Config struct {
	File    string `toml:"file"`
	Theme   string `toml:"theme"`
	Notify  bool   `toml:"notify"`
	Debug   bool   `toml:"debug"`
	LogFile string `toml:"log_file"`

	// Set from flags only
	ConfigFile string `toml:"-"`
	TUI        bool   `toml:"-"`
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *Config {
	return &Config{
		File:  store.DefaultPath(),
		Theme: DefaultTheme,
	}
}

// DefaultConfigPath returns the config file looked up when --config is not given
func DefaultConfigPath() string {
	return filepath.Join(store.DefaultDataDir(), DefaultConfigFileName)
}

type flagValues struct {
	config string
	file   string
	theme  string
	tui    bool
	debug  bool
}

// Load builds the configuration in priority order:
// 1. Defaults
// 2. Config file (--config, or tasklist.toml next to the executable)
// 3. Environment variables
// 4. CLI flags
//
// Positional arguments left after flag parsing are available via fs.Args().
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := DefaultConfig()

	var fv flagValues
	fs.StringVar(&fv.config, "config", "", "Config file (default: "+DefaultConfigFileName+" next to the executable)")
	fs.StringVar(&fv.file, "file", "", "Task file (default: "+store.DefaultFileName+" next to the executable)")
	fs.StringVar(&fv.theme, "theme", "", "Theme name (nord, dracula, gruvbox, catppuccin)")
	fs.BoolVar(&fv.tui, "tui", false, "Run the full-screen interface")
	fs.BoolVar(&fv.debug, "debug", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	configFile := fv.config
	explicit := configFile != ""
	if !explicit {
		configFile = DefaultConfigPath()
	}
	if err := loadConfigFile(cfg, configFile, explicit); err != nil {
		return nil, fmt.Errorf("loading config file %s: %w", configFile, err)
	}

	loadFromEnv(cfg)

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.File = fv.file
		case "theme":
			cfg.Theme = fv.theme
		case "tui":
			cfg.TUI = fv.tui
		case "debug":
			cfg.Debug = fv.debug
		}
	})

	if cfg.File == "" {
		return nil, errors.New("task file path is empty")
	}
	return cfg, nil
}

// loadConfigFile decodes path into cfg. A missing file is only an error when
// it was asked for explicitly.
func loadConfigFile(cfg *Config, path string, explicit bool) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) && !explicit {
		return nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	cfg.ConfigFile = path
	// relative task files are resolved against the config file
	if cfg.File != "" && !filepath.IsAbs(cfg.File) {
		cfg.File = filepath.Join(filepath.Dir(path), cfg.File)
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKLIST_FILE"); v != "" {
		cfg.File = v
	}
	if v := os.Getenv("TASKLIST_DEBUG"); v != "" {
		cfg.Debug = boolFromString(v)
	}
}

func boolFromString(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
