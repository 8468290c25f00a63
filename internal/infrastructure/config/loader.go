package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/DetectiveFierce/pause-menu/internal/domain/widget"
)

// AppConfig holds all loaded configurations
type AppConfig struct {
	UI     *UIConfig
	Styles map[string]widget.Style
}

// Loader loads configuration files using the fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a new config loader from a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadUI loads ui.json
func (l *Loader) LoadUI() (*UIConfig, error) {
	data, err := fs.ReadFile(l.fsys, "ui.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read ui.json: %w", err)
	}

	var cfg UIConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ui.json: %w", err)
	}

	if cfg.Display.ScreenWidth <= 0 || cfg.Display.ScreenHeight <= 0 {
		return nil, fmt.Errorf("ui.json: display size %dx%d is not positive",
			cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	}

	return &cfg, nil
}

// LoadTheme loads theme.yaml and resolves it over the built-in presets.
// A missing file is not an error: the presets are a complete theme on
// their own.
func (l *Loader) LoadTheme() (map[string]widget.Style, error) {
	data, err := fs.ReadFile(l.fsys, "theme.yaml")
	if errors.Is(err, fs.ErrNotExist) {
		theme := ThemeConfig{}
		return theme.Styles()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read theme.yaml: %w", err)
	}

	var theme ThemeConfig
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return nil, fmt.Errorf("failed to parse theme.yaml: %w", err)
	}

	return theme.Styles()
}

// LoadAll loads every configuration file.
func (l *Loader) LoadAll() (*AppConfig, error) {
	ui, err := l.LoadUI()
	if err != nil {
		return nil, err
	}

	styles, err := l.LoadTheme()
	if err != nil {
		return nil, err
	}

	return &AppConfig{UI: ui, Styles: styles}, nil
}
