package gconf

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"slicepuzzle/src/ui/gui/gbase/gos"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "slicepuzzle.json"

const (
	minWindowW = 640
	minWindowH = 480
)

type Config struct {
	Theme         string  `json:"theme" yaml:"theme"`                   // light/dark
	Lang          string  `json:"language" yaml:"language"`             // en/ru
	Image         string  `json:"image" yaml:"image"`                   // path, URL or "generated:"
	Rows          int     `json:"rows" yaml:"rows"`                     //
	Cols          int     `json:"cols" yaml:"cols"`                     //
	SnapThreshold float64 `json:"snap_threshold" yaml:"snap_threshold"` // screen pixels
	WindowW       int     `json:"window_w" yaml:"window_w"`             //
	WindowH       int     `json:"window_h" yaml:"window_h"`             //
	Debug         bool    `json:"debug" yaml:"debug"`                   // TPS overlay
	Sound         bool    `json:"sound" yaml:"sound"`                   // snap click
	Watch         bool    `json:"watch" yaml:"watch"`                   // reload image on change

	path string
}

func DefaultConfig() Config {
	return Config{
		Theme:         "light",
		Lang:          "en",
		Image:         "generated:",
		Rows:          25,
		Cols:          40,
		SnapThreshold: 20,
		WindowW:       1000,
		WindowH:       760,
		Debug:         false,
		Sound:         true,
		Watch:         true,
		path:          DefaultFile,
	}
}

// NewGUIConfig reads the config at path (DefaultFile when empty). A missing
// file is not an error, defaults are returned and Save will create it.
func NewGUIConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	data, err := gos.ReadFile(path)
	if gos.IsNotExist(err) {
		def := DefaultConfig()
		def.path = path
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, &c)
	} else {
		err = json.Unmarshal(data, &c)
	}
	if err != nil {
		return nil, fmt.Errorf("error decode config %s: %w", path, err)
	}
	c.path = path
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) Save() error {
	if c.path == "" {
		c.path = DefaultFile
	}
	var (
		data []byte
		err  error
	)
	if isYAML(c.path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "    ")
	}
	if err != nil {
		return err
	}
	return gos.WriteFile(c.path, data, 0644)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func correctableConfig(c *Config) {
	def := DefaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	if strings.TrimSpace(c.Image) == "" {
		c.Image = def.Image
	}
	if c.Rows <= 0 || c.Cols <= 0 {
		c.Rows = def.Rows
		c.Cols = def.Cols
	}
	if c.SnapThreshold <= 0 {
		c.SnapThreshold = def.SnapThreshold
	}
	if c.WindowH < minWindowH || c.WindowW < minWindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
