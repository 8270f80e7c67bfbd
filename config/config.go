// Package config loads split layout settings from TOML.
//
// The document mirrors splitlayout.Settings:
//
//	border = 1.0
//	center_min_size = [8.0, 4.0]
//
//	[left]
//	value = 16.0
//	min = 8.0
//	lock = false
//
// with [right], [top] and [bottom] tables alongside [left]. Missing keys
// keep their defaults; unknown keys are an error.
package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"

	"github.com/tealayout/splitpane/geom"
	"github.com/tealayout/splitpane/splitlayout"
)

// FileName is the settings file looked up inside Dir.
const FileName = "splitpane.toml"

type document struct {
	Border        float64   `toml:"border"`
	CenterMinSize []float64 `toml:"center_min_size"`
	Left          edge      `toml:"left"`
	Right         edge      `toml:"right"`
	Top           edge      `toml:"top"`
	Bottom        edge      `toml:"bottom"`
}

type edge struct {
	Value float64 `toml:"value"`
	Min   float64 `toml:"min"`
	Lock  bool    `toml:"lock"`
}

func defaultEdge(e splitlayout.EdgeSettings) edge {
	return edge{Value: e.Value, Min: e.MinValue, Lock: e.Lock}
}

// Default returns the settings used when no file exists. They are sized
// for terminal cells: thin dividers, side panels 16 cells, top and
// bottom bars 5 rows and an 8x4 center minimum.
func Default() splitlayout.Settings {
	s := splitlayout.DefaultSettings(1, 8)
	s.CenterMinSize = geom.Vec{X: 8, Y: 4}
	s = s.WithEdge(splitlayout.Left, 16, 8)
	s = s.WithEdge(splitlayout.Right, 16, 8)
	s = s.WithEdge(splitlayout.Top, 5, 3)
	s = s.WithEdge(splitlayout.Bottom, 5, 3)
	return s
}

// Parse decodes a TOML settings document on top of the defaults.
func Parse(data string) (splitlayout.Settings, error) {
	def := Default()
	doc := document{
		Border:        def.Border,
		CenterMinSize: []float64{def.CenterMinSize.X, def.CenterMinSize.Y},
		Left:          defaultEdge(def.Left),
		Right:         defaultEdge(def.Right),
		Top:           defaultEdge(def.Top),
		Bottom:        defaultEdge(def.Bottom),
	}

	md, err := toml.Decode(data, &doc)
	if err != nil {
		return splitlayout.Settings{}, fmt.Errorf("parsing settings: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return splitlayout.Settings{}, fmt.Errorf("unknown setting %q", undecoded[0].String())
	}
	if len(doc.CenterMinSize) != 2 {
		return splitlayout.Settings{}, fmt.Errorf("center_min_size wants [width, height], got %d values", len(doc.CenterMinSize))
	}

	return splitlayout.Settings{
		Border:        doc.Border,
		CenterMinSize: geom.Vec{X: doc.CenterMinSize[0], Y: doc.CenterMinSize[1]},
		Left:          splitlayout.EdgeSettings{Value: doc.Left.Value, MinValue: doc.Left.Min, Lock: doc.Left.Lock},
		Right:         splitlayout.EdgeSettings{Value: doc.Right.Value, MinValue: doc.Right.Min, Lock: doc.Right.Lock},
		Top:           splitlayout.EdgeSettings{Value: doc.Top.Value, MinValue: doc.Top.Min, Lock: doc.Top.Lock},
		Bottom:        splitlayout.EdgeSettings{Value: doc.Bottom.Value, MinValue: doc.Bottom.Min, Lock: doc.Bottom.Lock},
	}, nil
}

// LoadFile reads settings from the file at p.
func LoadFile(p string) (splitlayout.Settings, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return splitlayout.Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	return Parse(string(data))
}

// Load reads FileName from Dir, falling back to Default when the file
// does not exist.
func Load() (splitlayout.Settings, error) {
	dir := Dir()
	if dir == "" {
		return Default(), nil
	}
	p := filepath.Join(dir, FileName)
	if _, err := os.Stat(p); err != nil {
		return Default(), nil
	}
	return LoadFile(p)
}

// Dir returns the directory searched for the settings file. The
// SPLITPANE_CONFIG_DIR environment variable overrides the usual user
// config directory; useful during development or other non-standard
// setups.
func Dir() string {
	if dir := os.Getenv("SPLITPANE_CONFIG_DIR"); dir != "" {
		if s, err := os.Stat(dir); err == nil && s.IsDir() {
			return dir
		}
	}

	var configDirs []string

	// os.UserConfigDir() already does this for linux leaving darwin to handle
	if runtime.GOOS == "darwin" {
		configDirs = append(configDirs, path.Join(os.Getenv("HOME"), ".config"))
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			configDirs = append(configDirs, xdg)
		}
	}

	if dir, err := os.UserConfigDir(); err == nil {
		configDirs = append(configDirs, dir)
	}

	for _, dir := range configDirs {
		p := filepath.Join(dir, "splitpane")
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	if len(configDirs) > 0 {
		return filepath.Join(configDirs[0], "splitpane")
	}
	return ""
}
