// Package prefs persists the viewer toggles between runs
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/lixenwraith/orrery/parameter"
)

// Preferences is the persisted viewer state
type Preferences struct {
	SimulationSpeed       float64 `mapstructure:"simulationSpeed"`
	IsPaused              bool    `mapstructure:"isPaused"`
	ShowLabels            bool    `mapstructure:"showLabels"`
	ShowOrbits            bool    `mapstructure:"showOrbits"`
	ConstellationsVisible bool    `mapstructure:"constellationsVisible"`
}

// Defaults is the state of a first run
func Defaults() Preferences {
	return Preferences{
		SimulationSpeed: parameter.DefaultSimulationSpeed,
		ShowLabels:      true,
		ShowOrbits:      true,
	}
}

// Store reads and writes preferences to a single file
// The format follows the file extension (json, toml, yaml)
type Store struct {
	path string
}

// NewStore binds a store to path; the file need not exist yet
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath is the preferences file under the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	return filepath.Join(dir, "orrery", "prefs.json"), nil
}

// Path of the backing file
func (s *Store) Path() string {
	return s.path
}

func (s *Store) viper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	d := Defaults()
	v.SetDefault("simulationSpeed", d.SimulationSpeed)
	v.SetDefault("isPaused", d.IsPaused)
	v.SetDefault("showLabels", d.ShowLabels)
	v.SetDefault("showOrbits", d.ShowOrbits)
	v.SetDefault("constellationsVisible", d.ConstellationsVisible)
	return v
}

// Load returns the saved preferences, or defaults when no file exists
// A zero or negative saved speed loads as the default speed
func (s *Store) Load() (Preferences, error) {
	v := s.viper()
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults(), nil
		}
		return Defaults(), fmt.Errorf("error reading preferences: %w", err)
	}

	var p Preferences
	if err := v.Unmarshal(&p); err != nil {
		return Defaults(), fmt.Errorf("error decoding preferences: %w", err)
	}
	return p.normalized(), nil
}

// Save writes the full record, creating parent directories as needed
func (s *Store) Save(p Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences dir: %w", err)
	}
	v := s.viper()
	v.Set("simulationSpeed", p.SimulationSpeed)
	v.Set("isPaused", p.IsPaused)
	v.Set("showLabels", p.ShowLabels)
	v.Set("showOrbits", p.ShowOrbits)
	v.Set("constellationsVisible", p.ConstellationsVisible)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("error writing preferences: %w", err)
	}
	return nil
}

func (p Preferences) normalized() Preferences {
	if !(p.SimulationSpeed > 0) {
		p.SimulationSpeed = parameter.DefaultSimulationSpeed
	}
	if p.SimulationSpeed > parameter.MaxSimulationSpeed {
		p.SimulationSpeed = parameter.MaxSimulationSpeed
	}
	return p
}
