// Package config loads application settings from an optional file and ORRERY_* environment variables
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/parameter"
)

// EnvPrefix is prepended to every environment override, e.g. ORRERY_LOG_LEVEL
const EnvPrefix = "ORRERY"

// Config is the resolved application configuration
type Config struct {
	Catalog   string // custom catalog file, empty for the built-in system
	PrefsFile string
	Seed      uint64 // initial orbital angles, 0 picks a random seed
	Log       LogConfig
	Focus     FocusConfig
	Audio     AudioConfig
	View      ViewConfig
	Keys      map[string]string // key name to action name overrides
}

// LogConfig controls the zerolog sink
// An empty File disables logging
type LogConfig struct {
	File  string
	Level string
}

// FocusConfig selects the focus interpolation flavour
type FocusConfig struct {
	Mode      camera.Mode
	Rate      float64
	Tolerance float64
}

// AudioConfig toggles the cue player
type AudioConfig struct {
	Enabled bool
	Volume  float64
}

// ViewConfig holds renderer options
type ViewConfig struct {
	FPS       int
	Stars     int
	LowDetail bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("catalog", "")
	v.SetDefault("prefsFile", "")
	v.SetDefault("seed", 0)

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetDefault("focus.mode", camera.ModeFrame.String())
	v.SetDefault("focus.rate", parameter.FocusRate)
	v.SetDefault("focus.tolerance", parameter.FocusTolerance)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.DefaultAudioVolume)

	v.SetDefault("view.fps", parameter.TerminalFPS)
	v.SetDefault("view.stars", parameter.StarCount)
	v.SetDefault("view.lowDetail", false)
}

// Load reads path if non-empty, then applies environment overrides
// Nested keys map to env names with '.' replaced by '_', e.g. ORRERY_FOCUS_MODE
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Read through Get so AutomaticEnv overrides apply to nested keys
	mode, err := camera.ParseMode(v.GetString("focus.mode"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	c := Config{
		Catalog:   v.GetString("catalog"),
		PrefsFile: v.GetString("prefsFile"),
		Seed:      v.GetUint64("seed"),
		Log: LogConfig{
			File:  v.GetString("log.file"),
			Level: v.GetString("log.level"),
		},
		Focus: FocusConfig{
			Mode:      mode,
			Rate:      v.GetFloat64("focus.rate"),
			Tolerance: v.GetFloat64("focus.tolerance"),
		},
		Audio: AudioConfig{
			Enabled: v.GetBool("audio.enabled"),
			Volume:  v.GetFloat64("audio.volume"),
		},
		View: ViewConfig{
			FPS:       v.GetInt("view.fps"),
			Stars:     v.GetInt("view.stars"),
			LowDetail: v.GetBool("view.lowDetail"),
		},
		Keys: v.GetStringMapString("keys"),
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// ErrInvalidConfig wraps validation failures
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if !(c.Focus.Rate > 0 && c.Focus.Rate <= 1) {
		return fmt.Errorf("%w: focus.rate=%g must be in (0,1]", ErrInvalidConfig, c.Focus.Rate)
	}
	if !(c.Focus.Tolerance > 0) {
		return fmt.Errorf("%w: focus.tolerance=%g must be positive", ErrInvalidConfig, c.Focus.Tolerance)
	}
	if c.View.FPS <= 0 {
		return fmt.Errorf("%w: view.fps=%d must be positive", ErrInvalidConfig, c.View.FPS)
	}
	if c.View.Stars < 0 {
		return fmt.Errorf("%w: view.stars=%d must not be negative", ErrInvalidConfig, c.View.Stars)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume=%g must be in [0,1]", ErrInvalidConfig, c.Audio.Volume)
	}
	return nil
}
