// Package config holds the application configuration, loaded from an
// optional YAML file via viper with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Pointer PointerConfig `mapstructure:"pointer" yaml:"pointer"`
	Typing  TypingConfig  `mapstructure:"typing" yaml:"typing"`
	Engine  EngineConfig  `mapstructure:"engine" yaml:"engine"`
}

// LoggerConfig controls the zap logger setup.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"` // "console" or "json"
	ServiceName string `mapstructure:"serviceName" yaml:"serviceName"`
	AddSource   bool   `mapstructure:"addSource" yaml:"addSource"`

	// Optional rotated log file.
	LogFile    string `mapstructure:"logFile" yaml:"logFile"`
	MaxSize    int    `mapstructure:"maxSize" yaml:"maxSize"` // megabytes
	MaxBackups int    `mapstructure:"maxBackups" yaml:"maxBackups"`
	MaxAge     int    `mapstructure:"maxAge" yaml:"maxAge"` // days
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// PointerConfig tunes the synthetic pointer animation.
type PointerConfig struct {
	// Speed is the distance covered per animation tick, in pixels.
	Speed float64 `mapstructure:"speed" yaml:"speed"`
	// FrameInterval paces animation ticks.
	FrameInterval time.Duration `mapstructure:"frameInterval" yaml:"frameInterval"`
	// TremorAmplitude scales the perlin drift overlaid on dispatched
	// positions. Zero disables the tremor entirely.
	TremorAmplitude float64 `mapstructure:"tremorAmplitude" yaml:"tremorAmplitude"`
}

// TypingConfig tunes the synthetic typing cadence.
type TypingConfig struct {
	// KeyDelayMin and KeyDelayMax bound the jittered pause after each
	// character. The exact distribution is cosmetic.
	KeyDelayMin time.Duration `mapstructure:"keyDelayMin" yaml:"keyDelayMin"`
	KeyDelayMax time.Duration `mapstructure:"keyDelayMax" yaml:"keyDelayMax"`
}

// EngineConfig tunes the interaction executor.
type EngineConfig struct {
	// SettleDelay is the grace period after scrolling a target into view,
	// before its box is re-measured.
	SettleDelay time.Duration `mapstructure:"settleDelay" yaml:"settleDelay"`
	// DefaultHover is used when a hover request carries no duration.
	DefaultHover time.Duration `mapstructure:"defaultHover" yaml:"defaultHover"`
}

// SetDefaults applies default values for anything unset.
func (c *Config) SetDefaults() {
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "console"
	}
	if c.Logger.ServiceName == "" {
		c.Logger.ServiceName = "screenpilot"
	}
	if c.Logger.MaxSize <= 0 {
		c.Logger.MaxSize = 10
	}
	if c.Logger.MaxBackups <= 0 {
		c.Logger.MaxBackups = 3
	}
	if c.Logger.MaxAge <= 0 {
		c.Logger.MaxAge = 7
	}
	if c.Pointer.Speed <= 0 {
		c.Pointer.Speed = 18.0
	}
	if c.Pointer.FrameInterval <= 0 {
		c.Pointer.FrameInterval = 16 * time.Millisecond
	}
	if c.Pointer.TremorAmplitude < 0 {
		c.Pointer.TremorAmplitude = 0
	}
	if c.Typing.KeyDelayMin <= 0 {
		c.Typing.KeyDelayMin = 40 * time.Millisecond
	}
	if c.Typing.KeyDelayMax <= c.Typing.KeyDelayMin {
		c.Typing.KeyDelayMax = c.Typing.KeyDelayMin + 80*time.Millisecond
	}
	if c.Engine.SettleDelay <= 0 {
		c.Engine.SettleDelay = 120 * time.Millisecond
	}
	if c.Engine.DefaultHover <= 0 {
		c.Engine.DefaultHover = 500 * time.Millisecond
	}
}

// Load reads configuration from the given file (optional) and the
// SCREENPILOT_* environment, then applies defaults.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("screenpilot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.screenpilot")
	}
	v.SetEnvPrefix("SCREENPILOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; anything else is not.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading %q: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshaling: %w", err)
	}
	cfg.SetDefaults()
	return &cfg, nil
}
