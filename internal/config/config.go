package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"holdscroll/internal/domain"
	"holdscroll/internal/eventbus"
	"holdscroll/internal/ui/services/hold"
	"holdscroll/internal/ui/services/scroll"
)

// ErrInvalidConfig is returned when a loaded config fails validation
var ErrInvalidConfig = errors.New("invalid config")

// FileName is the config file name inside the config directory
const FileName = "config.toml"

// Config represents the application configuration
type Config struct {
	Version   int             `toml:"version"`
	List      ListSettings    `toml:"list"`
	Scrollbar ScrollbarConfig `toml:"scrollbar"`
	Repeat    RepeatSettings  `toml:"repeat"`
	Animation AnimationConfig `toml:"animation"`
	Logging   LoggingConfig   `toml:"logging"`
}

// ListSettings describes the demo list
type ListSettings struct {
	ItemCount  int  `toml:"item_count"`
	ItemHeight int  `toml:"item_height"` // rows per item, frame included
	StopAtEnd  bool `toml:"stop_at_end"` // keep the last item at the bottom edge
	WheelStep  int  `toml:"wheel_step"`  // rows per wheel notch
}

// ScrollbarConfig controls the scrollbar track
type ScrollbarConfig struct {
	Width       int  `toml:"width"`
	AlwaysShow  bool `toml:"always_show"`
	HideDelayMS int  `toml:"hide_delay_ms"`
}

// RepeatSettings controls hold-to-repeat on the buttons
type RepeatSettings struct {
	IntervalMS int    `toml:"interval_ms"`
	Mode       string `toml:"mode"` // constant or accelerating
	MaxStep    int    `toml:"max_step"`
}

// AnimationConfig controls eased scroll transitions
type AnimationConfig struct {
	DurationMS int    `toml:"duration_ms"` // 0 disables animation
	Easing     string `toml:"easing"`
}

// LoggingConfig controls the log file
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// HideDelay returns the auto-hide delay
func (c *Config) HideDelay() time.Duration {
	return time.Duration(c.Scrollbar.HideDelayMS) * time.Millisecond
}

// RepeatInterval returns the hold repeat cadence
func (c *Config) RepeatInterval() time.Duration {
	return time.Duration(c.Repeat.IntervalMS) * time.Millisecond
}

// AnimationDuration returns the transition length
func (c *Config) AnimationDuration() time.Duration {
	return time.Duration(c.Animation.DurationMS) * time.Millisecond
}

// Validate reports the first invalid setting, wrapping ErrInvalidConfig
func (c *Config) Validate() error {
	switch {
	case c.List.ItemCount < 0:
		return fmt.Errorf("%w: list.item_count must not be negative", ErrInvalidConfig)
	case c.List.ItemHeight < 1:
		return fmt.Errorf("%w: list.item_height must be at least 1", ErrInvalidConfig)
	case c.List.WheelStep < 1:
		return fmt.Errorf("%w: list.wheel_step must be at least 1", ErrInvalidConfig)
	case c.Scrollbar.Width < 1:
		return fmt.Errorf("%w: scrollbar.width must be at least 1", ErrInvalidConfig)
	case c.Scrollbar.HideDelayMS < 0:
		return fmt.Errorf("%w: scrollbar.hide_delay_ms must not be negative", ErrInvalidConfig)
	case c.Repeat.IntervalMS < 1:
		return fmt.Errorf("%w: repeat.interval_ms must be at least 1", ErrInvalidConfig)
	case c.Repeat.MaxStep < 1:
		return fmt.Errorf("%w: repeat.max_step must be at least 1", ErrInvalidConfig)
	case c.Animation.DurationMS < 0:
		return fmt.Errorf("%w: animation.duration_ms must not be negative", ErrInvalidConfig)
	}

	if _, ok := hold.ParseMode(c.Repeat.Mode); !ok {
		return fmt.Errorf("%w: unknown repeat.mode %q", ErrInvalidConfig, c.Repeat.Mode)
	}

	if _, ok := scroll.EasingByName(c.Animation.Easing); !ok {
		return fmt.Errorf("%w: unknown animation.easing %q", ErrInvalidConfig, c.Animation.Easing)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "trace", "debug", "info", "warn", "error", "disabled":
	default:
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns the per-user config file location
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "holdscroll", FileName)
}

// NewConfigService creates a config service for path, or DefaultPath when empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file Load and Save operate on
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it is missing
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(domain.ConfigLoadedEvent{})
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publish(domain.ConfigLoadedEvent{Path: cs.filePath})
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	cs.publish(domain.ConfigSavedEvent{Path: cs.filePath})
	return nil
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publish(event eventbus.DomainEvent) {
	if cs.bus != nil {
		cs.bus.Publish(event)
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		List: ListSettings{
			ItemCount:  50,
			ItemHeight: 3,
			StopAtEnd:  true,
			WheelStep:  1,
		},
		Scrollbar: ScrollbarConfig{
			Width:       1,
			HideDelayMS: 800,
		},
		Repeat: RepeatSettings{
			IntervalMS: 100,
			Mode:       "constant",
			MaxStep:    10,
		},
		Animation: AnimationConfig{
			DurationMS: 90,
			Easing:     "ease-out-cubic",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(os.TempDir(), "holdscroll.log"),
		},
	}
}
