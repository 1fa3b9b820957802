package config

import (
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"

	"github.com/offlinefirst/keypost/pkg/inject"
)

const DefaultFileName = "keypost.yaml"

// Config captures the user-adjustable knobs for event delivery.
type Config struct {
	Targets  TargetsConfig  `yaml:"targets"`
	Keys     KeysConfig     `yaml:"keys"`
	Delivery DeliveryConfig `yaml:"delivery"`
	Logging  LoggingConfig  `yaml:"logging"`

	// Source indicates where the configuration originated (defaults or a file path).
	Source string `yaml:"-"`
}

// TargetsConfig lists the processes that receive events, in delivery order.
type TargetsConfig struct {
	PIDs []int `yaml:"pids"`
}

// KeysConfig selects the key sequence. A non-empty Sequence takes precedence
// over Chord.
type KeysConfig struct {
	Chord    []string      `yaml:"chord"`
	Sequence []inject.Step `yaml:"sequence"`
}

// DeliveryConfig tunes how events are posted.
type DeliveryConfig struct {
	DelayMillis int  `yaml:"delay_ms"`
	DryRun      bool `yaml:"dry_run"`
}

// LoggingConfig defines log verbosity and formatting.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the baseline configuration: cmd+f posted to pid 549.
func Default() Config {
	return Config{
		Targets: TargetsConfig{
			PIDs: []int{549},
		},
		Keys: KeysConfig{
			Chord: []string{"0x03", "0x37"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Source: "<defaults>",
	}
}

// Load reads configuration from disk if present, otherwise returning defaults.
// When path is empty, the loader attempts to read ./keypost.yaml but tolerates a missing file.
func Load(path string) (Config, error) {
	cfg := Default()

	candidate := strings.TrimSpace(path)
	explicit := candidate != ""
	if !explicit {
		candidate = DefaultFileName
	}

	file, err := os.Open(candidate)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if explicit {
				return cfg, errors.Errorf("config file %q not found", candidate)
			}
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "open config file %q", candidate)
	}
	defer file.Close()

	if err := decode(file, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "decode config file %q", candidate)
	}
	cfg.Source = candidate
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// Validate ensures essential configuration values are present and sensible.
func (c Config) Validate() error {
	if _, err := NormalizeLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if _, err := NormalizeFormat(c.Logging.Format); err != nil {
		return err
	}
	if c.Delivery.DelayMillis < 0 {
		return errors.New("delivery.delay_ms must not be negative")
	}
	if len(c.Keys.Chord) == 0 && len(c.Keys.Sequence) == 0 {
		return errors.New("keys.chord or keys.sequence must name at least one key")
	}
	if _, err := c.Events(); err != nil {
		return err
	}
	return nil
}

// Events resolves the configured keys into the ordered events to post.
func (c Config) Events() ([]inject.Event, error) {
	if len(c.Keys.Sequence) > 0 {
		events, err := inject.ParseSequence(c.Keys.Sequence)
		return events, errors.Wrap(err, "keys.sequence")
	}
	events, err := inject.ParseChord(c.Keys.Chord)
	return events, errors.Wrap(err, "keys.chord")
}

func (c *Config) normalize() {
	defaults := Default()

	if strings.TrimSpace(c.Logging.Level) == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if strings.TrimSpace(c.Logging.Format) == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}

// NormalizeLogLevel validates and lowercases known logging levels.
func NormalizeLogLevel(level string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return "info", nil
	case "debug":
		return "debug", nil
	case "warn", "warning":
		return "warn", nil
	case "error":
		return "error", nil
	default:
		return "", errors.Errorf("unsupported log level %q", level)
	}
}

// NormalizeFormat validates and canonicalizes logging format identifiers.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console", "text":
		return "console", nil
	case "json":
		return "json", nil
	default:
		return "", errors.Errorf("unsupported log format %q", format)
	}
}
