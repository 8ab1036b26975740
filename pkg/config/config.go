package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"f1lapvisualiser/pkg/catalog"
	"f1lapvisualiser/pkg/provider/openf1"
)

type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Seasons  SeasonsConfig  `yaml:"seasons"`
	Output   OutputConfig   `yaml:"output"`
	Telegram TelegramConfig `yaml:"telegram"`
}

type ProviderConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
	Retries int           `yaml:"retries"`
}

type SeasonsConfig struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

type OutputConfig struct {
	Dir      string `yaml:"dir"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Open     bool   `yaml:"open"`
	Progress bool   `yaml:"progress"`
}

type TelegramConfig struct {
	Token  string `yaml:"token"`
	ChatID int64  `yaml:"chat_id"`
}

// Enabled reports whether charts should be shared on Telegram.
func (t TelegramConfig) Enabled() bool {
	return t.Token != "" && t.ChatID != 0
}

func (s SeasonsConfig) Years() catalog.YearRange {
	return catalog.YearRange{First: s.First, Last: s.Last}
}

// UncoveredSeasons returns the seasons of the range that the public OpenF1
// API has no data for.
func (c *Config) UncoveredSeasons() (catalog.YearRange, bool) {
	if c.Provider.BaseURL != openf1.DefaultBaseURL || c.Seasons.First >= openf1.FirstSeason {
		return catalog.YearRange{}, false
	}
	return catalog.YearRange{
		First: c.Seasons.First,
		Last:  min(c.Seasons.Last, openf1.FirstSeason-1),
	}, true
}

func Default() *Config {
	return &Config{
		Provider: ProviderConfig{
			BaseURL: openf1.DefaultBaseURL,
			Timeout: openf1.DefaultTimeout,
			Retries: 2,
		},
		// OpenF1 only covers the seasons from openf1.FirstSeason on, older
		// years in the range list no events.
		Seasons: SeasonsConfig{
			First: catalog.DefaultFirstSeason,
			Last:  catalog.DefaultLastSeason,
		},
		Output: OutputConfig{
			Dir:      "./charts",
			Width:    700,
			Height:   600,
			Open:     true,
			Progress: true,
		},
	}
}

// Load starts from Default, merges the YAML file at path when one is given
// and then applies environment overrides:
//
//	F1LAPS_PROVIDER_URL, F1LAPS_PROVIDER_TIMEOUT, F1LAPS_PROVIDER_RETRIES,
//	F1LAPS_FIRST_SEASON, F1LAPS_LAST_SEASON,
//	F1LAPS_OUTPUT_DIR, F1LAPS_OUTPUT_OPEN,
//	F1LAPS_TELEGRAM_TOKEN (or TELEGRAM_TOKEN), F1LAPS_TELEGRAM_CHAT_ID
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "reading config file")
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "parsing config file")
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "config validation")
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("F1LAPS_PROVIDER_URL"); v != "" {
		cfg.Provider.BaseURL = v
	}
	if v := os.Getenv("F1LAPS_PROVIDER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrap(err, "F1LAPS_PROVIDER_TIMEOUT")
		}
		cfg.Provider.Timeout = d
	}
	if v := os.Getenv("F1LAPS_PROVIDER_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "F1LAPS_PROVIDER_RETRIES")
		}
		cfg.Provider.Retries = n
	}
	if v := os.Getenv("F1LAPS_FIRST_SEASON"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "F1LAPS_FIRST_SEASON")
		}
		cfg.Seasons.First = n
	}
	if v := os.Getenv("F1LAPS_LAST_SEASON"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "F1LAPS_LAST_SEASON")
		}
		cfg.Seasons.Last = n
	}
	if v := os.Getenv("F1LAPS_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}
	if v := os.Getenv("F1LAPS_OUTPUT_OPEN"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "F1LAPS_OUTPUT_OPEN")
		}
		cfg.Output.Open = b
	}
	if v := os.Getenv("TELEGRAM_TOKEN"); v != "" {
		cfg.Telegram.Token = v
	}
	if v := os.Getenv("F1LAPS_TELEGRAM_TOKEN"); v != "" {
		cfg.Telegram.Token = v
	}
	if v := os.Getenv("F1LAPS_TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 0, 64)
		if err != nil {
			return errors.Wrap(err, "F1LAPS_TELEGRAM_CHAT_ID")
		}
		cfg.Telegram.ChatID = id
	}
	return nil
}

func (c *Config) validate() error {
	if c.Provider.BaseURL == "" {
		return errors.New("provider.base_url is required")
	}
	if c.Provider.Retries < 0 {
		return errors.New("provider.retries cannot be negative")
	}
	if c.Seasons.First <= 0 || c.Seasons.Last < c.Seasons.First {
		return errors.Errorf("invalid season range %d-%d", c.Seasons.First, c.Seasons.Last)
	}
	if c.Output.Dir == "" {
		return errors.New("output.dir is required")
	}
	if c.Output.Width <= 0 || c.Output.Height <= 0 {
		return errors.New("output.width and output.height must be positive")
	}
	return nil
}
