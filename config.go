package routelink

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config carries every tolerance and length the core uses. All fields are
// overridable; zero values in the yaml file fall back to the defaults.
type Config struct {
	BufferMeters                float64 `yaml:"buffer_meters" validate:"gte=0"`
	WeatherRadiusMeters         float64 `yaml:"weather_radius_meters" validate:"gte=0"`
	IncidentLiveRadiusMeters    float64 `yaml:"incident_live_radius_meters" validate:"gte=0"`
	IncidentOfflineRadiusMeters float64 `yaml:"incident_offline_radius_meters" validate:"gte=0"`
	LookaheadLinks              int     `yaml:"lookahead_links" validate:"gte=0"`
	MinHistoryLength            int     `yaml:"min_history_length" validate:"gte=0"`
}

// DefaultConfig returns the documented defaults
func DefaultConfig() Config {
	return Config{
		BufferMeters:                DefaultBufferMeters,
		WeatherRadiusMeters:         DefaultWeatherRadiusMeters,
		IncidentLiveRadiusMeters:    DefaultIncidentLiveRadiusMeters,
		IncidentOfflineRadiusMeters: DefaultIncidentOfflineRadiusMeters,
		LookaheadLinks:              DefaultLookaheadLinks,
		MinHistoryLength:            DefaultMinHistoryLength,
	}
}

// LoadConfig reads a yaml config file over the defaults and validates it
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "Can't read config file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "Can't parse config file")
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, errors.Wrap(err, "Invalid config")
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (cfg *Config) fillDefaults() {
	defaults := DefaultConfig()
	if cfg.BufferMeters == 0 {
		cfg.BufferMeters = defaults.BufferMeters
	}
	if cfg.WeatherRadiusMeters == 0 {
		cfg.WeatherRadiusMeters = defaults.WeatherRadiusMeters
	}
	if cfg.IncidentLiveRadiusMeters == 0 {
		cfg.IncidentLiveRadiusMeters = defaults.IncidentLiveRadiusMeters
	}
	if cfg.IncidentOfflineRadiusMeters == 0 {
		cfg.IncidentOfflineRadiusMeters = defaults.IncidentOfflineRadiusMeters
	}
	if cfg.LookaheadLinks == 0 {
		cfg.LookaheadLinks = defaults.LookaheadLinks
	}
	if cfg.MinHistoryLength == 0 {
		cfg.MinHistoryLength = defaults.MinHistoryLength
	}
}
