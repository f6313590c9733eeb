package roadnet

import (
	"os"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is file based configuration of the import -> synthesis -> export pipeline
type Config struct {
	// `highway` tag values to import
	Highways []string `yaml:"highways"`
	// 'rht' or 'lht'
	TrafficRule string `yaml:"traffic_rule"`
	// Lane width in meters for imported roads
	LaneWidth float64 `yaml:"lane_width"`
	// Maximum distance between paired lane ends, meters. Zero disables the check.
	MaxEndpointDistance float64 `yaml:"max_endpoint_distance"`
	// Step in meters used to approximate reference lines
	SamplingStep float64 `yaml:"sampling_step"`
	// Lon/lat of local origin. Empty means first imported node.
	Origin []float64 `yaml:"origin,omitempty"`
}

// DefaultConfig returns configuration used when no file is given
func DefaultConfig() *Config {
	highways := make([]string, len(defaultHighwayTypes))
	copy(highways, defaultHighwayTypes)
	return &Config{
		Highways:            highways,
		TrafficRule:         TRAFFIC_RHT.String(),
		LaneWidth:           defaultLaneWidth,
		MaxEndpointDistance: 2.0,
		SamplingStep:        defaultSamplingStep,
	}
}

// LoadConfig reads YAML file. Missing fields keep values of DefaultConfig.
func LoadConfig(fname string) (*Config, error) {
	b, err := os.ReadFile(fname)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read config file '%s'", fname)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.Wrapf(err, "Can't parse config file '%s'", fname)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values which can't be silently defaulted
func (cfg *Config) Validate() error {
	if _, err := TrafficSideFromString(cfg.TrafficRule); err != nil {
		return errors.Wrap(err, "Bad traffic_rule")
	}
	if cfg.LaneWidth < 0 {
		return errors.Wrapf(ErrConfiguration, "lane_width must be non-negative, got %f", cfg.LaneWidth)
	}
	if cfg.SamplingStep < 0 {
		return errors.Wrapf(ErrConfiguration, "sampling_step must be non-negative, got %f", cfg.SamplingStep)
	}
	if len(cfg.Origin) != 0 && len(cfg.Origin) != 2 {
		return errors.Wrapf(ErrConfiguration, "origin must be [lon, lat], got %d values", len(cfg.Origin))
	}
	return nil
}

// TrafficSide returns parsed traffic rule
func (cfg *Config) TrafficSide() TrafficSide {
	side, err := TrafficSideFromString(cfg.TrafficRule)
	if err != nil {
		return TRAFFIC_RHT
	}
	return side
}

// NetworkOptions converts config to RoadNetwork options
func (cfg *Config) NetworkOptions() []func(*RoadNetwork) {
	return []func(*RoadNetwork){
		WithTrafficRule(cfg.TrafficSide()),
		WithSamplingStep(cfg.SamplingStep),
	}
}

// ImportOptions converts config to ImportOSM options
func (cfg *Config) ImportOptions() []func(*importOptions) {
	options := []func(*importOptions){
		WithHighwayTypes(cfg.Highways...),
		WithDefaultLaneWidth(cfg.LaneWidth),
		WithImportTrafficSide(cfg.TrafficSide()),
	}
	if len(cfg.Origin) == 2 {
		options = append(options, WithOrigin(orb.Point{cfg.Origin[0], cfg.Origin[1]}))
	}
	return options
}

// MergeOptions converts config to MergeEntries options
func (cfg *Config) MergeOptions() []func(*mergeOptions) {
	return []func(*mergeOptions){
		WithMaxEndpointDistance(cfg.MaxEndpointDistance),
	}
}
