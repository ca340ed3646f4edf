package mapping

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"go.viam.com/beaconmap/registration"
	"go.viam.com/beaconmap/utils"
)

// Config tunes how scanners are stitched together.
type Config struct {
	// MinOverlap is the number of beacons two scanners must share to be aligned. It must be at least
	// registration.MinAlignableOverlap.
	MinOverlap int `json:"min_overlap"`
	// MinSharedDistances is the fingerprint overlap needed before a pair is tried. Zero means
	// MinOverlap choose 2.
	MinSharedDistances int                  `json:"min_shared_distances,omitempty"`
	Matcher            registration.Matcher `json:"matcher,omitempty"`
	// MaxResidual rejects alignments whose RMSE is larger. This is stricter than accepting every pair
	// with MinOverlap matched beacons: a pair that matches enough beacons but fits them poorly gets
	// no edge. Zero disables the check and keeps only the match count rule.
	MaxResidual float64 `json:"max_residual"`
	// Parallelism bounds concurrent pair alignments. Zero means utils.ParallelFactor.
	Parallelism int `json:"parallelism,omitempty"`
	// Reference is the scanner whose frame becomes the world frame.
	Reference int `json:"reference"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		MinOverlap:  registration.DefaultMinOverlap,
		Matcher:     registration.MatcherGreedy,
		MaxResidual: 0.5,
	}
}

// Validate ensures all parts of the config are valid. Every invalid field is reported.
func (config *Config) Validate(path string) error {
	var errs error
	switch {
	case config.MinOverlap == 0:
		multierr.AppendInto(&errs, utils.NewConfigValidationFieldRequiredError(path, "min_overlap"))
	case config.MinOverlap < registration.MinAlignableOverlap:
		multierr.AppendInto(&errs, utils.NewConfigValidationError(path,
			errors.Errorf("%q must be at least %d, got %d", "min_overlap", registration.MinAlignableOverlap, config.MinOverlap)))
	}
	if config.MinSharedDistances < 0 {
		multierr.AppendInto(&errs, utils.NewConfigValidationError(path,
			errors.Errorf("%q cannot be negative, got %d", "min_shared_distances", config.MinSharedDistances)))
	}
	if !config.Matcher.Valid() {
		multierr.AppendInto(&errs, utils.NewConfigValidationError(path,
			errors.Errorf("%q must be %q or %q, got %q", "matcher",
				registration.MatcherGreedy, registration.MatcherHungarian, config.Matcher)))
	}
	if config.MaxResidual < 0 {
		multierr.AppendInto(&errs, utils.NewConfigValidationError(path,
			errors.Errorf("%q cannot be negative, got %v", "max_residual", config.MaxResidual)))
	}
	if config.Parallelism < 0 {
		multierr.AppendInto(&errs, utils.NewConfigValidationError(path,
			errors.Errorf("%q cannot be negative, got %d", "parallelism", config.Parallelism)))
	}
	if config.Reference < 0 {
		multierr.AppendInto(&errs, utils.NewConfigValidationError(path,
			errors.Errorf("%q cannot be negative, got %d", "reference", config.Reference)))
	}
	return errs
}

func (config *Config) sharedDistances() int {
	if config.MinSharedDistances > 0 {
		return config.MinSharedDistances
	}
	return registration.MinSharedDistances(config.MinOverlap)
}

func (config *Config) alignOptions() registration.AlignOptions {
	return registration.AlignOptions{
		MinOverlap:  config.MinOverlap,
		Matcher:     config.Matcher,
		MaxResidual: config.MaxResidual,
	}
}

// ConfigFromAttributes decodes a loosely typed attribute map, such as one read from JSON, on top of
// DefaultConfig and validates the result. Unknown attributes are an error.
func ConfigFromAttributes(attributes map[string]interface{}) (*Config, error) {
	conf := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      &conf,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, err
	}
	if err := conf.Validate("mapping"); err != nil {
		return nil, err
	}
	return &conf, nil
}

// ConfigFromYAML decodes a YAML document of attributes, using the same keys as the JSON tags.
func ConfigFromYAML(data []byte) (*Config, error) {
	var attributes map[string]interface{}
	if err := yaml.Unmarshal(data, &attributes); err != nil {
		return nil, errors.Wrap(err, "cannot parse mapping config")
	}
	return ConfigFromAttributes(attributes)
}
