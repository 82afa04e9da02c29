package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Period is one stretch of the simulated workload with a fixed change rate.
// When NoCompression is set, every interval in the period uses ratio 1.0
// instead of the smoothed ratio series.
type Period struct {
	Hours         float64 `yaml:"hours"`
	RateKBps      float64 `yaml:"rate_kbps"`
	NoCompression bool    `yaml:"no_compression,omitempty"`
}

// Scenario describes a synthetic report: the instance name, sampling
// interval, noise parameters, and the ordered workload periods.
type Scenario struct {
	Name            string   `yaml:"name"`
	IntervalSeconds int      `yaml:"interval_seconds"`
	Seed            int64    `yaml:"seed"`
	DataRandomness  float64  `yaml:"data_randomness"`
	BaseRatio       float64  `yaml:"base_ratio"`
	RatioRandomness float64  `yaml:"ratio_randomness"`
	Smoothing       float64  `yaml:"smoothing"`
	Periods         []Period `yaml:"periods"`
}

// Default returns the stock 16-hour scenario: a base 200 KB/s change rate
// with a 2048 KB/s burst at hours 4-8, a second burst at hours 12-14 during
// which compression is disabled, and a quiet tail.
func Default() Scenario {
	return Scenario{
		Name:            "vm-1",
		IntervalSeconds: 300,
		Seed:            42,
		DataRandomness:  0.10,
		BaseRatio:       2.0,
		RatioRandomness: 0.15,
		Smoothing:       0.7,
		Periods: []Period{
			{Hours: 4, RateKBps: 200},
			{Hours: 4, RateKBps: 2048},
			{Hours: 4, RateKBps: 200},
			{Hours: 2, RateKBps: 2048, NoCompression: true},
			{Hours: 2, RateKBps: 200},
		},
	}
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided scenario path
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses and validates scenario YAML content. Omitted noise
// and interval fields fall back to the defaults.
func ParseScenario(data []byte) (Scenario, error) {
	s := Default()
	s.Periods = nil
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario YAML: %w", err)
	}
	if err := s.validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func (s Scenario) validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario: name is required")
	}
	if s.IntervalSeconds <= 0 {
		return fmt.Errorf("scenario: interval_seconds must be positive (got %d)", s.IntervalSeconds)
	}
	if s.BaseRatio <= 0 {
		return fmt.Errorf("scenario: base_ratio must be positive (got %g)", s.BaseRatio)
	}
	if s.Smoothing < 0 || s.Smoothing >= 1 {
		return fmt.Errorf("scenario: smoothing must be in [0, 1) (got %g)", s.Smoothing)
	}
	// Both noise factors scale a value by (1-r, 1+r); r >= 1 lets the
	// factor reach zero or go negative, which zeroes a ratio (division by
	// zero downstream) or shrinks the running totals.
	if s.DataRandomness < 0 || s.DataRandomness >= 1 {
		return fmt.Errorf("scenario: data_randomness must be in [0, 1) (got %g)", s.DataRandomness)
	}
	if s.RatioRandomness < 0 || s.RatioRandomness >= 1 {
		return fmt.Errorf("scenario: ratio_randomness must be in [0, 1) (got %g)", s.RatioRandomness)
	}
	if len(s.Periods) == 0 {
		return fmt.Errorf("scenario: at least one period is required")
	}
	for i, p := range s.Periods {
		if p.Hours <= 0 {
			return fmt.Errorf("scenario: periods[%d].hours must be positive (got %g)", i, p.Hours)
		}
		if p.RateKBps <= 0 {
			return fmt.Errorf("scenario: periods[%d].rate_kbps must be positive (got %g)", i, p.RateKBps)
		}
	}
	return nil
}

// Intervals returns the number of samples a period contributes.
func (s Scenario) Intervals(p Period) int {
	return int(p.Hours * 3600 / float64(s.IntervalSeconds))
}

// TotalIntervals returns the number of samples across all periods.
func (s Scenario) TotalIntervals() int {
	n := 0
	for _, p := range s.Periods {
		n += s.Intervals(p)
	}
	return n
}
