package models

import (
	"os"

	"gopkg.in/yaml.v3"
)

// BenchSpec is the run configuration, loadable from a YAML file. CLI
// flags override individual fields.
type BenchSpec struct {
	Name         string  `yaml:"name"`
	Fixture      string  `yaml:"fixture"`
	Cases        int     `yaml:"cases"`
	FailureRatio float64 `yaml:"failure_ratio"`
	Seed         int64   `yaml:"seed"`
	OutputDir    string  `yaml:"output_dir"`
	Warmup       bool    `yaml:"warmup"`
}

// DefaultBenchSpec returns the reference configuration: 1000 cases,
// 787 of them failing, seed 42.
func DefaultBenchSpec() BenchSpec {
	return BenchSpec{
		Name:         "error-signaling",
		Fixture:      "testcases.json",
		Cases:        1000,
		FailureRatio: 0.787,
		Seed:         42,
		OutputDir:    ".",
	}
}

// LoadBenchSpec loads a spec from a YAML file, filling unset fields from
// the defaults.
func LoadBenchSpec(path string) (BenchSpec, error) {
	spec := DefaultBenchSpec()

	data, err := os.ReadFile(path)
	if err != nil {
		return spec, Configf("reading spec %s: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, Configf("parsing spec %s: %v", path, err)
	}

	if err := spec.Validate(); err != nil {
		return spec, err
	}
	return spec, nil
}

// Validate checks that the spec is runnable.
func (s *BenchSpec) Validate() error {
	if s.Cases <= 0 {
		return Configf("cases must be positive, got %d", s.Cases)
	}
	if s.FailureRatio < 0 || s.FailureRatio > 1 {
		return Configf("failure_ratio must be in [0, 1], got %g", s.FailureRatio)
	}
	if s.Fixture == "" {
		return Configf("fixture path must not be empty")
	}
	return nil
}
