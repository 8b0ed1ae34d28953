// Package config loads the YAML description of a training run.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/ffnet/internal/matrix"
	"github.com/born-ml/ffnet/internal/nn"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

const defaultIterations = 1000

// Config captures the runtime knobs for a training run.
type Config struct {
	InputSize    int     `yaml:"input_size"`
	OutputSize   int     `yaml:"output_size"`
	HiddenSizes  []int   `yaml:"hidden_sizes"`
	LearningRate float64 `yaml:"learning_rate"`
	Momentum     float64 `yaml:"momentum"`
	Init         string  `yaml:"init"`
	Seed         uint64  `yaml:"seed"`
	Iterations   int     `yaml:"iterations"`
	LogEvery     int     `yaml:"log_every"`
	Progress     bool    `yaml:"progress"`

	// NormalizeInputs divides every input column by its maximum.
	NormalizeInputs bool `yaml:"normalize_inputs"`
	// TargetScale divides every target; 0 means 1.
	TargetScale float64 `yaml:"target_scale"`

	Inputs  [][]float64 `yaml:"inputs"`
	Targets [][]float64 `yaml:"targets"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	Iterations   int
	Seed         uint64
	LearningRate float64
	Momentum     float64
	Progress     bool
}

// Default returns the exam-score demo: hours studied and slept for three
// students against their scores out of 100.
func Default() *Config {
	return &Config{
		InputSize:       2,
		OutputSize:      1,
		HiddenSizes:     []int{3},
		LearningRate:    1,
		Init:            string(nn.InitUniform),
		Seed:            42,
		Iterations:      defaultIterations,
		LogEvery:        100,
		NormalizeInputs: true,
		TargetScale:     100,
		Inputs:          [][]float64{{2, 9}, {1, 5}, {3, 6}},
		Targets:         [][]float64{{92}, {86}, {89}},
	}
}

// Load reads and validates a Config from a YAML file.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a Config. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates c using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.Iterations > 0 {
		c.Iterations = o.Iterations
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.LearningRate > 0 {
		c.LearningRate = o.LearningRate
	}
	if o.Momentum > 0 {
		c.Momentum = o.Momentum
	}
	if o.Progress {
		c.Progress = true
	}
}

// Validate verifies the config is runnable and fills defaults. Layer sizes
// left at zero are inferred from the data.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalid)
	}
	if len(c.Inputs) == 0 {
		return fmt.Errorf("%w: inputs must not be empty", ErrInvalid)
	}
	if len(c.Targets) != len(c.Inputs) {
		return fmt.Errorf("%w: %d inputs but %d targets", ErrInvalid, len(c.Inputs), len(c.Targets))
	}
	if len(c.HiddenSizes) == 0 {
		return fmt.Errorf("%w: hidden_sizes must list at least one layer", ErrInvalid)
	}
	if c.InputSize == 0 {
		c.InputSize = len(c.Inputs[0])
	}
	if c.OutputSize == 0 {
		c.OutputSize = len(c.Targets[0])
	}
	if err := checkWidth("inputs", c.Inputs, c.InputSize); err != nil {
		return err
	}
	if err := checkWidth("targets", c.Targets, c.OutputSize); err != nil {
		return err
	}
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations must be >= 0 (got %d)", ErrInvalid, c.Iterations)
	}
	if c.Iterations == 0 {
		c.Iterations = defaultIterations
	}
	if c.LearningRate < 0 {
		return fmt.Errorf("%w: learning_rate must be >= 0 (got %v)", ErrInvalid, c.LearningRate)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("%w: momentum must be in [0, 1) (got %v)", ErrInvalid, c.Momentum)
	}
	if c.TargetScale < 0 {
		return fmt.Errorf("%w: target_scale must be >= 0 (got %v)", ErrInvalid, c.TargetScale)
	}
	if c.TargetScale == 0 {
		c.TargetScale = 1
	}
	switch nn.Init(c.Init) {
	case "", nn.InitUniform, nn.InitNormal:
	default:
		return fmt.Errorf("%w: unknown init %q", ErrInvalid, c.Init)
	}
	return nil
}

func checkWidth(name string, rows [][]float64, want int) error {
	for i, row := range rows {
		if len(row) != want {
			return fmt.Errorf("%w: %s row %d has %d values, want %d", ErrInvalid, name, i, len(row), want)
		}
	}
	return nil
}

// NetworkConfig returns the nn.Config for this run.
func (c *Config) NetworkConfig() nn.Config {
	return nn.Config{
		InputSize:    c.InputSize,
		OutputSize:   c.OutputSize,
		HiddenSizes:  append([]int(nil), c.HiddenSizes...),
		LearningRate: c.LearningRate,
		Momentum:     c.Momentum,
		Init:         nn.Init(c.Init),
		Seed:         c.Seed,
	}
}

// Dataset builds the training matrices, applying input normalization and
// target scaling. It also returns the column maxima used for normalization
// (nil when NormalizeInputs is off).
func (c *Config) Dataset() (xs, ys *matrix.Matrix[float64], maxes []float64, err error) {
	xs, err = matrix.FromRows(c.Inputs)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("inputs: %w", err)
	}
	ys, err = matrix.FromRows(c.Targets)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("targets: %w", err)
	}

	if c.NormalizeInputs {
		maxes, err = xs.Max()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("inputs: %w", err)
		}
		xs, err = matrix.NormalizeColumns(xs, maxes)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("inputs: %w", err)
		}
	}
	if c.TargetScale != 0 && c.TargetScale != 1 {
		ys = ys.Scale(1 / c.TargetScale)
	}
	return xs, ys, maxes, nil
}
