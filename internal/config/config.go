package config

import (
	"os"
	"time"

	"github.com/arkagimt/DSA-LEARNING-HUB/internal/input"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme       = "cyberpunk"
	DefaultSpeed       = 1.0
	DefaultDelayMS     = 600
	DefaultDataDir     = ".dsahub"
	DefaultMaxValues   = input.MaxValues
	DefaultWindow      = 3
	DefaultThreshold   = 4
	DefaultProduceRate = 2
	DefaultConsumeRate = 1
	DefaultWorkers     = 3
	DefaultWorkerSize  = 6
	DefaultK           = 3
)

var (
	ErrInvalidSpeed     = errors.New("config: speed must be positive")
	ErrInvalidMaxValues = errors.New("config: max_values must be between 1 and 20")
	ErrInvalidDelay     = errors.New("config: delay_ms must not be negative")
	ErrTooManyValues    = errors.New("config: lesson has more values than max_values")
)

type Config struct {
	Theme     string             `yaml:"theme"`
	Speed     float64            `yaml:"speed"`
	DelayMS   int                `yaml:"delay_ms"`
	DataDir   string             `yaml:"data_dir"`
	MaxValues int                `yaml:"max_values"`
	Log       LogConfig          `yaml:"log"`
	Metrics   MetricsConfig      `yaml:"metrics"`
	Lessons   map[string]Dataset `yaml:"lessons"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Dataset is the input of one lesson. Fields a lesson does not use are
// ignored by it.
type Dataset struct {
	Values      []int               `yaml:"values,omitempty"`
	Target      *int                `yaml:"target,omitempty"`
	Window      int                 `yaml:"window,omitempty"`
	Mode        string              `yaml:"mode,omitempty"`
	Start       string              `yaml:"start,omitempty"`
	K           int                 `yaml:"k,omitempty"`
	Workers     int                 `yaml:"workers,omitempty"`
	Size        int                 `yaml:"size,omitempty"`
	Seed        int64               `yaml:"seed,omitempty"`
	Threshold   int                 `yaml:"threshold,omitempty"`
	ProduceRate int                 `yaml:"produce_rate,omitempty"`
	ConsumeRate int                 `yaml:"consume_rate,omitempty"`
	Jobs        []string            `yaml:"jobs,omitempty"`
	Graph       map[string][]string `yaml:"graph,omitempty"`
	DelayMS     int                 `yaml:"delay_ms,omitempty"`
}

// IntPtr is a helper for optional dataset fields.
func IntPtr(v int) *int { return &v }

// Delay is the per-frame pacing, falling back to def.
func (d Dataset) Delay(def time.Duration) time.Duration {
	if d.DelayMS > 0 {
		return time.Duration(d.DelayMS) * time.Millisecond
	}
	return def
}

// Merge returns d with every set field of o applied on top.
func (d Dataset) Merge(o Dataset) Dataset {
	if len(o.Values) > 0 {
		d.Values = append([]int(nil), o.Values...)
	}
	if o.Target != nil {
		d.Target = IntPtr(*o.Target)
	}
	if o.Window != 0 {
		d.Window = o.Window
	}
	if o.Mode != "" {
		d.Mode = o.Mode
	}
	if o.Start != "" {
		d.Start = o.Start
	}
	if o.K != 0 {
		d.K = o.K
	}
	if o.Workers != 0 {
		d.Workers = o.Workers
	}
	if o.Size != 0 {
		d.Size = o.Size
	}
	if o.Seed != 0 {
		d.Seed = o.Seed
	}
	if o.Threshold != 0 {
		d.Threshold = o.Threshold
	}
	if o.ProduceRate != 0 {
		d.ProduceRate = o.ProduceRate
	}
	if o.ConsumeRate != 0 {
		d.ConsumeRate = o.ConsumeRate
	}
	if len(o.Jobs) > 0 {
		d.Jobs = append([]string(nil), o.Jobs...)
	}
	if len(o.Graph) > 0 {
		d.Graph = o.Graph
	}
	if o.DelayMS != 0 {
		d.DelayMS = o.DelayMS
	}
	return d
}

func DefaultConfig() *Config {
	return &Config{
		Theme:     DefaultTheme,
		Speed:     DefaultSpeed,
		DelayMS:   DefaultDelayMS,
		DataDir:   DefaultDataDir,
		MaxValues: DefaultMaxValues,
		Log:       LogConfig{Level: "info", Format: "text"},
		Lessons:   make(map[string]Dataset),
	}
}

// Sample is DefaultConfig with every built-in dataset spelled out, as
// written by config init.
func Sample() *Config {
	cfg := DefaultConfig()
	cfg.Lessons = DefaultDatasets()
	return cfg
}

// DefaultDatasets holds the built-in example data of every lesson.
func DefaultDatasets() map[string]Dataset {
	return map[string]Dataset{
		"binary-search": {Values: []int{3, 8, 15, 21, 34, 42, 56, 63, 77, 91}, Target: IntPtr(56)},
		"two-pointers":  {Values: []int{1, 1, 2, 3, 3, 3, 5, 8, 8, 13}},
		"sliding-window": {
			Values: []int{4, 2, 12, 3, 8, 1, 7, 9, 2, 5},
			Window: DefaultWindow,
		},
		"graph":     {Mode: "bfs", Start: "A"},
		"recursion": {Values: []int{5}},
		"heap": {
			Values: []int{3, 9, 4, 7, 1, 8},
			Jobs:   []string{"nightly-etl", "exec-dashboard", "backfill", "fraud-model", "vacuum", "billing-close"},
		},
		"stack-queue": {
			Values:      []int{101, 102, 103, 104, 105, 106, 107, 108, 109, 110},
			Mode:        "queue",
			Threshold:   DefaultThreshold,
			ProduceRate: DefaultProduceRate,
			ConsumeRate: DefaultConsumeRate,
		},
		"top-k": {
			Workers: DefaultWorkers,
			Size:    DefaultWorkerSize,
			K:       DefaultK,
			Seed:    7,
		},
	}
}

// DatasetFor returns the configured dataset of a lesson layered over the
// built-in one, paced at the global delay unless the lesson sets its own.
// Lessons only holds what a config file set.
func (c *Config) DatasetFor(lesson string) Dataset {
	base := DefaultDatasets()[lesson]
	if c == nil {
		return base
	}
	base.DelayMS = c.DelayMS
	return base.Merge(c.Lessons[lesson])
}

func (c *Config) Validate() error {
	if c.Speed <= 0 {
		return ErrInvalidSpeed
	}
	if c.DelayMS < 0 {
		return ErrInvalidDelay
	}
	// Lessons render every value, so the limit can only be lowered.
	if c.MaxValues < 1 || c.MaxValues > input.MaxValues {
		return ErrInvalidMaxValues
	}
	for name, ds := range c.Lessons {
		if len(ds.Values) > c.MaxValues {
			return errors.Wrapf(ErrTooManyValues, "lesson %s has %d", name, len(ds.Values))
		}
	}
	return nil
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "unable to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "unable to encode config")
	}
	return os.WriteFile(path, data, 0644)
}
