package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kuberlab/vsprof/pkg/profiler"
	"github.com/kuberlab/vsprof/pkg/utils"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var Config = Default()

const (
	// Priority
	FromCFG = 0
	FromENV = 1
	FromCLI = 2
)

type ProfilerConfig struct {
	Output        string        `yaml:"output"`
	Resolution    time.Duration `yaml:"resolution"`
	FlushInterval time.Duration `yaml:"flush_interval"`
	LogLevel      string        `yaml:"log_level"`
}

// Overrides are values given on the command line. Empty means not given.
type Overrides struct {
	Output        string
	Resolution    string
	FlushInterval string
}

func Default() *ProfilerConfig {
	opts := profiler.DefaultOptions()
	return &ProfilerConfig{
		Output:     opts.Output,
		Resolution: opts.Resolution,
	}
}

func InitConfigField(field *string, cliValue, envVarName, defaultValue string) int {
	// 1. CLI value
	if cliValue != "" {
		*field = cliValue
		return FromCLI
	}
	// 2. Env value
	envValue := os.Getenv(envVarName)
	if envValue != "" {
		*field = envValue
		return FromENV
	}
	// 3. Default value if not set
	if *field == "" {
		*field = defaultValue
	}
	return FromCFG
}

// InitDurationField is InitConfigField for durations. A zero field counts as not set.
func InitDurationField(field *time.Duration, cliValue, envVarName string, defaultValue time.Duration) (int, error) {
	raw := ""
	prio := InitConfigField(&raw, cliValue, envVarName, "")
	if prio == FromCFG {
		if *field == 0 {
			*field = defaultValue
		}
		return prio, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return prio, fmt.Errorf("invalid duration %q: %v", raw, err)
	}
	*field = d
	return prio, nil
}

// InitConfig loads Config from the given path. A missing file keeps the defaults.
func InitConfig(filepath string) error {
	if filepath == "" || !utils.Exists(filepath) {
		logrus.Debugf("Config %v not found, using defaults.", filepath)
		Config = Default()
		return nil
	}

	data, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}

	if err := Load(data); err != nil {
		return fmt.Errorf("%v: %v", filepath, err)
	}

	logrus.Debugf("Config loaded from %v.", filepath)
	return nil
}

// Load reads data, deserialize it as ProfilerConfig and assign as the global Config.
func Load(data []byte) error {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

// Apply merges environment and command line values into c, CLI first.
func (c *ProfilerConfig) Apply(o Overrides) error {
	def := profiler.DefaultOptions()
	InitConfigField(&c.Output, o.Output, utils.OutputVar, def.Output)
	if _, err := InitDurationField(&c.Resolution, o.Resolution, utils.ResolutionVar, def.Resolution); err != nil {
		return fmt.Errorf("resolution: %v", err)
	}
	if _, err := InitDurationField(&c.FlushInterval, o.FlushInterval, utils.FlushIntervalVar, 0); err != nil {
		return fmt.Errorf("flush interval: %v", err)
	}
	return c.Validate()
}

func (c *ProfilerConfig) Validate() error {
	if c.Resolution <= 0 {
		return fmt.Errorf("resolution must be positive, got %v", c.Resolution)
	}
	if c.FlushInterval < 0 {
		return fmt.Errorf("flush interval must not be negative, got %v", c.FlushInterval)
	}
	return nil
}

func (c *ProfilerConfig) Options() profiler.Options {
	return profiler.Options{
		Output:        c.Output,
		Resolution:    c.Resolution,
		FlushInterval: c.FlushInterval,
	}
}
