package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hailam/bigtext/internal/ports"
)

// EnvPrefix namespaces environment overrides, e.g. BIGTEXT_PROGRESS_EVERY.
const EnvPrefix = "BIGTEXT"

// Keys shared by flags, environment variables and config files.
const (
	KeySize          = "size"
	KeyTarget        = "target"
	KeyOutput        = "output"
	KeySeed          = "seed"
	KeyProgress      = "progress"
	KeyProgressEvery = "progress-every"
	KeyMetricsFile   = "metrics-file"
	KeyQuiet         = "quiet"
)

const (
	DefaultSize          = "100"
	DefaultOutput        = "large_test_file.txt"
	DefaultProgress      = ports.ProgressModeLog
	DefaultProgressEvery = 10_000
)

// Config is the resolved configuration for one run.
type Config struct {
	// Size is a whole number of megabytes.
	Size          string
	// Target, when set, replaces Size with a size that may carry a unit
	// suffix such as 512K or 2G.
	Target        string
	Output        string
	Seed          uint64
	Seeded        bool
	Progress      ports.ProgressMode
	ProgressEvery int64
	MetricsFile   string
	Quiet         bool
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySize, DefaultSize)
	v.SetDefault(KeyOutput, DefaultOutput)
	v.SetDefault(KeyProgress, string(DefaultProgress))
	v.SetDefault(KeyProgressEvery, DefaultProgressEvery)
	v.SetDefault(KeyQuiet, false)
	return v
}

// BindFlags makes every flag in fs visible to v under the flag's name.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	return v.BindPFlags(fs)
}

// ReadFile merges the config file at path into v. The format follows the
// file extension (yaml, toml, json, ...).
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// Load resolves a Config from v.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		Size:        v.GetString(KeySize),
		Target:      v.GetString(KeyTarget),
		Output:      v.GetString(KeyOutput),
		Progress:    ports.ProgressMode(strings.ToLower(v.GetString(KeyProgress))),
		MetricsFile: v.GetString(KeyMetricsFile),
		Quiet:       v.GetBool(KeyQuiet),
	}

	every, err := cast.ToInt64E(v.Get(KeyProgressEvery))
	if err != nil {
		return Config{}, fmt.Errorf("invalid %s: %w", KeyProgressEvery, err)
	}
	c.ProgressEvery = every

	if v.IsSet(KeySeed) {
		seed, err := cast.ToUint64E(v.Get(KeySeed))
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", KeySeed, err)
		}
		c.Seed, c.Seeded = seed, true
	}
	return c, nil
}
