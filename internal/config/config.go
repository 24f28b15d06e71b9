// Package config holds the runtime configuration for a dfe-sched run:
// scenario synthesis parameters, workload bounds, and RNG seeds. Values are
// populated from a config file, DFE_* environment variables, and CLI flags.
package config

import "github.com/spf13/viper"

// Range is an inclusive [Lower, Upper] bound used for uniform sampling.
type Range struct {
	Lower float64 `mapstructure:"lower"`
	Upper float64 `mapstructure:"upper"`
}

// Config holds every parameter needed to synthesize a scenario and a batch
// of workloads, and to schedule them.
type Config struct {
	ServerNum int     `mapstructure:"server_num"`
	Density   int     `mapstructure:"density"`
	BWRange   Range   `mapstructure:"bw_range"`
	PPRange   Range   `mapstructure:"pp_range"`

	// DemandRange bounds each function's processing-power requirement;
	// DataRange bounds the data size a function streams to its successors.
	DemandRange Range `mapstructure:"demand_range"`
	DataRange   Range `mapstructure:"data_range"`

	// RequiredNum is the number of DAGs to synthesize per size bucket when
	// building a workload batch.
	RequiredNum []int `mapstructure:"required_num"`
	MaxFuncNum  int   `mapstructure:"max_func_num"`

	Seed int64 `mapstructure:"seed"`

	// FixedPathSeed seeds FixDoc's per-DAG fixed-path draw; HEFTPathSeed
	// seeds HEFT's, independently, per algos/fixdoc.py and heft.py each
	// drawing their own random fixed routing.
	FixedPathSeed int64 `mapstructure:"fixed_path_seed"`
	HEFTPathSeed  int64 `mapstructure:"heft_path_seed"`

	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// value not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("server_num", 4)
	viper.SetDefault("density", 8)
	viper.SetDefault("bw_range.lower", 30)
	viper.SetDefault("bw_range.upper", 70)
	viper.SetDefault("pp_range.lower", 7)
	viper.SetDefault("pp_range.upper", 14)
	viper.SetDefault("demand_range.lower", 1)
	viper.SetDefault("demand_range.upper", 2)
	viper.SetDefault("data_range.lower", 1)
	viper.SetDefault("data_range.upper", 10)
	viper.SetDefault("required_num", []int{200, 800, 600, 400, 119})
	viper.SetDefault("max_func_num", 250)
	viper.SetDefault("seed", 42)
	viper.SetDefault("fixed_path_seed", 7)
	viper.SetDefault("heft_path_seed", 13)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
