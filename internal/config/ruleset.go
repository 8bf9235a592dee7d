// Package config loads the engine's ruleset from a viper-backed config
// file, with the teacher's hot-reload-on-change idiom kept for long-running
// processes (cmd/replayserver) that want to pick up rule changes without a
// restart.
package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// HanchanLength selects half or full hanchan per spec.md's ruleset options.
type HanchanLength string

const (
	HalfHanchan HanchanLength = "half"
	FullHanchan HanchanLength = "full"
)

// MultiRonPolicy selects how simultaneous ron claims are resolved.
type MultiRonPolicy string

const (
	HeadBump  MultiRonPolicy = "head_bump"
	DoubleRon MultiRonPolicy = "double_ron"
	TripleRon MultiRonPolicy = "triple_ron"
)

// LogConf mirrors the teacher's logging config shape.
type LogConf struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// Ruleset is the full set of runtime-tunable rule options; nothing else
// affects engine behaviour (spec.md §6).
type Ruleset struct {
	Hanchan         HanchanLength  `mapstructure:"hanchan"`
	MultiRon        MultiRonPolicy `mapstructure:"multiRon"`
	KiriageMangan   bool           `mapstructure:"kiriageMangan"`
	StartingScore   int            `mapstructure:"startingScore"`
	MinRiichiFunds  int            `mapstructure:"minRiichiFunds"`
	Log             LogConf        `mapstructure:"log"`
}

// Default returns the conventional Japanese-rules defaults.
func Default() Ruleset {
	return Ruleset{
		Hanchan:        FullHanchan,
		MultiRon:       HeadBump,
		KiriageMangan:  false,
		StartingScore:  25000,
		MinRiichiFunds: 1000,
		Log:            LogConf{Level: "info"},
	}
}

// Load reads a ruleset from configFile, filling any unset fields from
// Default(). It registers no watcher itself; long-running callers pass the
// returned viper to Watch to re-read without restarting the process.
func Load(configFile string) (Ruleset, *viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	def := Default()
	v.SetDefault("hanchan", string(def.Hanchan))
	v.SetDefault("multiRon", string(def.MultiRon))
	v.SetDefault("kiriageMangan", def.KiriageMangan)
	v.SetDefault("startingScore", def.StartingScore)
	v.SetDefault("minRiichiFunds", def.MinRiichiFunds)
	v.SetDefault("log.level", def.Log.Level)

	if err := v.ReadInConfig(); err != nil {
		return Ruleset{}, nil, fmt.Errorf("config: reading %s: %w", configFile, err)
	}

	var rs Ruleset
	if err := v.Unmarshal(&rs); err != nil {
		return Ruleset{}, nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return rs, v, nil
}

// Watch installs a reload callback invoked whenever the backing file
// changes; onChange receives the freshly re-unmarshalled Ruleset.
func Watch(v *viper.Viper, onChange func(Ruleset)) {
	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		var rs Ruleset
		if err := v.Unmarshal(&rs); err == nil {
			onChange(rs)
		}
	})
}
