package spyce

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = Config{}
)

// Config holds the package settings read from spyce.toml. Every key is
// optional: a missing file just means defaults.
type Config struct {
	// OutputDir is where trajectory and system exports are written
	// (general.output_path, default ".").
	OutputDir string
	// SystemsDir holds user system catalogs as <name>.cfg files
	// (systems.directory, default none).
	SystemsDir string
	// DefaultSystem names the system loaded when none is asked for
	// (systems.default, default "kerbol").
	DefaultSystem string
}

// LoadConfig returns the package configuration, reading spyce.toml on the
// first call. The file is searched in $SPYCE_CONFIG, the working directory
// and $HOME/.spyce, in that order; a missing file yields the defaults, a
// present but unreadable one panics.
func LoadConfig() Config {
	if cfgLoaded {
		return config
	}
	v := viper.New()
	v.SetConfigName("spyce")
	v.SetConfigType("toml")
	if confPath := os.Getenv("SPYCE_CONFIG"); confPath != "" {
		v.AddConfigPath(confPath)
	}
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home + "/.spyce")
	}
	v.SetDefault("general.output_path", ".")
	v.SetDefault("systems.directory", "")
	v.SetDefault("systems.default", "kerbol")
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			panic(fmt.Errorf("spyce.toml: %w", err))
		}
	}
	config = Config{
		OutputDir:     v.GetString("general.output_path"),
		SystemsDir:    v.GetString("systems.directory"),
		DefaultSystem: v.GetString("systems.default"),
	}
	cfgLoaded = true
	return config
}
