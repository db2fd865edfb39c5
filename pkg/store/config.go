package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config provides the location of the on-disk planner data.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the data path from a .planner config file, the
// PLANNER_PATH environment variable, or the platform data directory,
// in that order of preference.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", filepath.Join(xdg.DataHome, "planner"))
	viper.SetConfigName(".planner") // .yaml is implicit
	viper.SetEnvPrefix("PLANNER")
	viper.AutomaticEnv()

	if override := os.Getenv("PLANNER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path := viper.GetString("path")
	if strings.HasPrefix(path, "~") {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("store: expand data path: %w", err)
		}
		path = expanded
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// ConfigAt returns a Config rooted at the given directory. Intended for
// tests and tools that manage their own data location.
func ConfigAt(path string) Config {
	return &fileConfig{Path: path}
}
