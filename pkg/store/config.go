package store

import (
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves once at startup; nothing re-reads configuration per
// call.
type Config interface {
	BasePath() string
}

// LoadConfig finds a .docket config file (current directory or
// DOCKET_CONFIG_PATH), with DOCKET_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.docket.db")
	viper.SetConfigName(".docket") // .yaml is implicit
	viper.SetEnvPrefix("DOCKET")
	viper.AutomaticEnv()

	if override := os.Getenv("DOCKET_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path := viper.GetString("path")
	if expanded, err := homedir.Expand(path); err == nil {
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
