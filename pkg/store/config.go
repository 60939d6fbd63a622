package store

import (
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	defaultPath = "~/.tabi.db"
	defaultKey  = "tabi-trip"
)

// Config locates the persisted trip record.
type Config interface {
	BasePath() string
	Key() string
}

// LoadConfig reads the .tabi config file from $TABI_CONFIG_PATH or the
// working directory, with TABI_* environment overrides.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", defaultPath)
	v.SetDefault("key", defaultKey)
	v.SetConfigName(".tabi") // .yaml is implicit
	v.SetEnvPrefix("TABI")
	v.AutomaticEnv()

	if override := os.Getenv("TABI_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}
	key := v.GetString("key")
	if key == "" {
		key = defaultKey
	}
	return &fileConfig{Path: path, RecordKey: key}, nil
}

type fileConfig struct {
	Path      string `json:"path"`
	RecordKey string `json:"key"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Key() string {
	return f.RecordKey
}

// StaticConfig is a Config with fixed values.
type StaticConfig struct {
	Path      string
	RecordKey string
}

func (s StaticConfig) BasePath() string { return s.Path }

func (s StaticConfig) Key() string {
	if s.RecordKey == "" {
		return defaultKey
	}
	return s.RecordKey
}
