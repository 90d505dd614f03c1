// Package config reads the .uavreport settings file and UAVREPORT_*
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	envPrefix     = "UAVREPORT"
	envConfigPath = "UAVREPORT_CONFIG_PATH"
	fileName      = ".uavreport"

	DefaultPath  = "~/.uavreport.db"
	DefaultLists = "./config.json"
	DefaultCrew  = "Дакар"
	DefaultLevel = "warn"
)

// Config is the resolved configuration.
type Config struct {
	Path         string `json:"path"`
	Lists        string `json:"lists"`
	Crew         string `json:"crew"`
	LogLevel     string `json:"logLevel"`
	ShareCommand string `json:"shareCommand,omitempty"`
	// File is the settings file that was read, empty when none was found.
	File string `json:"file,omitempty"`
}

// BasePath is the home-expanded store directory.
func (c *Config) BasePath() string {
	p, err := homedir.Expand(c.Path)
	if err != nil {
		return c.Path
	}
	return p
}

// Load looks for .uavreport (yaml implicit) in $UAVREPORT_CONFIG_PATH and the
// working directory. A missing file is fine; a broken one is an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("lists", DefaultLists)
	v.SetDefault("crew", DefaultCrew)
	v.SetDefault("log.level", DefaultLevel)
	v.SetDefault("share.command", "")
	v.SetConfigName(fileName)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	// log.level and share.command map to UAVREPORT_LOG_LEVEL and
	// UAVREPORT_SHARE_COMMAND.
	_ = v.BindEnv("log.level", envPrefix+"_LOG_LEVEL")
	_ = v.BindEnv("share.command", envPrefix+"_SHARE_COMMAND")

	if override := os.Getenv(envConfigPath); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", fileName, err)
		}
	}

	return &Config{
		Path:         v.GetString("path"),
		Lists:        v.GetString("lists"),
		Crew:         v.GetString("crew"),
		LogLevel:     v.GetString("log.level"),
		ShareCommand: v.GetString("share.command"),
		File:         v.ConfigFileUsed(),
	}, nil
}
