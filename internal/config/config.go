// Package config loads zile's settings from a config file, .env files and
// ZILE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"zile/internal/logger"
)

// Keys understood in the config file and, upper-cased with a ZILE_ prefix,
// in the environment.
const (
	KeyLogLevel  = "log-level"
	KeyLogFile   = "log-file"
	KeyInitFile  = "init-file"
	KeyVariables = "variables"
)

// Config is the resolved configuration.
type Config struct {
	LogLevel string
	LogFile  string
	// InitFile is the Lisp file applied at startup. Empty disables it.
	InitFile string
	// Variables override schema defaults after the store is initialised.
	Variables map[string]string
	// ConfigFile is the file that was read, if any.
	ConfigFile string
}

// Loader reads configuration into a viper instance.
type Loader struct {
	v *viper.Viper
	// ConfigDir holds config.{yaml,toml,json} and a .env file.
	ConfigDir string
	// WorkDir may hold a .env file that overrides the one in ConfigDir.
	WorkDir string
	// HomeDir is where the default init file lives.
	HomeDir string
}

// NewLoader returns a loader over v, which callers bind flags to. A nil v
// gets a fresh instance.
func NewLoader(v *viper.Viper) *Loader {
	if v == nil {
		v = viper.New()
	}
	l := &Loader{v: v}
	l.ConfigDir, _ = UserConfigDir()
	l.WorkDir, _ = os.Getwd()
	l.HomeDir, _ = os.UserHomeDir()
	return l
}

// UserConfigDir returns $XDG_CONFIG_HOME/zile, falling back to ~/.config/zile.
func UserConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, "zile"), nil
}

// Load resolves the configuration. Precedence, highest first: flags bound to
// the viper instance, the environment, the working directory's .env, the
// config directory's .env, the config file, defaults. configFile, when set,
// must exist; otherwise a missing config file is not an error.
func (l *Loader) Load(configFile string) (*Config, error) {
	if err := l.loadDotEnv(); err != nil {
		return nil, err
	}

	l.v.SetEnvPrefix("ZILE")
	l.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	l.v.AutomaticEnv()

	l.v.SetDefault(KeyLogLevel, "")
	l.v.SetDefault(KeyLogFile, "")
	if l.HomeDir != "" {
		l.v.SetDefault(KeyInitFile, filepath.Join(l.HomeDir, ".zile"))
	}

	if configFile != "" {
		l.v.SetConfigFile(configFile)
	} else {
		l.v.SetConfigName("config")
		if l.ConfigDir != "" {
			l.v.AddConfigPath(l.ConfigDir)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		logger.Debug("no config file found", "dir", l.ConfigDir)
	}

	cfg := &Config{
		LogLevel:   l.v.GetString(KeyLogLevel),
		LogFile:    l.v.GetString(KeyLogFile),
		InitFile:   expandHome(l.v.GetString(KeyInitFile), l.HomeDir),
		Variables:  l.v.GetStringMapString(KeyVariables),
		ConfigFile: l.v.ConfigFileUsed(),
	}
	return cfg, nil
}

// loadDotEnv exports the .env files' entries that the environment does not
// already set. The working directory's file is read first so it wins.
func (l *Loader) loadDotEnv() error {
	var paths []string
	for _, dir := range []string{l.WorkDir, l.ConfigDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	logger.Debug("loaded .env files", "path", strings.Join(paths, ","))
	return nil
}

func expandHome(path, home string) string {
	if home == "" || !strings.HasPrefix(path, "~") {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
