package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	BackendRegistry = "registry"
	BackendSQLite   = "sqlite"
)

type DefaultPaths struct {
	ConfigDir    string
	LogPath      string
	DBPath       string
	LogLevel     string
	StoreBackend string
	ServerListen string
}

type Configuration struct {
	Store struct {
		Backend string `mapstructure:"backend"`
	} `mapstructure:"store"`
	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	Logging struct {
		Level string `mapstructure:"level"`
		Path  string `mapstructure:"path"`
	} `mapstructure:"logging"`
	Server struct {
		Listen string `mapstructure:"listen"`
	} `mapstructure:"server"`
	History struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"history"`
	Notify struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"notify"`
}

// Overrides carries flag values that win over the config file and the
// environment. Empty strings leave the loaded value alone.
type Overrides struct {
	StoreBackend string
	DBPath       string
	LogPath      string
	LogLevel     string
}

var AppConfig Configuration

// ConfigFileUsed is the config file Init read, or "" when only defaults and
// environment applied.
var ConfigFileUsed string

func expandTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// DefaultBackend is the registry on Windows and SQLite everywhere else.
func DefaultBackend() string {
	if runtime.GOOS == "windows" {
		return BackendRegistry
	}
	return BackendSQLite
}

func GetDefaultConfigPaths() DefaultPaths {
	var paths DefaultPaths
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not get user config dir: %v. Using current directory.\n", err)
		userConfigDir = "."
	}

	paths.ConfigDir = filepath.Join(userConfigDir, "proxyctl")
	paths.LogPath = filepath.Join(paths.ConfigDir, "logs", "proxyctl.log")
	paths.DBPath = filepath.Join(paths.ConfigDir, "proxyctl.db")
	paths.LogLevel = "INFO"
	paths.StoreBackend = DefaultBackend()
	paths.ServerListen = "127.0.0.1:8779"
	return paths
}

// Init loads AppConfig from defaults, the config file, PROXYCTL_* environment
// variables and finally the flag overrides.
func Init(cfgFile string, overrides Overrides) error {
	v := viper.New()
	AppConfig = Configuration{}
	ConfigFileUsed = ""

	defaults := GetDefaultConfigPaths()
	v.SetDefault("store.backend", defaults.StoreBackend)
	v.SetDefault("database.path", defaults.DBPath)
	v.SetDefault("logging.level", defaults.LogLevel)
	v.SetDefault("logging.path", defaults.LogPath)
	v.SetDefault("server.listen", defaults.ServerListen)
	v.SetDefault("history.enabled", true)
	v.SetDefault("notify.enabled", true)

	if cfgFile != "" {
		expandedCfgFile, err := expandTilde(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not expand tilde in config file path '%s': %v. Trying original path.\n", cfgFile, err)
			expandedCfgFile = cfgFile
		}
		v.SetConfigFile(expandedCfgFile)
		v.SetConfigType("yaml")
	} else {
		v.AddConfigPath(defaults.ConfigDir)
		v.AddConfigPath(".")
		v.SetConfigName("proxyctl")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PROXYCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err == nil {
		ConfigFileUsed = v.ConfigFileUsed()
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		return fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
	}

	if err := v.Unmarshal(&AppConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if overrides.StoreBackend != "" {
		AppConfig.Store.Backend = overrides.StoreBackend
	}
	if overrides.DBPath != "" {
		AppConfig.Database.Path = overrides.DBPath
	}
	if overrides.LogPath != "" {
		AppConfig.Logging.Path = overrides.LogPath
	}
	if overrides.LogLevel != "" {
		AppConfig.Logging.Level = overrides.LogLevel
	}

	AppConfig.Store.Backend = strings.ToLower(strings.TrimSpace(AppConfig.Store.Backend))
	AppConfig.Logging.Level = strings.ToUpper(AppConfig.Logging.Level)
	switch AppConfig.Store.Backend {
	case BackendRegistry, BackendSQLite:
	default:
		return fmt.Errorf("unknown store backend %q (want %q or %q)", AppConfig.Store.Backend, BackendRegistry, BackendSQLite)
	}

	var err error
	if AppConfig.Database.Path, err = expandTilde(AppConfig.Database.Path); err != nil {
		return fmt.Errorf("could not expand database.path: %w", err)
	}
	if AppConfig.Logging.Path, err = expandTilde(AppConfig.Logging.Path); err != nil {
		return fmt.Errorf("could not expand logging.path: %w", err)
	}
	return nil
}
