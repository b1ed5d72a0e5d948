package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Defaults matching the released alpm artifact. Every key can be overridden
// by ~/.config/alpm-setup/config.yaml or an ALPM_SETUP_* environment
// variable.
const (
	DefaultBinaryName  = "alpm"
	DefaultLocalPath   = "./alpm"
	DefaultInstallDir  = "/usr/bin"
	DefaultDownloadURL = "https://github.com/apmgui/alpm/releases/latest/download/alpm"
)

// DefaultPackages are the tools the alpm GUI shells out to at runtime.
var DefaultPackages = []string{"flatpak", "yay"}

type Config struct {
	BinaryName  string   `mapstructure:"binary_name"`
	LocalPath   string   `mapstructure:"local_path"`
	InstallDir  string   `mapstructure:"install_dir"`
	DownloadURL string   `mapstructure:"download_url"`
	ChecksumURL string   `mapstructure:"checksum_url"`
	Packages    []string `mapstructure:"packages"`
}

// InstallPath is the system path the binary is installed to.
func (c *Config) InstallPath() string {
	return filepath.Join(c.InstallDir, c.BinaryName)
}

func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "alpm-setup")
}

// Load reads the configuration. A missing config file yields the defaults;
// an unreadable or malformed one is an error.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir := Dir(); dir != "" {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix("ALPM_SETUP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("binary_name", DefaultBinaryName)
	v.SetDefault("local_path", DefaultLocalPath)
	v.SetDefault("install_dir", DefaultInstallDir)
	v.SetDefault("download_url", DefaultDownloadURL)
	v.SetDefault("checksum_url", "")
	v.SetDefault("packages", DefaultPackages)
}
