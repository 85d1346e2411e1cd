// Package config loads client configuration from config files,
// environment variables, and .env files using viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/gutenberg-print/gutenberg-go/pkg/constants"
	"github.com/gutenberg-print/gutenberg-go/pkg/errors"
)

// Config holds the client configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file
	ConfigFile string

	// Server configuration
	ServerURL string
	Token     string

	// Conversion configuration
	ConvertLocally bool
	SandboxScript  string

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// Load loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (GUTENBERG_*)
// 3. .env files
// 4. Config file (~/.gutenberg.yaml)
// 5. Defaults
func Load() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("gutenberg")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	bindEnvVars()

	// Try to read config file if it exists
	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType(constants.DefaultConfigType)
			viper.SetConfigName(constants.DefaultConfigName)
		}
	}

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()

	config := &Config{
		// Global flags (may be overridden by cobra flags later)
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Output:  viper.GetString("output"),

		// Config file
		ConfigFile: viper.ConfigFileUsed(),

		// Server configuration
		ServerURL: viper.GetString("server_url"),
		Token:     viper.GetString("token"),

		// Conversion configuration
		ConvertLocally: viper.GetBool("convert_locally"),
		SandboxScript:  viper.GetString("sandbox_script"),

		// Logging configuration
		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
	}

	if config.ServerURL == "" {
		config.ServerURL = constants.DefaultServerURL
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so that flag values
// take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, output string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if output != "" {
		c.Output = output
	}
}

// SaveToken writes the token into the user config file so later runs
// pick it up, preserving any other settings already there. Tokens are
// credentials, so the file is written with owner-only permissions.
func SaveToken(token string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewConfigError("config", "cannot determine home directory", err)
	}
	path := filepath.Join(home, constants.DefaultConfigName+"."+constants.DefaultConfigType)

	values := map[string]any{}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &values); err != nil {
			return "", errors.WrapParse("yaml", path, err)
		}
	}
	values["token"] = token

	data, err := yaml.Marshal(values)
	if err != nil {
		return "", errors.WrapParse("yaml", path, err)
	}
	if err := os.WriteFile(path, data, constants.SecureFilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// bindEnvVars explicitly binds the well-known environment variables to
// Viper so they are visible even without the GUTENBERG_ prefix.
func bindEnvVars() {
	envVars := map[string]string{
		"server_url": "GUTENBERG_SERVER_URL",
		"token":      "GUTENBERG_TOKEN",
	}

	for key, envVar := range envVars {
		if err := viper.BindEnv(key, envVar); err != nil {
			// Not critical, flags and config files still work
			fmt.Fprintf(os.Stderr, "Warning: failed to bind environment variable %s: %v\n", envVar, err)
		}
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
