/*
Package config manages TOML config for the nametag CLI and server modes.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/nametag/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Matcher MatcherConfig `toml:"matcher"`
	Dict    DictConfig    `toml:"dict"`
	Output  OutputConfig  `toml:"output"`
	Server  ServerConfig  `toml:"server"`
}

// MatcherConfig fixes the normalization axes for a session. Flags override
// these; once tagging starts they never change.
type MatcherConfig struct {
	Fuzzy     bool `toml:"fuzzy"`
	WholeWord bool `toml:"whole_word"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path          string `toml:"path"`
	CompiledCache bool   `toml:"compiled_cache"`
}

// OutputConfig holds match rendering options for the CLI mode.
type OutputConfig struct {
	Color    bool `toml:"color"`
	ShowType bool `toml:"show_type"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLineLen int `toml:"max_line_len"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "nametag")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	// Not conventional, fallback from ~/.config if not writable
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "nametag")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Matcher: MatcherConfig{
			Fuzzy:     false,
			WholeWord: false,
		},
		Dict: DictConfig{
			Path:          "",
			CompiledCache: true,
		},
		Output: OutputConfig{
			Color:    true,
			ShowType: true,
		},
		Server: ServerConfig{
			MaxLineLen: 8192,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whatever sections still parse from a broken file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if matcherSection, ok := utils.ExtractSection(tempConfig, "matcher"); ok {
		extractMatcherConfig(matcherSection, &config.Matcher)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if outputSection, ok := utils.ExtractSection(tempConfig, "output"); ok {
		extractOutputConfig(outputSection, &config.Output)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	return config, nil
}

// extractMatcherConfig extracts matcher configuration from a map
func extractMatcherConfig(data map[string]any, matcher *MatcherConfig) {
	if val, ok := utils.ExtractBool(data, "fuzzy"); ok {
		matcher.Fuzzy = val
	}
	if val, ok := utils.ExtractBool(data, "whole_word"); ok {
		matcher.WholeWord = val
	}
}

// extractDictConfig extracts dictionary configuration from a map
func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractBool(data, "compiled_cache"); ok {
		dict.CompiledCache = val
	}
}

// extractOutputConfig extracts output config from a map
func extractOutputConfig(data map[string]any, output *OutputConfig) {
	if val, ok := utils.ExtractBool(data, "color"); ok {
		output.Color = val
	}
	if val, ok := utils.ExtractBool(data, "show_type"); ok {
		output.ShowType = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_line_len"); ok {
		server.MaxLineLen = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
