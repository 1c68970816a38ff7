/*
Package config manages TOML config for wordhint.

Values come from, in increasing priority: built-in defaults, config.toml,
and WORDHINT_* environment variables (optionally loaded from a .env file).
*/
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/bastiangx/wordhint/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Config holds the entire config structure
type Config struct {
	Suggest SuggestConfig `toml:"suggest"`
	Corpus  CorpusConfig  `toml:"corpus"`
	Server  ServerConfig  `toml:"server"`
	Log     LogConfig     `toml:"log"`
}

// SuggestConfig has query options.
type SuggestConfig struct {
	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
	CacheSize    int `toml:"cache_size"`
}

// CorpusConfig points at a corpus other than the embedded one.
type CorpusConfig struct {
	Path       string `toml:"path"`
	CommonPath string `toml:"common_path"`
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	HTTPAddr       string `toml:"http_addr"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Environment variables that override file values.
const (
	EnvDefaultLimit = "WORDHINT_DEFAULT_LIMIT"
	EnvMaxLimit     = "WORDHINT_MAX_LIMIT"
	EnvCacheSize    = "WORDHINT_CACHE_SIZE"
	EnvCorpus       = "WORDHINT_CORPUS"
	EnvCommon       = "WORDHINT_COMMON"
	EnvHTTPAddr     = "WORDHINT_HTTP_ADDR"
	EnvTimeout      = "WORDHINT_TIMEOUT"
	EnvLogLevel     = "WORDHINT_LOG_LEVEL"
)

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordhint")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "wordhint")
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

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/wordhint/config.toml
// 3. Builtin defaults
//
// Environment overrides are applied last in every case.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	config, path := loadFile(customConfigPath)
	ApplyEnv(config)
	return config, path, nil
}

func loadFile(customConfigPath string) (*Config, string) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), ""
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Suggest: SuggestConfig{
			DefaultLimit: 10,
			MaxLimit:     500,
			CacheSize:    64,
		},
		Server: ServerConfig{
			HTTPAddr:       "127.0.0.1:8080",
			TimeoutSeconds: 10,
		},
		Log: LogConfig{
			Level: "warn",
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

// tryPartialParse keeps every value that still decodes with the right type
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "suggest"); ok {
		utils.AssignInt(section, "default_limit", &config.Suggest.DefaultLimit)
		utils.AssignInt(section, "max_limit", &config.Suggest.MaxLimit)
		utils.AssignInt(section, "cache_size", &config.Suggest.CacheSize)
	}
	if section, ok := utils.ExtractSection(tempConfig, "corpus"); ok {
		utils.Assign(section, "path", &config.Corpus.Path)
		utils.Assign(section, "common_path", &config.Corpus.CommonPath)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		utils.Assign(section, "http_addr", &config.Server.HTTPAddr)
		utils.AssignInt(section, "timeout_seconds", &config.Server.TimeoutSeconds)
	}
	if section, ok := utils.ExtractSection(tempConfig, "log"); ok {
		utils.Assign(section, "level", &config.Log.Level)
	}
	return config, nil
}

// LoadEnvFiles loads .env style files into the process environment without
// overriding variables that are already set. Missing files are ignored.
func LoadEnvFiles(paths ...string) {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if !utils.FileExists(p) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			log.Warnf("Failed to load env file %s: %v", p, err)
		}
	}
}

// ApplyEnv overrides c with any WORDHINT_* variables that are set.
// Malformed numbers are logged and ignored.
func ApplyEnv(c *Config) {
	envInt(EnvDefaultLimit, &c.Suggest.DefaultLimit)
	envInt(EnvMaxLimit, &c.Suggest.MaxLimit)
	envInt(EnvCacheSize, &c.Suggest.CacheSize)
	envString(EnvCorpus, &c.Corpus.Path)
	envString(EnvCommon, &c.Corpus.CommonPath)
	envString(EnvHTTPAddr, &c.Server.HTTPAddr)
	envInt(EnvTimeout, &c.Server.TimeoutSeconds)
	envString(EnvLogLevel, &c.Log.Level)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("Ignoring %s=%q: %v", key, v, err)
		return
	}
	*dst = n
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return err
	}
	return utils.SaveTOMLFile(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// ClampLimit resolves a requested limit against the config. A nil request
// means the default limit; requests above max_limit are capped. A max_limit
// of zero or less disables the cap.
func (c *Config) ClampLimit(requested *int) int {
	n := c.Suggest.DefaultLimit
	if requested != nil {
		n = *requested
	}
	if c.Suggest.MaxLimit > 0 && n > c.Suggest.MaxLimit {
		n = c.Suggest.MaxLimit
	}
	return max(n, 0)
}

// Update changes the suggest limits and saves to file
func (c *Config) Update(configPath string, defaultLimit, maxLimit *int) error {
	if defaultLimit != nil {
		c.Suggest.DefaultLimit = *defaultLimit
	}
	if maxLimit != nil {
		c.Suggest.MaxLimit = *maxLimit
	}
	return SaveConfig(c, configPath)
}
