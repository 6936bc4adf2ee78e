// Package config loads service configuration from .env files, YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full configuration of the errcatalog service.
type Config struct {
	App     AppConfig     `yaml:"app" mapstructure:"app"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
	Storage StorageConfig `yaml:"storage" mapstructure:"storage"`
	Redis   RedisConfig   `yaml:"redis" mapstructure:"redis"`
}

// AppConfig holds the HTTP listener settings.
type AppConfig struct {
	Env            string `yaml:"env" mapstructure:"env"`
	Addr           string `yaml:"addr" mapstructure:"addr"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
}

// LogConfig configures logrus.
type LogConfig struct {
	Format       string        `yaml:"format" mapstructure:"format"`
	Level        string        `yaml:"level" mapstructure:"level"`
	ReportCaller bool          `yaml:"report_caller" mapstructure:"report_caller"`
	File         LogFileConfig `yaml:"file" mapstructure:"file"`
}

// LogFileConfig enables rotating file output in addition to stdout.
type LogFileConfig struct {
	Enabled      bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir          string `yaml:"dir" mapstructure:"dir"`
	Filename     string `yaml:"filename" mapstructure:"filename"`
	MaxAgeDays   int    `yaml:"max_age_days" mapstructure:"max_age_days"`
	RotationDays int    `yaml:"rotation_days" mapstructure:"rotation_days"`
}

// StorageConfig selects the document store backend: "memory" or "redis".
type StorageConfig struct {
	Driver string `yaml:"driver" mapstructure:"driver"`
}

// RedisConfig is used when Storage.Driver is "redis".
type RedisConfig struct {
	Addr      string `yaml:"addr" mapstructure:"addr"`
	Username  string `yaml:"username" mapstructure:"username"`
	Password  string `yaml:"password" mapstructure:"password"`
	DB        int    `yaml:"db" mapstructure:"db"`
	KeyPrefix string `yaml:"key_prefix" mapstructure:"key_prefix"`
}

// LoadOptions controls where Load looks for configuration.
type LoadOptions struct {
	ConfigPath    string // directory holding config_<env>.yaml, default "./configs"
	EnvPrefix     string // prefix for environment overrides, default "SCG"
	AllowNoConfig bool   // run from defaults and environment only
}

// Load reads .env (or ENV_FILE), then config_<APP_ENV>.yaml, then environment overrides,
// and applies defaults to anything left unset.
func Load(opts ...LoadOptions) (*Config, error) {
	opt := LoadOptions{ConfigPath: "./configs", EnvPrefix: "SCG"}
	if len(opts) > 0 {
		opt = opts[0]
	}

	envFile := os.Getenv("ENV_FILE")
	var envErr error
	if envFile != "" {
		envErr = godotenv.Load(envFile)
	} else {
		envErr = godotenv.Load()
	}

	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", envErr)
	}

	env := Env()

	v := viper.New()
	v.SetConfigName(fmt.Sprintf("config_%s", env))
	v.SetConfigType("yaml")
	v.AddConfigPath(opt.ConfigPath)

	if opt.EnvPrefix != "" {
		v.SetEnvPrefix(opt.EnvPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()
		bindKeys(v)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || !opt.AllowNoConfig {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.App.Env == "" {
		cfg.App.Env = env
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// bindKeys registers every key so AutomaticEnv overrides work without a config file.
func bindKeys(v *viper.Viper) {
	for _, key := range []string{
		"app.env", "app.addr", "app.max_upload_bytes",
		"log.format", "log.level", "log.report_caller",
		"log.file.enabled", "log.file.dir", "log.file.filename", "log.file.max_age_days", "log.file.rotation_days",
		"storage.driver",
		"redis.addr", "redis.username", "redis.password", "redis.db", "redis.key_prefix",
	} {
		_ = v.BindEnv(key)
	}
}

// Env returns APP_ENV, defaulting to "dev".
func Env() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}

	return "dev"
}
