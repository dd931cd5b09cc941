package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"gt=0,lte=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	NumbersAPI NumbersAPIConfig `mapstructure:"numbersapi"`
	Probe      ProbeConfig      `mapstructure:"probe"`
	Cache      CacheConfig      `mapstructure:"cache"`
}

type NumbersAPIConfig struct {
	Host           string `mapstructure:"host" validate:"required"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
	RetryAttempts  int    `mapstructure:"retry_attempts" validate:"gte=1"`
}

type ProbeConfig struct {
	Address        string `mapstructure:"address" validate:"required"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gt=0"`
}

type CacheConfig struct {
	Backend      string `mapstructure:"backend" validate:"oneof=file db"`
	FilePath     string `mapstructure:"file_path"`
	DatabasePath string `mapstructure:"database_path"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/numbertrivia")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("numbersapi.host", "numbersapi.com")
	v.SetDefault("numbersapi.timeout_seconds", 10)
	v.SetDefault("numbersapi.retry_attempts", 3)
	v.SetDefault("probe.address", "8.8.8.8:53")
	v.SetDefault("probe.timeout_seconds", 3)
	v.SetDefault("cache.backend", "file")
	v.SetDefault("cache.file_path", filepath.Join("cache", "last_trivia.json"))
	v.SetDefault("cache.database_path", filepath.Join("cache", "trivia.db"))

	// The API host is overridable from the environment so a mirror can be
	// used without editing the config file.
	if err := v.BindEnv("numbersapi.host", "NUMBERS_API_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind NUMBERS_API_HOST environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
