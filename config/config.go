package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const DefaultSourceURL = "https://srijandubey.github.io/campus-api-mock/SRM-C1-25.json"

type Config struct {
	App             AppConfig
	Log             LogConfig
	Directory       DirectoryConfig
	ShutdownTimeout time.Duration
}

type AppConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level string
}

type DirectoryConfig struct {
	SourceURL       string
	FetchTimeout    time.Duration
	SuggestionLimit int
}

func LoadConfig() (*Config, error) {
	return load(".env")
}

func load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DIRECTORY_SOURCE_URL", DefaultSourceURL)
	v.SetDefault("DIRECTORY_FETCH_TIMEOUT", "20s")
	v.SetDefault("SUGGESTION_LIMIT", 3)
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	// The .env file is optional; the environment alone is enough.
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	fetchTimeout, err := time.ParseDuration(v.GetString("DIRECTORY_FETCH_TIMEOUT"))
	if err != nil || fetchTimeout <= 0 {
		fetchTimeout = 20 * time.Second
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil || shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	suggestionLimit := v.GetInt("SUGGESTION_LIMIT")
	if suggestionLimit <= 0 {
		suggestionLimit = 3
	}

	config := &Config{
		App: AppConfig{
			Port: v.GetString("APP_PORT"),
			Env:  v.GetString("APP_ENV"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Directory: DirectoryConfig{
			SourceURL:       v.GetString("DIRECTORY_SOURCE_URL"),
			FetchTimeout:    fetchTimeout,
			SuggestionLimit: suggestionLimit,
		},
		ShutdownTimeout: shutdownTimeout,
	}

	return config, nil
}
