package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type DataConfig struct {
	File       string `yaml:"file"`
	LegacyFile string `yaml:"legacy_file"`
	StaticDir  string `yaml:"static_dir"`
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	OpenAI OpenAIConfig `yaml:"openai"`
	Redis  RedisConfig  `yaml:"redis"`
}

// Load reads config.yaml when present and applies env overrides. A missing
// config file is not an error: the service must start from env and defaults
// alone, including with no OpenAI key (chat disabled, data endpoints up).
func Load() *Config {
	cfg := defaults()

	if data, err := os.ReadFile("config.yaml"); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Printf("failed to parse config.yaml, using defaults: %v", err)
			cfg = defaults()
		}
	}

	overrideFromEnv(cfg)
	return cfg
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{Port: "3000"},
		Data: DataConfig{
			File:       "data/email_analysis.json",
			LegacyFile: "analyzer/email_analysis.json",
			StaticDir:  "public",
		},
		OpenAI: OpenAIConfig{Model: "gpt-4o-mini"},
	}
}

func overrideFromEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Port = port
	}
	if file := os.Getenv("DATA_FILE"); file != "" {
		cfg.Data.File = file
	}
	if file := os.Getenv("LEGACY_DATA_FILE"); file != "" {
		cfg.Data.LegacyFile = file
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		cfg.Data.StaticDir = dir
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.OpenAI.Model = model
	}
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cfg.Redis.Addr = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}
	if db := os.Getenv("REDIS_DB"); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			cfg.Redis.DB = n
		}
	}
}
