package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		JWTSecret string `yaml:"jwt_secret"`
	} `yaml:"auth"`
}

// LoadConfig reads config/config.yaml (or CONFIG_PATH) and applies the
// PORT, DATABASE_URL and JWT_SECRET environment overrides. A missing
// file is fine: the service runs on defaults with the in-memory store.
func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Failed to unmarshal config data: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("Failed to read config file: %v", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.Address = ":" + port
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":4001"
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.Database.URL = url
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = "local-government-revenue-secret"
	}

	return cfg
}
