package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full configuration surface: the backend base address, the
// media service identifiers and the ambient knobs. Everything is
// environment-supplied; the only hard-coded fallback is the local
// development backend address.
type Config struct {
	APIBase     string `env:"MARKET_API_BASE, default=http://localhost:5000"`
	Env         string `env:"ENV,             default=development"`
	LogLevel    string `env:"LOG_LEVEL,       default=info"`
	SessionFile string `env:"MARKET_SESSION_FILE"`

	Cloudinary CloudinaryConfig
}

// CloudinaryConfig identifies the hosted media service. Both values must be
// present before any upload is attempted.
type CloudinaryConfig struct {
	CloudName    string `env:"CLOUDINARY_CLOUD_NAME"`
	UploadPreset string `env:"CLOUDINARY_UPLOAD_PRESET"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
