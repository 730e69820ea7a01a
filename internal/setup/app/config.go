package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StorageModePersistent = "persistent"
	StorageModeEphemeral  = "ephemeral"
)

type Config struct {
	Port                 int           `env:"PORT"                   envDefault:"8080"`
	Env                  string        `env:"ENV"                    envDefault:"dev"`
	LogLevel             string        `env:"LOG_LEVEL"              envDefault:"info"`
	LogFormat            string        `env:"LOG_FORMAT"             envDefault:"json"`
	StorageMode          string        `env:"SETUP_STORAGE_MODE"     envDefault:"persistent"`
	DatabaseFile         string        `env:"SETUP_DATABASE_FILE"    envDefault:"setup.db"`
	Issuer               string        `env:"SETUP_ISSUER"           envDefault:"werewolf-setup"`
	DeviceTokenTTL       time.Duration `env:"SETUP_DEVICE_TOKEN_TTL" envDefault:"720h"`
	HostTokenTTL         time.Duration `env:"SETUP_HOST_TOKEN_TTL"   envDefault:"12h"`
	GameServerURL        string        `env:"SETUP_GAME_SERVER_URL"  envDefault:"ws://localhost:5000/ws"`
	PublicBaseURL        string        `env:"SETUP_PUBLIC_BASE_URL"  envDefault:"http://localhost:5000"`
	IdleTTL              time.Duration `env:"SETUP_IDLE_TTL"         envDefault:"2h"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL"  envDefault:"10m"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD"  envDefault:"10s"`

	// Optional. When set, signing keys are encrypted at rest.
	MasterKey     string `env:"SETUP_MASTER_KEY"`
	MasterKeyFile string `env:"SETUP_MASTER_KEY_FILE"`
}

// LoadConfig reads the environment. Unset variables take their defaults.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageMode {
	case StorageModePersistent, StorageModeEphemeral:
	default:
		return fmt.Errorf("SETUP_STORAGE_MODE must be %q or %q, got %q", StorageModePersistent, StorageModeEphemeral, c.StorageMode)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DeviceTokenTTL <= 0 || c.HostTokenTTL <= 0 {
		return fmt.Errorf("token lifetimes must be positive")
	}
	if c.MasterKey != "" && c.MasterKeyFile != "" {
		return fmt.Errorf("set only one of SETUP_MASTER_KEY and SETUP_MASTER_KEY_FILE")
	}
	if c.GameServerURL == "" {
		return fmt.Errorf("SETUP_GAME_SERVER_URL is required")
	}
	return nil
}
