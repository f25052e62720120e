package config

import "github.com/spf13/viper"

// Config holds everything read from the environment at startup.
type Config struct {
	AppPort string

	// StorageDriver selects the repository backend: "memory" (default,
	// process-lifetime only), "sqlite" (GORM on in-memory SQLite) or
	// "postgres" (GORM on DatabaseDSN).
	StorageDriver string
	DatabaseDSN   string

	// AuthMode selects the principal resolver: "header" trusts the
	// X-User-Name header, "token" expects a Bearer JWT minted at login.
	AuthMode  string
	JWTSecret string

	// RabbitMQURL enables annotation event publishing when non-empty.
	RabbitMQURL string

	// External image source.
	ImageSourceBaseURL string
	ImageSourceMaxID   int
	ImageWidth         int
	ImageHeight        int
}

// Load reads configuration from environment variables with sensible
// defaults for local development.
func Load() Config {
	viper.SetDefault("APP_PORT", ":3001")
	viper.SetDefault("STORAGE_DRIVER", "memory")
	viper.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	viper.SetDefault("AUTH_MODE", "header")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("IMAGE_SOURCE_BASE_URL", "https://picsum.photos")
	viper.SetDefault("IMAGE_SOURCE_MAX_ID", 1000)
	viper.SetDefault("IMAGE_WIDTH", 800)
	viper.SetDefault("IMAGE_HEIGHT", 600)
	viper.AutomaticEnv()

	return Config{
		AppPort:            viper.GetString("APP_PORT"),
		StorageDriver:      viper.GetString("STORAGE_DRIVER"),
		DatabaseDSN:        viper.GetString("DATABASE_DSN"),
		AuthMode:           viper.GetString("AUTH_MODE"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		RabbitMQURL:        viper.GetString("RABBITMQ_URL"),
		ImageSourceBaseURL: viper.GetString("IMAGE_SOURCE_BASE_URL"),
		ImageSourceMaxID:   viper.GetInt("IMAGE_SOURCE_MAX_ID"),
		ImageWidth:         viper.GetInt("IMAGE_WIDTH"),
		ImageHeight:        viper.GetInt("IMAGE_HEIGHT"),
	}
}
