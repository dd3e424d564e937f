// Package config loads the service configuration from the environment through viper.
package config

import "github.com/spf13/viper"

// Config holds the runtime settings of the catalog service.
type Config struct {
	AppPort          string
	DatabaseDriver   string // "postgres" or "sqlite"
	DatabaseDSN      string
	RabbitMQURL      string // empty disables association events
	RabbitMQExchange string
	RabbitMQQueue    string
	LogLevel         string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=tiendas port=5432 sslmode=disable")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "catalog")
	v.SetDefault("RABBITMQ_QUEUE", "catalog_association_events")
	v.SetDefault("LOG_LEVEL", "info")
}

// Load reads the configuration from v, falling back to environment variables and defaults.
func Load(v *viper.Viper) Config {
	SetDefaults(v)
	v.AutomaticEnv()

	return Config{
		AppPort:          v.GetString("APP_PORT"),
		DatabaseDriver:   v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		RabbitMQExchange: v.GetString("RABBITMQ_EXCHANGE"),
		RabbitMQQueue:    v.GetString("RABBITMQ_QUEUE"),
		LogLevel:         v.GetString("LOG_LEVEL"),
	}
}
