package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppEnv   string
	LogLevel string
	Server   Server
	Database Database
	Seed     Seed
	Gemini   Gemini
}

type Server struct {
	Port           string
	GinMode        string
	AllowedOrigins []string
}

type Database struct {
	Driver   string
	URI      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Seed struct {
	File    string
	OnStart bool
}

type Gemini struct {
	ApiKey string
	Model  string
}

// NewConfig loads the configuration and validates the store settings.
func NewConfig() (*Config, error) {
	config := Load()
	if err := config.validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("driver", config.Database.Driver).
		Str("database", config.Database.Name).
		Str("port", config.Server.Port).
		Bool("seedOnStart", config.Seed.OnStart).
		Msg("Config loaded")
	return config, nil
}

// Load reads .env and the environment without checking the store settings,
// for commands that never open the store.
func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DATABASE_DRIVER", DriverMongo)
	viper.SetDefault("DATABASE_NAME", "quiz-app")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("SEED_ON_START", true)
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.AppEnv = viper.GetString("APP_ENV")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Server.Port = firstNonEmpty(viper.GetString("SERVER_PORT"), viper.GetString("PORT"), "5000")
	config.Server.GinMode = viper.GetString("GIN_MODE")
	config.Server.AllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.URI = firstNonEmpty(viper.GetString("DATABASE_URI"), viper.GetString("MONGODB_URI"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Seed.File = viper.GetString("SEED_FILE")
	config.Seed.OnStart = viper.GetBool("SEED_ON_START")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")

	return &config
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.URI == "" {
			return fmt.Errorf("DATABASE_URI (or MONGODB_URI) is required for the %s driver", DriverMongo)
		}
	case DriverPostgres:
		if c.Database.URI == "" && c.Database.Host == "" {
			return fmt.Errorf("DATABASE_URI or DATABASE_HOST is required for the %s driver", DriverPostgres)
		}
	case DriverSQLite:
		if c.Database.URI == "" {
			c.Database.URI = "quiz.db"
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q (want %s, %s or %s)", c.Database.Driver, DriverMongo, DriverPostgres, DriverSQLite)
	}
	return nil
}

// PostgresDSN returns DATABASE_URI when set, otherwise a key/value DSN built from the parts.
func (d Database) PostgresDSN() string {
	if d.URI != "" {
		return d.URI
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
