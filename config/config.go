package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const (
	DBDriverMongo    = "mongo"
	DBDriverPostgres = "postgres"
)

type Config struct {
	App   AppConfig
	Log   LogConfig
	CORS  CORSConfig
	Audit AuditConfig
	DB    DBConfig
}

type AppConfig struct {
	Port string
	Env  string
	// StrictNotFound makes not-found payloads carry 404 instead of 200.
	StrictNotFound bool
}

type LogConfig struct {
	Level string
}

type CORSConfig struct {
	AllowOrigins []string
}

type AuditConfig struct {
	Capacity int `validate:"gte=1"`
}

type DBConfig struct {
	Driver   string `validate:"required,oneof=mongo postgres"`
	MongoURL string `validate:"required_if=Driver mongo"`
	Name     string `validate:"required"`
	Host     string `validate:"required_if=Driver postgres"`
	Port     string
	User     string `validate:"required_if=Driver postgres"`
	Password string
}

// LoadConfig reads .env from the working directory (if any) and the process
// environment. Environment variables take precedence over the file.
func LoadConfig() (*Config, error) {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, file string) (*Config, error) {
	v.SetConfigFile(file)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", "8000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_STRICT_NOT_FOUND", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("AUDIT_LOG_CAPACITY", 500)
	v.SetDefault("DB_DRIVER", DBDriverMongo)
	v.SetDefault("DB_PORT", "5432")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:           v.GetString("APP_PORT"),
			Env:            v.GetString("APP_ENV"),
			StrictNotFound: v.GetBool("APP_STRICT_NOT_FOUND"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowOrigins: splitOrigins(v.GetString("CORS_ORIGINS")),
		},
		Audit: AuditConfig{
			Capacity: v.GetInt("AUDIT_LOG_CAPACITY"),
		},
		DB: DBConfig{
			Driver:   strings.ToLower(v.GetString("DB_DRIVER")),
			MongoURL: v.GetString("MONGO_URL"),
			Name:     v.GetString("DB_NAME"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
		},
	}

	return config, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
