package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Host     string `mapstructure:"DB_HOST"`
	User     string `mapstructure:"DB_USER"`
	Password string `mapstructure:"DB_PASSWORD"`
	Name     string `mapstructure:"DB_NAME"`
	DBPort   string `mapstructure:"DB_PORT"`
	SSLMode  string `mapstructure:"DB_SSLMODE"`

	ServerPort    string `mapstructure:"SERVER_PORT"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// S3 опционален: без него аватарки просто недоступны
	S3Endpoint        string `mapstructure:"S3_ENDPOINT"`
	S3Region          string `mapstructure:"S3_REGION"`
	S3BucketName      string `mapstructure:"S3_BUCKET_NAME"`
	S3AccessKeyID     string `mapstructure:"S3_ACCESS_KEY_ID"`
	S3SecretAccessKey string `mapstructure:"S3_SECRET_ACCESS_KEY"`
}

func Load() (*Config, error) {
	viper.AddConfigPath("./")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	required := []struct {
		key   string
		value string
	}{
		{"DB_HOST", cfg.Host},
		{"DB_USER", cfg.User},
		{"DB_PASSWORD", cfg.Password},
		{"DB_NAME", cfg.Name},
		{"DB_PORT", cfg.DBPort},
		{"SERVER_PORT", cfg.ServerPort},
		{"SESSION_SECRET", cfg.SessionSecret},
		{"REDIS_ADDR", cfg.RedisAddr},
	}
	for _, req := range required {
		if req.value == "" {
			return nil, fmt.Errorf("%s is required", req.key)
		}
	}

	if cfg.SSLMode == "" {
		cfg.SSLMode = "require"
	}

	return &cfg, nil
}

// DSN собирает строку подключения к Postgres.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.DBPort, c.SSLMode)
}

// S3Enabled сообщает, настроено ли файловое хранилище.
func (c *Config) S3Enabled() bool {
	return c.S3BucketName != "" && c.S3AccessKeyID != "" && c.S3SecretAccessKey != ""
}
