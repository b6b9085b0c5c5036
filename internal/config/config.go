package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Database   DatabaseConfig   `toml:"database"`
	Redis      RedisConfig      `toml:"redis"`
	Popcore    PopcoreConfig    `toml:"popcore"`
	Auth       AuthConfig       `toml:"auth"`
	Scheduling SchedulingConfig `toml:"scheduling"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN собирает строку подключения к PostgreSQL.
// Пароль может быть переопределен через переменную окружения POSTGRES_PASSWORD.
func (d DatabaseConfig) DSN() string {
	password := d.Password
	if env := os.Getenv("POSTGRES_PASSWORD"); env != "" {
		password = env
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, password, d.DBName, d.SSLMode)
}

// RedisConfig настройки кэша каталога
type RedisConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // TTL записей кэша в секундах
}

// PopcoreConfig настройки клиента core-бэкенда
type PopcoreConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // в секундах
}

// AuthConfig настройки выпуска и проверки JWT
type AuthConfig struct {
	JWTSecret  string `toml:"jwt_secret"`
	TokenTTL   int    `toml:"token_ttl"` // в минутах
	BcryptCost int    `toml:"bcrypt_cost"`
}

// JWTSecretValue возвращает секрет подписи.
// Переменная окружения JWT_SECRET имеет приоритет над config.toml.
func (a AuthConfig) JWTSecretValue() string {
	if env := os.Getenv("JWT_SECRET"); env != "" {
		return env
	}
	return a.JWTSecret
}

// SchedulingConfig параметры суточной сетки слотов
type SchedulingConfig struct {
	OpenHour         int `toml:"open_hour"`
	CloseHour        int `toml:"close_hour"`
	SlotLengthHours  int `toml:"slot_length_hours"`
	MaxDurationHours int `toml:"max_duration_hours"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Popcore.URL == "" {
		return fmt.Errorf("config: popcore.url is required")
	}
	if c.Scheduling.OpenHour < 0 || c.Scheduling.CloseHour > 24 {
		return fmt.Errorf("config: scheduling hours must be within a single day")
	}
	if c.Scheduling.OpenHour >= c.Scheduling.CloseHour {
		return fmt.Errorf("config: scheduling.open_hour must be before close_hour")
	}
	if c.Scheduling.SlotLengthHours <= 0 {
		return fmt.Errorf("config: scheduling.slot_length_hours must be positive")
	}
	if c.Scheduling.MaxDurationHours <= 0 {
		return fmt.Errorf("config: scheduling.max_duration_hours must be positive")
	}
	return nil
}
