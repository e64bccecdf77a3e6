package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Rates    RatesConfig    `toml:"rates"`
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

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// RatesConfig таблица ставок за ночь по типам номеров
// Отсутствующий тип номера тарифицируется нулём (см. domain.RateTable)
type RatesConfig struct {
	Standard  float64 `toml:"standard"`
	Deluxe    float64 `toml:"deluxe"`
	Premium   float64 `toml:"premium"`
	Suite     float64 `toml:"suite"`
	VIP       float64 `toml:"vip"`
	Penthouse float64 `toml:"penthouse"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RateTable конвертирует конфигурацию ставок в доменную таблицу
func (r *RatesConfig) RateTable() domain.RateTable {
	return domain.RateTable{
		domain.RoomStandard:  r.Standard,
		domain.RoomDeluxe:    r.Deluxe,
		domain.RoomPremium:   r.Premium,
		domain.RoomSuite:     r.Suite,
		domain.RoomVIP:       r.VIP,
		domain.RoomPenthouse: r.Penthouse,
	}
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort <= 0 {
		return nil, fmt.Errorf("config: server.http_port must be positive")
	}
	if cfg.Database.Host == "" || cfg.Database.DBName == "" {
		return nil, fmt.Errorf("config: database.host and database.dbname are required")
	}

	return cfg, nil
}

// defaultConfig возвращает конфигурацию с дефолтными значениями
// Ставки по умолчанию соответствуют прайс-листу отеля
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "cbh-booking-service",
			Path:        "/metrics",
		},
		Rates: RatesConfig{
			Standard:  300,
			Deluxe:    350,
			Premium:   400,
			Suite:     500,
			VIP:       600,
			Penthouse: 800,
		},
	}
}
