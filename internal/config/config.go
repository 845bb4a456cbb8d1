package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация приложения, загружается из config.toml один раз при старте
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Database DatabaseConfig `toml:"database"`
	SMTP     SMTPConfig     `toml:"smtp"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
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
	MigrateOnStart  bool   `toml:"migrate_on_start"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// SMTPConfig настройки отправки почты (используется cmd/digest)
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	MailFrom string `toml:"mail_from"`
}

// BookingConfig статическая конфигурация каталога: даты мероприятия,
// рабочие часы, лимиты и описание комнат по тирам
type BookingConfig struct {
	EventDates             []string          `toml:"event_dates"`
	OpenHour               int               `toml:"open_hour"`
	CloseHour              int               `toml:"close_hour"`
	MaxBlocks              int               `toml:"max_blocks"`
	CatchallTier           string            `toml:"catchall_tier"`
	GeneralRoomCode        string            `toml:"general_room_code"`
	EmptyTierAllowsAnyRoom bool              `toml:"empty_tier_allows_any_room"`
	TierOrder              []string          `toml:"tier_order"`
	Tiers                  map[string]string `toml:"tiers"`
	Rooms                  []RoomConfig      `toml:"rooms"`
}

// RoomConfig описание одной комнаты в каталоге
type RoomConfig struct {
	Code     string   `toml:"code"`
	Tier     string   `toml:"tier"`
	Name     string   `toml:"name"`
	Category string   `toml:"category"`
	Location string   `toml:"location"`
	Capacity int      `toml:"capacity"`
	Order    int      `toml:"order"`
	Features []string `toml:"features"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("server.http_port must be positive")
	}
	if len(c.Booking.EventDates) == 0 {
		return fmt.Errorf("booking.event_dates must not be empty")
	}
	if c.Booking.OpenHour < 0 || c.Booking.CloseHour > 24 || c.Booking.OpenHour >= c.Booking.CloseHour {
		return fmt.Errorf("booking hours are invalid: open=%d close=%d", c.Booking.OpenHour, c.Booking.CloseHour)
	}
	if c.Booking.MaxBlocks <= 0 {
		return fmt.Errorf("booking.max_blocks must be positive")
	}
	if c.Booking.CatchallTier == "" {
		return fmt.Errorf("booking.catchall_tier is required")
	}
	if len(c.Booking.Rooms) == 0 {
		return fmt.Errorf("booking.rooms must not be empty")
	}
	if len(c.Booking.TierOrder) == 0 {
		return fmt.Errorf("booking.tier_order must not be empty")
	}
	return nil
}
