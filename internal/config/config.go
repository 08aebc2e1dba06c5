package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/pkg/types"
)

// Переменные окружения, которые перекрывают значения из файла
const (
	EnvClinicAPIURL      = "CLINIC_API_URL"
	EnvJournalDBPassword = "JOURNAL_DB_PASSWORD"
)

// Config конфигурация консоли
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	ClinicAPI ClinicAPIConfig `toml:"clinic_api"`
	Schedule  ScheduleConfig  `toml:"schedule"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Journal   JournalConfig   `toml:"journal"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=1"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=1"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=1"`
}

type LogsConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn error"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true,omitempty,startswith=/"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// ClinicAPIConfig адрес backend клиники
type ClinicAPIConfig struct {
	URL     string `toml:"url" validate:"required,url"`
	Timeout int    `toml:"timeout" validate:"min=1"` // секунды
}

// ScheduleConfig рабочие интервалы дня и шаг слотов
type ScheduleConfig struct {
	SlotStepMinutes  int              `toml:"slot_step_minutes" validate:"min=1,max=720"`
	Intervals        []IntervalConfig `toml:"intervals" validate:"required,min=1,dive"`
	AppointmentTypes []string         `toml:"appointment_types" validate:"dive,required"`
}

type IntervalConfig struct {
	Start string `toml:"start" validate:"required"`
	End   string `toml:"end" validate:"required"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps" validate:"required_if=Enabled true,omitempty,gt=0"`
	Burst   int     `toml:"burst" validate:"required_if=Enabled true,omitempty,min=1"`
}

// JournalConfig подключение к Postgres для журнала операций
type JournalConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host" validate:"required_if=Enabled true"`
	Port            int    `toml:"port" validate:"required_if=Enabled true"`
	User            string `toml:"user" validate:"required_if=Enabled true"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required_if=Enabled true"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c JournalConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// WorkingDay возвращает рабочие интервалы в виде доменных слотов
func (c ScheduleConfig) WorkingDay() ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0, len(c.Intervals))
	for _, interval := range c.Intervals {
		start, err := types.NewTimeStringFromString(interval.Start)
		if err != nil {
			return nil, err
		}
		end, err := types.NewTimeStringFromString(interval.End)
		if err != nil {
			return nil, err
		}
		slot := domain.TimeSlot{Start: start, End: end}
		if err := slot.Validate(); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// Types возвращает типы приемов
func (c ScheduleConfig) Types() []domain.AppointmentType {
	result := make([]domain.AppointmentType, 0, len(c.AppointmentTypes))
	for _, t := range c.AppointmentTypes {
		result = append(result, domain.AppointmentType(t))
	}
	return result
}

// Load читает конфигурацию из TOML файла
// Порядок: значения по умолчанию -> файл -> .env / переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	cfg.applyEnv()
	cfg.fillEmpty()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация, совпадающая с поведением консоли без файла
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8090,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "clinic_console",
		},
		ClinicAPI: ClinicAPIConfig{
			URL:     "http://127.0.0.1:8080",
			Timeout: 10,
		},
		Schedule: ScheduleConfig{
			SlotStepMinutes: domain.DefaultSlotStepMinutes,
			Intervals: []IntervalConfig{
				{Start: "08:00", End: "13:00"},
				{Start: "14:00", End: "17:00"},
			},
		},
		RateLimit: RateLimitConfig{RPS: 5, Burst: 10},
		Journal: JournalConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    5,
			MaxIdleConns:    2,
			ConnMaxLifetime: 300,
		},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvClinicAPIURL); v != "" {
		c.ClinicAPI.URL = v
	}
	if v := os.Getenv(EnvJournalDBPassword); v != "" {
		c.Journal.Password = v
	}
}

// fillEmpty заполняет списки, которые в файле могли оказаться пустыми
func (c *Config) fillEmpty() {
	if len(c.Schedule.AppointmentTypes) == 0 {
		for _, t := range domain.DefaultAppointmentTypes {
			c.Schedule.AppointmentTypes = append(c.Schedule.AppointmentTypes, string(t))
		}
	}
}

// Validate проверяет конфигурацию целиком
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Schedule.WorkingDay(); err != nil {
		return fmt.Errorf("invalid config: schedule: %w", err)
	}
	return nil
}
