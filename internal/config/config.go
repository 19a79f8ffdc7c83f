package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DownstreamSimulator = "simulator"
	DownstreamPostgres  = "postgres"
	DownstreamRabbitMQ  = "rabbitmq"
)

// Config хранит все параметры приложения
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Brand      BrandConfig      `yaml:"brand"`
	Downstream DownstreamConfig `yaml:"downstream"`
	Database   DatabaseConfig   `yaml:"database"`
	RabbitMQ   RabbitMQConfig   `yaml:"rabbitmq"`
	Log        LogConfig        `yaml:"log"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	ReadTimeout   time.Duration `yaml:"read_timeout"`
	WriteTimeout  time.Duration `yaml:"write_timeout"`
	IdleTimeout   time.Duration `yaml:"idle_timeout"`
	RatePerSecond float64       `yaml:"rate_per_second"` // 0 = без ограничения
	RateBurst     int           `yaml:"rate_burst"`
}

type BrandConfig struct {
	Name         string `yaml:"name"`
	ClientPrefix string `yaml:"client_prefix"`
	TimeZone     string `yaml:"time_zone"` // IANA, напр. America/Mexico_City; пусто = UTC
}

func (s ServerConfig) Addr() string { return ":" + strconv.Itoa(s.Port) }

// Location of the shop; nil means UTC.
func (b BrandConfig) Location() (*time.Location, error) {
	if b.TimeZone == "" {
		return nil, nil
	}
	return time.LoadLocation(b.TimeZone)
}

type DownstreamConfig struct {
	Mode string `yaml:"mode"` // simulator | postgres | rabbitmq

	RegisterLatency time.Duration `yaml:"register_latency"`
	FeedbackLatency time.Duration `yaml:"feedback_latency"`
	OrderLatency    time.Duration `yaml:"order_latency"`

	RegisterSuccessRate float64 `yaml:"register_success_rate"`
	FeedbackSuccessRate float64 `yaml:"feedback_success_rate"`
	OrderSuccessRate    float64 `yaml:"order_success_rate"`
	LookupHitRate       float64 `yaml:"lookup_hit_rate"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

type RabbitMQConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
	UseTLS   bool   `yaml:"use_tls"`
	Exchange string `yaml:"exchange"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         3000,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
			RateBurst:    20,
		},
		Brand: BrandConfig{Name: "The Coffee Shop", ClientPrefix: "CAFE"},
		Downstream: DownstreamConfig{
			Mode:                DownstreamSimulator,
			RegisterLatency:     500 * time.Millisecond,
			FeedbackLatency:     300 * time.Millisecond,
			OrderLatency:        500 * time.Millisecond,
			RegisterSuccessRate: 0.9,
			FeedbackSuccessRate: 0.9,
			OrderSuccessRate:    1.0,
			LookupHitRate:       0.5,
		},
		Database: DatabaseConfig{Port: 5432, SSLMode: "disable"},
		RabbitMQ: RabbitMQConfig{Port: 5672, VHost: "/", Exchange: "cafe_topic"},
		Log:      LogConfig{Level: "info"},
	}
}

// LoadConfig читает YAML поверх дефолтов, затем .env и переменные окружения.
// Пустой path или отсутствующий файл: работаем на дефолтах.
// Validate не вызывается: сначала вызывающий применяет свои переопределения.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("couldn't open the configuration file: %w", err)
		default:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("error reading %s: %w", path, err)
			}
		}
	}

	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	applyEnv(cfg)
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Downstream.Mode {
	case DownstreamSimulator:
	case DownstreamPostgres:
		if c.Database.Host == "" || c.Database.User == "" || c.Database.Database == "" {
			return errors.New("database config incomplete")
		}
	case DownstreamRabbitMQ:
		if c.RabbitMQ.Host == "" || c.RabbitMQ.User == "" {
			return errors.New("rabbitmq config incomplete")
		}
	default:
		return fmt.Errorf("unknown downstream mode %q", c.Downstream.Mode)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	for name, rate := range map[string]float64{
		"register_success_rate": c.Downstream.RegisterSuccessRate,
		"feedback_success_rate": c.Downstream.FeedbackSuccessRate,
		"order_success_rate":    c.Downstream.OrderSuccessRate,
		"lookup_hit_rate":       c.Downstream.LookupHitRate,
	} {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", name, rate)
		}
	}
	if strings.TrimSpace(c.Brand.ClientPrefix) == "" {
		return errors.New("brand client_prefix is empty")
	}
	if _, err := c.Brand.Location(); err != nil {
		return fmt.Errorf("brand time_zone: %w", err)
	}
	return nil
}

func applyEnv(c *Config) {
	setInt(&c.Server.Port, "CAFE_PORT")
	setString(&c.Downstream.Mode, "CAFE_DOWNSTREAM")
	setString(&c.Brand.Name, "CAFE_BRAND_NAME")
	setString(&c.Brand.ClientPrefix, "CAFE_CLIENT_PREFIX")
	setString(&c.Brand.TimeZone, "CAFE_TIME_ZONE")
	setString(&c.Log.Level, "CAFE_LOG_LEVEL")

	setString(&c.Database.Host, "DB_HOST")
	setInt(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Database, "DB_NAME")

	setString(&c.RabbitMQ.Host, "RABBITMQ_HOST")
	setInt(&c.RabbitMQ.Port, "RABBITMQ_PORT")
	setString(&c.RabbitMQ.User, "RABBITMQ_USER")
	setString(&c.RabbitMQ.Password, "RABBITMQ_PASSWORD")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	if n, err := strconv.Atoi(v); err == nil {
		*dst = n
	}
}

// FindConfig ищет конфиг в привычных местах.
func FindConfig() (string, error) {
	candidates := []string{"config.yaml", "config.yml", "deploy/config.example.yaml"}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fs.ErrNotExist
}
