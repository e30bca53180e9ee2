package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr            string        `yaml:"address"          env:"HTTP_ADDR"         env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

// Upstream is the remote commerce API every durable collection lives behind.
type Upstream struct {
	BaseURL string        `yaml:"UPSTREAM_BASE_URL" env:"UPSTREAM_BASE_URL" env-default:"https://api.casafurnish.com/api"`
	Timeout time.Duration `yaml:"UPSTREAM_TIMEOUT"  env:"UPSTREAM_TIMEOUT"  env-default:"15s"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST"     env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT"     env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER"     env:"REDIS_USER"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"REDIS_DB"       env:"REDIS_DB"   env-default:"0"`
}

type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE"  env:"WINDOW_SIZE"  env-default:"15m"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"CACHE_DEFAULT_TTL" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
	CartTTL    time.Duration `yaml:"CART_TTL"          env:"CART_TTL"          env-default:"720h"`
}

type Checkout struct {
	CartClearDelay time.Duration `yaml:"CART_CLEAR_DELAY" env:"CART_CLEAR_DELAY" env-default:"5s"`
	ShippingFee    float64       `yaml:"SHIPPING_FEE"     env:"SHIPPING_FEE"     env-default:"0"`
}

type Security struct {
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
}

type SendGrid struct {
	APIKey    string `yaml:"SENDGRID_API_KEY"    env:"SENDGRID_API_KEY"    env-default:""`
	FromEmail string `yaml:"SENDGRID_FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"orders@casafurnish.com"`
	FromName  string `yaml:"SENDGRID_FROM_NAME"  env:"SENDGRID_FROM_NAME"  env-default:"CasaFurnish"`
}

type Locale struct {
	Default   string `yaml:"DEFAULT_LOCALE"    env:"DEFAULT_LOCALE"    env-default:"en"`
	Supported string `yaml:"SUPPORTED_LOCALES" env:"SUPPORTED_LOCALES" env-default:"en,fr"`
}

func (l *Locale) SupportedList() []string {
	parts := strings.Split(l.Supported, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

type Store struct {
	WhatsAppNumber string `yaml:"WHATSAPP_NUMBER" env:"WHATSAPP_NUMBER" env-default:""`
	Currency       string `yaml:"STORE_CURRENCY"  env:"STORE_CURRENCY"  env-default:"XAF"`
}

type Tracing struct {
	Enabled      bool   `yaml:"TRACING_ENABLED" env:"TRACING_ENABLED" env-default:"false"`
	OTLPEndpoint string `yaml:"OTLP_ENDPOINT"   env:"OTLP_ENDPOINT"   env-default:"localhost:4318"`
}

type Config struct {
	Env          string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer   `yaml:"http_server"`
	Upstream     Upstream     `yaml:"upstream"`
	RedisConnect RedisConnect `yaml:"redis"`
	RateConfig   RateConfig   `yaml:"rateConfig"`
	Cache        CacheConfig  `yaml:"cache"`
	Checkout     Checkout     `yaml:"checkout"`
	Security     Security     `yaml:"security"`
	SendGrid     SendGrid     `yaml:"sendgrid"`
	Locale       Locale       `yaml:"locale"`
	Store        Store        `yaml:"store"`
	Tracing      Tracing      `yaml:"tracing"`
}

func MustLoad() *Config {

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {

		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			log.Fatal("Config path is not set")
		}

	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	return &cfg, nil
}

func (r *RedisConnect) GetDSN() string {
	if r.Username != "" || r.Password != "" {
		return fmt.Sprintf("redis://%s:%s@%s:%s/%d", r.Username, r.Password, r.Host, r.Port, r.DB)
	}

	return fmt.Sprintf("redis://%s:%s/%d", r.Host, r.Port, r.DB)
}
