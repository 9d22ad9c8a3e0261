package config

import (
	"fmt"
	"log"
	"net"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env        string `env:"ENV" env-default:"local"`
	Host       string `env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port       string `env:"PORT" env-default:"8080"`
	CORSOrigin string `env:"CORS_ORIGIN" env-default:"http://localhost:5173"`

	// Empty DBURL keeps inquiries in memory.
	DBURL      string `env:"DB_URL"`
	DBSeedMock bool   `env:"DB_SEED_MOCK" env-default:"false"`

	JWTSecret string `env:"JWT_SECRET" env-required:"true"`

	Admin  AdminConfig
	Google GoogleConfig
	SMTP   SMTPConfig
}

type AdminConfig struct {
	Email        string   `env:"ADMIN_EMAIL"`
	PasswordHash string   `env:"ADMIN_PASSWORD_HASH"` // bcrypt
	GoogleEmails []string `env:"ADMIN_GOOGLE_EMAILS" env-separator:","`
}

type GoogleConfig struct {
	ClientID         string `env:"GOOGLE_CLIENT_ID"`
	ClientSecret     string `env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL      string `env:"GOOGLE_REDIRECT_URL"`
	FrontendRedirect string `env:"GOOGLE_FRONTEND_REDIRECT"`
}

func (g GoogleConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != "" && g.RedirectURL != ""
}

type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     string `env:"SMTP_PORT" env-default:"587"`
	From     string `env:"SMTP_FROM"`
	Password string `env:"SMTP_PASSWORD"`
	NotifyTo string `env:"INQUIRY_NOTIFY_TO"`
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return nil, fmt.Errorf("config: unknown ENV %q", cfg.Env)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}
