package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	// Page assets
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.12"

	// EnvPrefix is prepended to every environment override, e.g. AUTOLOT_DATABASE_URL.
	EnvPrefix = "autolot"

	// RequestTimeout bounds reads and writes on the HTTP server.
	RequestTimeout = 30 * time.Second
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Session  SessionConfig
	Admin    AdminConfig
	Dealer   DealerConfig
}

type ServerConfig struct {
	Port           string
	RateLimitMax   int
	RateLimitExp   time.Duration
	// Export limits are per IP and apply only to the spreadsheet download.
	ExportLimitMax int
	ExportLimitExp time.Duration
	StaticDir      string
}

type DatabaseConfig struct {
	// URL is either a postgres:// URL or a sqlite file path.
	URL string
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	Color  bool
}

type SessionConfig struct {
	Expiration time.Duration
}

// AdminConfig guards the cache admin pages. An empty PasswordHash disables them.
type AdminConfig struct {
	User         string
	PasswordHash string
}

// DealerConfig holds the contact details shown in the page header and footer.
type DealerConfig struct {
	Name    string
	Tagline string
	Phone   string
	Email   string
	Address string
	Hours   []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.rate_limit_max", 120)
	v.SetDefault("server.rate_limit_exp", time.Minute)
	v.SetDefault("server.export_limit_max", 10)
	v.SetDefault("server.export_limit_exp", time.Minute)
	v.SetDefault("server.static_dir", "./static")

	v.SetDefault("database.url", "autolot.db")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.color", true)

	v.SetDefault("session.expiration", 2*time.Hour)

	v.SetDefault("admin.user", "admin")
	v.SetDefault("admin.password_hash", "")

	v.SetDefault("dealer.name", "Premier Auto Sales")
	v.SetDefault("dealer.tagline", "Your trusted car marketplace")
	v.SetDefault("dealer.phone", "(123) 456-7890")
	v.SetDefault("dealer.email", "info@premierautosales.com")
	v.SetDefault("dealer.address", "123 Auto Plaza, Los Angeles, CA")
	v.SetDefault("dealer.hours", []string{
		"Monday - Friday: 9:00 AM - 8:00 PM",
		"Saturday: 9:00 AM - 6:00 PM",
		"Sunday: 11:00 AM - 5:00 PM",
	})
}

// Load reads configuration from an optional .env file, an optional config.yaml
// in configPath, and AUTOLOT_* environment variables, in increasing precedence.
func Load(configPath string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		slog.Debug("no config.yaml found, using defaults and env vars")
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Port:           v.GetString("server.port"),
			RateLimitMax:   v.GetInt("server.rate_limit_max"),
			RateLimitExp:   v.GetDuration("server.rate_limit_exp"),
			ExportLimitMax: v.GetInt("server.export_limit_max"),
			ExportLimitExp: v.GetDuration("server.export_limit_exp"),
			StaticDir:      v.GetString("server.static_dir"),
		},
		Database: DatabaseConfig{
			URL: v.GetString("database.url"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
			Color:  v.GetBool("log.color"),
		},
		Session: SessionConfig{
			Expiration: v.GetDuration("session.expiration"),
		},
		Admin: AdminConfig{
			User:         v.GetString("admin.user"),
			PasswordHash: v.GetString("admin.password_hash"),
		},
		Dealer: DealerConfig{
			Name:    v.GetString("dealer.name"),
			Tagline: v.GetString("dealer.tagline"),
			Phone:   v.GetString("dealer.phone"),
			Email:   v.GetString("dealer.email"),
			Address: v.GetString("dealer.address"),
			Hours:   v.GetStringSlice("dealer.hours"),
		},
	}

	if cfg.Database.URL == "" {
		return Config{}, errors.New("database.url is required")
	}
	if cfg.Session.Expiration <= 0 {
		return Config{}, fmt.Errorf("session.expiration must be positive, got %s", cfg.Session.Expiration)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("log.format must be text or json, got %q", cfg.Log.Format)
	}

	return cfg, nil
}

// Default returns the built-in configuration without reading files or env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, _ := fromViper(v)
	return cfg
}
