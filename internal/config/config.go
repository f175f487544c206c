package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	GallerySourceDir = "dir"
	GallerySourceS3  = "s3"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Gallery   GalleryConfig   `mapstructure:"gallery"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig holds the listener settings. ProxyHeader names the header a
// reverse proxy uses to pass the client address (e.g. X-Forwarded-For); when
// TrustedProxies is set, the header is only honoured for those peers.
type ServerConfig struct {
	Port             string   `mapstructure:"port"`
	CORSAllowOrigins string   `mapstructure:"cors_allow_origins"`
	ProxyHeader      string   `mapstructure:"proxy_header"`
	TrustedProxies   []string `mapstructure:"trusted_proxies"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type GalleryConfig struct {
	Source       string        `mapstructure:"source"`
	Dir          string        `mapstructure:"dir"`
	PublicPrefix string        `mapstructure:"public_prefix"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
	S3Bucket     string        `mapstructure:"s3_bucket"`
	S3Prefix     string        `mapstructure:"s3_prefix"`
	S3Region     string        `mapstructure:"s3_region"`
}

// SMTPConfig holds the relay settings. Port is kept as a string so an
// absent value can be told apart from an invalid one.
type SMTPConfig struct {
	Host        string `mapstructure:"host"`
	Port        string `mapstructure:"port"`
	User        string `mapstructure:"user"`
	Password    string `mapstructure:"password"`
	OwnerEmail  string `mapstructure:"owner_email"`
	FromName    string `mapstructure:"from_name"`
	FromAddress string `mapstructure:"from_address"`
}

type RateLimitConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Max     int           `mapstructure:"max"`
	Window  time.Duration `mapstructure:"window"`
}

// envBindings maps config keys to the environment variables that feed them.
var envBindings = map[string]string{
	"server.port":               "PORT",
	"server.cors_allow_origins": "CORS_ALLOW_ORIGINS",
	"server.proxy_header":       "PROXY_HEADER",
	"server.trusted_proxies":    "TRUSTED_PROXIES",
	"log.level":                 "LOG_LEVEL",
	"log.format":                "LOG_FORMAT",
	"gallery.source":            "GALLERY_SOURCE",
	"gallery.dir":               "GALLERY_DIR",
	"gallery.public_prefix":     "GALLERY_PUBLIC_PREFIX",
	"gallery.cache_ttl":         "GALLERY_CACHE_TTL",
	"gallery.s3_bucket":         "GALLERY_S3_BUCKET",
	"gallery.s3_prefix":         "GALLERY_S3_PREFIX",
	"gallery.s3_region":         "GALLERY_S3_REGION",
	"smtp.host":                 "BREVO_SMTP_HOST",
	"smtp.port":                 "BREVO_SMTP_PORT",
	"smtp.user":                 "BREVO_SMTP_USER",
	"smtp.password":             "BREVO_SMTP_PASSWORD",
	"smtp.owner_email":          "BARBERSHOP_OWNER_EMAIL",
	"smtp.from_name":            "BOOKING_FROM_NAME",
	"smtp.from_address":         "BOOKING_FROM_ADDRESS",
	"rate_limit.enabled":        "RATE_LIMIT_ENABLED",
	"rate_limit.max":            "RATE_LIMIT_MAX",
	"rate_limit.window":         "RATE_LIMIT_WINDOW",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.cors_allow_origins", "http://localhost:3000")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("gallery.source", GallerySourceDir)
	v.SetDefault("gallery.dir", "./public/gallery")
	v.SetDefault("gallery.public_prefix", "/gallery")
	v.SetDefault("gallery.cache_ttl", time.Hour)
	v.SetDefault("gallery.s3_prefix", "gallery/")
	v.SetDefault("gallery.s3_region", "us-east-1")
	v.SetDefault("smtp.from_name", "Brotherhood Barbershop")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.max", 5)
	v.SetDefault("rate_limit.window", 10*time.Minute)
}

// LoadConfig reads the environment and, when configPath is not empty, a
// YAML file. Environment variables take precedence over the file.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.Gallery.PublicPrefix = strings.TrimRight(cfg.Gallery.PublicPrefix, "/")
	cfg.Gallery.S3Prefix = NormalizeS3Prefix(cfg.Gallery.S3Prefix)
	if cfg.SMTP.FromAddress == "" {
		cfg.SMTP.FromAddress = cfg.SMTP.OwnerEmail
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NormalizeS3Prefix turns a key prefix into a "folder": empty stays empty,
// anything else ends with exactly one "/".
func NormalizeS3Prefix(prefix string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return ""
	}
	return prefix + "/"
}

func (c *Config) validate() error {
	switch c.Gallery.Source {
	case GallerySourceDir:
	case GallerySourceS3:
		if c.Gallery.S3Bucket == "" {
			return fmt.Errorf("GALLERY_S3_BUCKET is required when GALLERY_SOURCE=%s", GallerySourceS3)
		}
	default:
		return fmt.Errorf("unknown GALLERY_SOURCE %q", c.Gallery.Source)
	}
	if c.Gallery.CacheTTL <= 0 {
		return fmt.Errorf("GALLERY_CACHE_TTL must be positive")
	}
	if c.RateLimit.Enabled && (c.RateLimit.Max <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("RATE_LIMIT_MAX and RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

// MissingKeys returns the environment variable names of the required relay
// settings that are empty, in a stable order. An empty result means the
// relay is fully configured.
func (s SMTPConfig) MissingKeys() []string {
	var missing []string
	if s.Host == "" {
		missing = append(missing, "BREVO_SMTP_HOST")
	}
	if s.Port == "" {
		missing = append(missing, "BREVO_SMTP_PORT")
	}
	if s.User == "" {
		missing = append(missing, "BREVO_SMTP_USER")
	}
	if s.Password == "" {
		missing = append(missing, "BREVO_SMTP_PASSWORD")
	}
	if s.OwnerEmail == "" {
		missing = append(missing, "BARBERSHOP_OWNER_EMAIL")
	}
	return missing
}
