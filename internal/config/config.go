package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Log     LogConfig
	CORS    CORSConfig
	Issuer  IssuerConfig
	Invoice InvoiceConfig
	Email   EmailConfig
	Archive ArchiveConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// IssuerConfig is the company identity printed on rendered invoices.
type IssuerConfig struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
}

// InvoiceConfig holds invoice computation defaults.
type InvoiceConfig struct {
	DefaultTaxRate  float64 `mapstructure:"default_tax_rate"`
	DefaultCurrency string  `mapstructure:"default_currency"`
}

// EmailConfig holds invoice email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// ArchiveConfig holds rendered-document archival settings.
type ArchiveConfig struct {
	Provider  string `mapstructure:"provider"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// Load reads configuration from environment variables with the NOVABILL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NOVABILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":3002")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "novabill")
	v.SetDefault("db.password", "novabill_secret")
	v.SetDefault("db.name", "novabill_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Issuer defaults
	v.SetDefault("issuer.name", "NovaTech Solutions")
	v.SetDefault("issuer.address", "200 King Street West, Toronto, ON M5H 3T4")

	// Invoice defaults
	v.SetDefault("invoice.default_tax_rate", 13.0)
	v.SetDefault("invoice.default_currency", "CAD")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ca-central-1")
	v.SetDefault("email.from_address", "billing@novatech.example")
	v.SetDefault("email.from_name", "NovaTech Billing")

	// Archive defaults
	v.SetDefault("archive.provider", "noop")
	v.SetDefault("archive.region", "ca-central-1")
	v.SetDefault("archive.bucket", "novabill-documents")
	v.SetDefault("archive.endpoint", "")
	v.SetDefault("archive.prefix", "invoices")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "NOVABILL_SERVER_PORT",
		"server.read_timeout":      "NOVABILL_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "NOVABILL_SERVER_WRITE_TIMEOUT",
		"server.environment":       "NOVABILL_SERVER_ENVIRONMENT",
		"db.host":                  "NOVABILL_DB_HOST",
		"db.port":                  "NOVABILL_DB_PORT",
		"db.user":                  "NOVABILL_DB_USER",
		"db.password":              "NOVABILL_DB_PASSWORD",
		"db.name":                  "NOVABILL_DB_NAME",
		"db.sslmode":               "NOVABILL_DB_SSLMODE",
		"db.max_open":              "NOVABILL_DB_MAX_OPEN",
		"db.max_idle":              "NOVABILL_DB_MAX_IDLE",
		"log.level":                "NOVABILL_LOG_LEVEL",
		"log.format":               "NOVABILL_LOG_FORMAT",
		"cors.allowed_origins":     "NOVABILL_CORS_ALLOWED_ORIGINS",
		"issuer.name":              "NOVABILL_ISSUER_NAME",
		"issuer.address":           "NOVABILL_ISSUER_ADDRESS",
		"invoice.default_tax_rate": "NOVABILL_INVOICE_DEFAULT_TAX_RATE",
		"invoice.default_currency": "NOVABILL_INVOICE_DEFAULT_CURRENCY",
		"email.provider":           "NOVABILL_EMAIL_PROVIDER",
		"email.region":             "NOVABILL_EMAIL_REGION",
		"email.from_address":       "NOVABILL_EMAIL_FROM_ADDRESS",
		"email.from_name":          "NOVABILL_EMAIL_FROM_NAME",
		"archive.provider":         "NOVABILL_ARCHIVE_PROVIDER",
		"archive.region":           "NOVABILL_ARCHIVE_REGION",
		"archive.bucket":           "NOVABILL_ARCHIVE_BUCKET",
		"archive.endpoint":         "NOVABILL_ARCHIVE_ENDPOINT",
		"archive.access_key":       "NOVABILL_ARCHIVE_ACCESS_KEY",
		"archive.secret_key":       "NOVABILL_ARCHIVE_SECRET_KEY",
		"archive.prefix":           "NOVABILL_ARCHIVE_PREFIX",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if NOVABILL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("NOVABILL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Issuer = IssuerConfig{
		Name:    v.GetString("issuer.name"),
		Address: v.GetString("issuer.address"),
	}
	cfg.Invoice = InvoiceConfig{
		DefaultTaxRate:  v.GetFloat64("invoice.default_tax_rate"),
		DefaultCurrency: v.GetString("invoice.default_currency"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}
	cfg.Archive = ArchiveConfig{
		Provider:  v.GetString("archive.provider"),
		Region:    v.GetString("archive.region"),
		Bucket:    v.GetString("archive.bucket"),
		Endpoint:  v.GetString("archive.endpoint"),
		AccessKey: v.GetString("archive.access_key"),
		SecretKey: v.GetString("archive.secret_key"),
		Prefix:    v.GetString("archive.prefix"),
	}

	return cfg, nil
}
