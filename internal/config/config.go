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
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	GST    GSTConfig
	Email  EmailConfig
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

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for certificate storage.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
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

// GSTConfig holds the billing policy constants: the seller's home state,
// the standard rate, and the government-entity PAN marker. These feed
// gst.Policy so jurisdiction changes never touch decision logic.
type GSTConfig struct {
	HomeStateCode        int     `mapstructure:"home_state_code"`
	StandardRatePct      float64 `mapstructure:"standard_rate_pct"`
	GovernmentMarker     string  `mapstructure:"government_marker"`
	ExemptGovtIntraState bool    `mapstructure:"exempt_govt_intrastate"`
	SellerGSTIN          string  `mapstructure:"seller_gstin"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// Load reads configuration from environment variables with the GSTPORTAL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("GSTPORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "gstportal")
	v.SetDefault("db.password", "gstportal_secret")
	v.SetDefault("db.name", "gstportal_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "gstportal")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "gstportal-certificates")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// GST policy defaults: Karnataka seller at the 18% standard rate.
	v.SetDefault("gst.home_state_code", 29)
	v.SetDefault("gst.standard_rate_pct", 18.0)
	v.SetDefault("gst.government_marker", "G")
	v.SetDefault("gst.exempt_govt_intrastate", true)
	v.SetDefault("gst.seller_gstin", "")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@gstportal.gov.in")
	v.SetDefault("email.from_name", "GST Portal")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "GSTPORTAL_SERVER_PORT",
		"server.read_timeout":        "GSTPORTAL_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "GSTPORTAL_SERVER_WRITE_TIMEOUT",
		"server.environment":         "GSTPORTAL_SERVER_ENVIRONMENT",
		"db.host":                    "GSTPORTAL_DB_HOST",
		"db.port":                    "GSTPORTAL_DB_PORT",
		"db.user":                    "GSTPORTAL_DB_USER",
		"db.password":                "GSTPORTAL_DB_PASSWORD",
		"db.name":                    "GSTPORTAL_DB_NAME",
		"db.sslmode":                 "GSTPORTAL_DB_SSLMODE",
		"db.max_open":                "GSTPORTAL_DB_MAX_OPEN",
		"db.max_idle":                "GSTPORTAL_DB_MAX_IDLE",
		"jwt.secret":                 "GSTPORTAL_JWT_SECRET",
		"jwt.access_expiry":          "GSTPORTAL_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":         "GSTPORTAL_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                 "GSTPORTAL_JWT_ISSUER",
		"s3.region":                  "GSTPORTAL_S3_REGION",
		"s3.bucket":                  "GSTPORTAL_S3_BUCKET",
		"s3.endpoint":                "GSTPORTAL_S3_ENDPOINT",
		"s3.access_key":              "GSTPORTAL_S3_ACCESS_KEY",
		"s3.secret_key":              "GSTPORTAL_S3_SECRET_KEY",
		"s3.max_file_size_mb":        "GSTPORTAL_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":          "GSTPORTAL_S3_PRESIGN_EXPIRY",
		"log.level":                  "GSTPORTAL_LOG_LEVEL",
		"log.format":                 "GSTPORTAL_LOG_FORMAT",
		"cors.allowed_origins":       "GSTPORTAL_CORS_ALLOWED_ORIGINS",
		"gst.home_state_code":        "GSTPORTAL_GST_HOME_STATE_CODE",
		"gst.standard_rate_pct":      "GSTPORTAL_GST_STANDARD_RATE_PCT",
		"gst.government_marker":      "GSTPORTAL_GST_GOVERNMENT_MARKER",
		"gst.exempt_govt_intrastate": "GSTPORTAL_GST_EXEMPT_GOVT_INTRASTATE",
		"gst.seller_gstin":           "GSTPORTAL_GST_SELLER_GSTIN",
		"email.provider":             "GSTPORTAL_EMAIL_PROVIDER",
		"email.region":               "GSTPORTAL_EMAIL_REGION",
		"email.from_address":         "GSTPORTAL_EMAIL_FROM_ADDRESS",
		"email.from_name":            "GSTPORTAL_EMAIL_FROM_NAME",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if GSTPORTAL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("GSTPORTAL_SERVER_PORT") == "" {
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
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
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
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.GST = GSTConfig{
		HomeStateCode:        v.GetInt("gst.home_state_code"),
		StandardRatePct:      v.GetFloat64("gst.standard_rate_pct"),
		GovernmentMarker:     v.GetString("gst.government_marker"),
		ExemptGovtIntraState: v.GetBool("gst.exempt_govt_intrastate"),
		SellerGSTIN:          v.GetString("gst.seller_gstin"),
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	return cfg, nil
}
