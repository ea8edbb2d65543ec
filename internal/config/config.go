package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atlasdoors/backoffice/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Postgres   PostgresConfig   `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Auth       AuthConfig
	RBAC       RBACConfig
	Email      EmailConfig
	Pdf        PdfConfig
	Sentry     SentryConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type PostgresConfig struct {
	Host         string `validate:"required"`
	Port         int    `validate:"required"`
	User         string `validate:"required"`
	Password     string
	DBName       string `validate:"required"`
	SSLMode      string `mapstructure:"ssl_mode" default:"disable"`
	MaxOpenConns int    `mapstructure:"max_open_conns" default:"10"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" default:"5"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type AuthConfig struct {
	// Secret signs and verifies the HS256 JWT tokens issued to staff
	Secret string `validate:"required"`
}

type RBACConfig struct {
	// RolesConfigPath points at the role table loaded at startup.
	// Authorization policy is configuration, never compiled in.
	RolesConfigPath string `mapstructure:"roles_config_path"`
}

type EmailConfig struct {
	Enabled     bool
	APIKey      string `mapstructure:"api_key"`
	FromAddress string `mapstructure:"from_address"`
	ReplyTo     string `mapstructure:"reply_to"`
}

type PdfConfig struct {
	TemplateDir string `mapstructure:"template_dir"`
	FontDir     string `mapstructure:"font_dir"`
}

type SentryConfig struct {
	Enabled     bool
	DSN         string
	Environment string
	SampleRate  float64 `mapstructure:"sample_rate"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/atlasdoors")

	// Set up environment variables support
	v.SetEnvPrefix("ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func (c PostgresConfig) GetDSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, sslMode,
	)
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Pdf: PdfConfig{
			TemplateDir: "assets/typst",
			FontDir:     "assets/fonts",
		},
	}
}
