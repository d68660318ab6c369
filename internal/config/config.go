package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ecordell/optgen/helpers"
	"github.com/spf13/viper"

	srvErrors "github.com/kubev2v/hello-server/pkg/errors"
)

// Keys used in viper. Flags registered on the run command use the same names.
const (
	KeyMode                   = "mode"
	KeyPort                   = "port"
	KeyBasePath               = "base-path"
	KeyStaticsFolder          = "statics-folder"
	KeyLogLevel               = "log-level"
	KeyLogFormat              = "log-format"
	KeyDisableSecurityHeaders = "disable-security-headers"
)

const (
	EnvMode                   = "APP_ENV"
	EnvModeLegacy             = "NODE_ENV"
	EnvPort                   = "PORT"
	EnvDisableSecurityHeaders = "DISABLE_SECURITY_HEADERS"
	EnvDisableHelmet          = "DISABLE_HELMET"
)

//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server

type Configuration struct {
	Server    Server `debugmap:"visible"`
	LogFormat string `debugmap:"visible" default:"console"`
	LogLevel  string `debugmap:"visible" default:"info"`
}

type Server struct {
	Mode                   Mode   `debugmap:"visible"`
	Port                   int    `debugmap:"visible"`
	BasePath               string `debugmap:"visible" default:"/api"`
	StaticsFolder          string `debugmap:"visible" default:"public"`
	DisableSecurityHeaders bool   `debugmap:"visible"`
}

// NewViper returns a viper instance bound to the environment variables the
// server reads at startup.
func NewViper() *viper.Viper {
	v := viper.New()
	v.MustBindEnv(KeyMode, EnvMode, EnvModeLegacy)
	v.MustBindEnv(KeyPort, EnvPort)
	v.MustBindEnv(KeyBasePath, "API_BASE_PATH")
	v.MustBindEnv(KeyStaticsFolder, "STATICS_FOLDER")
	v.MustBindEnv(KeyLogLevel, "LOG_LEVEL")
	v.MustBindEnv(KeyLogFormat, "LOG_FORMAT")
	v.MustBindEnv(KeyDisableSecurityHeaders, EnvDisableSecurityHeaders, EnvDisableHelmet)
	return v
}

// Load builds the configuration from v. Mode and port are required; every
// other setting falls back to its default.
func Load(v *viper.Viper) (*Configuration, error) {
	cfg := NewConfigurationWithOptionsAndDefaults()

	rawMode := strings.TrimSpace(v.GetString(KeyMode))
	if rawMode == "" {
		return nil, srvErrors.NewConfigurationError(EnvMode, "", "is required")
	}
	mode, err := ParseMode(rawMode)
	if err != nil {
		return nil, srvErrors.NewConfigurationError(EnvMode, rawMode, err.Error())
	}
	cfg.Server.Mode = mode

	rawPort := strings.TrimSpace(v.GetString(KeyPort))
	if rawPort == "" {
		return nil, srvErrors.NewConfigurationError(EnvPort, "", "is required")
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return nil, srvErrors.NewConfigurationError(EnvPort, rawPort, "must be a number")
	}
	if port < 1 || port > 65535 {
		return nil, srvErrors.NewConfigurationError(EnvPort, rawPort, "must be between 1 and 65535")
	}
	cfg.Server.Port = port

	if s := v.GetString(KeyBasePath); s != "" {
		cfg.Server.BasePath = s
	}
	cfg.Server.BasePath = normalizeBasePath(cfg.Server.BasePath)

	if s := v.GetString(KeyStaticsFolder); s != "" {
		cfg.Server.StaticsFolder = s
	}
	if s := v.GetString(KeyLogLevel); s != "" {
		cfg.LogLevel = s
	}
	if s := v.GetString(KeyLogFormat); s != "" {
		cfg.LogFormat = s
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, srvErrors.NewConfigurationError("LOG_FORMAT", cfg.LogFormat, "must be console or json")
	}

	// presence only: any non-empty value disables the headers
	cfg.Server.DisableSecurityHeaders = v.IsSet(KeyDisableSecurityHeaders)

	return cfg, nil
}

// SecurityHeadersEnabled reports whether hardening headers are applied.
func (c *Configuration) SecurityHeadersEnabled() bool {
	switch c.Server.Mode {
	case ModeProduction:
		return !c.Server.DisableSecurityHeaders
	case ModeDevelopment, ModeTest:
		return false
	default:
		return false
	}
}

// RequestLoggingEnabled reports whether every request is logged.
func (c *Configuration) RequestLoggingEnabled() bool {
	switch c.Server.Mode {
	case ModeDevelopment:
		return true
	case ModeTest, ModeProduction:
		return false
	default:
		return false
	}
}

func (c *Configuration) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// Fields returns the configuration as flat key/value pairs for logging.
func (c *Configuration) Fields() map[string]any {
	m := c.DebugMap()
	m["Server"] = c.Server.DebugMap()
	return helpers.Flatten(m)
}

func normalizeBasePath(p string) string {
	p = "/" + strings.Trim(strings.TrimSpace(p), "/")
	return p
}
