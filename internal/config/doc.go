// Package config defines the configuration of the hello-server.
//
// Configuration is read once at startup from the environment (through viper)
// and from the flags of the run command, then passed by pointer to the server.
// It is never mutated afterwards.
//
// # Configuration Structure
//
//	Configuration
//	├── Server         - HTTP server settings
//	├── LogFormat      - Logging format
//	└── LogLevel       - Logging verbosity
//
// # Server Configuration
//
//	┌────────────────────────┬───────────────────────────────────┬──────────┬───────────────────────────────┐
//	│ Field                  │ Source                            │ Default  │ Description                   │
//	├────────────────────────┼───────────────────────────────────┼──────────┼───────────────────────────────┤
//	│ Mode                   │ APP_ENV (or NODE_ENV)             │ required │ development, test, production │
//	│ Port                   │ PORT                              │ required │ HTTP listen port              │
//	│ BasePath               │ API_BASE_PATH, --base-path        │ "/api"   │ Mount point of the API routes │
//	│ StaticsFolder          │ STATICS_FOLDER, --statics-folder  │ "public" │ Static files directory        │
//	│ DisableSecurityHeaders │ DISABLE_SECURITY_HEADERS (or      │ false    │ Presence-only override        │
//	│                        │ DISABLE_HELMET)                   │          │                               │
//	└────────────────────────┴───────────────────────────────────┴──────────┴───────────────────────────────┘
//
// Running modes:
//   - development: every request is logged
//   - test: errors are not logged
//   - production: security headers are set unless the override is present
//
// A missing or invalid mode or port is fatal. Load returns a
// *errors.ConfigurationError and the process does not start.
//
// # Code Generation
//
// Option helpers and DebugMap are generated with optgen:
//
//	//go:generate go run github.com/ecordell/optgen -output zz_generated.configuration.go . Configuration Server
//
// Tests build configurations with them instead of struct literals:
//
//	cfg := config.NewConfigurationWithOptionsAndDefaults(
//	    config.WithServer(config.Server{Mode: config.ModeTest, Port: 8080}),
//	)
//
// Fields flattens DebugMap of both structs into "Server.Port"-style keys.
//
// # Usage Example
//
//	v := config.NewViper()
//	_ = v.BindPFlags(cmd.Flags())
//
//	cfg, err := config.Load(v)
//	if err != nil {
//	    return err
//	}
//	zap.S().Infow("configuration loaded", "config", cfg.Fields())
package config
