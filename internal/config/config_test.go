package config_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/hello-server/internal/config"
	srvErrors "github.com/kubev2v/hello-server/pkg/errors"
)

var envKeys = []string{
	"APP_ENV", "NODE_ENV", "PORT", "API_BASE_PATH", "STATICS_FOLDER",
	"LOG_LEVEL", "LOG_FORMAT", "DISABLE_SECURITY_HEADERS", "DISABLE_HELMET",
}

// clearEnv unsets every variable the loader reads and restores them afterwards.
func clearEnv() {
	for _, key := range envKeys {
		if old, ok := os.LookupEnv(key); ok {
			DeferCleanup(os.Setenv, key, old)
		}
		Expect(os.Unsetenv(key)).To(Succeed())
	}
}

func setEnv(key, value string) {
	Expect(os.Setenv(key, value)).To(Succeed())
	DeferCleanup(os.Unsetenv, key)
}

var _ = Describe("Load", func() {
	BeforeEach(func() {
		clearEnv()
	})

	Context("with a valid environment", func() {
		// Given a mode and a port
		// When we load the configuration
		// Then both should be set and every other field should take its default
		It("should load mode, port and defaults", func() {
			setEnv("APP_ENV", "development")
			setEnv("PORT", "8080")

			cfg, err := config.Load(config.NewViper())

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Server.Mode).To(Equal(config.ModeDevelopment))
			Expect(cfg.Server.Port).To(Equal(8080))
			Expect(cfg.Server.BasePath).To(Equal("/api"))
			Expect(cfg.Server.StaticsFolder).To(Equal("public"))
			Expect(cfg.Server.DisableSecurityHeaders).To(BeFalse())
			Expect(cfg.LogLevel).To(Equal("info"))
			Expect(cfg.LogFormat).To(Equal("console"))
			Expect(cfg.Addr()).To(Equal(":8080"))
		})

		It("should accept NODE_ENV when APP_ENV is absent", func() {
			setEnv("NODE_ENV", "production")
			setEnv("PORT", "3000")

			cfg, err := config.Load(config.NewViper())

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Server.Mode).To(Equal(config.ModeProduction))
		})

		It("should prefer APP_ENV over NODE_ENV", func() {
			setEnv("APP_ENV", "test")
			setEnv("NODE_ENV", "production")
			setEnv("PORT", "3000")

			cfg, err := config.Load(config.NewViper())

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Server.Mode).To(Equal(config.ModeTest))
		})

		It("should read the optional settings", func() {
			setEnv("APP_ENV", "test")
			setEnv("PORT", "3000")
			setEnv("API_BASE_PATH", "v2/")
			setEnv("STATICS_FOLDER", "/srv/www")
			setEnv("LOG_LEVEL", "debug")
			setEnv("LOG_FORMAT", "json")

			cfg, err := config.Load(config.NewViper())

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Server.BasePath).To(Equal("/v2"))
			Expect(cfg.Server.StaticsFolder).To(Equal("/srv/www"))
			Expect(cfg.LogLevel).To(Equal("debug"))
			Expect(cfg.LogFormat).To(Equal("json"))
		})

		It("should let viper overrides win over the environment", func() {
			setEnv("APP_ENV", "test")
			setEnv("PORT", "3000")
			setEnv("API_BASE_PATH", "/v2")

			v := config.NewViper()
			v.Set(config.KeyBasePath, "/v3")

			cfg, err := config.Load(v)

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Server.BasePath).To(Equal("/v3"))
		})
	})

	DescribeTable("invalid running mode",
		func(value *string) {
			if value != nil {
				setEnv("APP_ENV", *value)
			}
			setEnv("PORT", "8080")

			cfg, err := config.Load(config.NewViper())

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsConfigurationError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("APP_ENV"))
			Expect(cfg).To(BeNil())
		},
		Entry("absent", nil),
		Entry("empty", ptr("")),
		Entry("unknown", ptr("staging")),
		Entry("wrong case", ptr("Production")),
	)

	DescribeTable("invalid port",
		func(value *string) {
			setEnv("APP_ENV", "development")
			if value != nil {
				setEnv("PORT", *value)
			}

			cfg, err := config.Load(config.NewViper())

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsConfigurationError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("PORT"))
			Expect(cfg).To(BeNil())
		},
		Entry("absent", nil),
		Entry("non numeric", ptr("http")),
		Entry("zero", ptr("0")),
		Entry("out of range", ptr("70000")),
	)

	It("should reject an unknown log format", func() {
		setEnv("APP_ENV", "development")
		setEnv("PORT", "8080")
		setEnv("LOG_FORMAT", "xml")

		_, err := config.Load(config.NewViper())

		Expect(srvErrors.IsConfigurationError(err)).To(BeTrue())
	})

	Context("security headers override", func() {
		BeforeEach(func() {
			setEnv("APP_ENV", "production")
			setEnv("PORT", "8080")
		})

		It("should enable security headers in production by default", func() {
			cfg, err := config.Load(config.NewViper())

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.SecurityHeadersEnabled()).To(BeTrue())
		})

		DescribeTable("should disable security headers when the flag is present",
			func(key string) {
				setEnv(key, "1")

				cfg, err := config.Load(config.NewViper())

				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Server.DisableSecurityHeaders).To(BeTrue())
				Expect(cfg.SecurityHeadersEnabled()).To(BeFalse())
			},
			Entry("DISABLE_SECURITY_HEADERS", "DISABLE_SECURITY_HEADERS"),
			Entry("DISABLE_HELMET", "DISABLE_HELMET"),
		)

		It("should treat an empty flag as absent", func() {
			setEnv("DISABLE_HELMET", "")

			cfg, err := config.Load(config.NewViper())

			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.SecurityHeadersEnabled()).To(BeTrue())
		})
	})
})

var _ = Describe("Configuration", func() {
	DescribeTable("middleware activation by mode",
		func(mode config.Mode, disabled, logging, security bool) {
			cfg := config.NewConfigurationWithOptionsAndDefaults(
				config.WithServer(config.Server{Mode: mode, DisableSecurityHeaders: disabled}),
			)

			Expect(cfg.RequestLoggingEnabled()).To(Equal(logging))
			Expect(cfg.SecurityHeadersEnabled()).To(Equal(security))
		},
		Entry("development", config.ModeDevelopment, false, true, false),
		Entry("test", config.ModeTest, false, false, false),
		Entry("production", config.ModeProduction, false, false, true),
		Entry("production with override", config.ModeProduction, true, false, false),
	)

	It("should start from the defaults", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults()

		Expect(cfg.LogFormat).To(Equal("console"))
		Expect(cfg.LogLevel).To(Equal("info"))
		Expect(cfg.Server.BasePath).To(Equal("/api"))
		Expect(cfg.Server.StaticsFolder).To(Equal("public"))
	})

	It("should expose a debug map per struct", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults(
			config.WithServer(*config.NewServerWithOptionsAndDefaults(
				config.WithMode(config.ModeTest),
				config.WithPort(1),
			)),
		)

		Expect(cfg.DebugMap()).To(HaveKeyWithValue("LogLevel", "info"))
		Expect(cfg.Server.DebugMap()).To(HaveKeyWithValue("Mode", config.ModeTest))
		Expect(cfg.Server.DebugMap()).To(HaveKeyWithValue("BasePath", "/api"))
	})

	// Given a loaded configuration
	// When it is flattened for logging
	// Then nested server settings should appear under dotted keys
	It("should flatten the debug maps for logging", func() {
		cfg := config.NewConfigurationWithOptionsAndDefaults(
			config.WithServer(*config.NewServerWithOptionsAndDefaults(
				config.WithMode(config.ModeProduction),
				config.WithPort(8080),
			)),
			config.WithLogFormat("json"),
		)

		fields := cfg.Fields()

		Expect(fields).To(HaveKeyWithValue("Server.Port", 8080))
		Expect(fields).To(HaveKeyWithValue("Server.Mode", config.ModeProduction))
		Expect(fields).To(HaveKeyWithValue("LogFormat", "json"))
		Expect(fields).NotTo(HaveKey("Server"))
	})
})

func ptr(s string) *string {
	return &s
}
