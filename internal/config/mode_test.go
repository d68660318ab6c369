package config_test

import (
	"github.com/goccy/go-json"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/hello-server/internal/config"
)

var _ = Describe("Mode", func() {
	It("should round trip every mode through its name", func() {
		for _, m := range config.Modes() {
			parsed, err := config.ParseMode(m.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(m))
		}
	})

	It("should list the three modes", func() {
		Expect(config.Modes()).To(Equal([]config.Mode{config.ModeDevelopment, config.ModeTest, config.ModeProduction}))
	})

	It("should reject unknown names", func() {
		_, err := config.ParseMode("prod")

		Expect(err).To(MatchError(ContainSubstring("development, test, production")))
	})

	It("should not name the zero value", func() {
		Expect(config.Mode(0).String()).To(Equal("Mode(0)"))
	})

	It("should encode as its name", func() {
		b, err := json.Marshal(map[string]any{"mode": config.ModeProduction})

		Expect(err).NotTo(HaveOccurred())
		Expect(string(b)).To(MatchJSON(`{"mode":"production"}`))
	})
})
