package middlewares_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/hello-server/internal/server/middlewares"
)

var _ = Describe("SecurityHeaders", func() {
	serve := func(req *http.Request) *httptest.ResponseRecorder {
		engine := gin.New()
		engine.Use(middlewares.SecurityHeaders())
		engine.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "body") })
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		return rec
	}

	It("should set the hardening headers without touching the body", func() {
		rec := serve(httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(Equal("body"))

		h := rec.Header()
		Expect(h.Get("X-Frame-Options")).To(Equal("DENY"))
		Expect(h.Get("X-Content-Type-Options")).To(Equal("nosniff"))
		Expect(h.Get("Content-Security-Policy")).To(ContainSubstring("default-src 'self'"))
		Expect(h.Get("Referrer-Policy")).To(Equal("no-referrer"))
		Expect(h.Get("Cross-Origin-Opener-Policy")).To(Equal("same-origin"))
		Expect(h.Get("Cross-Origin-Resource-Policy")).To(Equal("same-origin"))
		Expect(h.Get("Origin-Agent-Cluster")).To(Equal("?1"))
		Expect(h.Get("X-DNS-Prefetch-Control")).To(Equal("off"))
		Expect(h.Get("X-Permitted-Cross-Domain-Policies")).To(Equal("none"))
		Expect(h.Get("X-XSS-Protection")).To(Equal("0"))
	})

	It("should send Strict-Transport-Security", func() {
		rec := serve(httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(rec.Header().Get("Strict-Transport-Security")).To(ContainSubstring("max-age=15552000"))
		Expect(rec.Header().Get("X-Download-Options")).To(Equal("noopen"))
	})
})
