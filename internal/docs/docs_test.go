package docs_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/hello-server/internal/docs"
)

var _ = Describe("NewDocument", func() {
	It("should describe the service without any path", func() {
		doc := docs.NewDocument("/api")

		Expect(doc.OpenAPI).To(Equal("3.0.0"))
		Expect(doc.Info.Title).To(Equal("API"))
		Expect(doc.Info.Version).To(Equal("1.0.0"))
		Expect(doc.Servers).To(HaveLen(1))
		Expect(doc.Servers[0].URL).To(Equal("/api"))
		Expect(doc.Paths.Len()).To(BeZero())
	})
})

var _ = Describe("Handler", func() {
	var engine *gin.Engine

	BeforeEach(func() {
		h, err := docs.NewHandler(docs.NewDocument("/v1"))
		Expect(err).NotTo(HaveOccurred())

		engine = gin.New()
		h.Register(engine.Group("/v1"))
	})

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	// Given the docs routes mounted under /v1
	// When the page is requested
	// Then it should embed the document with empty paths
	It("should serve the documentation page", func() {
		for _, path := range []string{"/v1/docs", "/v1/docs/"} {
			rec := get(path)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(HavePrefix("text/html"))
			Expect(rec.Body.String()).To(ContainSubstring("swagger-ui"))
			Expect(rec.Body.String()).To(ContainSubstring(`"paths":{}`))
			Expect(rec.Body.String()).To(ContainSubstring(`"url":"/v1"`))
		}
	})

	It("should serve the raw document", func() {
		rec := get("/v1/docs/openapi.json")

		Expect(rec.Code).To(Equal(http.StatusOK))

		var doc map[string]any
		Expect(json.Unmarshal(rec.Body.Bytes(), &doc)).To(Succeed())
		Expect(doc).To(HaveKeyWithValue("openapi", "3.0.0"))
		Expect(doc).To(HaveKeyWithValue("paths", BeEmpty()))
		Expect(doc).To(HaveKeyWithValue("info", HaveKeyWithValue("description", "Auto-generated API docs")))
		Expect(doc).To(HaveKeyWithValue("servers", ConsistOf(HaveKeyWithValue("description", "API base path"))))
	})

	It("should round trip through the OpenAPI loader", func() {
		rec := get("/v1/docs/openapi.json")

		loaded, err := openapi3.NewLoader().LoadFromData(rec.Body.Bytes())
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Info.Title).To(Equal("API"))
		Expect(loaded.Paths.Len()).To(BeZero())
	})
})
