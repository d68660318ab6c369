package docs

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
)

const (
	Title       = "API"
	Version     = "1.0.0"
	Description = "Auto-generated API docs"

	// the page loads Swagger UI from a CDN and boots it from an inline script
	pageSecurityPolicy = "default-src 'self';script-src 'self' 'unsafe-inline' https://unpkg.com;" +
		"style-src 'self' 'unsafe-inline' https://unpkg.com;img-src 'self' data: https:;object-src 'none'"
)

var page = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>{{ .Title }}</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.onload = function () {
      window.ui = SwaggerUIBundle({ spec: {{ .Spec }}, dom_id: "#swagger-ui" });
    };
  </script>
</body>
</html>
`))

// NewDocument returns the OpenAPI document of the service. It announces the
// service metadata and describes no operation.
func NewDocument(basePath string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       Title,
			Version:     Version,
			Description: Description,
		},
		Servers: openapi3.Servers{
			{URL: basePath, Description: "API base path"},
		},
		Paths: openapi3.NewPaths(),
	}
}

// Handler serves a pre-rendered documentation page and the raw document.
type Handler struct {
	spec []byte
	page []byte
}

func NewHandler(doc *openapi3.T) (*Handler, error) {
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	spec, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OpenAPI document: %w", err)
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, struct {
		Title string
		Spec  template.JS
	}{Title: doc.Info.Title, Spec: template.JS(spec)}); err != nil {
		return nil, fmt.Errorf("failed to render docs page: %w", err)
	}

	return &Handler{spec: spec, page: buf.Bytes()}, nil
}

// Register adds the docs routes to router:
//
//	GET /docs               → Swagger UI
//	GET /docs/              → Swagger UI
//	GET /docs/openapi.json  → OpenAPI document
func (h *Handler) Register(router gin.IRoutes) {
	router.GET("/docs", h.Page)
	router.GET("/docs/", h.Page)
	router.GET("/docs/openapi.json", h.Document)
}

func (h *Handler) Page(c *gin.Context) {
	c.Header("Content-Security-Policy", pageSecurityPolicy)
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.page)
}

func (h *Handler) Document(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", h.spec)
}
