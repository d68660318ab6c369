package server

import (
	"net/http"
	"strings"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kubev2v/hello-server/internal/config"
	"github.com/kubev2v/hello-server/internal/docs"
	"github.com/kubev2v/hello-server/internal/handlers"
	"github.com/kubev2v/hello-server/internal/server/middlewares"
	srvErrors "github.com/kubev2v/hello-server/pkg/errors"
)

// NewRouter assembles the request pipeline.
//
// Gin runs middleware in registration order, and a middleware only sees the
// errors of the stages registered after it. The error handler therefore sits
// before the body parsers, and the request logger before the error handler so
// it records the final status. Security headers are set ahead of both so that
// rejected bodies carry them too.
func NewRouter(cfg *config.Configuration, logger *zap.Logger, routes *handlers.Routes) (*gin.Engine, error) {
	docsHandler, err := docs.NewHandler(docs.NewDocument(cfg.Server.BasePath))
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(ginzap.RecoveryWithZap(logger, true), middlewares.RequestID())

	if cfg.RequestLoggingEnabled() {
		engine.Use(middlewares.Logger(logger))
	}

	if cfg.SecurityHeadersEnabled() {
		engine.Use(middlewares.SecurityHeaders())
	}

	engine.Use(
		middlewares.ErrorHandler(logger, cfg.Server.Mode != config.ModeTest),
		middlewares.JSONBody(middlewares.DefaultBodyLimit),
		middlewares.URLEncodedBody(middlewares.DefaultBodyLimit),
	)

	engine.Use(middlewares.Static(cfg.Server.StaticsFolder))

	api := engine.Group(cfg.Server.BasePath)
	routes.Mount(api)
	docsHandler.Register(api)

	hello := handlers.Handle(handlers.Hello)
	engine.GET("/", hello)
	engine.HEAD("/", hello)
	engine.NoRoute(handlers.Handle(notFound(cfg.Server.BasePath)))

	return engine, nil
}

// notFound answers JSON under the API base path and plain text elsewhere.
func notFound(basePath string) handlers.HandlerFunc {
	return func(c *gin.Context) error {
		if isUnder(c.Request.URL.Path, basePath) {
			return srvErrors.NewRouteNotFoundError()
		}
		c.String(http.StatusNotFound, "404 page not found")
		return nil
	}
}

func isUnder(path, basePath string) bool {
	if basePath == "/" {
		return true
	}
	return path == basePath || strings.HasPrefix(path, basePath+"/")
}
