package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	srvErrors "github.com/kubev2v/hello-server/pkg/errors"
)

// ErrorHandler maps the last error attached to the context to a response.
// A RouteError is written with its own status and a {"error": message} body.
// Any other error becomes an empty 500. Nothing is written when a handler has
// already produced a response.
//
// It must be registered before the stages whose errors it handles.
func ErrorHandler(logger *zap.Logger, logErrors bool) gin.HandlerFunc {
	log := logger.Named("error_handler")
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		if logErrors {
			log.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.String("request-id", c.GetString(RequestIDKey)),
				zap.Error(err),
			)
		}

		if c.Writer.Written() {
			return
		}

		if re, ok := srvErrors.AsRouteError(err); ok {
			c.JSON(re.Status, gin.H{"error": re.Message})
			return
		}
		c.Status(http.StatusInternalServerError)
	}
}
