package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerFunc is a request handler that reports failures by returning them.
// A returned *errors.RouteError decides the response status; any other error
// becomes a 500.
type HandlerFunc func(c *gin.Context) error

// Handle adapts h to gin. A returned error is attached to the context and the
// chain is aborted, leaving the response to the error middleware.
func Handle(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			_ = c.Error(err)
			c.Abort()
		}
	}
}
