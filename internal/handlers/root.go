package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Hello answers the root path.
// (GET /)
func Hello(c *gin.Context) error {
	c.String(http.StatusOK, "Hello World")
	return nil
}
