package middlewares

import (
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// filesOnly reports only regular files as existing, so a directory request
// (including "/") is never answered with a listing or an index page.
type filesOnly struct {
	static.ServeFileSystem
	root string
}

func (f filesOnly) Exists(prefix string, filepath string) bool {
	p := strings.TrimPrefix(filepath, prefix)
	if len(p) == len(filepath) {
		return false
	}
	info, err := os.Stat(path.Join(f.root, path.Clean("/"+p)))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Static serves GET and HEAD requests for existing files under root. It only
// answers requests no route matched and otherwise lets the chain continue.
func Static(root string) gin.HandlerFunc {
	serve := static.Serve("/", filesOnly{ServeFileSystem: static.LocalFile(root, false), root: root})
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			return
		}
		if c.FullPath() != "" {
			return
		}
		serve(c)
	}
}
