package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Route struct {
	Method  string
	Path    string
	Handler HandlerFunc
}

// Routes is the API route table. It is filled before the server starts and
// read only afterwards.
type Routes struct {
	routes []Route
	index  map[string]struct{}
}

// NewRoutes returns the API route table. No endpoint is registered yet.
func NewRoutes() *Routes {
	return &Routes{index: make(map[string]struct{})}
}

// Add registers h for method and path. The first registration of a
// (method, path) pair wins: later ones are ignored and Add returns false.
func (r *Routes) Add(method, path string, h HandlerFunc) bool {
	method = strings.ToUpper(method)
	key := method + " " + path
	if _, found := r.index[key]; found {
		zap.S().Named("routes").Warnw("route already registered", "method", method, "path", path)
		return false
	}
	r.index[key] = struct{}{}
	r.routes = append(r.routes, Route{Method: method, Path: path, Handler: h})
	return true
}

func (r *Routes) GET(path string, h HandlerFunc) bool {
	return r.Add(http.MethodGet, path, h)
}

func (r *Routes) POST(path string, h HandlerFunc) bool {
	return r.Add(http.MethodPost, path, h)
}

func (r *Routes) Len() int {
	return len(r.routes)
}

// All returns the routes in registration order.
func (r *Routes) All() []Route {
	out := make([]Route, len(r.routes))
	copy(out, r.routes)
	return out
}

// Mount registers every route on group.
func (r *Routes) Mount(group gin.IRoutes) {
	for _, route := range r.routes {
		group.Handle(route.Method, route.Path, Handle(route.Handler))
	}
}
