// Package handlers holds the request handlers of the hello-server and the API
// route table.
//
// # Handler Signature
//
// Handlers return their failures instead of writing error responses:
//
//	func(c *gin.Context) error
//
// Handle adapts such a function to gin by attaching the error to the context
// and aborting the chain. The error middleware then maps it:
//
//	┌──────────────────────────┬────────────────────────────────────────┐
//	│ Returned error           │ Response                               │
//	├──────────────────────────┼────────────────────────────────────────┤
//	│ nil                      │ whatever the handler wrote             │
//	│ *errors.RouteError       │ its status, {"error": <message>}       │
//	│ anything else            │ 500, empty body                        │
//	└──────────────────────────┴────────────────────────────────────────┘
//
// # Route Table
//
// Routes collects the API endpoints before the server starts and is mounted
// on the API base path group. It is empty: the service exposes no business
// endpoint. The first registration of a (method, path) pair wins.
//
//	routes := handlers.NewRoutes()
//	routes.GET("/items/:id", func(c *gin.Context) error {
//	    return errors.NewRouteError(http.StatusNotFound, "item not found")
//	})
//	routes.Mount(engine.Group("/api"))
//
// # Root Endpoint
//
//	┌────────┬──────────┬─────────────────────────────┐
//	│ Method │ Endpoint │ Response                    │
//	├────────┼──────────┼─────────────────────────────┤
//	│ GET    │ /        │ 200 "Hello World"           │
//	└────────┴──────────┴─────────────────────────────┘
package handlers
