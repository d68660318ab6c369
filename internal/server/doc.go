// Package server provides the HTTP server of the hello-server.
//
// The server uses the Gin web framework. NewRouter assembles the request
// pipeline from the configuration; NewServer wraps it in an http.Server.
//
// # Pipeline
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                       Middleware Stack                        │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Recovery (panic recovery with zap logging)             │  │
//	│  │  RequestID (X-Request-Id)                               │  │
//	│  │  Logger (development only)                              │  │
//	│  │  SecurityHeaders (production, unless disabled)          │  │
//	│  │  ErrorHandler (maps handler errors to responses)        │  │
//	│  │  JSONBody / URLEncodedBody (eager body parsing)         │  │
//	│  │  Static (files under StaticsFolder, unmatched paths)    │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│                     Router (BasePath, /api)                   │
//	│  ┌─────────────────────────────────────────────────────────┐  │
//	│  │  Route table (empty)                                    │  │
//	│  │  GET /docs, /docs/, /docs/openapi.json                  │  │
//	│  └─────────────────────────────────────────────────────────┘  │
//	├───────────────────────────────────────────────────────────────┤
//	│  GET|HEAD /  → 200 "Hello World"                              │
//	│  404    → {"error":"route not found"} under BasePath          │
//	└───────────────────────────────────────────────────────────────┘
//
// # Running Modes
//
//	┌─────────────┬───────────┬────────────────┬──────────────────┬──────────────┐
//	│ Mode        │ Gin mode  │ Request logger │ Security headers │ Error logs   │
//	├─────────────┼───────────┼────────────────┼──────────────────┼──────────────┤
//	│ development │ debug     │ yes            │ no               │ yes          │
//	│ test        │ test      │ no             │ no               │ no           │
//	│ production  │ release   │ no             │ unless disabled  │ yes          │
//	└─────────────┴───────────┴────────────────┴──────────────────┴──────────────┘
//
// # Error Mapping
//
// Handlers return errors. A *errors.RouteError is answered with its status and
// a {"error": <message>} body, any other error with an empty 500. Malformed
// JSON bodies are rejected with 400 before any handler runs. A response is
// written once; a handler that already wrote is left alone.
//
// # Server Lifecycle
//
//	srv, err := server.NewServer(cfg, logger, handlers.NewRoutes())
//	if err != nil {
//	    return err
//	}
//
//	go func() {
//	    if err := srv.Start(ctx); !errors.Is(err, http.ErrServerClosed) {
//	        zap.S().Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-ctx.Done()
//	srv.Stop(shutdownCtx)
//
// Stop performs a graceful shutdown, waiting for in-flight requests to complete.
package server
