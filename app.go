// @title           Certificate Probe API
// @version         1.0
// @description     Single-endpoint HTTPS certificate probe: TLS handshake metadata, leaf certificate details and an HTTP liveness check for a given hostname.

// @contact.name   API Support
// @contact.email  info@hglnd.se

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https
package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hglnd/certprobe/docs"
	"github.com/hglnd/certprobe/handlers"
)

// Config is the process-wide configuration, initialized once at startup
// and read-only thereafter.
type Config struct {
	// AllowedOrigins is the CORS allow-list. Only an exact match against a
	// request's Origin header is echoed back in Access-Control-Allow-Origin.
	AllowedOrigins []string
}

// App encapsulates all the components of the application
type App struct {
	Config        Config
	Router        *gin.Engine
	ProbeHandlers *handlers.ProbeHandlers
	HealthHandler *handlers.HealthHandler
}

// NewApp creates and initializes a new application instance
func NewApp(cfg Config) (*App, error) {
	probeHandlers := handlers.NewProbeHandlers()
	healthHandler := handlers.NewHealthHandler()

	router := gin.Default()
	router.HandleMethodNotAllowed = true
	router.Use(corsMiddleware(cfg.AllowedOrigins))

	app := &App{
		Config:        cfg,
		Router:        router,
		ProbeHandlers: probeHandlers,
		HealthHandler: healthHandler,
	}

	app.setupRoutes()
	return app, nil
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() {
	// The probe lives at the root so that `GET /?host=...` works, with a
	// versioned alias under /api/v1 for clients that prefer it.
	app.Router.GET("/", app.ProbeHandlers.CertCheckHandler)

	app.Router.GET("/api/v1/health", app.HealthHandler.HealthCheckHandler)

	checkV1 := app.Router.Group("/api/v1")
	{
		checkV1.GET("/check", app.ProbeHandlers.CertCheckHandler)
	}

	// Any method other than GET on a known route; OPTIONS never reaches
	// this because the CORS middleware answers it first.
	app.Router.NoMethod(func(c *gin.Context) {
		c.IndentedJSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// corsMiddleware echoes Access-Control-Allow-Origin only on an exact
// allow-list match and answers OPTIONS preflights with an empty 204. A
// request from an unknown origin is still served without the header; the
// browser enforces the policy client-side.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type")
			c.Header("Access-Control-Max-Age", "86400")
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Start runs the Gin HTTP server
func (app *App) Start(addr string) error {
	log.Printf("Certificate probe API starting on %s", addr)
	return app.Router.Run(addr)
}
