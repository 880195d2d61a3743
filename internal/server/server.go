package server

import (
	"embed"
	"io/fs"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/api"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/config"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/dataset"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/goals"
	"github.com/javillavilla2-sys/planner-dashboard-td-2026/internal/store"
)

//go:embed all:dist
var staticFiles embed.FS

// Server is the local HTTP server hosting the API and the embedded UI.
type Server struct {
	router  *gin.Engine
	store   *store.Store
	tracker *goals.Tracker
	api     *api.Handler
}

// NewServer wires storage, tracker and handlers from the configuration.
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		dataDir = cfg.Data.DataDir
	}
	dbPath := filepath.Join(dataDir, "planboard.db")

	sqliteStore, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	tracker, err := goals.NewTracker(sqliteStore)
	if err != nil {
		log.Fatalf("Failed to initialize goals tracker: %v", err)
	}

	handler := api.NewHandler(dataset.NewStore(), tracker, cfg)

	s := &Server{
		router:  gin.Default(),
		store:   sqliteStore,
		tracker: tracker,
		api:     handler,
	}

	s.setupRoutes(devMode)

	return s
}

func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	if devMode {
		// Dev mode proxies the UI to the frontend dev server.
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
		return
	}

	sub, _ := fs.Sub(staticFiles, "dist")

	s.router.GET("/", func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})

	// SPA fallback
	s.router.NoRoute(func(c *gin.Context) {
		data, _ := fs.ReadFile(sub, "index.html")
		c.Data(http.StatusOK, "text/html; charset=utf-8", data)
	})
}

// Run starts the HTTP listener.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close releases the underlying database handle.
func (s *Server) Close() error {
	return s.store.Close()
}
