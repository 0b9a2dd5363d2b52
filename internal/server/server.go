package server

import (
	"embed"
	"io/fs"
	"net/http"
	"net/http/pprof"

	"github.com/gin-gonic/gin"

	"github.com/yixuqiu/page-spy-web/internal/model"
	"github.com/yixuqiu/page-spy-web/internal/store"
)

//go:embed all:web
var webFS embed.FS

// Server exposes the session snapshot to the rendering layer: one JSON
// endpoint per channel, a websocket change feed, and the clear/refresh
// command surface.
type Server struct {
	engine *gin.Engine
	store  *store.Store
	port   string
}

// New creates the dashboard server for one debug session.
func New(st *store.Store, port string) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	// Disable automatic redirects that cause 301 issues.
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	s := &Server{
		engine: engine,
		store:  st,
		port:   port,
	}

	s.setupRoutes()
	return s
}

// serveEmbedded reads a file from the embedded FS and writes it with the given content type.
func serveEmbedded(webContent fs.FS, name string, contentType string) gin.HandlerFunc {
	// Pre-read the file at startup so we don't read on every request.
	data, err := fs.ReadFile(webContent, name)
	return func(c *gin.Context) {
		if err != nil {
			c.String(http.StatusNotFound, "file not found: %s", name)
			return
		}
		c.Data(http.StatusOK, contentType, data)
	}
}

func (s *Server) setupRoutes() {
	webContent, _ := fs.Sub(webFS, "web")

	// Dashboard — serve embedded files directly with correct content types.
	s.engine.GET("/", serveEmbedded(webContent, "index.html", "text/html; charset=utf-8"))
	s.engine.GET("/style.css", serveEmbedded(webContent, "style.css", "text/css; charset=utf-8"))
	s.engine.GET("/app.js", serveEmbedded(webContent, "app.js", "application/javascript; charset=utf-8"))

	// Health check.
	s.engine.GET("/healthz", func(c *gin.Context) {
		stats := s.store.Stats()
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"uptime":         stats.Uptime,
			"total_events":   stats.TotalEvents,
			"dropped_notes":  stats.DroppedNotes,
			"active_session": stats.ActiveSession,
		})
	})

	// Session stats.
	s.engine.GET("/api/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Stats())
	})

	// Channel snapshots.
	s.engine.GET("/api/console", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Console())
	})
	s.engine.GET("/api/system", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.System())
	})
	s.engine.GET("/api/connect", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Connect())
	})
	s.engine.GET("/api/network", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Network())
	})
	s.engine.GET("/api/page", func(c *gin.Context) {
		snap := s.store.Page()
		if snap == nil {
			c.JSON(http.StatusOK, gin.H{})
			return
		}
		c.JSON(http.StatusOK, snap)
	})
	s.engine.GET("/api/storage", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.StorageAll())
	})
	s.engine.GET("/api/database", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.Database())
	})

	// Command surface.
	s.engine.POST("/api/clear/:channel", func(c *gin.Context) {
		ch := model.Channel(c.Param("channel"))
		if ch != model.ChannelConsole && ch != model.ChannelNetwork {
			c.JSON(http.StatusBadRequest, gin.H{"error": "channel does not support clearing"})
			return
		}
		s.store.ClearHistory(ch)
		c.JSON(http.StatusOK, gin.H{"cleared": string(ch)})
	})
	s.engine.POST("/api/refresh/:channel", func(c *gin.Context) {
		ch := model.Channel(c.Param("channel"))
		if !ch.Known() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown channel"})
			return
		}
		s.store.RequestRefresh(ch)
		c.JSON(http.StatusOK, gin.H{"refreshing": string(ch)})
	})

	// WebSocket change feed.
	s.engine.GET("/ws", s.handleWebSocket)

	// pprof profiling endpoints.
	s.engine.GET("/debug/pprof/", gin.WrapF(pprof.Index))
	s.engine.GET("/debug/pprof/profile", gin.WrapF(pprof.Profile))
	s.engine.GET("/debug/pprof/allocs", gin.WrapH(pprof.Handler("allocs")))
	s.engine.GET("/debug/pprof/heap", gin.WrapH(pprof.Handler("heap")))
	s.engine.GET("/debug/pprof/goroutine", gin.WrapH(pprof.Handler("goroutine")))
}

// Start runs the server. Blocks until the server is stopped.
func (s *Server) Start() error {
	return s.engine.Run(":" + s.port)
}
