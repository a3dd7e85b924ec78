package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-hotseat/internal/transport/http/middleware"
	"github.com/iamasit07/connect4-hotseat/pkg/auth"
)

type RouterOptions struct {
	AllowedOrigins []string
	StaticDir      string
	Tokens         *auth.TokenManager
	Games          *GameHandler
	WebSocket      gin.HandlerFunc
}

func NewRouter(opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(opts.AllowedOrigins))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/games")
	api.POST("", opts.Games.CreateGame)
	api.GET("", opts.Games.ListGames)

	// everything about a single game needs that game's token
	protected := api.Group("/:id")
	protected.Use(middleware.GameAuthMiddleware(opts.Tokens))
	{
		protected.GET("", opts.Games.GetGame)
		protected.POST("/moves", opts.Games.DropPiece)
		protected.POST("/rematch", opts.Games.Rematch)
		protected.DELETE("", opts.Games.AbandonGame)
	}

	if opts.WebSocket != nil {
		router.GET("/ws", opts.WebSocket)
	}

	if opts.StaticDir != "" {
		serveStatic(router, opts.StaticDir)
	}

	return router
}

// serveStatic serves the browser page from dir, falling back to index.html
func serveStatic(router *gin.Engine, dir string) {
	if _, err := os.Stat(dir); err != nil {
		return
	}

	index := filepath.Join(dir, "index.html")
	router.GET("/", func(c *gin.Context) {
		c.File(index)
	})

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}

		if strings.HasSuffix(c.Request.URL.Path, ".css") || strings.HasSuffix(c.Request.URL.Path, ".js") {
			c.Status(http.StatusNotFound)
			return
		}

		c.File(index)
	})
}
