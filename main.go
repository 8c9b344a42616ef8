package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/zach-dev/internal/config"
	"github.com/Zachkp/zach-dev/internal/content"
	"github.com/Zachkp/zach-dev/internal/logging"
	"github.com/Zachkp/zach-dev/internal/site"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	logger := logging.New(cfg.Level())

	salt, err := newSalt()
	if err != nil {
		log.Fatal("Failed to generate visitor salt: ", err)
	}

	r, err := newRouter(cfg, logger, salt)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	logger.Info("serving portfolio", "addr", cfg.Addr(), "wasm_dir", cfg.WasmDir)
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newRouter(cfg config.Config, logger *slog.Logger, salt string) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)

	c, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, err
	}
	s, err := site.New(c)
	if err != nil {
		return nil, err
	}
	if err := s.CheckContract(c.Roles, logger); err != nil {
		return nil, err
	}
	if _, err := os.Stat(cfg.WasmDir); err != nil {
		logger.Warn("wasm directory unavailable, page will render without interactions",
			"dir", cfg.WasmDir, "error", err)
	}

	// gin's request logger prints client addresses; page views are logged
	// by visitorLogMiddleware instead.
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(s.Templates())
	r.Use(visitorLogMiddleware(logger, salt))

	r.StaticFS("/static", site.Static())
	r.Static("/wasm", cfg.WasmDir)

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, site.PageTemplate, s.Page())
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	logger.Debug("routes ready",
		"projects", len(c.Projects),
		"roles", len(c.Roles),
		"content", contentSource(cfg.ContentPath))
	return r, nil
}

func contentSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return fmt.Sprintf("file:%s", path)
}
