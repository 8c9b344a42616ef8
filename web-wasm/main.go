//go:build js && wasm
// +build js,wasm

package main

import (
	"log/slog"
	"strings"
	"syscall/js"

	"github.com/Zachkp/zach-dev/internal/content"
	"github.com/Zachkp/zach-dev/internal/dom"
	"github.com/Zachkp/zach-dev/internal/dom/jsdom"
	"github.com/Zachkp/zach-dev/internal/logging"
	"github.com/Zachkp/zach-dev/internal/ui"
)

func main() {
	level := slog.LevelInfo
	if strings.Contains(js.Global().Get("location").Get("search").String(), "debug") {
		level = slog.LevelDebug
	}
	logger := logging.New(level)

	// The loader script sits at the end of <body>, so the document is parsed
	// by the time this runs.
	doc := jsdom.New()
	roles := pageRoles(doc, logger)

	if _, err := ui.Mount(doc, jsdom.Scheduler{}, roles, ui.WithLogger(logger)); err != nil {
		logger.Error("mount failed", "error", err)
		return
	}

	// Listeners and timers are JS callbacks into this program; keep it alive.
	select {}
}

// pageRoles reads the roles the server embedded in the page, falling back to
// the built-in list.
func pageRoles(doc dom.Document, logger *slog.Logger) []string {
	if el := doc.ByID(dom.IDRoles); el != nil {
		roles, err := content.ParseRoles([]byte(el.Text()))
		if err == nil {
			return roles
		}
		logger.Warn("page roles unreadable, using defaults", "error", err)
	}
	c, err := content.Default()
	if err != nil {
		logger.Error("default content", "error", err)
		return nil
	}
	return c.Roles
}
