// visitors.go - privacy-conscious page view logging
package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

// untrackedPrefixes are asset and health-check paths that are not page views.
var untrackedPrefixes = []string{"/static/", "/wasm/", "/favicon", "/healthz"}

// newSalt returns a per-process salt so visitor hashes cannot be joined
// across restarts.
func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Hash IP address for privacy (consistent per IP within one process)
func hashIP(salt, ip string) string {
	h := sha256.New()
	h.Write([]byte(ip + salt))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// visitorLogMiddleware logs page views with a hashed client address. Asset
// requests and clients sending Do Not Track are skipped.
func visitorLogMiddleware(logger *slog.Logger, salt string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range untrackedPrefixes {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()
		logger.Info("page view",
			"visitor", hashIP(salt, c.ClientIP()),
			"path", path,
			"status", c.Writer.Status(),
			"user_agent", c.GetHeader("User-Agent"))
	}
}
