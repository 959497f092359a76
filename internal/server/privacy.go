package server

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SubhankarA8415/portfolio/internal/pkg/logger"
)

// untrackedPrefixes are never logged: assets and the health probe.
var untrackedPrefixes = []string{"/static/", "/app/", "/favicon", "/healthz"}

// newSalt returns a random per-process salt for IP hashing.
func newSalt() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ipHasher hashes client IPs so logs can tell visitors apart without
// recording the address. The same IP always maps to the same hash for the
// lifetime of the salt.
type ipHasher struct {
	salt string
}

func (h ipHasher) hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// visitLogger logs page requests with a hashed client IP. Requests with
// "DNT: 1" and asset requests are not logged.
func visitLogger(log *logger.Logger, h ipHasher) gin.HandlerFunc {
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

		start := time.Now()
		c.Next()
		log.Info("visit",
			"visitor", h.hash(c.ClientIP()),
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"user_agent", c.Request.UserAgent(),
		)
	}
}
