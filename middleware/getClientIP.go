package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the originating client address for rate limiting,
// preferring proxy headers over the socket peer. X-Forwarded-For may carry a
// hop chain; the first entry is the client.
func getClientIP(c *gin.Context) string {
	for _, header := range []string{"X-Forwarded-For", "X-Real-IP"} {
		value := c.GetHeader(header)
		if value == "" {
			continue
		}
		first, _, _ := strings.Cut(value, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
