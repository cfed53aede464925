package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP returns the first parseable address from X-Forwarded-For,
// then X-Real-IP, then the connection's remote address. The result keys
// both the rate limiter and the geolocation cache.
func getClientIP(c *gin.Context) string {
	for _, candidate := range strings.Split(c.GetHeader("X-Forwarded-For"), ",") {
		if ip := parseIP(candidate); ip != "" {
			return ip
		}
	}
	if ip := parseIP(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}

	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// spoofed garbage in a header falls through to the next source
func parseIP(raw string) string {
	raw = strings.TrimSpace(raw)
	if net.ParseIP(raw) == nil {
		return ""
	}
	return raw
}
