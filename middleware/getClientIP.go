package middleware

import (
	"net"
	"strings"

	"github.com/fierogr/findfarewells-sub000/config"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the caller's address for rate limiting. Forwarding
// headers are only honored when TRUST_PROXY_HEADERS is set; a deployment
// reachable directly must not trust client-supplied headers.
func getClientIP(c *gin.Context) string {
	if config.AppConfig.TrustProxyHeaders {
		// X-Forwarded-For may carry a chain; the first entry is the client.
		if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}
		if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
			return xri
		}
	}

	if host, _, err := net.SplitHostPort(c.Request.RemoteAddr); err == nil {
		return host
	}
	return c.Request.RemoteAddr
}
