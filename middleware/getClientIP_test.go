package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fierogr/findfarewells-sub000/config"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	return c
}

func TestGetClientIP(t *testing.T) {
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })

	tests := []struct {
		name       string
		trustProxy bool
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{
			"forwarded chain behind proxy",
			true, "10.0.0.1:4433",
			map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"},
			"203.0.113.7",
		},
		{
			"real ip behind proxy",
			true, "10.0.0.1:4433",
			map[string]string{"X-Real-IP": "203.0.113.7"},
			"203.0.113.7",
		},
		{
			"headers ignored when proxy untrusted",
			false, "198.51.100.2:9000",
			map[string]string{"X-Forwarded-For": "203.0.113.7"},
			"198.51.100.2",
		},
		{
			"remote addr without headers",
			true, "198.51.100.2:9000",
			nil,
			"198.51.100.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config.AppConfig.TrustProxyHeaders = tt.trustProxy
			c := testContext(t, tt.remoteAddr, tt.headers)
			if got := getClientIP(c); got != tt.want {
				t.Errorf("getClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
