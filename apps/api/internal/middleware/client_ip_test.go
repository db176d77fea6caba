package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newIPTestContext(headers map[string]string) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.1:51234"
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestGetClientIP(t *testing.T) {
	initMiddlewareTestLogger()

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "x_real_ip_first",
			headers: map[string]string{"X-Real-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"},
			want:    "203.0.113.7",
		},
		{
			name:    "forwarded_for_takes_first_hop",
			headers: map[string]string{"X-Forwarded-For": "198.51.100.1, 10.0.0.2, 10.0.0.3"},
			want:    "198.51.100.1",
		},
		{
			name:    "x_client_ip_must_be_valid",
			headers: map[string]string{"X-Client-IP": "not-an-ip"},
			want:    "192.0.2.1",
		},
		{
			name:    "remote_addr_fallback",
			headers: nil,
			want:    "192.0.2.1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newIPTestContext(tt.headers)
			assert.Equal(t, tt.want, GetClientIP(c))
		})
	}
}

func TestGetClientIPSafe(t *testing.T) {
	initMiddlewareTestLogger()

	c := newIPTestContext(map[string]string{"X-Real-IP": "203.0.113.7"})
	ip, ok := GetClientIPSafe(c)
	assert.True(t, ok)
	assert.Equal(t, "203.0.113.7", ip)

	c = newIPTestContext(map[string]string{"X-Real-IP": "garbage"})
	_, ok = GetClientIPSafe(c)
	assert.False(t, ok)
}
