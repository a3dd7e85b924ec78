package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSameOrigin(t *testing.T) {
	tests := []struct {
		name   string
		host   string
		origin string
		want   bool
	}{
		{"same host and port", "127.0.0.1:8080", "http://127.0.0.1:8080", true},
		{"host differs only by case", "Connect4.example.com", "https://connect4.example.com", true},
		{"different port", "127.0.0.1:8080", "http://127.0.0.1:5173", false},
		{"different host", "connect4.example.com", "https://evil.example.com", false},
		{"opaque origin", "connect4.example.com", "null", false},
		{"garbage", "connect4.example.com", "://", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Host = tt.host

			assert.Equal(t, tt.want, IsSameOrigin(r, tt.origin))
		})
	}
}
