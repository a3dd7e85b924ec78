package httputil

import (
	"net/http"
	"net/url"
	"strings"
)

// IsSameOrigin reports whether origin points at the host r was sent to,
// which is the case for the page this server hands out itself.
func IsSameOrigin(r *http.Request, origin string) bool {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}
