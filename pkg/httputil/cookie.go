package httputil

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const GameCookieName = "game_token"

var ErrNoToken = errors.New("no game token found in header, query or cookie")

// SetGameCookie stores the game token so a page reload keeps playing the same game.
func SetGameCookie(w http.ResponseWriter, token string, ttl time.Duration, production bool) {
	cookie := &http.Cookie{
		Name:     GameCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   production,
	}

	// SameSite=None requires Secure=true, so use Lax for development
	if production {
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteLaxMode
	}

	http.SetCookie(w, cookie)
}

func ClearGameCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     GameCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// GetTokenFromRequest looks at the Authorization header first, then the token query
// parameter (browsers can't set headers on a websocket upgrade), then the cookie.
func GetTokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return token, nil
		}
		return authHeader, nil
	}

	if token := r.URL.Query().Get("token"); token != "" {
		return token, nil
	}

	cookie, err := r.Cookie(GameCookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", ErrNoToken
}
