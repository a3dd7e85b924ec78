package uid

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateGameID returns a random 32 char hex id, short enough for a URL.
func GenerateGameID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// IsGameID reports whether s looks like something GenerateGameID produced.
func IsGameID(s string) bool {
	if len(s) != 32 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
