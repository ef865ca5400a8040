package tracking

import (
	"strings"

	"github.com/google/uuid"
)

// TokenLength is the number of characters in the random part of a tracking id.
const TokenLength = 8

// NewID generates a human-shareable tracking id: an 8-character uppercase
// hex token, optionally prefixed (e.g. "CB-1A2B3C4D"). Collisions across the
// token space are negligible; the unique index on the column is the backstop.
func NewID(prefix string) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:TokenLength]
	if prefix == "" {
		return token
	}
	return prefix + token
}
