// Package ids generates and resolves record identifiers.
package ids

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a random lowercase UUID.
func New() string {
	return uuid.NewString()
}

// NewWithPrefix returns a random UUID behind a kind prefix, like "user_<uuid>".
func NewWithPrefix(prefix string) string {
	prefix = strings.TrimSuffix(prefix, "_")
	if prefix == "" {
		return New()
	}
	return prefix + "_" + New()
}
