// Package user implements the mock account directory behind sign-up and login.
package user

import (
	"strings"

	internalstrings "github.com/amonks/taskmaster/internal/strings"
)

// AvatarBaseURL is the avatar service used for generated profile images.
const AvatarBaseURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// User is an account as seen by the session and task layers.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Password holds a bcrypt hash. It is never stored in the session record.
	Password string `json:"password,omitempty"`
	Image    string `json:"image,omitempty"`
}

// Public returns a copy of u without the password hash.
func (u User) Public() User {
	u.Password = ""
	return u
}

// Valid reports whether u carries an identity.
func (u User) Valid() bool {
	return strings.TrimSpace(u.ID) != ""
}

// AvatarURL returns the generated avatar image for seed.
func AvatarURL(seed string) string {
	return AvatarBaseURL + seed
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return internalstrings.NormalizeLowerTrimSpace(email)
}
