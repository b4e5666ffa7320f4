package session

import (
	"errors"

	"github.com/amonks/taskmaster/internal/validation"
)

var (
	// ErrNotAuthenticated indicates an operation needs a signed-in user.
	ErrNotAuthenticated = errors.New("not logged in")
	// ErrInvalidUser indicates a login with a user that has no id.
	ErrInvalidUser = errors.New("user has no id")
	// ErrInvalidLogoutPolicy indicates an unknown logout policy name.
	ErrInvalidLogoutPolicy = errors.New("invalid logout policy")
)

func formatInvalidLogoutPolicyError(policy string) error {
	return validation.FormatInvalidValueError(ErrInvalidLogoutPolicy, LogoutPolicy(policy), ValidLogoutPolicies())
}
