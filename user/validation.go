package user

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is wrapped by every error caused by bad form input.
	ErrValidation = errors.New("invalid input")

	// ErrMissingFields is returned when email or password is empty.
	ErrMissingFields = fmt.Errorf("%w: please fill in all fields", ErrValidation)

	// ErrNameRequired is returned when signing up without a name.
	ErrNameRequired = fmt.Errorf("%w: name required", ErrValidation)

	// ErrInvalidEmail is returned when an email address cannot be parsed.
	ErrInvalidEmail = fmt.Errorf("%w: invalid email address", ErrValidation)

	// ErrEmailTaken is returned when signing up with a registered email.
	ErrEmailTaken = fmt.Errorf("%w: email already registered", ErrValidation)

	// ErrUnknownEmail is returned when logging in with an unregistered email.
	ErrUnknownEmail = fmt.Errorf("%w: email not registered", ErrValidation)

	// ErrWrongPassword is returned when a password does not match.
	ErrWrongPassword = fmt.Errorf("%w: wrong password", ErrValidation)
)
