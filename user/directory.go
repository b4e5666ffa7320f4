package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/amonks/taskmaster/internal/ids"
	"github.com/amonks/taskmaster/internal/kv"
	internalstrings "github.com/amonks/taskmaster/internal/strings"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// GoogleEmail is the address given to the mock Google identity.
const GoogleEmail = "user@gmail.com"

// Options configures a Directory.
type Options struct {
	// Cost is the bcrypt cost. Defaults to bcrypt.DefaultCost.
	Cost int

	// NewID generates a user id behind a kind prefix. Defaults to
	// ids.NewWithPrefix.
	NewID func(prefix string) string

	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Directory is the table of registered users, keyed by email and
// persisted under kv.UsersKey.
type Directory struct {
	store  kv.Store
	cost   int
	newID  func(prefix string) string
	logger *zap.Logger
}

// NewDirectory returns a directory backed by store.
func NewDirectory(store kv.Store, opts Options) *Directory {
	if opts.Cost == 0 {
		opts.Cost = bcrypt.DefaultCost
	}
	if opts.NewID == nil {
		opts.NewID = ids.NewWithPrefix
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Directory{
		store:  store,
		cost:   opts.Cost,
		newID:  opts.NewID,
		logger: opts.Logger,
	}
}

// SignUp registers a new user and returns it without the password hash.
func (d *Directory) SignUp(ctx context.Context, name, email, password string) (User, error) {
	email = NormalizeEmail(email)
	name = internalstrings.NormalizeWhitespace(name)
	if email == "" || password == "" {
		return User{}, ErrMissingFields
	}
	if name == "" {
		return User{}, ErrNameRequired
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return User{}, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}

	users, err := d.read(ctx)
	if err != nil {
		return User{}, err
	}
	if _, ok := users[email]; ok {
		return User{}, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), d.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	created := User{
		ID:       d.newID("user"),
		Name:     name,
		Email:    email,
		Password: string(hash),
		Image:    AvatarURL(email),
	}
	users[email] = created
	if err := kv.SetJSON(ctx, d.store, kv.UsersKey, users); err != nil {
		return User{}, fmt.Errorf("write users: %w", err)
	}

	d.logger.Info("user signed up", zap.String("id", created.ID), zap.String("email", email))
	return created.Public(), nil
}

// Login returns the registered user for email if password matches.
func (d *Directory) Login(ctx context.Context, email, password string) (User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return User{}, ErrMissingFields
	}

	found, ok, err := d.Lookup(ctx, email)
	if err != nil {
		return User{}, err
	}
	if !ok {
		return User{}, fmt.Errorf("%w: %s", ErrUnknownEmail, email)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return User{}, ErrWrongPassword
		}
		return User{}, fmt.Errorf("check password: %w", err)
	}
	return found.Public(), nil
}

// Lookup returns the stored user for email, including its password hash.
func (d *Directory) Lookup(ctx context.Context, email string) (User, bool, error) {
	users, err := d.read(ctx)
	if err != nil {
		return User{}, false, err
	}
	found, ok := users[NormalizeEmail(email)]
	return found, ok, nil
}

// Count returns the number of registered users.
func (d *Directory) Count(ctx context.Context) (int, error) {
	users, err := d.read(ctx)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}

// GoogleUser returns a fresh mock Google identity. It is not registered in
// the directory.
func (d *Directory) GoogleUser() User {
	return User{
		ID:    d.newID("google"),
		Name:  "Google User",
		Email: GoogleEmail,
		Image: AvatarURL("google"),
	}
}

func (d *Directory) read(ctx context.Context) (map[string]User, error) {
	users, ok, err := kv.GetJSON[map[string]User](ctx, d.store, kv.UsersKey)
	if err != nil {
		return nil, fmt.Errorf("read users: %w", err)
	}
	if !ok || users == nil {
		users = make(map[string]User)
	}
	return users, nil
}
