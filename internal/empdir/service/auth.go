package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/empdir/internal/empdir/domain"
	"github.com/aussiebroadwan/empdir/internal/empdir/store"
	"github.com/aussiebroadwan/empdir/pkg/cryptox"
	"github.com/aussiebroadwan/empdir/pkg/idx"
	"github.com/aussiebroadwan/empdir/pkg/jwtx"
	"github.com/aussiebroadwan/empdir/pkg/slogx"
)

// AuthService implements signup and login. Tokens are issued through the
// shared Signer so issuing and request-time verification stay in lockstep.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// Signup registers a new user, hashes the password and returns a token
// alongside the persisted user.
func (s *AuthService) Signup(
	ctx context.Context,
	username, email, password string,
) (domain.AuthPayload, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	switch {
	case username == "":
		return domain.AuthPayload{}, validationf("username is required")
	case email == "":
		return domain.AuthPayload{}, validationf("email is required")
	case password == "":
		return domain.AuthPayload{}, validationf("password is required")
	}

	// Best-effort pre-check; the unique indexes are the real guarantee.
	if err := s.checkAvailable(ctx, username, email); err != nil {
		return domain.AuthPayload{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.AuthPayload{}, internal(err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost the race against a concurrent signup.
			return domain.AuthPayload{}, validationf("username or email already taken")
		}
		return domain.AuthPayload{}, internal(err)
	}

	created, err := s.Store.Users().GetUserByID(ctx, user.ID)
	if err != nil {
		return domain.AuthPayload{}, internal(err)
	}

	token, err := s.issueToken(created)
	if err != nil {
		return domain.AuthPayload{}, internal(err)
	}

	slogx.FromContext(ctx).Info("user signed up",
		slog.String("user_id", created.ID),
		slog.String("username", created.Username),
	)

	return domain.AuthPayload{Token: token, User: created}, nil
}

// Login resolves a user by username or email and verifies the password
// against the stored hash. A missing user and a wrong password are
// distinct failures so clients can tell them apart.
func (s *AuthService) Login(
	ctx context.Context,
	username, email, password string,
) (domain.AuthPayload, error) {
	user, err := s.lookup(ctx, strings.TrimSpace(username), strings.TrimSpace(email))
	if err != nil {
		return domain.AuthPayload{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			slogx.FromContext(ctx).Info("login rejected",
				slog.String("user_id", user.ID))
			return domain.AuthPayload{}, authenticationf("invalid credentials")
		}
		return domain.AuthPayload{}, internal(err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return domain.AuthPayload{}, internal(err)
	}

	return domain.AuthPayload{Token: token, User: user}, nil
}

func (s *AuthService) checkAvailable(ctx context.Context, username, email string) error {
	if _, err := s.Store.Users().GetUserByUsername(ctx, username); err == nil {
		return validationf("username or email already taken")
	} else if !errors.Is(err, store.ErrNotFound) {
		return internal(err)
	}

	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return validationf("username or email already taken")
	} else if !errors.Is(err, store.ErrNotFound) {
		return internal(err)
	}

	return nil
}

func (s *AuthService) lookup(ctx context.Context, username, email string) (domain.User, error) {
	if username != "" {
		user, err := s.Store.Users().GetUserByUsername(ctx, username)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.User{}, internal(err)
		}
	}

	if email != "" {
		user, err := s.Store.Users().GetUserByEmail(ctx, email)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return domain.User{}, internal(err)
		}
	}

	return domain.User{}, notFoundf("user not found")
}

func (s *AuthService) issueToken(user domain.User) (string, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}

	claims := jwtx.NewIdentityClaims(
		user.ID, user.Username, user.Email,
		s.Issuer, ttl, time.Now().UTC(),
	)
	return s.Signer.Sign(claims)
}
