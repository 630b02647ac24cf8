package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/repository"
	"taskdash/internal/infrastructure/persistence/mapper"
)

// AuthRepositoryImpl implements AuthRepository over the store's REST API
type AuthRepositoryImpl struct {
	client *Client
}

// NewAuthRepository creates a new auth repository
func NewAuthRepository(client *Client) repository.AuthRepository {
	return &AuthRepositoryImpl{client: client}
}

// IsAuthenticated reports whether the saved session is still valid. A
// rejection is a normal "no" rather than an error.
func (r *AuthRepositoryImpl) IsAuthenticated(ctx context.Context) (bool, error) {
	err := r.client.do(ctx, http.MethodGet, PathIsAuth, nil, nil)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, entity.ErrStoreRejected) {
		return false, nil
	}
	return false, err
}

// Login starts a session
func (r *AuthRepositoryImpl) Login(ctx context.Context, email, password string) error {
	return r.client.do(ctx, http.MethodPost, PathLogin, LoginPayload{
		Email:    email,
		Password: password,
	}, nil)
}

// Register creates an account; the store logs it in
func (r *AuthRepositoryImpl) Register(ctx context.Context, name, email, password string) error {
	return r.client.do(ctx, http.MethodPost, PathRegister, RegisterPayload{
		Name:     name,
		Email:    email,
		Password: password,
	}, nil)
}

// Logout ends the session. The local session is forgotten even when the
// store call fails.
func (r *AuthRepositoryImpl) Logout(ctx context.Context) error {
	callErr := r.client.do(ctx, http.MethodPost, PathLogout, nil, nil)
	if err := r.client.clearSession(); err != nil {
		return err
	}
	return callErr
}

// CurrentUser retrieves the account behind the session
func (r *AuthRepositoryImpl) CurrentUser(ctx context.Context) (*entity.User, error) {
	var reply userResponse
	if err := r.client.do(ctx, http.MethodGet, PathUserData, nil, &reply); err != nil {
		if errors.Is(err, entity.ErrStoreRejected) {
			return nil, fmt.Errorf("%w: %w", entity.ErrNotAuthenticated, err)
		}
		return nil, err
	}
	if reply.UserData == nil {
		return nil, fmt.Errorf("%w: missing user data", entity.ErrMalformedReply)
	}
	return mapper.UserFromWire(*reply.UserData), nil
}
