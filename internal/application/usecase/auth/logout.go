package auth

import (
	"context"
	"fmt"

	"taskdash/internal/domain/repository"
)

// LogoutUseCase handles ending a session
type LogoutUseCase struct {
	authRepo repository.AuthRepository
}

// NewLogoutUseCase creates a new LogoutUseCase
func NewLogoutUseCase(authRepo repository.AuthRepository) *LogoutUseCase {
	return &LogoutUseCase{
		authRepo: authRepo,
	}
}

// Execute ends the session
func (uc *LogoutUseCase) Execute(ctx context.Context) error {
	if err := uc.authRepo.Logout(ctx); err != nil {
		return fmt.Errorf("failed to log out: %w", err)
	}
	return nil
}
