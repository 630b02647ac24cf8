package auth

import (
	"context"
	"fmt"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/repository"
)

// GetSessionUseCase reports the current session state
type GetSessionUseCase struct {
	authRepo repository.AuthRepository
}

// NewGetSessionUseCase creates a new GetSessionUseCase
func NewGetSessionUseCase(authRepo repository.AuthRepository) *GetSessionUseCase {
	return &GetSessionUseCase{
		authRepo: authRepo,
	}
}

// Execute checks the session with the store and loads the user when it is valid
func (uc *GetSessionUseCase) Execute(ctx context.Context) (*dto.SessionDTO, error) {
	loggedIn, err := uc.authRepo.IsAuthenticated(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !loggedIn {
		return &dto.SessionDTO{LoggedIn: false}, nil
	}

	user, err := uc.authRepo.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user data: %w", err)
	}
	return &dto.SessionDTO{LoggedIn: true, User: dto.UserToDTO(user)}, nil
}
