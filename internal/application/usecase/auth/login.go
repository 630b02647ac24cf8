package auth

import (
	"context"
	"fmt"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/repository"
	"taskdash/internal/domain/service"
)

// LoginUseCase handles starting a session
type LoginUseCase struct {
	authRepo          repository.AuthRepository
	validationService *service.ValidationService
}

// NewLoginUseCase creates a new LoginUseCase
func NewLoginUseCase(authRepo repository.AuthRepository, validationService *service.ValidationService) *LoginUseCase {
	return &LoginUseCase{
		authRepo:          authRepo,
		validationService: validationService,
	}
}

// Execute logs in and returns the account behind the new session
func (uc *LoginUseCase) Execute(ctx context.Context, req dto.CredentialsRequest) (*dto.UserDTO, error) {
	if err := uc.validationService.ValidateCredentials("", req.Email, req.Password, false); err != nil {
		return nil, err
	}

	if err := uc.authRepo.Login(ctx, req.Email, req.Password); err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	user, err := uc.authRepo.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user data: %w", err)
	}
	return dto.UserToDTO(user), nil
}
