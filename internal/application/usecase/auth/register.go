package auth

import (
	"context"
	"fmt"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/repository"
	"taskdash/internal/domain/service"
)

// RegisterUseCase handles creating an account
type RegisterUseCase struct {
	authRepo          repository.AuthRepository
	validationService *service.ValidationService
}

// NewRegisterUseCase creates a new RegisterUseCase
func NewRegisterUseCase(authRepo repository.AuthRepository, validationService *service.ValidationService) *RegisterUseCase {
	return &RegisterUseCase{
		authRepo:          authRepo,
		validationService: validationService,
	}
}

// Execute registers the account; the store logs the new user in
func (uc *RegisterUseCase) Execute(ctx context.Context, req dto.CredentialsRequest) (*dto.UserDTO, error) {
	if err := uc.validationService.ValidateCredentials(req.Name, req.Email, req.Password, true); err != nil {
		return nil, err
	}

	if err := uc.authRepo.Register(ctx, req.Name, req.Email, req.Password); err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}

	user, err := uc.authRepo.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load user data: %w", err)
	}
	return dto.UserToDTO(user), nil
}
