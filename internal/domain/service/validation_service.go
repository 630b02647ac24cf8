package service

import (
	"fmt"
	"strings"

	"taskdash/internal/domain/entity"
)

// ValidationService provides the client-side checks run before the store
// is contacted
type ValidationService struct{}

// NewValidationService creates a new ValidationService
func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// ValidateDraft checks that title, priority and status are present.
// Start and end times are optional and their order is not checked.
func (s *ValidationService) ValidateDraft(draft entity.TaskDraft) error {
	var missing []string
	if draft.Title == "" {
		missing = append(missing, "title")
	}
	if draft.Priority.IsEmpty() {
		missing = append(missing, "priority")
	}
	if draft.Status.IsEmpty() {
		missing = append(missing, "status")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", entity.ErrRequiredField, strings.Join(missing, ", "))
	}
	return nil
}

// ValidateCredentials checks login or registration input. An empty name is
// only rejected when registering.
func (s *ValidationService) ValidateCredentials(name, email, password string, registering bool) error {
	if registering && strings.TrimSpace(name) == "" {
		return entity.ErrEmptyName
	}
	if strings.TrimSpace(email) == "" {
		return entity.ErrInvalidEmail
	}
	if password == "" {
		return entity.ErrInvalidPassword
	}
	return nil
}
