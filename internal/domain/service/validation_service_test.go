package service

import (
	"errors"
	"strings"
	"testing"

	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/valueobject"
)

func TestValidateDraftRequiresTitlePriorityStatus(t *testing.T) {
	svc := NewValidationService()

	err := svc.ValidateDraft(entity.TaskDraft{
		Title:    "",
		Priority: valueobject.PriorityHigh,
		Status:   valueobject.StatusPending,
	})
	if !errors.Is(err, entity.ErrRequiredField) {
		t.Fatalf("expected ErrRequiredField, got %v", err)
	}
	if !strings.Contains(err.Error(), "title") {
		t.Fatalf("expected missing field to be named, got %v", err)
	}

	err = svc.ValidateDraft(entity.TaskDraft{})
	if err == nil || !strings.Contains(err.Error(), "title, priority, status") {
		t.Fatalf("expected all three fields named, got %v", err)
	}
}

func TestValidateDraftIgnoresTimeWindow(t *testing.T) {
	svc := NewValidationService()
	err := svc.ValidateDraft(entity.TaskDraft{
		Title:     "Backwards",
		Priority:  valueobject.PriorityLow,
		Status:    valueobject.StatusCompleted,
		StartTime: "2024-01-02T00:00",
		EndTime:   "2024-01-01T00:00",
	})
	if err != nil {
		t.Fatalf("expected chronology to go unchecked, got %v", err)
	}
}

func TestValidateCredentials(t *testing.T) {
	svc := NewValidationService()
	if err := svc.ValidateCredentials("", "a@b.c", "pw", false); err != nil {
		t.Fatalf("login should not need a name: %v", err)
	}
	if err := svc.ValidateCredentials("", "a@b.c", "pw", true); !errors.Is(err, entity.ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if err := svc.ValidateCredentials("Ann", " ", "pw", true); !errors.Is(err, entity.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if err := svc.ValidateCredentials("Ann", "a@b.c", "", true); !errors.Is(err, entity.ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}
