package entity

import (
	"errors"
	"testing"

	"taskdash/internal/domain/valueobject"
)

func TestNewTaskRequiresID(t *testing.T) {
	_, err := NewTask("", "Write report", valueobject.PriorityHigh, valueobject.StatusPending, "", "")
	if !errors.Is(err, ErrInvalidTaskID) {
		t.Fatalf("expected ErrInvalidTaskID, got %v", err)
	}
}

func TestNewTaskKeepsUnknownValues(t *testing.T) {
	task, err := NewTask("t1", "", valueobject.Priority("Critical"), valueobject.Status("Archived"), "soon", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Priority() != "Critical" || task.Status() != "Archived" {
		t.Fatalf("expected store values to be carried through, got %q/%q", task.Priority(), task.Status())
	}
	if _, ok := task.Start(); ok {
		t.Fatalf("expected unparseable start time")
	}
	if _, ok := task.TimeOf(valueobject.SortFieldNone); ok {
		t.Fatalf("expected no timestamp for SortFieldNone")
	}
}
