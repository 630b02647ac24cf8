package mapper

import (
	"encoding/json"
	"errors"
	"testing"

	"taskdash/internal/domain/entity"
	"taskdash/internal/domain/valueobject"
)

func TestTaskFromWireCarriesUnknownValues(t *testing.T) {
	task, err := TaskFromWire(TaskWire{
		ID:       "t1",
		Title:    "Write report",
		Priority: "Urgent",
		Status:   "Blocked",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Priority() != valueobject.Priority("Urgent") || task.Status() != valueobject.Status("Blocked") {
		t.Fatalf("expected values carried verbatim, got %s/%s", task.Priority(), task.Status())
	}
}

func TestTaskFromWireRequiresID(t *testing.T) {
	if _, err := TaskFromWire(TaskWire{Title: "no id"}); !errors.Is(err, entity.ErrMalformedReply) {
		t.Fatalf("expected ErrMalformedReply, got %v", err)
	}
}

func TestSummaryFromWire(t *testing.T) {
	body := `{
		"taskCounts": {"total": 4, "completed": 1, "pending": 2, "inProgress": 1},
		"percentages": {"completed": "25.00", "pending": 75},
		"timeAnalysisByPriority": {
			"High": {"elapsed": -3, "remaining": 5},
			"Low": {"elapsed": 1.5, "remaining": null}
		},
		"averageCompletionTime": 2.25
	}`

	var w SummaryWire
	if err := json.Unmarshal([]byte(body), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	summary := SummaryFromWire(w)

	if summary.Counts.Total != 4 || summary.Counts.InProgress != 1 {
		t.Fatalf("unexpected counts: %+v", summary.Counts)
	}
	if summary.Percentages.Completed != 25 || summary.Percentages.Pending != 75 {
		t.Fatalf("unexpected percentages: %+v", summary.Percentages)
	}
	if got := summary.TimeByPriority[valueobject.PriorityHigh].Elapsed; got != -3 {
		t.Fatalf("expected raw elapsed -3, got %v", got)
	}
	if _, ok := summary.TimeByPriority[valueobject.PriorityMedium]; ok {
		t.Fatal("expected missing priority to be absent")
	}
	if summary.AverageCompletionTime != 2.25 {
		t.Fatalf("expected 2.25, got %v", summary.AverageCompletionTime)
	}
}

func TestNumberRejectsGarbage(t *testing.T) {
	var n Number
	if err := json.Unmarshal([]byte(`"abc"`), &n); err == nil {
		t.Fatal("expected error for non-numeric string")
	}
}
