package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"

	"taskdash/internal/application/dto"
	"taskdash/internal/domain/valueobject"
)

func listFlags(t *testing.T, values map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "list"}
	for _, name := range []string{"status", "priority", "sort", "order"} {
		cmd.Flags().String(name, "", "")
	}
	for name, value := range values {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	return cmd
}

func draftFlags(t *testing.T, values map[string]string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "create"}
	for _, name := range []string{"title", "priority", "status", "start", "end"} {
		cmd.Flags().String(name, "", "")
	}
	for name, value := range values {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	return cmd
}

func TestListQueryFromFlags(t *testing.T) {
	query, err := listQueryFromFlags(listFlags(t, map[string]string{
		"status":   "in-progress",
		"priority": "HIGH",
		"sort":     "end",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if query.Filter.Status != valueobject.StatusInProgress || query.Filter.Priority != valueobject.PriorityHigh {
		t.Fatalf("unexpected filter: %+v", query.Filter)
	}
	if query.Sort.Field != valueobject.SortFieldEndTime || query.Sort.Direction != valueobject.SortAscending {
		t.Fatalf("expected ascending end sort by default, got %+v", query.Sort)
	}

	query, err = listQueryFromFlags(listFlags(t, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !query.Filter.IsEmpty() || query.Sort.IsActive() {
		t.Fatalf("expected empty query, got %+v", query)
	}

	if _, err := listQueryFromFlags(listFlags(t, map[string]string{"order": "desc"})); err == nil {
		t.Fatal("expected --order without --sort to fail")
	}
	if _, err := listQueryFromFlags(listFlags(t, map[string]string{"status": "blocked"})); err == nil {
		t.Fatal("expected unknown status to fail")
	}
}

func TestDraftFromFlagsOverlaysChangedFields(t *testing.T) {
	base := dto.TaskDraft{
		Title:     "Write report",
		Priority:  "Low",
		Status:    "Pending",
		StartTime: "2025-03-01T09:00",
		EndTime:   "2025-03-01T12:00",
	}

	draft, err := draftFromFlags(draftFlags(t, map[string]string{"status": "done", "end": ""}), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Title != base.Title || draft.Priority != "Low" || draft.StartTime != base.StartTime {
		t.Fatalf("untouched fields changed: %+v", draft)
	}
	if draft.Status != "Completed" || draft.EndTime != "" {
		t.Fatalf("expected status and cleared end, got %+v", draft)
	}

	draft, err = draftFromFlags(draftFlags(t, map[string]string{"start": " tomorrow "}), base)
	if err != nil {
		t.Fatalf("expected free-form start to pass through, got %v", err)
	}
	if draft.StartTime != "tomorrow" {
		t.Fatalf("expected start passed through, got %q", draft.StartTime)
	}
}

func TestReadPassword(t *testing.T) {
	got, err := readPassword(strings.NewReader("s3cret\r\nignored\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "s3cret" {
		t.Fatalf("expected s3cret, got %q", got)
	}

	got, err = readPassword(strings.NewReader("no-newline"))
	if err != nil || got != "no-newline" {
		t.Fatalf("expected no-newline, got %q (%v)", got, err)
	}
}

func TestNeedsContainer(t *testing.T) {
	if needsContainer(configShowCmd) {
		t.Fatal("config subcommands should not need the store")
	}
	if needsContainer(versionCmd) {
		t.Fatal("version should not need the store")
	}
	if !needsContainer(taskListCmd) {
		t.Fatal("task list needs the store")
	}
}

type storeStub struct {
	mu      sync.Mutex
	tasks   []map[string]string
	deleted []string
}

func (s *storeStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/task", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "tasks": s.tasks})
	})
	mux.HandleFunc("/api/task/", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if r.Method == http.MethodDelete {
			s.deleted = append(s.deleted, strings.TrimPrefix(r.URL.Path, "/api/task/"))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
	})
	return mux
}

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TASKDASH_STORAGE_DATA_PATH", dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"--config", filepath.Join(dir, "config.yml")}, args...))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		outputFormat, serverURL, configPath, quiet, verbosity = "text", "", "", false, 0
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTaskListAgainstStore(t *testing.T) {
	store := &storeStub{tasks: []map[string]string{
		{"_id": "a", "title": "Later", "priority": "Low", "status": "Pending", "startTime": "2025-03-02T09:00:00Z"},
		{"_id": "b", "title": "Sooner", "priority": "Low", "status": "Pending", "startTime": "2025-03-01T09:00:00Z"},
		{"_id": "c", "title": "Other", "priority": "High", "status": "Pending", "startTime": "2025-03-01T08:00:00Z"},
	}}
	srv := httptest.NewServer(store.handler())
	defer srv.Close()

	out, err := runRoot(t, "", "--server", srv.URL, "-o", "json",
		"task", "list", "--priority", "low", "--sort", "start", "--order", "asc")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}

	var views []dto.TaskView
	if err := json.Unmarshal([]byte(out), &views); err != nil {
		t.Fatalf("expected JSON list, got %q: %v", out, err)
	}
	if len(views) != 2 || views[0].ID != "b" || views[1].ID != "a" {
		t.Fatalf("unexpected listing: %+v", views)
	}
}

func TestTaskDeleteAsksForConfirmation(t *testing.T) {
	store := &storeStub{tasks: []map[string]string{
		{"_id": "a", "title": "Doomed", "priority": "Low", "status": "Pending"},
	}}
	srv := httptest.NewServer(store.handler())
	defer srv.Close()

	out, err := runRoot(t, "n\n", "--server", srv.URL, "task", "delete", "a")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	if len(store.deleted) != 0 {
		t.Fatalf("expected no delete after declining, got %v", store.deleted)
	}
	if !strings.Contains(out, "Deletion cancelled") {
		t.Fatalf("expected cancellation notice, got %q", out)
	}

	out, err = runRoot(t, "y\n", "--server", srv.URL, "task", "delete", "a")
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "a" {
		t.Fatalf("expected delete of a, got %v", store.deleted)
	}
}

func TestConfigPathSkipsStore(t *testing.T) {
	out, err := runRoot(t, "", "--server", "ftp://not-a-store", "config", "path")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "config.yml") {
		t.Fatalf("expected config path, got %q", out)
	}
}

func TestTUIHelpDescribesSortToggle(t *testing.T) {
	if !strings.Contains(tuiCmd.Long, "press again to flip asc/desc") {
		t.Fatal("expected sort toggle help to describe asc/desc flipping")
	}
	cfg := valueobject.SortConfig{}
	for i := 0; i < 3; i++ {
		cfg = cfg.Toggle(valueobject.SortFieldStartTime)
	}
	if cfg.Direction != valueobject.SortAscending {
		t.Fatalf("expected third press to sort ascending, got %+v", cfg)
	}
}

func TestOnlyTUIRoutesLogsAwayFromTerminal(t *testing.T) {
	if !launchesTUI(tuiCmd) {
		t.Fatal("expected tui command to log to file")
	}
	if launchesTUI(taskListCmd) || launchesTUI(dashboardCmd) {
		t.Fatal("expected CLI commands to log to stderr")
	}
}
