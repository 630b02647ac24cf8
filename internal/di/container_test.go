package di

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitializeContainer(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	t.Setenv("TASKDASH_STORAGE_DATA_PATH", dir)

	container, err := InitializeContainer(Options{
		ConfigPath: filepath.Join(dir, "config.yml"),
		ServerURL:  "http://127.0.0.1:9/",
		LogOutput:  &logs,
	})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}

	if container.Config.Server.BaseURL != "http://127.0.0.1:9" {
		t.Fatalf("expected server override, got %q", container.Config.Server.BaseURL)
	}
	if container.Loader.GetConfigPath() != filepath.Join(dir, "config.yml") {
		t.Fatalf("unexpected config path %s", container.Loader.GetConfigPath())
	}
	if container.ListTasksUseCase == nil || container.GetDashboardUseCase == nil || container.LoginUseCase == nil {
		t.Fatal("expected use cases to be wired")
	}
}

func TestInitializeContainerRejectsBadServer(t *testing.T) {
	t.Setenv("TASKDASH_STORAGE_DATA_PATH", t.TempDir())
	_, err := InitializeContainer(Options{
		ConfigPath: filepath.Join(t.TempDir(), "config.yml"),
		ServerURL:  "ftp://example.com",
	})
	if err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}

func TestInitializeContainerLogsToFileForTUI(t *testing.T) {
	dir := t.TempDir()
	var stderr bytes.Buffer
	t.Setenv("TASKDASH_STORAGE_DATA_PATH", dir)

	container, err := InitializeContainer(Options{
		ConfigPath: filepath.Join(dir, "config.yml"),
		ServerURL:  "http://127.0.0.1:9",
		LogOutput:  &stderr,
		LogToFile:  true,
	})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}

	container.Logger.Info("while the tui runs")

	if stderr.Len() != 0 {
		t.Fatalf("expected nothing on the terminal, got %q", stderr.String())
	}
	data, err := os.ReadFile(filepath.Join(dir, "taskdash.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "while the tui runs") {
		t.Fatalf("expected entry in log file, got %q", data)
	}
}
