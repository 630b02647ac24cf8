package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":     FormatText,
		"text": FormatText,
		"json": FormatJSON,
		"yml":  FormatYAML,
		"yaml": FormatYAML,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestFormatterJSONAndYAML(t *testing.T) {
	data := struct {
		Title string `json:"title" yaml:"title"`
	}{Title: "Report"}

	var buf bytes.Buffer
	if err := NewFormatter(FormatJSON, &buf).Print(data); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !strings.Contains(buf.String(), `"title": "Report"`) {
		t.Fatalf("unexpected json: %s", buf.String())
	}

	buf.Reset()
	if err := NewFormatter(FormatYAML, &buf).Print(data); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "title: Report" {
		t.Fatalf("unexpected yaml: %s", buf.String())
	}
}

func TestPrinterTableTruncatesAndQuiet(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := strings.Repeat("x", 100)
	p.Table([]string{"TITLE", "STATUS"}, [][]string{{long, "Pending"}, {"short"}})

	out := buf.String()
	if strings.Contains(out, long) {
		t.Fatal("expected long cell to be truncated")
	}
	if !strings.Contains(out, "Pending") || !strings.Contains(out, "short") {
		t.Fatalf("unexpected table: %s", out)
	}

	buf.Reset()
	p.SetQuiet(true)
	p.Success("done")
	p.Info("note")
	if buf.Len() != 0 {
		t.Fatalf("expected quiet printer to stay silent, got %q", buf.String())
	}
	p.Error("bad")
	if !strings.Contains(buf.String(), "bad") {
		t.Fatal("expected errors to print when quiet")
	}
}
