package service

import (
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	cases := []struct {
		start, end string
		want       string
	}{
		{"2024-01-01T00:00:00Z", "2024-01-01T02:00:00Z", "2.00"},
		{"2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z", "0.00"},
		{"2024-01-01T00:00:00Z", "2024-01-01T00:20:00Z", "0.33"},
		{"2024-01-01T00:00:00Z", "2024-01-02T12:45:00Z", "36.75"},
		{"2024-01-02T00:00:00Z", "2024-01-01T00:00:00Z", "0.00"},
		{"2024-01-01T00:00:00Z", "2024-01-01T00:07:30Z", "0.13"},
		{"2024-01-01T00:00:00Z", "2024-01-01T00:37:30Z", "0.63"},
		{"2024-01-01T00:00:00+02:00", "2024-01-01T00:00:00Z", "2.00"},
		{"", "2024-01-01T00:00:00Z", "0.00"},
		{"2024-01-01T00:00:00Z", "whenever", "0.00"},
	}

	for _, tc := range cases {
		if got := Duration(tc.start, tc.end); got != tc.want {
			t.Errorf("Duration(%q, %q) = %s, want %s", tc.start, tc.end, got, tc.want)
		}
	}
}

func TestFormatHoursNeverNegative(t *testing.T) {
	for _, d := range []time.Duration{-time.Hour, -time.Millisecond, 0} {
		if got := FormatHours(d); got != "0.00" {
			t.Errorf("FormatHours(%v) = %s, want 0.00", d, got)
		}
	}
	if got := FormatHours(90 * time.Minute); got != "1.50" {
		t.Errorf("FormatHours(90m) = %s, want 1.50", got)
	}
}

func TestFormatFixedRoundsHalvesUp(t *testing.T) {
	cases := []struct {
		x        float64
		decimals int
		want     string
	}{
		{0.125, 2, "0.13"},
		{12.25, 1, "12.3"},
		{0.25, 1, "0.3"},
		{2.345, 1, "2.3"},
		{40, 1, "40.0"},
	}
	for _, tc := range cases {
		if got := FormatFixed(tc.x, tc.decimals); got != tc.want {
			t.Errorf("FormatFixed(%v, %d) = %s, want %s", tc.x, tc.decimals, got, tc.want)
		}
	}
}
