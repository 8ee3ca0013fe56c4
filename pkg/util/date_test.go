package util

import (
	"testing"
	"time"
)

func TestUnixDate(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got := UnixDate(ts)
	if got != "2024-10-10" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestUnixDateDefault(t *testing.T) {
	got := UnixDateDefault(0, "n/a")
	if got != "n/a" {
		t.Fatalf("expected default, got %q", got)
	}
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC).Unix()
	if got := UnixDateDefault(ts, "n/a"); got != "2024-01-02" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("", 7); got != 7 {
		t.Fatalf("expected default, got %d", got)
	}
	if got := ParseIntDefault("42", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := ParseIntDefault("x", 7); got != 7 {
		t.Fatalf("expected default on invalid, got %d", got)
	}
}

func TestParseBoolDefault(t *testing.T) {
	if got := ParseBoolDefault("", true); got != true {
		t.Fatalf("expected default")
	}
	if got := ParseBoolDefault("false", true); got != false {
		t.Fatalf("expected parsed false")
	}
}
