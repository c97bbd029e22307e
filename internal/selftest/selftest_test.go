package selftest

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestChecksPass(t *testing.T) {
	for _, c := range Checks() {
		t.Run(c.Name, func(t *testing.T) {
			if err := c.Run(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestRun_AllPass(t *testing.T) {
	var buf bytes.Buffer
	if err := Run(&buf, Checks()); err != nil {
		t.Fatalf("Run: %v\n%s", err, buf.String())
	}
	out := buf.String()
	if strings.Contains(out, "[FAIL]") {
		t.Errorf("unexpected failure in output:\n%s", out)
	}
	if !strings.Contains(out, "All 13 checks passed.") {
		t.Errorf("missing summary line:\n%s", out)
	}
}

func TestRun_ReportsFailure(t *testing.T) {
	checks := []Check{
		{"good", func() error { return nil }},
		{"bad", func() error { return errors.New("boom") }},
	}
	var buf bytes.Buffer
	err := Run(&buf, checks)
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "1 of 2 checks failed"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
	out := buf.String()
	if !strings.Contains(out, "[ OK ] good") {
		t.Errorf("missing ok line:\n%s", out)
	}
	if !strings.Contains(out, "[FAIL] bad: boom") {
		t.Errorf("missing fail line:\n%s", out)
	}
}
