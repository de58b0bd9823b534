package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ntari/tally/internal/model"
	"github.com/ntari/tally/internal/output"
)

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	o := New(path, output.Full, true)

	a := &model.Analysis{
		Period:          "2026-02-28 to 2026-03-07",
		TotalVolunteers: 5,
	}
	if err := o.Write(context.Background(), a); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := o.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var got model.Analysis
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if got.Period != a.Period || got.TotalVolunteers != 5 {
		t.Fatalf("round-trip mismatch: %+v", got)
	}
}

func TestWrite_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	o := New(path, output.Minimal, false)
	if err := o.Write(context.Background(), &model.Analysis{Period: "fresh"}); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) == "stale" {
		t.Fatal("existing report not replaced")
	}

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the report, found %d entries", len(entries))
	}
}

func TestWrite_BadDirectory(t *testing.T) {
	o := New(filepath.Join(t.TempDir(), "absent", "report.json"), output.Full, false)
	if err := o.Write(context.Background(), &model.Analysis{}); err == nil {
		t.Fatal("expected error for a missing directory")
	}
}
