package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ntari/tally/internal/model"
	"github.com/ntari/tally/internal/output"
)

func TestWrite_PostsAnalysis(t *testing.T) {
	var gotBody []byte
	var gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotHeader = r.Header.Get("X-Tally-Token")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	o := New(srv.URL, output.Full, WithHeaders(map[string]string{"X-Tally-Token": "s3cret"}))
	a := &model.Analysis{Period: "2026-02-28 to 2026-03-07"}
	if err := o.Write(context.Background(), a); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	var got model.Analysis
	if err := json.Unmarshal(gotBody, &got); err != nil {
		t.Fatalf("unmarshal posted body: %v", err)
	}
	if got.Period != a.Period {
		t.Fatalf("expected period %q, got %q", a.Period, got.Period)
	}
	if gotHeader != "s3cret" {
		t.Fatalf("custom header not sent, got %q", gotHeader)
	}
}

func TestWrite_RetriesOn5xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	o := New(srv.URL, output.Minimal)
	if err := o.Write(context.Background(), &model.Analysis{}); err != nil {
		t.Fatalf("Write() error after retry: %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls.Load())
	}
}

func TestWrite_NoRetryOn4xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	o := New(srv.URL, output.Minimal)
	if err := o.Write(context.Background(), &model.Analysis{}); err == nil {
		t.Fatal("expected error on 403")
	}
	if calls.Load() != 1 {
		t.Fatalf("client errors must not be retried, got %d attempts", calls.Load())
	}
}

func TestWrite_ContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	o := New(srv.URL, output.Minimal)
	if err := o.Write(ctx, &model.Analysis{}); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
