package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trustgate/cmd/api/clients/scanclient"
	"trustgate/models"
)

func TestRiskLevelBucketsLetterGrades(t *testing.T) {
	svc := NewScanService(scanclient.NewWithClient(http.DefaultClient, "http://scan.test", "key"), 0, 0)

	testCases := []struct {
		score string
		want  models.RiskLevel
	}{
		{score: "A", want: models.RiskStrong},
		{score: "B", want: models.RiskStrong},
		{score: "C", want: models.RiskNeedsAttention},
		{score: "D", want: models.RiskAtRisk},
		{score: "F", want: models.RiskAtRisk},
		{score: "Z", want: models.RiskNeedsAttention},
		{score: "", want: models.RiskNeedsAttention},
	}

	for _, testCase := range testCases {
		if got := svc.RiskLevel(testCase.score); got != testCase.want {
			t.Fatalf("score %q: expected %s, got %s", testCase.score, testCase.want, got)
		}
	}
}

func TestWaitForCompletionReturnsOnTerminalStatus(t *testing.T) {
	var polls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls++
		status := models.ScanInProgress
		if polls >= 3 {
			status = models.ScanCompleted
		}
		json.NewEncoder(w).Encode(models.Assessment{ID: "scan-1", ScanStatus: status, SecurityScore: "B"})
	}))
	defer server.Close()

	svc := NewScanService(scanclient.NewWithClient(server.Client(), server.URL, "key"), 5*time.Second, 60)
	var slept time.Duration
	svc.SetSleep(func(ctx context.Context, d time.Duration) error {
		slept += d
		return nil
	})

	assessment, err := svc.WaitForCompletion(context.Background(), "scan-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if assessment.ScanStatus != models.ScanCompleted {
		t.Fatalf("expected completed, got %s", assessment.ScanStatus)
	}
	if polls != 3 {
		t.Fatalf("expected 3 polls, got %d", polls)
	}
	if slept != 10*time.Second {
		t.Fatalf("expected 2 waits of 5s, got %s", slept)
	}
}

func TestWaitForCompletionTimesOutAfterMaxAttempts(t *testing.T) {
	var polls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		polls++
		json.NewEncoder(w).Encode(models.Assessment{ID: "scan-1", ScanStatus: models.ScanInProgress})
	}))
	defer server.Close()

	svc := NewScanService(scanclient.NewWithClient(server.Client(), server.URL, "key"), 5*time.Second, 60)
	var slept time.Duration
	svc.SetSleep(func(ctx context.Context, d time.Duration) error {
		slept += d
		return nil
	})

	last, err := svc.WaitForCompletion(context.Background(), "scan-1")
	if !errors.Is(err, ErrPollTimeout) {
		t.Fatalf("expected ErrPollTimeout, got %v", err)
	}
	if polls != 60 {
		t.Fatalf("expected 60 polls, got %d", polls)
	}
	// 59 waits between 60 reads.
	if slept != 59*5*time.Second {
		t.Fatalf("expected 295s of waiting, got %s", slept)
	}
	if last.ScanStatus != models.ScanInProgress {
		t.Fatalf("expected last observed assessment to be returned, got %+v", last)
	}
}

func TestWaitForCompletionStopsWhenContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.Assessment{ID: "scan-1", ScanStatus: models.ScanInProgress})
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	svc := NewScanService(scanclient.NewWithClient(server.Client(), server.URL, "key"), 5*time.Second, 60)
	svc.SetSleep(func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	})

	if _, err := svc.WaitForCompletion(ctx, "scan-1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestScanServiceUnconfiguredClient(t *testing.T) {
	svc := NewScanService(scanclient.NewWithClient(http.DefaultClient, "http://scan.test", ""), 0, 0)

	if svc.Configured() {
		t.Fatalf("expected unconfigured service")
	}
	if _, err := svc.Get(context.Background(), "scan-1"); !errors.Is(err, scanclient.ErrUnconfigured) {
		t.Fatalf("expected ErrUnconfigured, got %v", err)
	}
}
