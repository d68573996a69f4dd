package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"trustgate/cmd/api/clients/scanclient"
	"trustgate/models"
)

// ErrPollTimeout means a scan did not reach a terminal status within the
// allowed attempts. Distinct from scanclient.ErrNotFound and upstream errors
// so callers can tell "still running" apart from "gone" and "broken".
var ErrPollTimeout = errors.New("scan polling timed out")

// ScanService fronts the external scanning API: pass-through reads, the
// risk-level derivation, and the bounded completion poll.
type ScanService struct {
	client      *scanclient.Client
	interval    time.Duration
	maxAttempts int

	// sleep is swapped for a fake in tests so the 5-minute ceiling does
	// not take 5 minutes to test.
	sleep func(ctx context.Context, d time.Duration) error
}

func NewScanService(client *scanclient.Client, interval time.Duration, maxAttempts int) *ScanService {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if maxAttempts <= 0 {
		maxAttempts = 60
	}
	return &ScanService{
		client:      client,
		interval:    interval,
		maxAttempts: maxAttempts,
		sleep:       sleepContext,
	}
}

// SetSleep overrides the inter-poll wait. Tests only.
func (s *ScanService) SetSleep(sleep func(ctx context.Context, d time.Duration) error) {
	s.sleep = sleep
}

func (s *ScanService) Configured() bool {
	return s.client.Configured()
}

func (s *ScanService) Create(ctx context.Context, in scanclient.CreateScanInput) (models.Assessment, error) {
	return s.client.CreateScan(ctx, in)
}

func (s *ScanService) Get(ctx context.Context, id string) (models.Assessment, error) {
	return s.client.GetAssessment(ctx, id)
}

func (s *ScanService) Findings(ctx context.Context, id string) (json.RawMessage, error) {
	return s.client.GetFindings(ctx, id)
}

func (s *ScanService) BreachData(ctx context.Context, id string) (json.RawMessage, error) {
	return s.client.GetBreachData(ctx, id)
}

func (s *ScanService) FindingDetails(ctx context.Context, id, findingID string) (json.RawMessage, error) {
	return s.client.GetFindingDetails(ctx, id, findingID)
}

func (s *ScanService) ReportURL(ctx context.Context, id string) (string, error) {
	return s.client.GetReportURL(ctx, id)
}

// RiskLevel buckets a letter grade for the results page.
func (s *ScanService) RiskLevel(securityScore string) models.RiskLevel {
	return models.RiskLevelForScore(securityScore)
}

// WaitForCompletion polls the assessment at the configured interval until
// its status is completed or archived, up to maxAttempts reads. With the
// defaults that is a 5-minute ceiling, after which ErrPollTimeout is
// returned. There is no server-side cancellation beyond ctx.
func (s *ScanService) WaitForCompletion(ctx context.Context, id string) (models.Assessment, error) {
	var last models.Assessment
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		if attempt > 0 {
			if err := s.sleep(ctx, s.interval); err != nil {
				return last, err
			}
		}

		assessment, err := s.client.GetAssessment(ctx, id)
		if err != nil {
			return last, err
		}
		last = assessment
		if models.ScanFinished(assessment.ScanStatus) {
			return assessment, nil
		}
	}
	return last, ErrPollTimeout
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
