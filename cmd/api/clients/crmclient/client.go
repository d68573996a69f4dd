// Package crmclient relays marketing-form submissions to per-form CRM
// webhook URLs. Failures are reported as a boolean, never as an error: a
// broken or missing webhook must not take a marketing form down with it.
package crmclient

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"trustgate/cmd/api/httpclient"
	"trustgate/internal/logger"
)

// FormKind names a form surface with its own webhook target.
type FormKind string

const (
	FormContact        FormKind = "contact"
	FormNewsletter     FormKind = "newsletter"
	FormRiskAssessment FormKind = "risk-assessment"
)

func (k FormKind) Valid() bool {
	switch k {
	case FormContact, FormNewsletter, FormRiskAssessment:
		return true
	}
	return false
}

type Relay struct {
	urls   map[FormKind]string
	client *http.Client
	now    func() time.Time
}

// NewFromEnv reads one webhook URL per form kind. Missing entries are left
// unconfigured, which makes Relay short-circuit to false for that kind.
func NewFromEnv() *Relay {
	return New(map[FormKind]string{
		FormContact:        os.Getenv("CRM_CONTACT_WEBHOOK_URL"),
		FormNewsletter:     os.Getenv("CRM_NEWSLETTER_WEBHOOK_URL"),
		FormRiskAssessment: os.Getenv("CRM_RISK_ASSESSMENT_WEBHOOK_URL"),
	})
}

// New builds a relay over explicit URLs with the default logging client.
func New(urls map[FormKind]string) *Relay {
	return &Relay{
		urls:   urls,
		client: httpclient.NewDefault(),
		now:    time.Now,
	}
}

// NewWithClient injects the http.Client. Tests count calls through it.
func NewWithClient(urls map[FormKind]string, client *http.Client) *Relay {
	r := New(urls)
	if client != nil {
		r.client = client
	}
	return r
}

// Relay forwards the submission to the webhook configured for kind. The
// payload is enriched with submittedAt and a source tag naming the form
// surface. Returns false, without any network I/O, when the kind has no
// URL; returns false on any transport error or non-2xx response.
func (r *Relay) Relay(ctx context.Context, kind FormKind, payload map[string]any) bool {
	url := r.urls[kind]
	if url == "" {
		logger.DebugWithFields("webhook not configured, skipping relay", logger.Fields{
			"form": string(kind),
		})
		return false
	}

	enriched := make(map[string]any, len(payload)+2)
	for k, v := range payload {
		enriched[k] = v
	}
	enriched["submittedAt"] = r.now().UTC().Format(time.RFC3339)
	enriched["source"] = "trustgate-website/" + string(kind)

	body, err := json.Marshal(enriched)
	if err != nil {
		logger.ErrorWithFields("webhook payload marshal failed", logger.Fields{
			"form":  string(kind),
			"error": err.Error(),
		})
		return false
	}

	base := httpclient.BaseClient{HTTPClient: r.client, BaseURL: url}
	resp, err := base.PostJSON(ctx, "", body)
	if err != nil {
		logger.WarnWithFields("webhook relay failed", logger.Fields{
			"form":  string(kind),
			"error": err.Error(),
		})
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.WarnWithFields("webhook relay rejected", logger.Fields{
			"form":   string(kind),
			"status": resp.StatusCode,
		})
		return false
	}
	return true
}
