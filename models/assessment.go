package models

import (
	"encoding/json"
	"time"
)

// Scan statuses reported by the external scanning API.
const (
	ScanNotStarted = "not_started"
	ScanInProgress = "in_progress"
	ScanCompleted  = "completed"
	ScanArchived   = "archived"
)

// ScanFinished reports whether a scan status is terminal.
func ScanFinished(status string) bool {
	return status == ScanCompleted || status == ScanArchived
}

// Assessment mirrors the third-party scan assessment. It is relayed, never
// persisted here; unknown upstream fields ride along in AssessmentDetails.
type Assessment struct {
	ID                string            `json:"id"`
	ScanStatus        string            `json:"scanStatus"`
	SecurityScore     string            `json:"securityScore,omitempty"`
	Grades            map[string]string `json:"grades,omitempty"`
	AssessmentDetails json.RawMessage   `json:"assessmentDetails,omitempty"`
	CreatedAt         *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt         *time.Time        `json:"updatedAt,omitempty"`
}

// RiskLevel buckets a letter-grade security score for the marketing UI.
type RiskLevel string

const (
	RiskStrong         RiskLevel = "strong"
	RiskNeedsAttention RiskLevel = "needs-attention"
	RiskAtRisk         RiskLevel = "at-risk"
)

// RiskLevelForScore maps letter grades to risk buckets. Unrecognized input
// lands in the middle bucket rather than passing as healthy or erroring.
func RiskLevelForScore(score string) RiskLevel {
	switch score {
	case "A", "B":
		return RiskStrong
	case "C":
		return RiskNeedsAttention
	case "D", "F":
		return RiskAtRisk
	default:
		return RiskNeedsAttention
	}
}
