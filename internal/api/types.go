// File path: internal/api/types.go
package api

import (
	"github.com/docsmith/quickstart/internal/onboarding"
)

type onboardingResponse struct {
	Flow      string                `json:"flow"`
	Install   []onboarding.Step     `json:"install"`
	Configure []onboarding.Step     `json:"configure"`
	Verify    []onboarding.Step     `json:"verify"`
	NextSteps []onboarding.NextStep `json:"next_steps"`
}

type flowInfo struct {
	Name       string   `json:"name"`
	Operations []string `json:"operations"`
}

type snapshotRequest struct {
	DSN         string `json:"dsn"`
	Performance bool   `json:"performance"`
	Replay      bool   `json:"replay"`
	Feedback    bool   `json:"feedback"`
	MaskText    *bool  `json:"mask_text,omitempty"`
	BlockMedia  *bool  `json:"block_media,omitempty"`
}

type snapshotCreatedResponse struct {
	ID int64 `json:"id"`
}
