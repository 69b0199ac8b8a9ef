package service

import (
	"errors"

	"collegeplan-be/internal/apperrors"
	"collegeplan-be/pkg/llm/gemini"
)

// wrapAIError converts a provider failure into an UpstreamError. A missing
// or rejected API key gets an actionable message since retrying won't help.
func wrapAIError(err error) error {
	if errors.Is(err, gemini.ErrMissingAPIKey) {
		return apperrors.NewUpstream("AI provider is not configured; set GOOGLE_GEMINI_API_KEY and restart", err)
	}
	return apperrors.NewUpstream("AI provider request failed", err)
}
