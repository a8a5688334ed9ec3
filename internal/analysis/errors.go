package analysis

import "errors"

var (
	ErrInvalidPeriod = errors.New("period must be one of today|week")

	// ErrQuotaExceeded means the generative service refused the call for quota reasons.
	ErrQuotaExceeded = errors.New("generative service quota exceeded")
	// ErrNotConfigured means no generative service credential is available.
	ErrNotConfigured = errors.New("generative service is not configured")
	// ErrAnalysisFailed covers every other narrator failure, including a
	// response of the wrong shape.
	ErrAnalysisFailed = errors.New("analysis failed")
)
