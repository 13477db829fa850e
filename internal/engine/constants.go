package engine

import "time"

// ==================== Evaluation Cache ====================

const (
	// EvaluationCacheSize bounds how many selections keep memoized results
	EvaluationCacheSize = 512

	// EvaluationCacheTTL expires memoized results that stay size-resident
	EvaluationCacheTTL = 30 * time.Minute
)
