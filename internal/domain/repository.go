package domain

import (
	"context"
	"time"
)

// AnalysisCache defines the interface for caching analysis results
type AnalysisCache interface {
	Get(ctx context.Context, key string) (*AnalysisResult, error)
	Set(ctx context.Context, key string, result *AnalysisResult, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CleanlinessClassifier decides whether a product intrinsically satisfies
// general clean-eating criteria, independent of personal preferences.
// Implementations may be local (hit-derived) or backed by a remote service.
type CleanlinessClassifier interface {
	Classify(ctx context.Context, canonical []string, avoidHits []string) (bool, error)
}
