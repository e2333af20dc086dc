// Package classifier provides cleanliness classifier implementations: a
// local hit-derived one and a client for a remote analysis backend.
package classifier

import "context"

// Local derives the cleanliness flag directly from the avoid-list hits: a
// product is intrinsically clean when no ingredient matched the avoid guide.
type Local struct{}

// NewLocal creates the default hit-derived classifier
func NewLocal() *Local {
	return &Local{}
}

// Classify reports whether the product satisfies general clean-eating
// criteria. Never fails.
func (l *Local) Classify(ctx context.Context, canonical []string, avoidHits []string) (bool, error) {
	return len(avoidHits) == 0, nil
}
