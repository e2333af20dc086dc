package usecase

import "github.com/cleanfood/backend/internal/domain"

// CombineVerdict merges the general cleanliness flag with the two
// personalization hit sets into the final three-state verdict.
//
// A general cleanliness failure takes absolute precedence: an ingredient
// that is generally unhealthy stays flagged regardless of the user's diet.
// Pure function of its inputs; recomputed fresh on every analysis.
func CombineVerdict(isClean bool, dietHits, allergyHits []string) domain.Verdict {
	switch {
	case !isClean:
		return domain.VerdictNotClean
	case len(dietHits) > 0 || len(allergyHits) > 0:
		return domain.VerdictCleanButConflicts
	default:
		return domain.VerdictClean
	}
}
