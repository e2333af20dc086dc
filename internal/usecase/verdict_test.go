package usecase

import (
	"testing"

	"github.com/cleanfood/backend/internal/domain"
)

func TestCombineVerdict(t *testing.T) {
	tests := []struct {
		name        string
		isClean     bool
		dietHits    []string
		allergyHits []string
		want        domain.Verdict
	}{
		{"not clean with no personal hits", false, nil, nil, domain.VerdictNotClean},
		{"not clean overrides diet hits", false, []string{"honey"}, nil, domain.VerdictNotClean},
		{"not clean overrides allergy hits", false, nil, []string{"wheat"}, domain.VerdictNotClean},
		{"clean with diet conflict", true, []string{"honey"}, nil, domain.VerdictCleanButConflicts},
		{"clean with allergy conflict", true, nil, []string{"wheat"}, domain.VerdictCleanButConflicts},
		{"clean with both conflicts", true, []string{"honey"}, []string{"wheat"}, domain.VerdictCleanButConflicts},
		{"fully clean", true, nil, nil, domain.VerdictClean},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CombineVerdict(tt.isClean, tt.dietHits, tt.allergyHits)
			if got != tt.want {
				t.Errorf("CombineVerdict(%v, %v, %v) = %q, want %q",
					tt.isClean, tt.dietHits, tt.allergyHits, got, tt.want)
			}
		})
	}
}
