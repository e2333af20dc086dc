package usecase

import (
	"reflect"
	"testing"

	"github.com/cleanfood/backend/internal/domain"
	"github.com/cleanfood/backend/internal/rules"
	"github.com/cleanfood/backend/internal/taxonomy"
)

func TestMatcherMatch(t *testing.T) {
	m := NewMatcher(taxonomy.Default(), false)

	t.Run("flags avoid-list tokens and keeps original spelling", func(t *testing.T) {
		outcome := m.Match([]string{"water", "sugar", "BHT", "salt"}, nil, nil)
		if !reflect.DeepEqual(outcome.AvoidHits, []string{"BHT"}) {
			t.Errorf("AvoidHits = %v, want [BHT]", outcome.AvoidHits)
		}
		if len(outcome.DietHits) != 0 || len(outcome.AllergyHits) != 0 {
			t.Errorf("expected no diet/allergy hits, got %v / %v", outcome.DietHits, outcome.AllergyHits)
		}
	})

	t.Run("resolves synonyms through normalization", func(t *testing.T) {
		outcome := m.Match([]string{"E320", "tert–butylhydroquinone"}, nil, nil)
		if !reflect.DeepEqual(outcome.AvoidHits, []string{"E320", "tert–butylhydroquinone"}) {
			t.Errorf("AvoidHits = %v", outcome.AvoidHits)
		}
	})

	t.Run("diet rule set active only when provided", func(t *testing.T) {
		vegan := rules.ForDiet(domain.DietVegan)

		withRules := m.Match([]string{"honey", "oats"}, vegan, nil)
		if !reflect.DeepEqual(withRules.DietHits, []string{"honey"}) {
			t.Errorf("DietHits = %v, want [honey]", withRules.DietHits)
		}

		withoutRules := m.Match([]string{"honey", "oats"}, nil, nil)
		if len(withoutRules.DietHits) != 0 {
			t.Errorf("DietHits = %v, want none without an active rule set", withoutRules.DietHits)
		}
	})

	t.Run("allergy hits from combined rule set", func(t *testing.T) {
		_, allergy := rules.ForAllergies([]string{"gluten"})
		outcome := m.Match([]string{"water", "wheat flour", "wheat"}, nil, allergy)
		if !reflect.DeepEqual(outcome.AllergyHits, []string{"wheat"}) {
			t.Errorf("AllergyHits = %v, want [wheat]", outcome.AllergyHits)
		}
	})

	t.Run("duplicate raw tokens reported once", func(t *testing.T) {
		outcome := m.Match([]string{"BHT", "BHT", "bht"}, nil, nil)
		// Two distinct raw spellings normalize to the same key; both are
		// reported, each under its own display label.
		if !reflect.DeepEqual(outcome.AvoidHits, []string{"BHT", "bht"}) {
			t.Errorf("AvoidHits = %v, want [BHT bht]", outcome.AvoidHits)
		}
	})

	t.Run("unmatched tokens contribute nothing", func(t *testing.T) {
		outcome := m.Match([]string{"organic tomatoes", "sea salt", ""}, nil, nil)
		if len(outcome.AvoidHits) != 0 {
			t.Errorf("AvoidHits = %v, want none", outcome.AvoidHits)
		}
	})
}

func TestMatcherBadgeLabel(t *testing.T) {
	m := NewMatcher(taxonomy.Default(), false)

	t.Run("taxonomy entry uses canonical name", func(t *testing.T) {
		label, match := m.BadgeLabel("bht")
		if label != "BHT (Butylated Hydroxytoluene)" {
			t.Errorf("label = %q, want canonical name", label)
		}
		if match == nil || match.Item.Slug != "bht" {
			t.Errorf("match = %+v, want bht entry", match)
		}
	})

	t.Run("matched phrase uses taxonomy name not fallback", func(t *testing.T) {
		label, match := m.BadgeLabel("artificial flavor")
		if label != "Artificial Flavor" {
			t.Errorf("label = %q, want Artificial Flavor", label)
		}
		if match == nil {
			t.Error("expected a taxonomy match")
		}
	})

	t.Run("short unmatched token upper-cased", func(t *testing.T) {
		label, match := m.BadgeLabel("ghee")
		if label != "GHEE" {
			t.Errorf("label = %q, want GHEE", label)
		}
		if match != nil {
			t.Errorf("match = %+v, want nil", match)
		}
	})

	t.Run("longer unmatched token title-cased", func(t *testing.T) {
		label, _ := m.BadgeLabel("wheat flour")
		if label != "Wheat Flour" {
			t.Errorf("label = %q, want Wheat Flour", label)
		}
	})
}

func TestNewMatcherNilIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewMatcher(nil) did not panic")
		}
	}()
	NewMatcher(nil, false)
}
