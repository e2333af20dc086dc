package rules

import (
	"sync"

	"github.com/cleanfood/backend/internal/domain"
)

// Diet trigger terms per regime. Vegan and Jain extend the vegetarian set
// at build time, so each table lists only the regime's own triggers.
var (
	vegetarianTriggers = []string{
		"meat", "beef", "chicken", "duck", "turkey", "pork", "ham",
		"lamb", "mutton", "goat", "salami", "sausage", "lard",
		"fish", "seafood", "shellfish", "shrimp", "prawn",
		"gelatin", "gelatine", "animal fat", "animal enzymes", "rennet",
	}

	veganTriggers = []string{
		"milk", "butter", "cheese", "cream", "ghee", "yogurt",
		"casein", "whey", "lactose", "egg", "eggs", "albumen",
		"honey", "beeswax", "shellac",
	}

	jainTriggers = []string{
		"egg", "eggs", "honey",
		"onion", "garlic", "ginger", "potato", "radish", "carrot",
		"beetroot", "root vegetable", "root vegetables", "tuber",
	}
)

var (
	dietRules     map[domain.DietPreference]*RuleSet
	dietRulesOnce sync.Once
)

func buildDietRules() map[domain.DietPreference]*RuleSet {
	vegan := append(append([]string{}, vegetarianTriggers...), veganTriggers...)
	jain := append(append([]string{}, vegetarianTriggers...), jainTriggers...)

	return map[domain.DietPreference]*RuleSet{
		domain.DietVegetarian: newRuleSet(string(domain.DietVegetarian), vegetarianTriggers),
		domain.DietVegan:      newRuleSet(string(domain.DietVegan), vegan),
		domain.DietJain:       newRuleSet(string(domain.DietJain), jain),
	}
}

// ForDiet returns the rule set for a dietary regime, or nil when the regime
// is "none", empty, or unknown. Unknown identifiers are not an error; they
// simply activate no rule set.
func ForDiet(pref domain.DietPreference) *RuleSet {
	dietRulesOnce.Do(func() {
		dietRules = buildDietRules()
	})
	return dietRules[pref]
}
