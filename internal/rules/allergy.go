package rules

import (
	"strings"

	"github.com/cleanfood/backend/internal/taxonomy"
)

// Known allergy labels and the ingredient terms they expand to. A label
// outside this table still matches its own token, so free-text allergies
// like "mustard" behave as single-trigger rule sets.
var allergyTriggers = map[string][]string{
	"gluten": {
		"gluten", "wheat", "barley", "rye", "spelt", "durum",
		"farina", "semolina", "triticale", "malt", "graham", "bulgur",
	},
	"dairy": {
		"dairy", "milk", "butter", "cheese", "cream", "casein", "whey",
		"lactose", "ghee", "yogurt", "yoghurt", "curd", "paneer", "dahi",
	},
	"nuts": {
		"nut", "nuts", "tree nut", "peanut", "almond", "cashew",
		"hazelnut", "pecan", "pistachio", "walnut", "macadamia",
		"brazil nut", "pine nut",
	},
	"soy": {
		"soy", "soya", "soybean", "soy bean", "edamame", "tofu",
		"tempeh", "miso",
	},
	"eggs": {
		"egg", "eggs", "albumen", "albumin", "egg white", "egg yolk",
		"ovalbumin", "ovomucoid",
	},
	"shellfish": {
		"shellfish", "crab", "lobster", "shrimp", "prawn", "crayfish",
		"krill", "langoustine", "mussel", "clam", "oyster", "scallop",
		"whelk",
	},
	"fish": {
		"fish", "anchovy", "cod", "haddock", "pollock", "salmon",
		"sardine", "tilapia", "trout", "tuna", "mackerel",
	},
	"sesame": {
		"sesame", "sesame seed", "tahini", "benne",
	},
}

// ForAllergies builds one combined rule set from the user's free-text
// allergy labels. Returns the de-duplicated labels that were accepted
// (original casing, first occurrence wins) and the rule set, or nil when no
// label yields a trigger.
func ForAllergies(labels []string) ([]string, *RuleSet) {
	var accepted []string
	seen := make(map[string]bool)
	var triggers []string

	for _, label := range labels {
		trimmed := strings.TrimSpace(label)
		if trimmed == "" {
			continue
		}
		key := taxonomy.Normalize(trimmed)
		if key == "" {
			continue
		}
		lowered := strings.ToLower(trimmed)
		if !seen[lowered] {
			seen[lowered] = true
			accepted = append(accepted, trimmed)
		}
		// The label itself is always a trigger; known labels expand to
		// their ingredient aliases.
		triggers = append(triggers, trimmed)
		triggers = append(triggers, allergyTriggers[key]...)
	}

	if len(triggers) == 0 {
		return accepted, nil
	}
	return accepted, newRuleSet("allergies", triggers)
}
