package usecase

import (
	"log"
	"strings"

	"github.com/cleanfood/backend/internal/rules"
	"github.com/cleanfood/backend/internal/taxonomy"
)

// acronymMaxLen is the longest single-word token rendered fully upper-cased
// when it has no taxonomy entry ("msg" -> "MSG")
const acronymMaxLen = 5

// MatchOutcome holds the three disjoint hit collections produced by one
// match pass. Each is keyed by the ORIGINAL token text in input order with
// duplicates removed, because the caller reports the original spelling.
type MatchOutcome struct {
	AvoidHits   []string
	DietHits    []string
	AllergyHits []string
}

// Matcher checks parsed ingredient tokens against the avoid-guide index and
// the active diet/allergy rule sets
type Matcher struct {
	avoidIndex         *taxonomy.Index
	enableDebugLogging bool
}

// NewMatcher creates a new matcher over the given avoid-guide index.
// A nil index is a programming error and fails fast.
func NewMatcher(avoidIndex *taxonomy.Index, enableDebugLogging bool) *Matcher {
	if avoidIndex == nil {
		panic("usecase: NewMatcher requires a non-nil avoid index")
	}
	return &Matcher{
		avoidIndex:         avoidIndex,
		enableDebugLogging: enableDebugLogging,
	}
}

// Match runs every token through the avoid index and, when non-nil, the
// diet and allergy rule sets. A token with no match anywhere contributes to
// no collection; it stays visible to callers through the parsed token list.
func (m *Matcher) Match(tokens []string, dietRules, allergyRules *rules.RuleSet) MatchOutcome {
	var outcome MatchOutcome
	seenAvoid := make(map[string]bool)
	seenDiet := make(map[string]bool)
	seenAllergy := make(map[string]bool)

	for _, token := range tokens {
		key := taxonomy.Normalize(token)
		if key == "" {
			continue
		}

		if match := m.avoidIndex.Lookup(key); match != nil && !seenAvoid[token] {
			seenAvoid[token] = true
			outcome.AvoidHits = append(outcome.AvoidHits, token)
			if m.enableDebugLogging {
				log.Printf("[MATCH] avoid hit %q -> %s/%s", token, match.Section, match.Item.Slug)
			}
		}
		if trigger := dietRules.Lookup(key); trigger != "" && !seenDiet[token] {
			seenDiet[token] = true
			outcome.DietHits = append(outcome.DietHits, token)
			if m.enableDebugLogging {
				log.Printf("[MATCH] diet hit %q -> %q (%s)", token, trigger, dietRules.ID())
			}
		}
		if trigger := allergyRules.Lookup(key); trigger != "" && !seenAllergy[token] {
			seenAllergy[token] = true
			outcome.AllergyHits = append(outcome.AllergyHits, token)
			if m.enableDebugLogging {
				log.Printf("[MATCH] allergy hit %q -> %q", token, trigger)
			}
		}
	}

	return outcome
}

// BadgeLabel resolves the display label for a hit token. Tokens with an
// avoid-guide entry use the entry's canonical name; the rest fall back to a
// derived label. The returned match is nil for fallback labels.
func (m *Matcher) BadgeLabel(token string) (string, *taxonomy.Match) {
	if match := m.avoidIndex.Lookup(token); match != nil {
		return match.Item.Name, match
	}
	return fallbackLabel(token), nil
}

// fallbackLabel formats a token that has no taxonomy entry. Short
// space-free tokens are treated as acronym-like abbreviations and
// upper-cased; everything else is title-cased word by word, preserving
// pieces that are already fully upper.
func fallbackLabel(token string) string {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return ""
	}
	if len(trimmed) <= acronymMaxLen && !strings.Contains(trimmed, " ") {
		return strings.ToUpper(trimmed)
	}

	words := strings.Fields(trimmed)
	for i, word := range words {
		if word == strings.ToUpper(word) {
			continue
		}
		runes := []rune(strings.ToLower(word))
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
