// Package rules holds the diet and allergy rule sets: taxonomy-shaped
// mappings from a personalization dimension to the trigger terms whose
// presence in an ingredient list constitutes a conflict.
package rules

import "github.com/cleanfood/backend/internal/taxonomy"

// RuleSet maps normalized trigger keys to their canonical trigger term.
// Built once and read-only afterwards; a nil *RuleSet is valid and matches
// nothing.
type RuleSet struct {
	id    string
	byKey map[string]string
}

// newRuleSet builds a rule set from trigger terms using the same policy as
// the taxonomy index: normalize each candidate, skip empty keys, first
// writer wins.
func newRuleSet(id string, triggers []string) *RuleSet {
	rs := &RuleSet{
		id:    id,
		byKey: make(map[string]string, len(triggers)),
	}
	for _, trigger := range triggers {
		key := taxonomy.Normalize(trigger)
		if key == "" {
			continue
		}
		if _, ok := rs.byKey[key]; ok {
			continue
		}
		rs.byKey[key] = trigger
	}
	return rs
}

// ID returns the regime or allergy identifier this rule set belongs to
func (rs *RuleSet) ID() string {
	if rs == nil {
		return ""
	}
	return rs.id
}

// Lookup resolves a name to its canonical trigger term, or "" when the
// normalized form is not a trigger. Never errors; absence is "".
func (rs *RuleSet) Lookup(name string) string {
	if rs == nil || name == "" {
		return ""
	}
	key := taxonomy.Normalize(name)
	if key == "" {
		return ""
	}
	return rs.byKey[key]
}

// Empty reports whether the rule set has no triggers
func (rs *RuleSet) Empty() bool {
	return rs == nil || len(rs.byKey) == 0
}

// Len returns the number of registered trigger keys
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.byKey)
}
