package domain

import "time"

// DietPreference identifies a supported dietary regime
type DietPreference string

const (
	DietNone       DietPreference = "none"
	DietVegetarian DietPreference = "vegetarian"
	DietVegan      DietPreference = "vegan"
	DietJain       DietPreference = "jain"
)

// Preferences holds the personalization settings active for one analysis
type Preferences struct {
	Diet      DietPreference `json:"diet,omitempty"`
	Allergies []string       `json:"allergies,omitempty"`
}

// AnalysisRequest represents an ingredient analysis request.
// IsClean, when set, overrides the cleanliness classifier (the flag is then
// supplied by an external analysis backend).
type AnalysisRequest struct {
	Ingredients string       `json:"ingredients" binding:"required"`
	Preferences *Preferences `json:"preferences,omitempty"`
	IsClean     *bool        `json:"isClean,omitempty"`
}

// Verdict is the three-state classification shown to the end user
type Verdict string

const (
	VerdictClean             Verdict = "clean"
	VerdictCleanButConflicts Verdict = "clean_but_conflicts"
	VerdictNotClean          Verdict = "not_clean"
)

// TaxonomyDetail describes the avoid-guide entry behind a matched token
type TaxonomyDetail struct {
	Section  string   `json:"section"`
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Reason   string   `json:"reason"`
	Synonyms []string `json:"synonyms,omitempty"`
}

// FlaggedBadge pairs a hit token with the label the presentation layer renders.
// Section and Slug are set when the token resolved to an avoid-guide entry,
// enabling click-through navigation into the guide.
type FlaggedBadge struct {
	Token   string `json:"token"`
	Label   string `json:"label"`
	Section string `json:"section,omitempty"`
	Slug    string `json:"slug,omitempty"`
}

// AnalysisResult is the complete outcome of one ingredient analysis.
// It is a value object: created fresh per request and never mutated after
// construction.
type AnalysisResult struct {
	Source             string           `json:"source"`
	ParsedIngredients  []string         `json:"parsedIngredients"`
	Canonical          []string         `json:"canonical"`
	Taxonomy           []TaxonomyDetail `json:"taxonomy"`
	IsClean            bool             `json:"isClean"`
	Hits               []string         `json:"hits"`
	DietHits           []string         `json:"dietHits"`
	DietPreference     DietPreference   `json:"dietPreference,omitempty"`
	AllergyHits        []string         `json:"allergyHits"`
	AllergyPreferences []string         `json:"allergyPreferences"`
	Badges             []FlaggedBadge   `json:"badges"`
	Verdict            Verdict          `json:"verdict"`
	CachedAt           time.Time        `json:"cachedAt,omitempty"`
}
