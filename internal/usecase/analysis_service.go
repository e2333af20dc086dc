package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cleanfood/backend/internal/domain"
	"github.com/cleanfood/backend/internal/rules"
	"github.com/cleanfood/backend/internal/taxonomy"
)

// Result source labels
const (
	sourceEngine   = "engine"   // verdict computed by the in-process pipeline
	sourceExternal = "external" // isClean supplied by the caller
	sourceCache    = "cache"
)

// AnalysisServiceConfig holds configuration for the analysis service
type AnalysisServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// AnalysisService runs the full ingredient analysis pipeline:
// parse -> match -> classify -> combine, with result caching.
type AnalysisService struct {
	cache      domain.AnalysisCache
	classifier domain.CleanlinessClassifier
	parser     *IngredientParser
	matcher    *Matcher
	cacheTTL   time.Duration
}

// NewAnalysisService creates a new analysis service with dependencies
func NewAnalysisService(
	cache domain.AnalysisCache,
	classifier domain.CleanlinessClassifier,
	avoidIndex *taxonomy.Index,
	config AnalysisServiceConfig,
) *AnalysisService {
	if classifier == nil {
		panic("usecase: NewAnalysisService requires a non-nil classifier")
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &AnalysisService{
		cache:      cache,
		classifier: classifier,
		parser:     NewIngredientParser(config.EnableDebugLogging),
		matcher:    NewMatcher(avoidIndex, config.EnableDebugLogging),
		cacheTTL:   cacheTTL,
	}
}

// Analyze checks an ingredient list against the avoid guide and the user's
// preferences and produces a complete AnalysisResult.
func (s *AnalysisService) Analyze(ctx context.Context, request *domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	if request == nil || strings.TrimSpace(request.Ingredients) == "" {
		return nil, domain.ErrInvalidRequest
	}

	dietPref, dietRules := s.resolveDiet(request.Preferences)
	var allergyLabels []string
	var allergyRules *rules.RuleSet
	if request.Preferences != nil {
		allergyLabels, allergyRules = rules.ForAllergies(request.Preferences.Allergies)
	}

	cacheKey := generateCacheKey(request, dietPref, allergyLabels)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			copied := *cached
			copied.Source = sourceCache
			return &copied, nil
		}
	}

	tokens := s.parser.Parse(request.Ingredients)
	outcome := s.matcher.Match(tokens, dietRules, allergyRules)

	canonical := make([]string, 0, len(tokens))
	var details []domain.TaxonomyDetail
	for _, token := range tokens {
		canonical = append(canonical, taxonomy.Normalize(token))
		if match := s.matcher.avoidIndex.Lookup(token); match != nil {
			details = append(details, domain.TaxonomyDetail{
				Section:  string(match.Section),
				Slug:     match.Item.Slug,
				Name:     match.Item.Name,
				Reason:   match.Item.Reason,
				Synonyms: match.Item.Synonyms,
			})
		}
	}

	source := sourceEngine
	var isClean bool
	if request.IsClean != nil {
		isClean = *request.IsClean
		source = sourceExternal
	} else {
		var err error
		isClean, err = s.classifier.Classify(ctx, canonical, outcome.AvoidHits)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrClassifierFailure, err)
		}
	}

	result := &domain.AnalysisResult{
		Source:             source,
		ParsedIngredients:  tokens,
		Canonical:          canonical,
		Taxonomy:           details,
		IsClean:            isClean,
		Hits:               emptyIfNil(outcome.AvoidHits),
		DietHits:           emptyIfNil(outcome.DietHits),
		DietPreference:     dietPref,
		AllergyHits:        emptyIfNil(outcome.AllergyHits),
		AllergyPreferences: emptyIfNil(allergyLabels),
		Badges:             s.buildBadges(outcome),
		Verdict:            CombineVerdict(isClean, outcome.DietHits, outcome.AllergyHits),
	}

	if s.cache != nil {
		stored := *result
		stored.CachedAt = time.Now()
		// Caching is best-effort; a failed write never fails the analysis.
		_ = s.cache.Set(ctx, cacheKey, &stored, s.cacheTTL)
	}

	return result, nil
}

// resolveDiet validates the requested regime against the known rule sets.
// Unknown regimes degrade to "no active rule set" rather than erroring.
func (s *AnalysisService) resolveDiet(prefs *domain.Preferences) (domain.DietPreference, *rules.RuleSet) {
	if prefs == nil {
		return "", nil
	}
	pref := domain.DietPreference(strings.ToLower(strings.TrimSpace(string(prefs.Diet))))
	rule := rules.ForDiet(pref)
	if rule == nil {
		return "", nil
	}
	return pref, rule
}

// buildBadges derives display badges for every hit, avoid-list hits first,
// preserving hit order and de-duplicating by raw token
func (s *AnalysisService) buildBadges(outcome MatchOutcome) []domain.FlaggedBadge {
	badges := make([]domain.FlaggedBadge, 0, len(outcome.AvoidHits)+len(outcome.DietHits)+len(outcome.AllergyHits))
	seen := make(map[string]bool)

	appendHits := func(hits []string) {
		for _, token := range hits {
			if seen[token] {
				continue
			}
			seen[token] = true
			label, match := s.matcher.BadgeLabel(token)
			badge := domain.FlaggedBadge{Token: token, Label: label}
			if match != nil {
				badge.Section = string(match.Section)
				badge.Slug = match.Item.Slug
			}
			badges = append(badges, badge)
		}
	}

	appendHits(outcome.AvoidHits)
	appendHits(outcome.DietHits)
	appendHits(outcome.AllergyHits)
	return badges
}

// generateCacheKey creates a normalized cache key from the request.
// Format: "analysis:{normalized_text}:{diet}:{sorted_allergies}:{clean_flag}"
func generateCacheKey(request *domain.AnalysisRequest, diet domain.DietPreference, allergyLabels []string) string {
	labels := make([]string, 0, len(allergyLabels))
	for _, label := range allergyLabels {
		labels = append(labels, taxonomy.Normalize(label))
	}
	sort.Strings(labels)

	cleanFlag := "auto"
	if request.IsClean != nil {
		cleanFlag = fmt.Sprintf("ext-%t", *request.IsClean)
	}

	return fmt.Sprintf("analysis:%s:%s:%s:%s",
		taxonomy.Normalize(request.Ingredients),
		diet,
		strings.Join(labels, "+"),
		cleanFlag,
	)
}

// emptyIfNil keeps JSON output stable: hit collections serialize as [] even
// when no token matched
func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
