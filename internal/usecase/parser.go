package usecase

import (
	"log"
	"regexp"
	"strings"

	"github.com/cleanfood/backend/internal/taxonomy"
)

// Package-level compiled regex patterns for performance
var (
	segmentSplitRegex   = regexp.MustCompile(`[\n;]+`)
	parentheticalRegex  = regexp.MustCompile(`\([^)]*\)`)
	bracketedRegex      = regexp.MustCompile(`\[[^\]]*\]`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)

	// "mono- and diglycerides" must survive tokenization as one ingredient;
	// the connective "and" would otherwise split it in half.
	monoDiglyceridesRegex = regexp.MustCompile(`(?i)mono-\s+and\s+diglycerides`)
)

// connectiveStopwords are filler phrases that separate ingredients inside a
// single comma segment ("water and sugar", "contains milk"). Longer phrases
// are listed first so they are replaced before their substrings.
var connectiveStopwords = []string{
	"other ingredients",
	"made with",
	"made from",
	"may contain",
	"made of",
	"containing",
	"ingredients",
	"including",
	"includes",
	"contains",
	"traces",
	"trace",
	"total",
	"with",
	"and",
	"into",
	"per",
}

// stopwordExemptPhrases are kept whole even though they contain a
// connective stopword
var stopwordExemptPhrases = map[string]bool{
	"mono- and diglycerides": true,
	"mono-and-diglycerides":  true,
	"mono and diglycerides":  true,
}

var connectiveStopwordSet = func() map[string]bool {
	set := make(map[string]bool, len(connectiveStopwords))
	for _, phrase := range connectiveStopwords {
		set[taxonomy.Normalize(phrase)] = true
	}
	return set
}()

var connectiveStopwordRegexps = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(connectiveStopwords))
	for _, phrase := range connectiveStopwords {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(phrase)+`\b`))
	}
	return patterns
}()

// IngredientParser splits free ingredient text into raw tokens. Tokens keep
// their original spelling; canonicalization happens downstream in the
// matcher.
type IngredientParser struct {
	enableDebugLogging bool
}

// NewIngredientParser creates a new ingredient parser
func NewIngredientParser(enableDebugLogging bool) *IngredientParser {
	return &IngredientParser{enableDebugLogging: enableDebugLogging}
}

// Parse splits raw ingredient text (comma/line/semicolon separated, possibly
// OCR-extracted) into raw ingredient tokens. Parenthesised and bracketed
// qualifiers are stripped, connective stopwords split compound segments,
// and tokens that duplicate an earlier token's normalized form are dropped.
func (p *IngredientParser) Parse(text string) []string {
	if text == "" {
		return nil
	}

	cleaned := strings.ReplaceAll(text, "\r", "\n")
	cleaned = strings.ReplaceAll(cleaned, "•", ",")

	var tokens []string
	seen := make(map[string]bool)

	for _, segment := range segmentSplitRegex.Split(cleaned, -1) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		segment = monoDiglyceridesRegex.ReplaceAllString(segment, "mono-and-diglycerides")
		segment = parentheticalRegex.ReplaceAllString(segment, " ")
		segment = bracketedRegex.ReplaceAllString(segment, " ")
		segment = strings.TrimSpace(multipleSpacesRegex.ReplaceAllString(segment, " "))
		if segment == "" {
			continue
		}

		for _, piece := range strings.Split(segment, ",") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}

			var parts []string
			if stopwordExemptPhrases[strings.ToLower(piece)] {
				parts = []string{piece}
			} else {
				parts = splitOnStopwords(piece)
			}

			for _, part := range parts {
				raw := strings.Trim(part, ".- \t")
				key := taxonomy.Normalize(raw)
				if key == "" || connectiveStopwordSet[key] || seen[key] {
					continue
				}
				seen[key] = true
				tokens = append(tokens, raw)
			}
		}
	}

	if p.enableDebugLogging {
		log.Printf("[PARSE] %d tokens from %d bytes of input", len(tokens), len(text))
	}

	return tokens
}

// splitOnStopwords breaks a comma segment on connective stopwords, so
// "water and sugar" yields two tokens
func splitOnStopwords(piece string) []string {
	temp := piece
	for _, pattern := range connectiveStopwordRegexps {
		temp = pattern.ReplaceAllString(temp, ",")
	}

	var parts []string
	for _, part := range strings.Split(temp, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return []string{piece}
	}
	return parts
}
