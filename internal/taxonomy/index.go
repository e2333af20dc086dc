package taxonomy

import "sync"

// Match associates a matched key with the guide entry and section it
// belongs to. Constructed fresh per lookup, never mutated.
type Match struct {
	Section SectionID  `json:"section"`
	Item    Ingredient `json:"item"`
}

// Duplicate records a synonym collision found at build time: two distinct
// entries registered the same normalized key. The first-registered entry
// keeps the key; the collision usually indicates a data-authoring bug.
type Duplicate struct {
	Key         string
	KeptSlug    string
	DroppedSlug string
}

// Index is the read-only synonym lookup table over the avoid guide.
// Built once and never mutated afterwards, so it is safe for concurrent use.
type Index struct {
	sections   []Section
	byKey      map[string]Match
	duplicates []Duplicate
}

// NewIndex builds a lookup index from the given sections. For each item the
// candidate-key set is {slug, name} followed by the synonyms in authored
// order; every candidate is normalized and inserted if non-empty and not
// already present. First writer wins, which keeps the index deterministic
// even if a careless edit introduces an overlapping synonym between entries.
func NewIndex(sections []Section) *Index {
	ix := &Index{
		sections: sections,
		byKey:    make(map[string]Match),
	}

	for _, section := range sections {
		for _, item := range section.Items {
			candidates := make([]string, 0, len(item.Synonyms)+2)
			candidates = append(candidates, item.Slug, item.Name)
			candidates = append(candidates, item.Synonyms...)

			for _, candidate := range candidates {
				key := Normalize(candidate)
				if key == "" {
					continue
				}
				if existing, ok := ix.byKey[key]; ok {
					if existing.Item.Slug != item.Slug {
						ix.duplicates = append(ix.duplicates, Duplicate{
							Key:         key,
							KeptSlug:    existing.Item.Slug,
							DroppedSlug: item.Slug,
						})
					}
					continue
				}
				ix.byKey[key] = Match{Section: section.ID, Item: item}
			}
		}
	}

	return ix
}

var (
	defaultIndex     *Index
	defaultIndexOnce sync.Once
)

// Default returns the index over the curated avoid guide, built on first use
// and shared for the process lifetime.
func Default() *Index {
	defaultIndexOnce.Do(func() {
		defaultIndex = NewIndex(Sections())
	})
	return defaultIndex
}

// Lookup resolves a name, slug, or synonym to its guide entry. Returns nil
// for empty input or when the normalized form is not in the index.
func (ix *Index) Lookup(name string) *Match {
	if name == "" {
		return nil
	}
	key := Normalize(name)
	if key == "" {
		return nil
	}
	match, ok := ix.byKey[key]
	if !ok {
		return nil
	}
	return &match
}

// ListAll returns every section/item pair across all sections in authoring
// order. It iterates the section list directly, so the result is unaffected
// by synonym collisions in the key map.
func (ix *Index) ListAll() []Match {
	var all []Match
	for _, section := range ix.sections {
		for _, item := range section.Items {
			all = append(all, Match{Section: section.ID, Item: item})
		}
	}
	return all
}

// Sections returns the section list the index was built from
func (ix *Index) Sections() []Section {
	return ix.sections
}

// DuplicateSynonyms returns the synonym collisions detected at build time.
// Collisions are not rejected; they are reported so the data can be fixed.
func (ix *Index) DuplicateSynonyms() []Duplicate {
	return ix.duplicates
}

// Len returns the number of registered lookup keys
func (ix *Index) Len() int {
	return len(ix.byKey)
}
