package bliss

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for the fatal composition paths. Advisory conditions
// never surface as errors; they land in the Warnings of the result.
var (
	// ErrMissingField marks a specification lacking a required field.
	ErrMissingField = errors.New("missing required field")
	// ErrNotFound marks a gloss or symbol id that cannot be resolved.
	ErrNotFound = errors.New("not found")
)

// ComposeSpec is a semantic specification for a new composition. The
// classifier gloss is required; specifiers and semantics are optional.
// Each semantics entry is a single {TYPE: value} pair.
type ComposeSpec struct {
	Classifier string              `json:"classifier"`
	Specifiers []string            `json:"specifiers,omitempty"`
	Semantics  []map[string]string `json:"semantics,omitempty"`
}

// Composition is a synthesized symbol sequence plus any advisory
// warnings produced while resolving the specification.
type Composition struct {
	Composition []SymbolID `json:"composition"`
	Warnings    []string   `json:"warnings,omitempty"`
}

// Composer synthesizes compositions from semantic specifications or
// from explicit role-tagged ids. Its reverse indices are built once at
// construction from the immutable dictionary and are read-only
// afterwards, so a single Composer serves concurrent callers.
type Composer struct {
	dict   Dictionary
	tables *SemanticTables

	// glossToID indexes every English gloss. First writer wins, except
	// that a character displaces a composed word: characters are the
	// authoritative source for a gloss.
	glossToID map[string]SymbolID
	// semanticPathToID indexes "TYPE:value" for every symbol carrying a
	// Simple semantic effect. First writer wins.
	semanticPathToID map[string]SymbolID

	// fixed iteration orders for deterministic scans
	dictOrder      []SymbolID
	indicatorOrder []SymbolID
	modifierOrder  []SymbolID
}

// NewComposer builds the composer and its reverse indices.
func NewComposer(dict Dictionary, tables *SemanticTables) *Composer {
	c := &Composer{
		dict:             dict,
		tables:           tables,
		glossToID:        make(map[string]SymbolID),
		semanticPathToID: make(map[string]SymbolID),
		dictOrder:        sortedIDs(dict),
	}
	if tables != nil {
		c.indicatorOrder = sortedTableIDs(tables.Indicators)
		c.modifierOrder = sortedTableIDs(tables.Modifiers)
	}
	c.buildIndexes()
	return c
}

func (c *Composer) buildIndexes() {
	for _, id := range c.dictOrder {
		rec := c.dict[id]

		for _, gloss := range rec.Glosses["en"] {
			existing, ok := c.glossToID[gloss]
			if !ok {
				c.glossToID[gloss] = id
				continue
			}
			if rec.IsCharacter && !c.dict[existing].IsCharacter {
				c.glossToID[gloss] = id
			}
		}

		if s, ok := rec.Semantics.(Simple); ok {
			path := s.Type + ":" + s.Value
			if _, taken := c.semanticPathToID[path]; !taken {
				c.semanticPathToID[path] = id
			}
		}
	}
}

// FindByGloss resolves a gloss to a symbol id: exact match against the
// English gloss index first, then a case-insensitive scan of every
// gloss list in every language.
func (c *Composer) FindByGloss(gloss string) (SymbolID, bool) {
	if id, ok := c.glossToID[gloss]; ok {
		return id, true
	}

	lower := strings.ToLower(gloss)
	for _, id := range c.dictOrder {
		rec := c.dict[id]
		for _, lang := range sortedLangs(rec.Glosses) {
			for _, g := range rec.Glosses[lang] {
				if strings.ToLower(g) == lower {
					return id, true
				}
			}
		}
	}
	return "", false
}

// FindBySemanticPath resolves an exact "TYPE:value" pair against the
// dictionary-wide semantic-effect index. Unlike findSemanticSymbol this
// covers every symbol carrying a Simple effect, not just the
// indicator/modifier tables, and matches the value case-sensitively.
func (c *Composer) FindBySemanticPath(semType, value string) (SymbolID, bool) {
	id, ok := c.semanticPathToID[semType+":"+value]
	return id, ok
}

// ComposeFromSpec synthesizes a composition from a semantic
// specification. The output order is fixed: classifier, then resolved
// specifiers, then resolved semantic symbols in the order given.
// Unresolved specifiers and semantic items degrade to warnings; a
// missing or unresolvable classifier is fatal.
func (c *Composer) ComposeFromSpec(spec ComposeSpec) (*Composition, error) {
	if spec.Classifier == "" {
		return nil, fmt.Errorf("%w: classifier", ErrMissingField)
	}

	classifierID, ok := c.FindByGloss(spec.Classifier)
	if !ok {
		return nil, fmt.Errorf("classifier %q: %w", spec.Classifier, ErrNotFound)
	}

	res := &Composition{Composition: []SymbolID{classifierID}}

	for _, gloss := range spec.Specifiers {
		id, ok := c.FindByGloss(gloss)
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("specifier not found: %s", gloss))
			continue
		}
		res.Composition = append(res.Composition, id)
	}

	for _, item := range spec.Semantics {
		if len(item) != 1 {
			res.Warnings = append(res.Warnings, fmt.Sprintf("complex semantic spec not fully supported: %s", formatSemanticItem(item)))
			continue
		}
		var semType, value string
		for k, v := range item {
			semType, value = k, v
		}
		id, ok := c.findSemanticSymbol(semType, value)
		if !ok {
			res.Warnings = append(res.Warnings, fmt.Sprintf("no symbol found for semantic %s:%s", semType, value))
			continue
		}
		res.Composition = append(res.Composition, id)
	}

	return res, nil
}

// ComposeWithIDs synthesizes a composition from explicit role-tagged
// ids, in the conventional surface order: prefix modifiers, classifier,
// specifiers, trailing indicators. Ids absent from the dictionary are
// dropped with a warning, except the classifier, whose absence is
// fatal.
func (c *Composer) ComposeWithIDs(classifier SymbolID, specifiers, modifiers, indicators []SymbolID) (*Composition, error) {
	if _, ok := c.dict[classifier]; !ok {
		return nil, fmt.Errorf("classifier %s: %w", classifier, ErrNotFound)
	}

	res := &Composition{Composition: []SymbolID{}}
	appendKnown := func(ids []SymbolID, role string) {
		for _, id := range ids {
			if _, ok := c.dict[id]; !ok {
				res.Warnings = append(res.Warnings, fmt.Sprintf("%s %s not found", role, id))
				continue
			}
			res.Composition = append(res.Composition, id)
		}
	}

	appendKnown(modifiers, "modifier")
	res.Composition = append(res.Composition, classifier)
	appendKnown(specifiers, "specifier")
	appendKnown(indicators, "indicator")
	return res, nil
}

// findSemanticSymbol locates a symbol whose descriptor covers the
// requested pair, searching indicators before modifiers. Value
// comparison is case-insensitive.
func (c *Composer) findSemanticSymbol(semType, value string) (SymbolID, bool) {
	for _, id := range c.indicatorOrder {
		if c.tables.Indicators[id].Matches(semType, value) {
			return id, true
		}
	}
	for _, id := range c.modifierOrder {
		if c.tables.Modifiers[id].Matches(semType, value) {
			return id, true
		}
	}
	return "", false
}

func sortedLangs(glosses map[string][]string) []string {
	langs := make([]string, 0, len(glosses))
	for lang := range glosses {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

func formatSemanticItem(item map[string]string) string {
	keys := make([]string, 0, len(item))
	for k := range item {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+":"+item[k])
	}
	return strings.Join(parts, ", ")
}
