package bliss

import (
	"sort"
	"strconv"
)

// SymbolID is the decimal-string identifier of a Bliss symbol, the key
// into the Dictionary. Compositions may additionally contain rendering
// markers (like "/" and ";") which are not SymbolIDs.
type SymbolID string

// Valid reports whether the id is an all-digit symbol id (as opposed to
// a rendering marker).
func (id SymbolID) Valid() bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// POSCategory is the color-coded part-of-speech category of a symbol.
type POSCategory string

const (
	POSYellow POSCategory = "YELLOW"
	POSRed    POSCategory = "RED"
	POSGreen  POSCategory = "GREEN"
	POSBlue   POSCategory = "BLUE"
	POSGrey   POSCategory = "GREY"
	POSWhite  POSCategory = "WHITE"
)

// HeadBearing reports whether the category marks a symbol eligible to
// act as a classifier.
func (p POSCategory) HeadBearing() bool {
	switch p {
	case POSYellow, POSRed, POSGreen, POSBlue:
		return true
	}
	return false
}

// Satellite reports whether the category marks a grammatical/modifier
// symbol (never a classifier by the POS rule).
func (p POSCategory) Satellite() bool {
	return p == POSGrey || p == POSWhite
}

// SymbolRecord is one entry of the Dictionary. Records are immutable
// once loaded.
type SymbolRecord struct {
	// POS is the color-coded part-of-speech category.
	POS POSCategory `json:"pos"`
	// IsCharacter is true for a Bliss character, false for a composed word.
	IsCharacter bool `json:"isCharacter,omitempty"`
	// Glosses maps ISO 639-1 language code → ordered gloss list.
	Glosses map[string][]string `json:"glosses,omitempty"`
	// Explanation is free-text background for the symbol.
	Explanation string `json:"explanation,omitempty"`
	// Semantics is the symbol's semantic effect, nil when it has none.
	Semantics SemanticDescriptor `json:"-"`
	// Old marks glosses flagged as historical during cleaning.
	Old bool `json:"is_old,omitempty"`
	// Composition lists the component ids of a composed word.
	Composition []int `json:"composition,omitempty"`
}

// Dictionary maps symbol id → record. It is built once and never
// mutated afterwards, so concurrent readers need no locking.
type Dictionary map[SymbolID]*SymbolRecord

// GlossesFor returns the record's glosses for lang, falling back to
// English when the requested language is absent.
func (r *SymbolRecord) GlossesFor(lang string) []string {
	if g, ok := r.Glosses[lang]; ok {
		return g
	}
	return r.Glosses["en"]
}

// Role names the functional role a symbol plays in a composition.
type Role string

const (
	RoleIndicator Role = "indicator"
	RoleModifier  Role = "modifier"
)

// RoleAssignment is the result of classifying a composition. Each
// bucket preserves the order of first appearance in the filtered input,
// and an id appears in at most one bucket. Errors are diagnostic:
// buckets filled before the error condition was detected remain
// populated.
type RoleAssignment struct {
	Classifier SymbolID   `json:"classifier,omitempty"`
	Specifiers []SymbolID `json:"specifiers"`
	Indicators []SymbolID `json:"indicators"`
	Modifiers  []SymbolID `json:"modifiers"`
	Errors     []string   `json:"errors,omitempty"`
}

// SemanticFact is one extracted meaning unit, tagged with the symbol it
// came from and the role under which it was read.
type SemanticFact struct {
	SymbolID   SymbolID           `json:"symbol_id"`
	Role       Role               `json:"role"`
	Descriptor SemanticDescriptor `json:"semantics"`
}

// filterSymbolIDs keeps the subsequence of valid symbol ids, dropping
// rendering markers silently.
func filterSymbolIDs(tokens []string) []SymbolID {
	var ids []SymbolID
	for _, t := range tokens {
		if id := SymbolID(t); id.Valid() {
			ids = append(ids, id)
		}
	}
	return ids
}

// sortedIDs returns the dictionary's ids in a fixed order: numeric ids
// ascending, then non-numeric ids lexicographically. Index construction
// iterates in this order so first-writer-wins stays reproducible across
// runs.
func sortedIDs(dict Dictionary) []SymbolID {
	ids := make([]SymbolID, 0, len(dict))
	for id := range dict {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []SymbolID) {
	sort.Slice(ids, func(i, j int) bool {
		a, b := ids[i], ids[j]
		na, errA := strconv.Atoi(string(a))
		nb, errB := strconv.Atoi(string(b))
		switch {
		case errA == nil && errB == nil:
			return na < nb
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return a < b
		}
	})
}
