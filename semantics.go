package bliss

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// TypedValue is one elementary semantic pair, e.g. NUMBER:plural.
type TypedValue struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// SemanticDescriptor is the closed set of semantic-effect shapes a
// symbol may carry: Simple (one fact), Alternatives (any one of the
// options may be intended) or Combination (all parts apply at once).
// Every consumer switches over these three; there is no fourth shape.
type SemanticDescriptor interface {
	// Matches reports whether the descriptor covers the given pair.
	// Value comparison is case-insensitive.
	Matches(semType, value string) bool

	isDescriptor()
}

// Simple is a single type/value semantic effect.
type Simple struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Alternatives is the "or" shape: exactly one option is intended.
type Alternatives struct {
	Options []TypedValue `json:"or"`
}

// Combination is the "and" shape: all parts apply simultaneously.
type Combination struct {
	Parts []TypedValue `json:"and"`
}

func (Simple) isDescriptor()       {}
func (Alternatives) isDescriptor() {}
func (Combination) isDescriptor()  {}

func (s Simple) Matches(semType, value string) bool {
	return s.Type == semType && strings.EqualFold(s.Value, value)
}

func (a Alternatives) Matches(semType, value string) bool {
	return matchesAny(a.Options, semType, value)
}

func (c Combination) Matches(semType, value string) bool {
	return matchesAny(c.Parts, semType, value)
}

func matchesAny(pairs []TypedValue, semType, value string) bool {
	for _, p := range pairs {
		if p.Type == semType && strings.EqualFold(p.Value, value) {
			return true
		}
	}
	return false
}

// decodeDescriptor parses a JSON semantic descriptor. Accepted shapes:
//
//	{"type":"NUMBER","value":"plural"}
//	{"or":[{"type":...,"value":...}, ...]}
//	{"and":[{"type":...,"value":...}, ...]}
//	{"POS":"noun", ...}                      (flat pipeline form)
//
// The flat form with one key becomes a Simple, with several keys a
// Combination (keys sorted). Anything else is an error.
func decodeDescriptor(raw json.RawMessage) (SemanticDescriptor, error) {
	var shaped struct {
		Type  string       `json:"type"`
		Value string       `json:"value"`
		Or    []TypedValue `json:"or"`
		And   []TypedValue `json:"and"`
	}
	if err := json.Unmarshal(raw, &shaped); err == nil {
		switch {
		case len(shaped.Or) > 0:
			return Alternatives{Options: shaped.Or}, nil
		case len(shaped.And) > 0:
			return Combination{Parts: shaped.And}, nil
		case shaped.Type != "" && shaped.Value != "":
			return Simple{Type: shaped.Type, Value: shaped.Value}, nil
		}
	}

	var flat map[string]string
	if err := json.Unmarshal(raw, &flat); err != nil || len(flat) == 0 {
		return nil, fmt.Errorf("unrecognized semantic descriptor %s", raw)
	}
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 1 {
		return Simple{Type: keys[0], Value: flat[keys[0]]}, nil
	}
	parts := make([]TypedValue, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, TypedValue{Type: k, Value: flat[k]})
	}
	return Combination{Parts: parts}, nil
}

// symbolRecordJSON is the wire form of SymbolRecord; Semantics needs a
// two-phase decode because of the descriptor variants.
type symbolRecordJSON struct {
	POS         POSCategory         `json:"pos"`
	IsCharacter bool                `json:"isCharacter,omitempty"`
	Glosses     map[string][]string `json:"glosses,omitempty"`
	Explanation string              `json:"explanation,omitempty"`
	Semantics   json.RawMessage     `json:"semantics,omitempty"`
	Old         bool                `json:"is_old,omitempty"`
	Composition []int               `json:"composition,omitempty"`
}

func (r *SymbolRecord) UnmarshalJSON(data []byte) error {
	var w symbolRecordJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	r.POS = w.POS
	r.IsCharacter = w.IsCharacter
	r.Glosses = w.Glosses
	r.Explanation = w.Explanation
	r.Old = w.Old
	r.Composition = w.Composition
	r.Semantics = nil
	if len(w.Semantics) > 0 && string(w.Semantics) != "null" {
		d, err := decodeDescriptor(w.Semantics)
		if err != nil {
			return err
		}
		r.Semantics = d
	}
	return nil
}

func (r *SymbolRecord) MarshalJSON() ([]byte, error) {
	w := symbolRecordJSON{
		POS:         r.POS,
		IsCharacter: r.IsCharacter,
		Glosses:     r.Glosses,
		Explanation: r.Explanation,
		Old:         r.Old,
		Composition: r.Composition,
	}
	if r.Semantics != nil {
		b, err := json.Marshal(r.Semantics)
		if err != nil {
			return nil, err
		}
		w.Semantics = b
	}
	return json.Marshal(w)
}

// SemanticTables holds the two fixed id → descriptor mappings driving
// role membership and semantic extraction. The key sets are disjoint:
// an id appears in at most one of the two. Tables are supplied at
// engine construction and never modified.
type SemanticTables struct {
	Modifiers  map[SymbolID]SemanticDescriptor
	Indicators map[SymbolID]SemanticDescriptor
}

// IsModifier reports membership in the modifier table.
func (t *SemanticTables) IsModifier(id SymbolID) bool {
	if t == nil {
		return false
	}
	_, ok := t.Modifiers[id]
	return ok
}

// IsIndicator reports membership in the indicator table.
func (t *SemanticTables) IsIndicator(id SymbolID) bool {
	if t == nil {
		return false
	}
	_, ok := t.Indicators[id]
	return ok
}

// Lookup returns the descriptor for id under the given role, or nil.
func (t *SemanticTables) Lookup(id SymbolID, role Role) SemanticDescriptor {
	if t == nil {
		return nil
	}
	if role == RoleIndicator {
		return t.Indicators[id]
	}
	return t.Modifiers[id]
}

// sortedTableIDs returns the table's ids in fixed numeric order so
// lookups that scan a table resolve deterministically.
func sortedTableIDs(m map[SymbolID]SemanticDescriptor) []SymbolID {
	ids := make([]SymbolID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}
