// Package bliss analyzes and synthesizes Blissymbolics compositions:
// sequences of symbol ids whose combined meaning is built from a head
// classifier, refining specifiers, grammatical indicators and
// prefix/suffix modifiers. The engine works over an immutable
// dictionary loaded once at construction.
package bliss

import (
	"errors"
	"fmt"
)

// Engine is the unified interface over classification, analysis and
// composition. It holds no mutable state after construction; one
// instance serves concurrent callers.
type Engine struct {
	dict       Dictionary
	tables     *SemanticTables
	classifier *Classifier
	analyzer   *Analyzer
	composer   *Composer
}

// New builds an engine over an already-validated dictionary and the
// modifier/indicator semantic tables. A nil dictionary is rejected; a
// nil tables value is treated as empty tables.
func New(dict Dictionary, tables *SemanticTables) (*Engine, error) {
	if dict == nil {
		return nil, errors.New("bliss: dictionary must not be nil")
	}
	if tables == nil {
		tables = &SemanticTables{}
	}
	return &Engine{
		dict:       dict,
		tables:     tables,
		classifier: NewClassifier(dict, tables),
		analyzer:   NewAnalyzer(dict, tables),
		composer:   NewComposer(dict, tables),
	}, nil
}

// SymbolGlosses returns glosses and explanation for one symbol.
func (e *Engine) SymbolGlosses(id SymbolID, lang string) (GlossInfo, error) {
	return e.analyzer.SymbolGlosses(id, lang)
}

// CompositionGlosses carries the per-component readings of an existing
// composition.
type CompositionGlosses struct {
	Composition []string    `json:"composition"`
	Components  []GlossInfo `json:"components"`
}

// Glosses returns the gloss info for every symbol id of a composition.
// Rendering markers are skipped; unknown ids degrade to a "(unknown)"
// placeholder.
func (e *Engine) Glosses(tokens []string, lang string) *CompositionGlosses {
	res := &CompositionGlosses{
		Composition: append([]string(nil), tokens...),
		Components:  []GlossInfo{},
	}
	for _, id := range filterSymbolIDs(tokens) {
		res.Components = append(res.Components, e.analyzer.glossInfo(id, lang))
	}
	return res
}

// Analyze classifies a composition and extracts its combined semantics.
func (e *Engine) Analyze(tokens []string, lang string) (*CompositionAnalysis, error) {
	return e.analyzer.AnalyzeComposition(tokens, lang)
}

// Structure returns the structural breakdown of a composition.
func (e *Engine) Structure(tokens []string) *CompositionStructure {
	return e.analyzer.Structure(tokens)
}

// Classify assigns functional roles to a composition's symbols.
func (e *Engine) Classify(tokens []string) RoleAssignment {
	return e.classifier.Classify(tokens)
}

// ComposeFromSpec synthesizes a composition from a semantic
// specification.
func (e *Engine) ComposeFromSpec(spec ComposeSpec) (*Composition, error) {
	return e.composer.ComposeFromSpec(spec)
}

// ComposeWithIDs synthesizes a composition from explicit role-tagged
// symbol ids.
func (e *Engine) ComposeWithIDs(classifier SymbolID, specifiers, modifiers, indicators []SymbolID) (*Composition, error) {
	return e.composer.ComposeWithIDs(classifier, specifiers, modifiers, indicators)
}

// FindByGloss resolves a gloss to a symbol id.
func (e *Engine) FindByGloss(gloss string) (SymbolID, bool) {
	return e.composer.FindByGloss(gloss)
}

// IsClassifier reports whether a symbol can act as a classifier.
func (e *Engine) IsClassifier(id SymbolID) bool { return e.classifier.IsClassifier(id) }

// IsModifier reports whether a symbol is a modifier.
func (e *Engine) IsModifier(id SymbolID) bool { return e.classifier.IsModifier(id) }

// IsIndicator reports whether a symbol is an indicator.
func (e *Engine) IsIndicator(id SymbolID) bool { return e.classifier.IsIndicator(id) }

// SymbolInfo is the full per-symbol profile: dictionary record fields
// plus the symbol's functional type and semantic effects.
type SymbolInfo struct {
	ID          SymbolID            `json:"id"`
	POS         POSCategory         `json:"pos"`
	Glosses     map[string][]string `json:"glosses"`
	IsCharacter bool                `json:"isCharacter"`
	Explanation string              `json:"explanation,omitempty"`
	// Type is "modifier", "indicator" or "character_or_word".
	Type string `json:"type"`
	// Effect is the record's own semantic effect, if any.
	Effect SemanticDescriptor `json:"effect,omitempty"`
	// RoleSemantics is the table entry backing a modifier/indicator.
	RoleSemantics SemanticDescriptor `json:"role_semantics,omitempty"`
}

// SymbolInfo returns the full profile of a symbol.
func (e *Engine) SymbolInfo(id SymbolID) (SymbolInfo, error) {
	rec, ok := e.dict[id]
	if !ok {
		return SymbolInfo{}, fmt.Errorf("symbol %s: %w", id, ErrNotFound)
	}
	info := SymbolInfo{
		ID:          id,
		POS:         rec.POS,
		Glosses:     rec.Glosses,
		IsCharacter: rec.IsCharacter,
		Explanation: rec.Explanation,
		Effect:      rec.Semantics,
		Type:        "character_or_word",
	}
	switch {
	case e.tables.IsModifier(id):
		info.Type = string(RoleModifier)
		info.RoleSemantics = e.tables.Modifiers[id]
	case e.tables.IsIndicator(id):
		info.Type = string(RoleIndicator)
		info.RoleSemantics = e.tables.Indicators[id]
	}
	return info, nil
}

// Stats summarizes the loaded dictionary.
type Stats struct {
	Symbols       int `json:"symbols"`
	Characters    int `json:"characters"`
	ComposedWords int `json:"composed_words"`
}

// Stats returns symbol counts for the loaded dictionary.
func (e *Engine) Stats() Stats {
	s := Stats{Symbols: len(e.dict)}
	for _, rec := range e.dict {
		if rec.IsCharacter {
			s.Characters++
		} else {
			s.ComposedWords++
		}
	}
	return s
}
