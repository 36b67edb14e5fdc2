package bliss

import "fmt"

// Analyzer extracts glosses and combined semantic meaning from
// compositions.
type Analyzer struct {
	dict       Dictionary
	tables     *SemanticTables
	classifier *Classifier
}

// NewAnalyzer builds an analyzer over the given dictionary and tables.
func NewAnalyzer(dict Dictionary, tables *SemanticTables) *Analyzer {
	return &Analyzer{
		dict:       dict,
		tables:     tables,
		classifier: NewClassifier(dict, tables),
	}
}

// GlossInfo carries the human-language reading of one symbol.
type GlossInfo struct {
	ID          SymbolID `json:"id"`
	Glosses     []string `json:"glosses"`
	Explanation string   `json:"explanation,omitempty"`
	IsCharacter bool     `json:"isCharacter"`
}

// CompositionAnalysis is the combined semantic reading of a
// composition: its role structure plus the facts contributed by every
// indicator and modifier.
type CompositionAnalysis struct {
	Composition    []string       `json:"original_composition"`
	Classifier     SymbolID       `json:"classifier,omitempty"`
	ClassifierInfo *GlossInfo     `json:"classifier_info,omitempty"`
	Specifiers     []SymbolID     `json:"specifiers"`
	SpecifierInfo  []GlossInfo    `json:"specifier_info"`
	Semantics      []SemanticFact `json:"semantics"`
	Indicators     []SymbolID     `json:"indicators"`
	Modifiers      []SymbolID     `json:"modifiers"`
}

// CompositionStructure is the structural breakdown of a composition
// without semantic extraction.
type CompositionStructure struct {
	Composition       []string       `json:"original_composition"`
	Structure         RoleAssignment `json:"structure"`
	ClassifierGlosses *GlossInfo     `json:"classifier_glosses,omitempty"`
	SpecifierGlosses  []GlossInfo    `json:"specifier_glosses"`
	IndicatorCount    int            `json:"indicator_count"`
	ModifierCount     int            `json:"modifier_count"`
}

// SymbolGlosses returns the glosses and explanation for a single
// symbol in the requested language, falling back to English.
func (a *Analyzer) SymbolGlosses(id SymbolID, lang string) (GlossInfo, error) {
	rec, ok := a.dict[id]
	if !ok {
		return GlossInfo{}, fmt.Errorf("symbol %s: %w", id, ErrNotFound)
	}
	glosses := rec.GlossesFor(lang)
	if glosses == nil {
		glosses = []string{}
	}
	return GlossInfo{
		ID:          id,
		Glosses:     glosses,
		Explanation: rec.Explanation,
		IsCharacter: rec.IsCharacter,
	}, nil
}

// ExtractSemantics maps one indicator or modifier id to its semantic
// fact. The second result is false when the id carries no semantics
// under that role.
func (a *Analyzer) ExtractSemantics(id SymbolID, role Role) (SemanticFact, bool) {
	desc := a.tables.Lookup(id, role)
	if desc == nil {
		return SemanticFact{}, false
	}
	return SemanticFact{SymbolID: id, Role: role, Descriptor: desc}, true
}

// AnalyzeComposition classifies the composition and extracts the
// ordered list of semantic facts: every indicator first, then every
// modifier, each in its original sequence order. Classification errors
// abort the analysis.
func (a *Analyzer) AnalyzeComposition(tokens []string, lang string) (*CompositionAnalysis, error) {
	asn := a.classifier.Classify(tokens)
	if len(asn.Errors) > 0 {
		return nil, fmt.Errorf("analyze composition: %s", asn.Errors[0])
	}

	res := &CompositionAnalysis{
		Composition:   append([]string(nil), tokens...),
		Classifier:    asn.Classifier,
		Specifiers:    asn.Specifiers,
		SpecifierInfo: []GlossInfo{},
		Semantics:     []SemanticFact{},
		Indicators:    asn.Indicators,
		Modifiers:     asn.Modifiers,
	}

	if asn.Classifier != "" {
		info := a.glossInfo(asn.Classifier, lang)
		res.ClassifierInfo = &info
	}
	for _, id := range asn.Specifiers {
		res.SpecifierInfo = append(res.SpecifierInfo, a.glossInfo(id, lang))
	}

	for _, id := range asn.Indicators {
		if fact, ok := a.ExtractSemantics(id, RoleIndicator); ok {
			res.Semantics = append(res.Semantics, fact)
		}
	}
	for _, id := range asn.Modifiers {
		if fact, ok := a.ExtractSemantics(id, RoleModifier); ok {
			res.Semantics = append(res.Semantics, fact)
		}
	}
	return res, nil
}

// Structure returns the structural breakdown of a composition. Unlike
// AnalyzeComposition it never fails: a degraded assignment is reported
// as-is with its diagnostic errors.
func (a *Analyzer) Structure(tokens []string) *CompositionStructure {
	asn := a.classifier.Classify(tokens)

	res := &CompositionStructure{
		Composition:      append([]string(nil), tokens...),
		Structure:        asn,
		SpecifierGlosses: []GlossInfo{},
		IndicatorCount:   len(asn.Indicators),
		ModifierCount:    len(asn.Modifiers),
	}
	if asn.Classifier != "" {
		info := a.glossInfo(asn.Classifier, "en")
		res.ClassifierGlosses = &info
	}
	for _, id := range asn.Specifiers {
		res.SpecifierGlosses = append(res.SpecifierGlosses, a.glossInfo(id, "en"))
	}
	return res
}

// glossInfo is the advisory-grade lookup used inside analysis results:
// an unknown symbol yields a "(unknown)" placeholder instead of an
// error.
func (a *Analyzer) glossInfo(id SymbolID, lang string) GlossInfo {
	rec, ok := a.dict[id]
	if !ok {
		return GlossInfo{ID: id, Glosses: []string{"(unknown)"}}
	}
	glosses := rec.GlossesFor(lang)
	if glosses == nil {
		glosses = []string{"(unknown)"}
	}
	return GlossInfo{ID: id, Glosses: glosses, IsCharacter: rec.IsCharacter}
}
