package bliss

import "fmt"

// Classifier assigns functional roles to the symbols of a composition.
//
// The rules form a fixed priority chain, evaluated top-down with early
// return:
//
//  1. indicator-anchored: a grammatical indicator attaches to a head
//     that precedes it, so the first head-bearing symbol before the
//     first indicator is the classifier (falling back to the symbol
//     immediately before the indicator when no head precedes it).
//  2. part of speech: the first head-bearing (colored) symbol is the
//     classifier; a later head-bearing symbol is demoted to specifier.
//  3. all-satellite fallback: a composition built entirely from
//     grey/white symbols promotes its first symbol to classifier.
//
// Classifier is pure: it reads the dictionary and semantic tables and
// never mutates them, so one instance serves concurrent callers.
type Classifier struct {
	dict   Dictionary
	tables *SemanticTables
	rules  []classifyRule
}

// classifyRule is one guard/action step of the chain. It fills res as
// far as its rule reaches and reports whether the chain should stop.
type classifyRule struct {
	name  string
	apply func(ids []SymbolID, res *RoleAssignment) bool
}

// NewClassifier builds a classifier over the given dictionary and
// semantic tables.
func NewClassifier(dict Dictionary, tables *SemanticTables) *Classifier {
	c := &Classifier{dict: dict, tables: tables}
	c.rules = []classifyRule{
		{name: "indicator-anchored", apply: c.applyIndicatorRule},
		{name: "part-of-speech", apply: c.applyPOSRule},
		{name: "all-satellite", apply: c.applySatelliteFallback},
	}
	return c
}

// IsClassifier reports whether the symbol can act as a classifier:
// present in the dictionary with a head-bearing POS category.
func (c *Classifier) IsClassifier(id SymbolID) bool {
	rec, ok := c.dict[id]
	return ok && rec.POS.HeadBearing()
}

// IsModifier reports whether the symbol is a modifier.
func (c *Classifier) IsModifier(id SymbolID) bool {
	return c.tables.IsModifier(id)
}

// IsIndicator reports whether the symbol is an indicator.
func (c *Classifier) IsIndicator(id SymbolID) bool {
	return c.tables.IsIndicator(id)
}

// Classify assigns roles to a composition's tokens. Rendering markers
// are filtered out first and never reported; classification errors are
// accumulated in the result rather than returned.
func (c *Classifier) Classify(tokens []string) RoleAssignment {
	res := RoleAssignment{
		Specifiers: []SymbolID{},
		Indicators: []SymbolID{},
		Modifiers:  []SymbolID{},
	}

	ids := filterSymbolIDs(tokens)
	if len(ids) == 0 {
		res.Errors = append(res.Errors, "no valid symbol ids found in composition")
		return res
	}

	for _, rule := range c.rules {
		if rule.apply(ids, &res) {
			break
		}
	}
	return res
}

// applyIndicatorRule anchors the classifier on the first indicator:
// the classifier is the first head-bearing symbol before it, or, when
// no head-bearing symbol precedes it, the symbol immediately before
// it. When any indicator is present this rule fully determines the
// assignment. Symbols before the classifier are prefix modifiers;
// everything after it is sorted by table membership.
func (c *Classifier) applyIndicatorRule(ids []SymbolID, res *RoleAssignment) bool {
	first := -1
	for i, id := range ids {
		if c.IsIndicator(id) {
			first = i
			break
		}
	}
	if first < 0 {
		return false
	}

	if first == 0 {
		res.Errors = append(res.Errors, "first symbol is an indicator; no classifier found before it")
		return true
	}

	cls := first - 1
	for i := 0; i < first; i++ {
		if c.IsClassifier(ids[i]) {
			cls = i
			break
		}
	}

	res.Classifier = ids[cls]
	res.Modifiers = append(res.Modifiers, ids[:cls]...)

	for _, id := range ids[cls+1:] {
		switch {
		case c.IsIndicator(id):
			res.Indicators = append(res.Indicators, id)
		case c.IsModifier(id):
			res.Modifiers = append(res.Modifiers, id)
		default:
			res.Specifiers = append(res.Specifiers, id)
		}
	}
	return true
}

// applyPOSRule classifies by color category when no indicator exists.
// Only the first head-bearing symbol becomes the classifier; a second
// one is demoted to specifier rather than out-ranking it.
func (c *Classifier) applyPOSRule(ids []SymbolID, res *RoleAssignment) bool {
	for _, id := range ids {
		switch {
		case c.IsModifier(id):
			res.Modifiers = append(res.Modifiers, id)
		case c.IsClassifier(id):
			if res.Classifier == "" {
				res.Classifier = id
			} else {
				res.Specifiers = append(res.Specifiers, id)
			}
		default:
			res.Specifiers = append(res.Specifiers, id)
		}
	}
	return res.Classifier != ""
}

// applySatelliteFallback handles compositions with no head-bearing
// symbol at all: a grey/white first symbol is promoted to classifier
// and pulled out of whichever bucket the POS rule placed it in.
func (c *Classifier) applySatelliteFallback(ids []SymbolID, res *RoleAssignment) bool {
	first := ids[0]
	rec, ok := c.dict[first]
	if !ok {
		res.Errors = append(res.Errors, fmt.Sprintf("symbol %s not found in knowledge graph", first))
		return true
	}
	if !rec.POS.Satellite() {
		res.Errors = append(res.Errors, "no classifier found in composition")
		return true
	}

	res.Classifier = first
	res.Specifiers = removeAll(res.Specifiers, first)
	res.Modifiers = removeFirst(res.Modifiers, first)
	return true
}

func removeAll(ids []SymbolID, id SymbolID) []SymbolID {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func removeFirst(ids []SymbolID, id SymbolID) []SymbolID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
