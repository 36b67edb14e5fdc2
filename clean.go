package bliss

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// RawSymbol is one uncleaned dictionary entry: per-language description
// strings that still carry markup like underscores, "(s)" plurals and
// "_(OLD)" flags.
type RawSymbol struct {
	Description map[string]string `json:"description"`
	POS         POSCategory       `json:"pos"`
	IsCharacter bool              `json:"isCharacter,omitempty"`
	Explanation string            `json:"explanation,omitempty"`
	Composition []int             `json:"composition,omitempty"`
}

// RawDictionary is the uncleaned input of the offline pipeline.
type RawDictionary map[SymbolID]RawSymbol

// concretizationID marks a composed word as a concretization when it
// appears among the word's components.
const concretizationID = 9009

// specialGlosses overrides the English glosses of punctuation, digit
// and letter symbols whose descriptions don't clean mechanically.
var specialGlosses = buildSpecialGlosses()

func buildSpecialGlosses() map[SymbolID][]string {
	m := map[SymbolID][]string{
		"8483": {"!"}, "8484": {"%"}, "8485": {"?"}, "8486": {"."},
		"8487": {","}, "8488": {":"}, "8489": {"'"}, "8490": {"degree"},
	}
	// digits 8496..8505 → "0".."9"
	for i := 0; i <= 9; i++ {
		m[SymbolID(strconv.Itoa(8496+i))] = []string{string(rune('0' + i))}
	}
	// lowercase letters 8521..8546 → "a".."z"
	for i := 0; i < 26; i++ {
		m[SymbolID(strconv.Itoa(8521+i))] = []string{string(rune('a' + i))}
	}
	// uppercase letters 8551..8576 → "A".."Z"
	for i := 0; i < 26; i++ {
		m[SymbolID(strconv.Itoa(8551+i))] = []string{string(rune('A' + i))}
	}
	return m
}

// pluralRe matches a gloss ending in the "(s)" plural marker.
var pluralRe = regexp.MustCompile(`^(.*)\(s\)$`)

// contextRe captures a trailing parenthetical context suffix such as
// " (ckb)"; the group is the last parenthesized run in the string.
var contextRe = regexp.MustCompile(`^(.*?)\s*(\([^)]*\))$`)

// expandPlural expands "glove(s)" into ["glove", "gloves"]; any other
// gloss passes through as a single-element list.
func expandPlural(text string) []string {
	if m := pluralRe.FindStringSubmatch(text); m != nil {
		return []string{m[1], m[1] + "s"}
	}
	return []string{text}
}

// cleanLanguageString turns one raw description string into its cleaned
// gloss list, reporting whether it carried the historical "_(OLD)"
// marker. A trailing parenthetical context applies to every
// comma-separated gloss before it; the "(s)" plural marker is never a
// context.
func cleanLanguageString(raw string) ([]string, bool) {
	if raw == "" {
		return nil, false
	}

	text := raw
	old := false

	if strings.HasSuffix(text, "_(OLD)") {
		text = strings.TrimSuffix(text, "_(OLD)")
		old = true
	}
	if strings.HasSuffix(text, "-(to)") {
		text = strings.TrimSuffix(text, "-(to)")
	}
	text = strings.ReplaceAll(text, "_", " ")

	context := ""
	if m := contextRe.FindStringSubmatch(text); m != nil && m[2] != "(s)" {
		text = m[1]
		context = " " + m[2]
	}

	var glosses []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, g := range expandPlural(part) {
			glosses = append(glosses, g+context)
		}
	}
	return glosses, old
}

// posSemantics derives the semantic effect a cleaned record carries
// from its POS color and its components: RED symbols are verbs,
// YELLOW/BLUE are nouns, and a composition containing the
// concretization symbol adds a TYPE_SHIFT.
func posSemantics(pos POSCategory, composition []int) SemanticDescriptor {
	var parts []TypedValue
	switch pos {
	case POSRed:
		parts = append(parts, TypedValue{Type: "POS", Value: "verb"})
	case POSYellow, POSBlue:
		parts = append(parts, TypedValue{Type: "POS", Value: "noun"})
	}
	for _, c := range composition {
		if c == concretizationID {
			parts = append(parts, TypedValue{Type: "TYPE_SHIFT", Value: "concretization"})
			break
		}
	}
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return Simple{Type: parts[0].Type, Value: parts[0].Value}
	default:
		return Combination{Parts: parts}
	}
}

// CleanDictionary runs the offline cleaning pipeline over a raw
// dictionary, producing the validated dictionary the engine consumes.
func CleanDictionary(raw RawDictionary) Dictionary {
	dict := make(Dictionary, len(raw))

	for id, item := range raw {
		rec := &SymbolRecord{
			POS:         item.POS,
			IsCharacter: item.IsCharacter,
			Explanation: item.Explanation,
			Composition: item.Composition,
			Glosses:     make(map[string][]string, len(item.Description)),
		}

		for _, lang := range sortedKeys(item.Description) {
			var glosses []string
			if lang == "en" && specialGlosses[id] != nil {
				glosses = specialGlosses[id]
			} else {
				var old bool
				glosses, old = cleanLanguageString(item.Description[lang])
				if old {
					rec.Old = true
				}
			}
			if len(glosses) > 0 {
				rec.Glosses[lang] = glosses
			}
		}

		rec.Semantics = posSemantics(item.POS, item.Composition)
		dict[id] = rec
	}
	return dict
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
