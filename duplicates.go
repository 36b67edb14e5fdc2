package bliss

import (
	"encoding/json"
	"sort"
	"strings"
)

// DuplicateReport groups symbols that share a gloss within a language
// while also agreeing on the historical flag and semantic effect, the
// cases where two entries are genuinely interchangeable.
type DuplicateReport struct {
	// Languages maps language code → formatted gloss key → the ids
	// sharing that gloss, sorted numerically. The key carries the
	// distinguishing metadata, e.g. "ring (OLD, POS: noun)".
	Languages map[string]map[string][]SymbolID `json:"languages"`
	// Groups is the total number of duplicate groups found.
	Groups int `json:"groups"`
	// PerLanguage counts groups per language code.
	PerLanguage map[string]int `json:"per_language"`
}

// metaSignature makes a record's historical flag and semantic effect
// hashable, so entries only group when their metadata agrees. Distinct
// descriptor shapes serialize distinctly.
func metaSignature(rec *SymbolRecord) string {
	sig := "current"
	if rec.Old {
		sig = "old"
	}
	if rec.Semantics != nil {
		b, err := json.Marshal(rec.Semantics)
		if err == nil {
			sig += "|" + string(b)
		}
	}
	return sig
}

// descriptorLabel renders a semantic effect for the report key.
func descriptorLabel(d SemanticDescriptor) string {
	pairs := func(tv []TypedValue, sep string) string {
		parts := make([]string, 0, len(tv))
		for _, p := range tv {
			parts = append(parts, p.Type+": "+p.Value)
		}
		return strings.Join(parts, sep)
	}
	switch v := d.(type) {
	case Simple:
		return v.Type + ": " + v.Value
	case Combination:
		return pairs(v.Parts, ", ")
	case Alternatives:
		return pairs(v.Options, " | ")
	}
	return ""
}

// formatDuplicateKey builds the report key for a gloss group: the gloss
// itself, annotated with whatever metadata distinguishes it from other
// groups of the same spelling.
func formatDuplicateKey(gloss string, rec *SymbolRecord) string {
	var extras []string
	if rec.Old {
		extras = append(extras, "OLD")
	}
	if rec.Semantics != nil {
		if label := descriptorLabel(rec.Semantics); label != "" {
			extras = append(extras, label)
		}
	}
	if len(extras) == 0 {
		return gloss
	}
	return gloss + " (" + strings.Join(extras, ", ") + ")"
}

// FindDuplicateGlosses scans the dictionary for glosses shared by more
// than one symbol with identical metadata.
func FindDuplicateGlosses(dict Dictionary) *DuplicateReport {
	// lang → gloss → signature → ids
	grouped := make(map[string]map[string]map[string][]SymbolID)

	for _, id := range sortedIDs(dict) {
		rec := dict[id]
		sig := metaSignature(rec)
		for lang, glosses := range rec.Glosses {
			byGloss, ok := grouped[lang]
			if !ok {
				byGloss = make(map[string]map[string][]SymbolID)
				grouped[lang] = byGloss
			}
			for _, gloss := range glosses {
				bySig, ok := byGloss[gloss]
				if !ok {
					bySig = make(map[string][]SymbolID)
					byGloss[gloss] = bySig
				}
				bySig[sig] = append(bySig[sig], id)
			}
		}
	}

	report := &DuplicateReport{
		Languages:   make(map[string]map[string][]SymbolID),
		PerLanguage: make(map[string]int),
	}
	for lang, byGloss := range grouped {
		results := make(map[string][]SymbolID)
		for gloss, bySig := range byGloss {
			for _, ids := range bySig {
				if len(ids) < 2 {
					continue
				}
				sortIDs(ids)
				results[formatDuplicateKey(gloss, dict[ids[0]])] = ids
				report.Groups++
			}
		}
		if len(results) > 0 {
			report.Languages[lang] = results
			report.PerLanguage[lang] = len(results)
		}
	}
	return report
}

// LanguageCodes returns the report's language codes sorted, for stable
// presentation.
func (r *DuplicateReport) LanguageCodes() []string {
	codes := make([]string, 0, len(r.Languages))
	for lang := range r.Languages {
		codes = append(codes, lang)
	}
	sort.Strings(codes)
	return codes
}
