package bliss

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindDuplicateGlosses(t *testing.T) {
	dict := Dictionary{
		"100": {POS: POSYellow, Glosses: map[string][]string{"en": {"ring"}}},
		"200": {POS: POSYellow, Glosses: map[string][]string{"en": {"ring"}}},
		"300": {POS: POSYellow, Glosses: map[string][]string{"en": {"ring"}}, Old: true},
		"400": {POS: POSBlue, Glosses: map[string][]string{"en": {"unique"}, "sv": {"ring"}}},
	}

	report := FindDuplicateGlosses(dict)

	// 100 and 200 agree on metadata; 300 is OLD and stays out; the
	// Swedish "ring" is a different language and never groups with the
	// English ones.
	if report.Groups != 1 {
		t.Fatalf("groups = %d, want 1", report.Groups)
	}
	want := map[string]map[string][]SymbolID{
		"en": {"ring": {"100", "200"}},
	}
	if diff := cmp.Diff(want, report.Languages); diff != "" {
		t.Errorf("languages mismatch (-want +got):\n%s", diff)
	}
	if report.PerLanguage["en"] != 1 {
		t.Errorf("per-language count = %d, want 1", report.PerLanguage["en"])
	}
}

func TestFindDuplicateGlossesMetadataKeys(t *testing.T) {
	noun := Simple{Type: "POS", Value: "noun"}
	dict := Dictionary{
		"100": {POS: POSYellow, Glosses: map[string][]string{"en": {"spring"}}, Old: true, Semantics: noun},
		"200": {POS: POSYellow, Glosses: map[string][]string{"en": {"spring"}}, Old: true, Semantics: noun},
	}

	report := FindDuplicateGlosses(dict)
	ids, ok := report.Languages["en"]["spring (OLD, POS: noun)"]
	if !ok {
		t.Fatalf("expected key %q, got %v", "spring (OLD, POS: noun)", report.Languages["en"])
	}
	if diff := cmp.Diff([]SymbolID{"100", "200"}, ids); diff != "" {
		t.Errorf("group mismatch (-want +got):\n%s", diff)
	}
}

func TestFindDuplicateGlossesSemanticSeparation(t *testing.T) {
	dict := Dictionary{
		"100": {POS: POSYellow, Glosses: map[string][]string{"en": {"watch"}}, Semantics: Simple{Type: "POS", Value: "noun"}},
		"200": {POS: POSRed, Glosses: map[string][]string{"en": {"watch"}}, Semantics: Simple{Type: "POS", Value: "verb"}},
	}
	if report := FindDuplicateGlosses(dict); report.Groups != 0 {
		t.Errorf("groups = %d, want 0: differing semantics must not group", report.Groups)
	}
}

func TestDescriptorLabel(t *testing.T) {
	tests := []struct {
		d    SemanticDescriptor
		want string
	}{
		{Simple{Type: "POS", Value: "verb"}, "POS: verb"},
		{Combination{Parts: []TypedValue{{Type: "POS", Value: "noun"}, {Type: "TYPE_SHIFT", Value: "concretization"}}}, "POS: noun, TYPE_SHIFT: concretization"},
		{Alternatives{Options: []TypedValue{{Type: "POS", Value: "noun"}, {Type: "TYPE_SHIFT", Value: "concretization"}}}, "POS: noun | TYPE_SHIFT: concretization"},
	}
	for _, tt := range tests {
		if got := descriptorLabel(tt.d); got != tt.want {
			t.Errorf("descriptorLabel(%+v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestLanguageCodes(t *testing.T) {
	report := &DuplicateReport{Languages: map[string]map[string][]SymbolID{
		"sv": {}, "en": {}, "fr": {},
	}}
	if diff := cmp.Diff([]string{"en", "fr", "sv"}, report.LanguageCodes()); diff != "" {
		t.Errorf("language codes mismatch (-want +got):\n%s", diff)
	}
}
