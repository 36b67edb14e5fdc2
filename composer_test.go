package bliss

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testComposer() *Composer {
	return NewComposer(testDict(), testTables())
}

func TestFindByGlossExact(t *testing.T) {
	c := testComposer()
	id, ok := c.FindByGloss("building")
	if !ok || id != "14905" {
		t.Errorf("FindByGloss(%q) = %q, %v; want %q", "building", id, ok, "14905")
	}
}

func TestFindByGlossCaseInsensitiveAcrossLanguages(t *testing.T) {
	c := testComposer()
	tests := []struct {
		gloss string
		want  SymbolID
	}{
		{"Building", "14905"},
		{"BYGGNAD", "14905"},
		{"Medicine", "24920"},
	}
	for _, tt := range tests {
		id, ok := c.FindByGloss(tt.gloss)
		if !ok || id != tt.want {
			t.Errorf("FindByGloss(%q) = %q, %v; want %q", tt.gloss, id, ok, tt.want)
		}
	}
}

func TestFindByGlossMiss(t *testing.T) {
	if id, ok := testComposer().FindByGloss("zeppelin"); ok {
		t.Errorf("FindByGloss(%q) = %q, want miss", "zeppelin", id)
	}
}

// Characters are the authoritative source for a gloss: a character
// displaces a composed word in the gloss index regardless of which one
// was indexed first.
func TestGlossPreferenceCharacterWins(t *testing.T) {
	base := map[string][]string{"en": {"house"}}

	characterFirst := Dictionary{
		"100": {POS: POSYellow, IsCharacter: true, Glosses: base},
		"200": {POS: POSYellow, Glosses: base},
	}
	composedFirst := Dictionary{
		"100": {POS: POSYellow, Glosses: base},
		"200": {POS: POSYellow, IsCharacter: true, Glosses: base},
	}

	tests := []struct {
		name string
		dict Dictionary
		want SymbolID
	}{
		{"character indexed first", characterFirst, "100"},
		{"character indexed second", composedFirst, "200"},
	}
	for _, tt := range tests {
		c := NewComposer(tt.dict, testTables())
		id, ok := c.FindByGloss("house")
		if !ok || id != tt.want {
			t.Errorf("%s: FindByGloss(%q) = %q, %v; want %q", tt.name, "house", id, ok, tt.want)
		}
	}
}

func TestFindBySemanticPath(t *testing.T) {
	c := testComposer()
	id, ok := c.FindBySemanticPath("QUANTIFIER", "many")
	if !ok || id != "14647" {
		t.Errorf("FindBySemanticPath(QUANTIFIER, many) = %q, %v; want %q", id, ok, "14647")
	}
	if id, ok := c.FindBySemanticPath("QUANTIFIER", "few"); ok {
		t.Errorf("FindBySemanticPath(QUANTIFIER, few) = %q, want miss", id)
	}
}

func TestComposeFromSpec(t *testing.T) {
	got, err := testComposer().ComposeFromSpec(ComposeSpec{
		Classifier: "building",
		Specifiers: []string{"medicine"},
		Semantics: []map[string]string{
			{"NUMBER": "plural"},
			{"QUANTIFIER": "many"},
		},
	})
	if err != nil {
		t.Fatalf("ComposeFromSpec: %v", err)
	}
	want := []SymbolID{"14905", "24920", "9011", "14647"}
	if diff := cmp.Diff(want, got.Composition); diff != "" {
		t.Errorf("composition mismatch (-want +got):\n%s", diff)
	}
	if len(got.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", got.Warnings)
	}
}

func TestComposeFromSpecMissingClassifier(t *testing.T) {
	_, err := testComposer().ComposeFromSpec(ComposeSpec{
		Specifiers: []string{"medicine"},
	})
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("error = %v, want ErrMissingField", err)
	}
}

func TestComposeFromSpecUnknownClassifier(t *testing.T) {
	_, err := testComposer().ComposeFromSpec(ComposeSpec{Classifier: "zeppelin"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestComposeFromSpecCaseInsensitiveSemantics(t *testing.T) {
	c := testComposer()
	lower, err := c.ComposeFromSpec(ComposeSpec{
		Classifier: "building",
		Semantics:  []map[string]string{{"NUMBER": "plural"}},
	})
	if err != nil {
		t.Fatalf("ComposeFromSpec: %v", err)
	}
	upper, err := c.ComposeFromSpec(ComposeSpec{
		Classifier: "building",
		Semantics:  []map[string]string{{"NUMBER": "Plural"}},
	})
	if err != nil {
		t.Fatalf("ComposeFromSpec: %v", err)
	}
	if diff := cmp.Diff(lower.Composition, upper.Composition); diff != "" {
		t.Errorf("case-sensitive semantic resolution (-lower +upper):\n%s", diff)
	}
}

// Alternatives and Combination descriptors both satisfy a semantic
// request for any of their pairs.
func TestComposeFromSpecVariantMatching(t *testing.T) {
	c := testComposer()
	tests := []struct {
		semType string
		value   string
		want    SymbolID
	}{
		{"TYPE_SHIFT", "concretization", "9017"}, // alternatives entry
		{"POS", "noun", "9017"},
		{"TENSE", "present", "9020"}, // combination entry
		{"ASPECT", "Continuous", "9020"},
	}
	for _, tt := range tests {
		got, err := c.ComposeFromSpec(ComposeSpec{
			Classifier: "building",
			Semantics:  []map[string]string{{tt.semType: tt.value}},
		})
		if err != nil {
			t.Fatalf("ComposeFromSpec(%s:%s): %v", tt.semType, tt.value, err)
		}
		want := []SymbolID{"14905", tt.want}
		if diff := cmp.Diff(want, got.Composition); diff != "" {
			t.Errorf("%s:%s mismatch (-want +got):\n%s", tt.semType, tt.value, diff)
		}
	}
}

func TestComposeFromSpecWarnings(t *testing.T) {
	got, err := testComposer().ComposeFromSpec(ComposeSpec{
		Classifier: "building",
		Specifiers: []string{"zeppelin"},
		Semantics: []map[string]string{
			{"NUMBER": "dual"},
			{"NUMBER": "plural", "QUANTIFIER": "many"},
		},
	})
	if err != nil {
		t.Fatalf("ComposeFromSpec: %v", err)
	}
	if diff := cmp.Diff([]SymbolID{"14905"}, got.Composition); diff != "" {
		t.Errorf("composition mismatch (-want +got):\n%s", diff)
	}
	if len(got.Warnings) != 3 {
		t.Fatalf("warnings = %v, want 3", got.Warnings)
	}
	for i, substr := range []string{"specifier not found", "no symbol found", "not fully supported"} {
		if !strings.Contains(got.Warnings[i], substr) {
			t.Errorf("warning %d = %q, want substring %q", i, got.Warnings[i], substr)
		}
	}
}

func TestComposeWithIDsOrder(t *testing.T) {
	got, err := testComposer().ComposeWithIDs(
		"14905",
		[]SymbolID{"24920"},
		[]SymbolID{"14647", "9020"},
		[]SymbolID{"9011", "8998"},
	)
	if err != nil {
		t.Fatalf("ComposeWithIDs: %v", err)
	}
	want := []SymbolID{"14647", "9020", "14905", "24920", "9011", "8998"}
	if diff := cmp.Diff(want, got.Composition); diff != "" {
		t.Errorf("composition mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeWithIDsUnknownClassifier(t *testing.T) {
	got, err := testComposer().ComposeWithIDs("99999", nil, nil, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if got != nil {
		t.Errorf("result = %+v, want nil on fatal error", got)
	}
}

func TestComposeWithIDsDropsUnknown(t *testing.T) {
	got, err := testComposer().ComposeWithIDs(
		"14905",
		[]SymbolID{"24920", "55555"},
		[]SymbolID{"66666"},
		nil,
	)
	if err != nil {
		t.Fatalf("ComposeWithIDs: %v", err)
	}
	want := []SymbolID{"14905", "24920"}
	if diff := cmp.Diff(want, got.Composition); diff != "" {
		t.Errorf("composition mismatch (-want +got):\n%s", diff)
	}
	if len(got.Warnings) != 2 {
		t.Errorf("warnings = %v, want 2", got.Warnings)
	}
}
