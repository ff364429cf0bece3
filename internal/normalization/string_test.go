package normalization

import "testing"

func TestNormalizeStripsDiacriticsAndCase(t *testing.T) {
	got := Normalize("  Introdução e Motivação ")
	want := "introducao e motivacao"
	if got != want {
		t.Fatalf("Normalize: got %q, want %q", got, want)
	}
}

func TestNormalizeCollapsesPunctuationAndWhitespace(t *testing.T) {
	got := Normalize("Leitura -- e,  escrita!!")
	want := "leitura e escrita"
	if got != want {
		t.Fatalf("Normalize: got %q, want %q", got, want)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	if got := Normalize("   "); got != "" {
		t.Fatalf("Normalize of blank input: got %q, want empty", got)
	}
	if got := Normalize(""); got != "" {
		t.Fatalf("Normalize of empty input: got %q, want empty", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Compreensão de Texto",
		"  MEDIAÇÃO -- e -- ASSIMILAÇÃO  ",
		"já normalizado",
		"",
		"números 1, 2 e 3",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}
