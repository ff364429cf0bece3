package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sdejt/planaula-backend/internal/types"
)

func snippet(unit, topic, text string, age time.Duration) *types.CurriculumSnippet {
	return &types.CurriculumSnippet{
		ID:         uuid.New(),
		Discipline: "Língua Portuguesa",
		Grade:      "5ª",
		Unit:       unit,
		Topic:      topic,
		Text:       text,
		CreatedAt:  time.Now().Add(-age),
	}
}

func TestSelectSnippetsTierOrder(t *testing.T) {
	// Input arrives newest-first, the repo ordering.
	a := snippet("Leitura", "Compreensão", "A", 0)
	b := snippet("Leitura", "", "B", time.Hour)
	c := snippet("", "Compreensão", "C", 2*time.Hour)
	d1 := snippet("", "", "D1", 3*time.Hour)
	d2 := snippet("", "", "D2", 4*time.Hour)
	d3 := snippet("", "", "D3", 5*time.Hour)
	d4 := snippet("", "", "D4", 6*time.Hour)
	input := []*types.CurriculumSnippet{a, b, c, d1, d2, d3, d4}

	got := selectSnippets(input, "Leitura", "Compreensão")
	want := []string{"A", "B", "C", "D1", "D2", "D3"}
	if len(got) != len(want) {
		t.Fatalf("selectSnippets: got %d snippets, want %d", len(got), len(want))
	}
	for i, s := range got {
		if s.Text != want[i] {
			t.Fatalf("position %d: got %q, want %q", i, s.Text, want[i])
		}
	}
}

func TestSelectSnippetsNormalizedMatching(t *testing.T) {
	exact := snippet("leitura", "compreensao", "normalized match", 0)
	other := snippet("Gramática", "Verbos", "other unit", time.Hour)
	got := selectSnippets([]*types.CurriculumSnippet{exact, other}, "Leitura", "Compreensão")
	if len(got) != 1 || got[0].Text != "normalized match" {
		t.Fatalf("expected the normalized exact match only, got %v", got)
	}
}

func TestSelectSnippetsMismatchedScopeExcluded(t *testing.T) {
	// Unit set but different: matches no tier at all.
	mismatch := snippet("Gramática", "", "wrong unit", 0)
	fallback := snippet("", "", "fallback", time.Hour)
	got := selectSnippets([]*types.CurriculumSnippet{mismatch, fallback}, "Leitura", "Compreensão")
	if len(got) != 1 || got[0].Text != "fallback" {
		t.Fatalf("expected only the fallback snippet, got %v", got)
	}
}

func TestSelectSnippetsCap(t *testing.T) {
	var input []*types.CurriculumSnippet
	for i := 0; i < 10; i++ {
		input = append(input, snippet("", "", "D", time.Duration(i)*time.Hour))
	}
	got := selectSnippets(input, "Leitura", "Compreensão")
	if len(got) != maxSnippets {
		t.Fatalf("expected cap of %d, got %d", maxSnippets, len(got))
	}
}

func TestSelectSnippetsEmptyQueryUsesFallbackTierOnly(t *testing.T) {
	exact := snippet("Leitura", "Compreensão", "specific", 0)
	fallback := snippet("", "", "generic", time.Hour)
	got := selectSnippets([]*types.CurriculumSnippet{exact, fallback}, "", "")
	if len(got) != 1 || got[0].Text != "generic" {
		t.Fatalf("empty unit/topic should select the fallback tier only, got %v", got)
	}
}

func TestBuildBlock(t *testing.T) {
	if got := buildBlock(nil); got != "" {
		t.Fatalf("empty selection should give empty block, got %q", got)
	}
	block := buildBlock([]*types.CurriculumSnippet{
		snippet("", "", "primeiro", 0),
		snippet("", "", "segundo", time.Hour),
	})
	want := "- primeiro\n- segundo"
	if block != want {
		t.Fatalf("buildBlock: got %q, want %q", block, want)
	}
}
