package services

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/sdejt/planaula-backend/internal/types"
)

func testRequest() types.LessonRequest {
	return types.LessonRequest{
		School:     "EPC X",
		Teacher:    "Ana",
		Discipline: "Língua Portuguesa",
		Grade:      "5ª",
		Unit:       "Leitura",
		Topic:      "Compreensão",
		Duration:   "45 Min",
		LessonKind: "Introdução de Matéria Nova",
		ClassLabel: "A",
		Date:       "03/10/2025",
	}
}

func TestBuildPromptFillsFields(t *testing.T) {
	prompt := BuildPrompt(testRequest(), "- snippet um\n- snippet dois")
	for _, want := range []string{
		"- Escola: EPC X",
		"- Professor: Ana",
		"- Disciplina: Língua Portuguesa",
		"- Classe: 5ª",
		"- Unidade Temática: Leitura",
		"- Tema: Compreensão",
		"- Duração: 45 Min",
		"- Tipo de Aula: Introdução de Matéria Nova",
		"- Turma: A",
		"- Data: 03/10/2025",
		"- snippet um\n- snippet dois",
		`"objetivo_geral"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
	if prompt != strings.TrimSpace(prompt) {
		t.Fatalf("prompt should be trimmed")
	}
}

func TestBuildPromptEmptyCurriculumPlaceholder(t *testing.T) {
	prompt := BuildPrompt(testRequest(), "")
	if !strings.Contains(prompt, "- (Sem snippet registado.)") {
		t.Fatalf("prompt should carry the empty-curriculum placeholder")
	}
}

func TestCacheKeyStable(t *testing.T) {
	first, err := CacheKey(testRequest(), "- bloco")
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}
	second, err := CacheKey(testRequest(), "- bloco")
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}
	if first != second {
		t.Fatalf("same inputs must give same key: %q != %q", first, second)
	}
}

func TestCacheKeyCanonicalForm(t *testing.T) {
	// Keys sorted lexicographically, non-ASCII preserved, no extra whitespace.
	canonical := `{"ctx":{"class_label":"A","date":"03/10/2025","discipline":"Língua Portuguesa","duration":"45 Min","grade":"5ª","lesson_kind":"Introdução de Matéria Nova","school":"EPC X","teacher":"Ana","topic":"Compreensão","unit":"Leitura"},"curriculum":""}`
	sum := sha256.Sum256([]byte(canonical))
	want := hex.EncodeToString(sum[:])

	got, err := CacheKey(testRequest(), "")
	if err != nil {
		t.Fatalf("CacheKey: %v", err)
	}
	if got != want {
		t.Fatalf("cache key is not the hash of the canonical payload: got %q, want %q", got, want)
	}
}

func TestCacheKeySensitiveToInputs(t *testing.T) {
	base, _ := CacheKey(testRequest(), "")
	withBlock, _ := CacheKey(testRequest(), "- bloco")
	if base == withBlock {
		t.Fatalf("different curriculum blocks must change the key")
	}
	req := testRequest()
	req.Topic = "Interpretação"
	changed, _ := CacheKey(req, "")
	if base == changed {
		t.Fatalf("different request fields must change the key")
	}
}
