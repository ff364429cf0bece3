package services

import (
	"testing"

	"github.com/sdejt/planaula-backend/internal/pkg/apierr"
)

func TestExtractJSONStrict(t *testing.T) {
	obj, err := ExtractJSON(`  {"objetivo_geral": "x"}  `)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if obj["objetivo_geral"] != "x" {
		t.Fatalf("unexpected object: %v", obj)
	}
}

func TestExtractJSONRecoversFromSurroundingProse(t *testing.T) {
	obj, err := ExtractJSON(`Aqui está o plano pedido: {"objetivo_geral":"x","objetivos_especificos":["y"]} Espero que ajude!`)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if obj["objetivo_geral"] != "x" {
		t.Fatalf("unexpected object: %v", obj)
	}
}

func TestExtractJSONRecoversFromCodeFence(t *testing.T) {
	obj, err := ExtractJSON("```json\n{\"objetivo_geral\":\"x\"}\n```")
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if obj["objetivo_geral"] != "x" {
		t.Fatalf("unexpected object: %v", obj)
	}
}

func TestExtractJSONMalformed(t *testing.T) {
	cases := []string{
		"sem json nenhum",
		"",
		"só uma chave { sem fecho",
		"} ao contrário {",
		`{"quebrado": }`,
	}
	for _, input := range cases {
		_, err := ExtractJSON(input)
		if err == nil {
			t.Fatalf("expected malformed_output for %q", input)
		}
		if !apierr.IsKind(err, apierr.KindMalformedOutput) {
			t.Fatalf("expected malformed_output kind for %q, got %v", input, err)
		}
	}
}
