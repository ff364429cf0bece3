package services

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sdejt/planaula-backend/internal/types"
)

const emptyCurriculumPlaceholder = "- (Sem snippet registado.)"

// exampleJSON is the fixed output example embedded in every prompt. It shows
// the generator the exact field names and the mandatory table shape.
const exampleJSON = `{
  "objetivo_geral": "Desenvolver a competência de leitura e interpretação de textos.",
  "objetivos_especificos": [
    "Identificar as ideias principais do texto.",
    "Responder a perguntas de interpretação."
  ],
  "tabela": [
    {"tempo": "5", "funcao_didatica": "Introdução e Motivação", "actividade_professor": "Saúda os alunos e apresenta o tema.", "actividade_aluno": "Respondem à saudação e escutam.", "metodos": "Elaboração conjunta", "meios": "Quadro e giz"},
    {"tempo": "20", "funcao_didatica": "Mediação e Assimilação", "actividade_professor": "Explica o conteúdo com exemplos.", "actividade_aluno": "Tomam notas e colocam questões.", "metodos": "Expositivo", "meios": "Livro do aluno"},
    {"tempo": "15", "funcao_didatica": "Domínio e Consolidação", "actividade_professor": "Orienta exercícios de aplicação.", "actividade_aluno": "Resolvem os exercícios.", "metodos": "Trabalho independente", "meios": "Caderno"},
    {"tempo": "5", "funcao_didatica": "Controlo e Avaliação", "actividade_professor": "Corrige e avalia as respostas.", "actividade_aluno": "Apresentam as respostas.", "metodos": "Elaboração conjunta", "meios": "Quadro e giz"}
  ]
}`

const promptTemplate = `És Pedagogo(a) Especialista do Sistema Nacional de Educação (SNE) de Moçambique.
Escreve SEMPRE em Português de Moçambique. Evita termos e ortografia do Brasil.

CONTEÚDO DO CURRÍCULO / PROGRAMA:
{curriculum_block_or_placeholder}

REGRAS:
1) Devolve APENAS JSON válido.
2) Campos: "objetivo_geral", "objetivos_especificos", "tabela".
3) Tabela com 6 colunas: ["tempo","funcao_didatica","actividade_professor","actividade_aluno","metodos","meios"]
4) Funções obrigatórias e na ordem:
   - Introdução e Motivação
   - Mediação e Assimilação
   - Domínio e Consolidação
   - Controlo e Avaliação

DADOS:
- Escola: {school}
- Professor: {teacher}
- Disciplina: {discipline}
- Classe: {grade}
- Unidade Temática: {unit}
- Tema: {topic}
- Duração: {duration}
- Tipo de Aula: {lesson_kind}
- Turma: {class_label}
- Data: {date}

FORMATO JSON:
{exemplo_json_fixo}`

// BuildPrompt fills the fixed template. No escaping: the template is
// natural-language Portuguese and the fields are user prose.
func BuildPrompt(req types.LessonRequest, curriculumBlock string) string {
	block := curriculumBlock
	if block == "" {
		block = emptyCurriculumPlaceholder
	}
	replacer := strings.NewReplacer(
		"{curriculum_block_or_placeholder}", block,
		"{school}", req.School,
		"{teacher}", req.Teacher,
		"{discipline}", req.Discipline,
		"{grade}", req.Grade,
		"{unit}", req.Unit,
		"{topic}", req.Topic,
		"{duration}", req.Duration,
		"{lesson_kind}", req.LessonKind,
		"{class_label}", req.ClassLabel,
		"{date}", req.Date,
		"{exemplo_json_fixo}", exampleJSON,
	)
	return strings.TrimSpace(replacer.Replace(promptTemplate))
}

// CacheKey hashes the canonical JSON of {ctx, curriculum}: keys sorted
// lexicographically, non-ASCII preserved. Same logical inputs always give the
// same key, so the generation cache is content-addressed.
func CacheKey(req types.LessonRequest, curriculumBlock string) (string, error) {
	raw, err := json.Marshal(struct {
		Ctx        types.LessonRequest `json:"ctx"`
		Curriculum string              `json:"curriculum"`
	}{Ctx: req, Curriculum: curriculumBlock})
	if err != nil {
		return "", fmt.Errorf("marshal cache key payload: %w", err)
	}

	// Round-trip through map[string]any: encoding/json writes map keys in
	// sorted order, which gives the canonical form.
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return "", fmt.Errorf("canonicalize cache key payload: %w", err)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(generic); err != nil {
		return "", fmt.Errorf("encode canonical payload: %w", err)
	}

	sum := sha256.Sum256(bytes.TrimRight(buf.Bytes(), "\n"))
	return hex.EncodeToString(sum[:]), nil
}
