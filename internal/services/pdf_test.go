package services

import (
	"bytes"
	"testing"

	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/types"
)

func testPlan() *types.Plan {
	row := func(i int) types.PlanRow {
		return types.PlanRow{
			Time:            "10",
			DidacticFunc:    types.DidacticFunctions[i],
			TeacherActivity: "Explica o conteúdo e orienta os alunos.",
			StudentActivity: "Escutam, tomam notas e participam.",
			Methods:         "Expositivo",
			Media:           "Quadro e giz",
		}
	}
	return &types.Plan{
		ObjectiveGeneral:  types.ObjectiveGeneral{Single: "Desenvolver a leitura."},
		ObjectiveSpecific: []string{"Identificar ideias principais.", "Responder a perguntas."},
		Table:             []types.PlanRow{row(0), row(1), row(2), row(3)},
	}
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func TestRenderProducesPDF(t *testing.T) {
	renderer := NewPDFRenderer(testLogger(t))
	data, err := renderer.Render(testRequest(), testPlan())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}

func TestRenderDeterministic(t *testing.T) {
	renderer := NewPDFRenderer(testLogger(t))
	first, err := renderer.Render(testRequest(), testPlan())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	second, err := renderer.Render(testRequest(), testPlan())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("identical inputs must render byte-identical PDFs")
	}
}

func TestRenderGeneralObjectiveList(t *testing.T) {
	plan := testPlan()
	plan.ObjectiveGeneral = types.ObjectiveGeneral{Multi: []string{"Primeiro.", "Segundo."}}
	renderer := NewPDFRenderer(testLogger(t))
	if _, err := renderer.Render(testRequest(), plan); err != nil {
		t.Fatalf("Render with objective list: %v", err)
	}
}

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"texto – com — traços", "texto - com - traços"},
		{"“aspas” e ‘plicas’", `"aspas" e 'plicas'`},
		{"reticências…", "reticências..."},
		{"• item", "- item"},
		{"linha\numa\r\nduas", "linha uma duas"},
		{"  espaços   a  mais  ", "espaços a mais"},
		{"", "-"},
		{"   ", "-"},
	}
	for _, tc := range cases {
		if got := sanitizeText(tc.in); got != tc.want {
			t.Fatalf("sanitizeText(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("curto", 60); got != "curto" {
		t.Fatalf("truncateRunes should keep short strings, got %q", got)
	}
	long := ""
	for i := 0; i < 30; i++ {
		long += "çã"
	}
	got := truncateRunes(long, 10)
	if len([]rune(got)) != 10 {
		t.Fatalf("truncateRunes must cut by runes, got %d runes", len([]rune(got)))
	}
}
