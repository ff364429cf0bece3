package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/pkg/apierr"
	"github.com/sdejt/planaula-backend/internal/types"
)

const (
	pdfHeaderLine1 = "REPÚBLICA DE MOÇAMBIQUE"
	pdfHeaderLine2 = "GOVERNO DO DISTRITO DE INHASSORO"
	pdfHeaderLine3 = "SERVIÇO DISTRITAL DE EDUCAÇÃO, JUVENTUDE E TECNOLOGIA"
	pdfTitle       = "PLANO DE AULA"
	pdfFooter      = "SDEJT Inhassoro - Processado por IA (validação final: Professor)"
)

var tableColWidths = [6]float64{12, 30, 52, 52, 22, 22}

var tableColHeaders = [6]string{"Tempo", "Função", "Prof.", "Aluno", "Métodos", "Meios"}

const (
	maxCellRunes   = 60
	cellLineHeight = 4.0
	cellPadding    = 1.0
)

// Fixed creation date so identical inputs produce byte-identical PDFs.
var pdfCreationDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// pdfCharReplacer maps typographic characters onto their plain equivalents and
// folds line breaks into spaces before text enters the PDF.
var pdfCharReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"…", "...",
	"•", "-",
	"\r", " ",
	"\n", " ",
)

func sanitizeText(s string) string {
	s = pdfCharReplacer.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return "-"
	}
	return s
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

type PDFRenderer interface {
	// Render produces the plan PDF. Deterministic: the same request and plan
	// always yield the same bytes.
	Render(req types.LessonRequest, plan *types.Plan) ([]byte, error)
}

type pdfRenderer struct {
	log *logger.Logger
}

func NewPDFRenderer(log *logger.Logger) PDFRenderer {
	return &pdfRenderer{log: log.With("service", "PDFRenderer")}
}

func (r *pdfRenderer) Render(req types.LessonRequest, plan *types.Plan) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	// Sort catalog entries; fpdf otherwise emits the font resource
	// dictionary in map order, breaking byte-identical output.
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(pdfCreationDate)
	pdf.SetModificationDate(pdfCreationDate)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 5, tr(pdfHeaderLine1), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 5, tr(pdfHeaderLine2), "", 1, "C", false, 0, "")
		pdf.CellFormat(0, 5, tr(pdfHeaderLine3), "", 1, "C", false, 0, "")
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 9, tr(pdfTitle), "", 1, "C", false, 0, "")
		pdf.Ln(1)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 7)
		pdf.CellFormat(0, 5, tr(pdfFooter), "", 0, "C", false, 0, "")
	})
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	r.metadata(pdf, tr, req)
	r.objectives(pdf, tr, plan)
	r.table(pdf, tr, plan)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, apierr.New(apierr.KindRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func (r *pdfRenderer) metadata(pdf *fpdf.Fpdf, tr func(string) string, req types.LessonRequest) {
	label := func(name, value string) string {
		return fmt.Sprintf("%s: %s", name, sanitizeText(value))
	}

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, tr(label("Escola", req.School)), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, tr(label("Data", req.Date)), "", 1, "R", false, 0, "")
	pdf.CellFormat(80, 6, tr(label("Disciplina", req.Discipline)), "", 0, "L", false, 0, "")
	pdf.CellFormat(55, 6, tr(label("Classe", req.Grade)), "", 0, "L", false, 0, "")
	pdf.CellFormat(55, 6, tr(label("Turma", req.ClassLabel)), "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 6, tr(label("Unidade Temática", req.Unit)), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, tr(label("Tema", req.Topic)), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, tr(label("Professor", req.Teacher)), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, tr(label("Duração", req.Duration)), "", 1, "R", false, 0, "")
}

func (r *pdfRenderer) objectives(pdf *fpdf.Fpdf, tr func(string) string, plan *types.Plan) {
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, tr("OBJECTIVO(S) GERAL(IS):"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	general := plan.ObjectiveGeneral.Items()
	if plan.ObjectiveGeneral.IsList() {
		for i, item := range general {
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("%d. %s", i+1, sanitizeText(item))), "", "L", false)
		}
	} else {
		pdf.MultiCell(0, 5, tr(sanitizeText(general[0])), "", "L", false)
	}

	pdf.Ln(1)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 6, tr("OBJECTIVOS ESPECÍFICOS:"), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for i, item := range plan.ObjectiveSpecific {
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("%d. %s", i+1, sanitizeText(item))), "", "L", false)
	}
	pdf.Ln(2)
}

func (r *pdfRenderer) table(pdf *fpdf.Fpdf, tr func(string) string, plan *types.Plan) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range tableColHeaders {
		ln := 0
		if i == len(tableColHeaders)-1 {
			ln = 1
		}
		pdf.CellFormat(tableColWidths[i], 7, tr(header), "1", ln, "C", true, 0, "")
	}

	pdf.SetFont("Arial", "", 8)
	for _, row := range plan.Table {
		r.tableRow(pdf, tr, row.Cells())
	}
}

func (r *pdfRenderer) tableRow(pdf *fpdf.Fpdf, tr func(string) string, cells [6]string) {
	texts := make([]string, len(cells))
	lineCount := 1
	for i, cell := range cells {
		plain := truncateRunes(sanitizeText(cell), maxCellRunes)
		texts[i] = tr(plain)
		// SplitText needs the untranslated UTF-8 string: translated cp1252
		// bytes decode to U+FFFD runes that overflow the core font's width
		// table. Line counts match because sanitized runes are Latin-1.
		if n := len(pdf.SplitText(plain, tableColWidths[i]-2*cellPadding)); n > lineCount {
			lineCount = n
		}
	}
	rowHeight := float64(lineCount)*cellLineHeight + 2*cellPadding

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottomMargin := pdf.GetMargins()
	if pdf.GetY()+rowHeight > pageHeight-bottomMargin-15 {
		pdf.AddPage()
	}

	left, _, _, _ := pdf.GetMargins()
	y := pdf.GetY()
	x := left
	for i, text := range texts {
		pdf.Rect(x, y, tableColWidths[i], rowHeight, "D")
		pdf.SetXY(x+cellPadding, y+cellPadding)
		pdf.MultiCell(tableColWidths[i]-2*cellPadding, cellLineHeight, text, "", "L", false)
		x += tableColWidths[i]
	}
	pdf.SetXY(left, y+rowHeight)
}
