package types

import (
	"fmt"
	"strings"
	"time"

	"github.com/sdejt/planaula-backend/internal/pkg/apierr"
)

// Grades are the twelve ordered class labels of the national system.
var Grades = []string{
	"1ª", "2ª", "3ª", "4ª", "5ª", "6ª",
	"7ª", "8ª", "9ª", "10ª", "11ª", "12ª",
}

var Durations = []string{"45 Min", "90 Min"}

var LessonKinds = []string{
	"Introdução de Matéria Nova",
	"Consolidação e Exercitação",
	"Verificação e Avaliação",
	"Aula Mista",
}

const requestDateLayout = "02/01/2006"

// LessonRequest is the immutable input of one pipeline invocation. The JSON
// tags double as the canonical field names of the cache key payload.
type LessonRequest struct {
	School     string `json:"school"`
	Teacher    string `json:"teacher"`
	Discipline string `json:"discipline"`
	Grade      string `json:"grade"`
	Unit       string `json:"unit"`
	Topic      string `json:"topic"`
	Duration   string `json:"duration"`
	LessonKind string `json:"lesson_kind"`
	ClassLabel string `json:"class_label"`
	Date       string `json:"date"`
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Validate enforces the request invariants before any I/O happens.
func (r LessonRequest) Validate() error {
	if strings.TrimSpace(r.Unit) == "" {
		return apierr.Newf(apierr.KindInvalidRequest, "unidade temática em falta")
	}
	if strings.TrimSpace(r.Topic) == "" {
		return apierr.Newf(apierr.KindInvalidRequest, "tema em falta")
	}
	if !containsString(Grades, r.Grade) {
		return apierr.Newf(apierr.KindInvalidRequest, "classe inválida: %q", r.Grade)
	}
	if !containsString(Durations, r.Duration) {
		return apierr.Newf(apierr.KindInvalidRequest, "duração inválida: %q", r.Duration)
	}
	if !containsString(LessonKinds, r.LessonKind) {
		return apierr.Newf(apierr.KindInvalidRequest, "tipo de aula inválido: %q", r.LessonKind)
	}
	if _, err := r.PlanDay(); err != nil {
		return apierr.Newf(apierr.KindInvalidRequest, "data inválida: %q", r.Date)
	}
	return nil
}

// PlanDay parses the DD/MM/YYYY lesson date.
func (r LessonRequest) PlanDay() (time.Time, error) {
	day, err := time.Parse(requestDateLayout, r.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse lesson date: %w", err)
	}
	return day, nil
}

// GradeSafe is the grade label as used inside object-store paths.
func (r LessonRequest) GradeSafe() string {
	return strings.ReplaceAll(r.Grade, " ", "_")
}
