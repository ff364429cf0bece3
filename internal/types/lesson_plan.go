package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LessonPlan is an archived plan row. It is written once by the archiver,
// optionally updated to attach PDFPath, and never edited thereafter.
// PDFInline holds the base64 fallback copy; it is kept even after PDFPath is
// set so both retrieval sources stay valid.
type LessonPlan struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerKey   string         `gorm:"column:owner_key;not null;index:idx_lesson_plan_owner" json:"owner_key"`
	PlanDay    time.Time      `gorm:"column:plan_day;not null" json:"plan_day"`
	Discipline string         `gorm:"column:discipline;not null" json:"discipline"`
	Grade      string         `gorm:"column:grade;not null" json:"grade"`
	Topic      string         `gorm:"column:topic;not null" json:"topic"`
	Unit       string         `gorm:"column:unit;not null" json:"unit"`
	ClassLabel string         `gorm:"column:class_label" json:"class_label"`
	JSONBody   datatypes.JSON `gorm:"column:json_body" json:"json_body"`
	PDFInline  *string        `gorm:"column:pdf_inline" json:"pdf_inline,omitempty"`
	PDFPath    *string        `gorm:"column:pdf_path" json:"pdf_path,omitempty"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
}

func (LessonPlan) TableName() string { return "lesson_plan" }

func (p *LessonPlan) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PlanDayISO is the plan date as it appears in object-store paths.
func (p *LessonPlan) PlanDayISO() string {
	return p.PlanDay.Format(time.DateOnly)
}
