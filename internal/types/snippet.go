package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CurriculumSnippet is a curator-supplied curricular note. The pipeline only
// reads these; seeding happens out of band.
type CurriculumSnippet struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Discipline string    `gorm:"column:discipline;not null;index:idx_snippet_scope,priority:1" json:"discipline"`
	Grade      string    `gorm:"column:grade;not null;index:idx_snippet_scope,priority:2" json:"grade"`
	Unit       string    `gorm:"column:unit" json:"unit,omitempty"`
	Topic      string    `gorm:"column:topic" json:"topic,omitempty"`
	Text       string    `gorm:"column:text;not null" json:"text"`
	Source     string    `gorm:"column:source" json:"source,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (CurriculumSnippet) TableName() string { return "curriculum_snippet" }

func (s *CurriculumSnippet) BeforeCreate(_ *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
