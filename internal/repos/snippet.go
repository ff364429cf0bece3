package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/types"
)

type SnippetRepo interface {
	// ListByDisciplineGrade returns all snippets for the scope, newest first.
	// Ties on created_at break by id so the order is stable.
	ListByDisciplineGrade(ctx context.Context, tx *gorm.DB, discipline, grade string) ([]*types.CurriculumSnippet, error)
	Create(ctx context.Context, tx *gorm.DB, snippets []*types.CurriculumSnippet) ([]*types.CurriculumSnippet, error)
}

type snippetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSnippetRepo(db *gorm.DB, baseLog *logger.Logger) SnippetRepo {
	return &snippetRepo{db: db, log: baseLog.With("repo", "SnippetRepo")}
}

func (r *snippetRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *snippetRepo) ListByDisciplineGrade(ctx context.Context, tx *gorm.DB, discipline, grade string) ([]*types.CurriculumSnippet, error) {
	var snippets []*types.CurriculumSnippet
	err := r.conn(tx).WithContext(ctx).
		Where("discipline = ? AND grade = ?", discipline, grade).
		Order("created_at DESC, id").
		Find(&snippets).Error
	if err != nil {
		return nil, err
	}
	return snippets, nil
}

func (r *snippetRepo) Create(ctx context.Context, tx *gorm.DB, snippets []*types.CurriculumSnippet) ([]*types.CurriculumSnippet, error) {
	if len(snippets) == 0 {
		return []*types.CurriculumSnippet{}, nil
	}
	if err := r.conn(tx).WithContext(ctx).Create(&snippets).Error; err != nil {
		return nil, err
	}
	return snippets, nil
}
