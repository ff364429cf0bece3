package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/types"
)

type PlanRepo interface {
	Create(ctx context.Context, tx *gorm.DB, plan *types.LessonPlan) (*types.LessonPlan, error)
	SetPDFPath(ctx context.Context, tx *gorm.DB, id uuid.UUID, path string) error
	// GetByOwnerAndID is the owner-scoped retrieval primitive. Cross-owner
	// lookups return (nil, nil).
	GetByOwnerAndID(ctx context.Context, tx *gorm.DB, ownerKey string, id uuid.UUID) (*types.LessonPlan, error)
	// GetByID is the administrative primitive: same lookup, no owner filter.
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LessonPlan, error)
	ListByOwner(ctx context.Context, tx *gorm.DB, ownerKey string) ([]*types.LessonPlan, error)
}

type planRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlanRepo(db *gorm.DB, baseLog *logger.Logger) PlanRepo {
	return &planRepo{db: db, log: baseLog.With("repo", "PlanRepo")}
}

func (r *planRepo) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *planRepo) Create(ctx context.Context, tx *gorm.DB, plan *types.LessonPlan) (*types.LessonPlan, error) {
	if err := r.conn(tx).WithContext(ctx).Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

func (r *planRepo) SetPDFPath(ctx context.Context, tx *gorm.DB, id uuid.UUID, path string) error {
	return r.conn(tx).WithContext(ctx).
		Model(&types.LessonPlan{}).
		Where("id = ?", id).
		Update("pdf_path", path).Error
}

func (r *planRepo) GetByOwnerAndID(ctx context.Context, tx *gorm.DB, ownerKey string, id uuid.UUID) (*types.LessonPlan, error) {
	var plan types.LessonPlan
	err := r.conn(tx).WithContext(ctx).
		Where("owner_key = ? AND id = ?", ownerKey, id).
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.LessonPlan, error) {
	var plan types.LessonPlan
	err := r.conn(tx).WithContext(ctx).Where("id = ?", id).First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *planRepo) ListByOwner(ctx context.Context, tx *gorm.DB, ownerKey string) ([]*types.LessonPlan, error) {
	var plans []*types.LessonPlan
	err := r.conn(tx).WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}
