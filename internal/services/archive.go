package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/sdejt/planaula-backend/internal/clients/gcs"
	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/pkg/apierr"
	"github.com/sdejt/planaula-backend/internal/repos"
	"github.com/sdejt/planaula-backend/internal/types"
)

type ArchiveService interface {
	// Archive persists the plan in three steps: insert the row with the
	// inline copy, upload the PDF, attach the upload path. A failed upload
	// leaves a valid inline-only archive and returns a partial_archive error
	// alongside the row; a failed insert aborts everything.
	Archive(ctx context.Context, req types.LessonRequest, ownerKey string, plan *types.Plan, pdfBytes []byte) (*types.LessonPlan, error)
	// FetchPDF returns the archived bytes for (ownerKey, planID), preferring
	// the object-store copy and falling back to the inline copy. Missing row
	// or unresolvable bytes yield (nil, nil).
	FetchPDF(ctx context.Context, ownerKey string, planID uuid.UUID) ([]byte, error)
	// FetchPDFAdmin is the administrative path: same retrieval, no owner filter.
	FetchPDFAdmin(ctx context.Context, planID uuid.UUID) ([]byte, error)
	List(ctx context.Context, ownerKey string) ([]*types.LessonPlan, error)
}

type archiveService struct {
	log      *logger.Logger
	planRepo repos.PlanRepo
	bucket   gcs.BucketService
}

func NewArchiveService(log *logger.Logger, planRepo repos.PlanRepo, bucket gcs.BucketService) ArchiveService {
	return &archiveService{
		log:      log.With("service", "ArchiveService"),
		planRepo: planRepo,
		bucket:   bucket,
	}
}

func (s *archiveService) Archive(ctx context.Context, req types.LessonRequest, ownerKey string, plan *types.Plan, pdfBytes []byte) (*types.LessonPlan, error) {
	planDay, err := req.PlanDay()
	if err != nil {
		return nil, apierr.New(apierr.KindArchiveFailed, err)
	}

	body, err := json.Marshal(map[string]any{"ctx": req, "plan": plan})
	if err != nil {
		return nil, apierr.New(apierr.KindArchiveFailed, err)
	}
	inline := base64.StdEncoding.EncodeToString(pdfBytes)

	row := &types.LessonPlan{
		OwnerKey:   ownerKey,
		PlanDay:    planDay,
		Discipline: req.Discipline,
		Grade:      req.Grade,
		Topic:      req.Topic,
		Unit:       req.Unit,
		ClassLabel: req.ClassLabel,
		JSONBody:   datatypes.JSON(body),
		PDFInline:  &inline,
	}
	row, err = s.planRepo.Create(ctx, nil, row)
	if err != nil {
		return nil, apierr.New(apierr.KindArchiveFailed, err)
	}

	path := fmt.Sprintf("%s/%s/%s_%s.pdf", ownerKey, row.PlanDayISO(), row.ID, req.GradeSafe())
	if err := s.bucket.Upload(ctx, path, pdfBytes, "application/pdf"); err != nil {
		s.log.Warn("PDF upload failed, archive kept with inline copy only", "plan_id", row.ID, "error", err)
		return row, apierr.New(apierr.KindPartialArchive, err)
	}

	if err := s.planRepo.SetPDFPath(ctx, nil, row.ID, path); err != nil {
		s.log.Warn("Failed to attach pdf_path, archive kept with inline copy only", "plan_id", row.ID, "error", err)
		return row, apierr.New(apierr.KindPartialArchive, err)
	}
	row.PDFPath = &path
	return row, nil
}

func (s *archiveService) FetchPDF(ctx context.Context, ownerKey string, planID uuid.UUID) ([]byte, error) {
	row, err := s.planRepo.GetByOwnerAndID(ctx, nil, ownerKey, planID)
	if err != nil {
		return nil, err
	}
	return s.resolvePDF(ctx, row)
}

func (s *archiveService) FetchPDFAdmin(ctx context.Context, planID uuid.UUID) ([]byte, error) {
	row, err := s.planRepo.GetByID(ctx, nil, planID)
	if err != nil {
		return nil, err
	}
	return s.resolvePDF(ctx, row)
}

func (s *archiveService) resolvePDF(ctx context.Context, row *types.LessonPlan) ([]byte, error) {
	if row == nil {
		return nil, nil
	}
	if row.PDFPath != nil && *row.PDFPath != "" {
		data, err := s.bucket.FetchSigned(ctx, *row.PDFPath)
		if err == nil {
			return data, nil
		}
		s.log.Warn("Signed fetch failed, trying inline copy", "plan_id", row.ID, "error", err)
	}
	if row.PDFInline != nil && *row.PDFInline != "" {
		data, err := base64.StdEncoding.DecodeString(*row.PDFInline)
		if err != nil {
			return nil, fmt.Errorf("decode inline PDF for %s: %w", row.ID, err)
		}
		return data, nil
	}
	return nil, nil
}

func (s *archiveService) List(ctx context.Context, ownerKey string) ([]*types.LessonPlan, error) {
	return s.planRepo.ListByOwner(ctx, nil, ownerKey)
}
