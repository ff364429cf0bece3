package services

import (
	"context"

	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/pkg/apierr"
	"github.com/sdejt/planaula-backend/internal/types"
	"github.com/sdejt/planaula-backend/internal/utils"
)

// PipelineResult is what one successful pipeline invocation leaves behind.
type PipelineResult struct {
	Row *types.LessonPlan
	// Partial marks an archive whose upload failed; the plan stays usable
	// through its inline copy.
	Partial bool
}

type PipelineService interface {
	// GeneratePlan runs the full pipeline: curriculum selection, prompt
	// assembly, cached generation, extraction, validation, rendering and
	// archival. Intermediate artifacts are not persisted.
	GeneratePlan(ctx context.Context, req types.LessonRequest) (*PipelineResult, error)
}

type pipelineService struct {
	log        *logger.Logger
	curriculum CurriculumService
	generator  GeneratorService
	renderer   PDFRenderer
	archive    ArchiveService
}

func NewPipelineService(
	log *logger.Logger,
	curriculum CurriculumService,
	generator GeneratorService,
	renderer PDFRenderer,
	archive ArchiveService,
) PipelineService {
	return &pipelineService{
		log:        log.With("service", "PipelineService"),
		curriculum: curriculum,
		generator:  generator,
		renderer:   renderer,
		archive:    archive,
	}
}

func (s *pipelineService) GeneratePlan(ctx context.Context, req types.LessonRequest) (*PipelineResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ownerKey := utils.OwnerKey(req.Teacher, req.School)

	block, err := s.curriculum.Block(ctx, req.Discipline, req.Grade, req.Unit, req.Topic)
	if err != nil {
		return nil, err
	}

	prompt := BuildPrompt(req, block)
	cacheKey, err := CacheKey(req, block)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.Generate(ctx, cacheKey, prompt)
	if err != nil {
		return nil, err
	}

	obj, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}
	plan, err := ValidatePlan(obj)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := s.renderer.Render(req, plan)
	if err != nil {
		return nil, err
	}

	row, err := s.archive.Archive(ctx, req, ownerKey, plan, pdfBytes)
	if err != nil {
		if apierr.IsKind(err, apierr.KindPartialArchive) {
			s.log.Warn("Plan archived without object-store copy", "plan_id", row.ID)
			return &PipelineResult{Row: row, Partial: true}, nil
		}
		return nil, err
	}

	s.log.Info("Plan generated and archived", "plan_id", row.ID, "owner_key", ownerKey)
	return &PipelineResult{Row: row}, nil
}
