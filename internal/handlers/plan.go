package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sdejt/planaula-backend/internal/logger"
	"github.com/sdejt/planaula-backend/internal/pkg/apierr"
	"github.com/sdejt/planaula-backend/internal/services"
	"github.com/sdejt/planaula-backend/internal/types"
	"github.com/sdejt/planaula-backend/internal/utils"
)

type PlanHandler struct {
	log      *logger.Logger
	pipeline services.PipelineService
	archive  services.ArchiveService
}

func NewPlanHandler(log *logger.Logger, pipeline services.PipelineService, archive services.ArchiveService) *PlanHandler {
	return &PlanHandler{
		log:      log.With("handler", "PlanHandler"),
		pipeline: pipeline,
		archive:  archive,
	}
}

type generatePlanResponse struct {
	PlanID  uuid.UUID `json:"plan_id"`
	PDFPath *string   `json:"pdf_path,omitempty"`
	Partial bool      `json:"partial"`
}

func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	var req types.LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, string(apierr.KindInvalidRequest), err)
		return
	}

	result, err := h.pipeline.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		h.log.Error("Pipeline failed", "error", err)
		RespondError(c, apierr.HTTPStatus(err), string(apierr.KindOf(err)), err)
		return
	}

	RespondOK(c, generatePlanResponse{
		PlanID:  result.Row.ID,
		PDFPath: result.Row.PDFPath,
		Partial: result.Partial,
	})
}

// ownerKeyFromQuery derives the owner namespace from the teacher/school query
// parameters. Retrieval is owner-scoped: without these there is no capability.
func ownerKeyFromQuery(c *gin.Context) (string, error) {
	teacher := c.Query("teacher")
	school := c.Query("school")
	if teacher == "" || school == "" {
		return "", fmt.Errorf("teacher and school query parameters are required")
	}
	return utils.OwnerKey(teacher, school), nil
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	ownerKey, err := ownerKeyFromQuery(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, string(apierr.KindInvalidRequest), err)
		return
	}
	plans, err := h.archive.List(c.Request.Context(), ownerKey)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "", err)
		return
	}
	RespondOK(c, gin.H{"plans": plans})
}

func (h *PlanHandler) GetPlanPDF(c *gin.Context) {
	ownerKey, err := ownerKeyFromQuery(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, string(apierr.KindInvalidRequest), err)
		return
	}
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, string(apierr.KindInvalidRequest), err)
		return
	}

	data, err := h.archive.FetchPDF(c.Request.Context(), ownerKey, planID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "", err)
		return
	}
	if data == nil {
		RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("plan %s not found", planID))
		return
	}
	c.Data(http.StatusOK, "application/pdf", data)
}

// GetPlanPDFAdmin serves any plan regardless of owner. Mounted only under the
// administrative route group.
func (h *PlanHandler) GetPlanPDFAdmin(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, string(apierr.KindInvalidRequest), err)
		return
	}

	data, err := h.archive.FetchPDFAdmin(c.Request.Context(), planID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "", err)
		return
	}
	if data == nil {
		RespondError(c, http.StatusNotFound, "not_found", fmt.Errorf("plan %s not found", planID))
		return
	}
	c.Data(http.StatusOK, "application/pdf", data)
}
