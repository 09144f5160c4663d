package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type ResultHandler struct {
	analysisRepo repositories.AnalysisRepository
}

func NewResultHandler(analysisRepo repositories.AnalysisRepository) *ResultHandler {
	return &ResultHandler{
		analysisRepo: analysisRepo,
	}
}

// HandleGetResult handles GET /analyses/:id
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "Invalid analysis ID format"})
	}

	analysis, err := h.analysisRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAnalysisNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "Analysis not found"})
		}
		logger.Error().Err(err).Str("id", id.String()).Msg("Failed to load analysis")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "Failed to load analysis"})
	}

	return c.JSON(analysis)
}

// HandleListResults handles GET /analyses?limit=N
func (h *ResultHandler) HandleListResults(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultListLimit)
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	analyses, err := h.analysisRepo.FindRecent(limit)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list analyses")
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "Failed to list analyses"})
	}
	if analyses == nil {
		analyses = []models.Analysis{}
	}

	return c.JSON(models.AnalysisListResponse{
		Analyses: analyses,
		Count:    len(analyses),
	})
}
