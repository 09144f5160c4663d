package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// ResumeField is the multipart field carrying the document.
const ResumeField = "resume"

const msgFileTooLarge = "File too large"

type AnalyzeHandler struct {
	uploadService services.UploadService
	parser        services.DocumentParserService
	analyzer      services.AnalyzerService
	analysisRepo  repositories.AnalysisRepository
}

// NewAnalyzeHandler wires the analyze endpoint. analysisRepo may be nil, in
// which case results are not stored.
func NewAnalyzeHandler(
	uploadService services.UploadService,
	parser services.DocumentParserService,
	analyzer services.AnalyzerService,
	analysisRepo repositories.AnalysisRepository,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		uploadService: uploadService,
		parser:        parser,
		analyzer:      analyzer,
		analysisRepo:  analysisRepo,
	}
}

// HandleAnalyze handles POST /analyze
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(ResumeField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "No file uploaded"})
	}

	upload, err := h.uploadService.ReadFile(fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoFile):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "No file uploaded"})
		case errors.Is(err, services.ErrUnsupportedFormat):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: "Unsupported file format"})
		case errors.Is(err, services.ErrFileTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(models.ErrorResponse{Error: msgFileTooLarge})
		default:
			logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to read upload")
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: "Failed to read uploaded file"})
		}
	}

	text, err := h.parser.ExtractText(upload.Filename, upload.Data)
	if err != nil {
		logger.Warn().Err(err).Str("filename", upload.Filename).Msg("Text extraction failed")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(models.ErrorResponse{Error: "Failed to extract text from document"})
	}

	result := h.analyzer.Analyze(text)

	logger.Info().
		Str("filename", upload.Filename).
		Int("words", result.WordCount).
		Int("score", result.Feedback.ResumeScore).
		Float64("similarity", result.Similarity).
		Msg("Resume analyzed")

	payload := result.Feedback
	if h.analysisRepo != nil {
		record := models.NewAnalysis(upload.Filename, result)
		if err := h.analysisRepo.Create(record); err != nil {
			logger.Error().Err(err).Msg("Failed to store analysis")
		} else {
			payload.ID = record.ID.String()
		}
	}

	return c.JSON(payload)
}
