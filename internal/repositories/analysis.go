package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/models"
)

var ErrAnalysisNotFound = errors.New("analysis not found")

type AnalysisRepository interface {
	Create(analysis *models.Analysis) error
	FindByID(id uuid.UUID) (*models.Analysis, error)
	FindRecent(limit int) ([]models.Analysis, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(analysis *models.Analysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("failed to create analysis: %w", err)
	}
	return nil
}

func (r *analysisRepository) FindByID(id uuid.UUID) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := r.db.Where("id = ?", id).First(&analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to find analysis: %w", err)
	}
	return &analysis, nil
}

// FindRecent returns the newest analyses first.
func (r *analysisRepository) FindRecent(limit int) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := r.db.
		Order("created_at DESC").
		Limit(limit).
		Find(&analyses).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find analyses: %w", err)
	}

	return analyses, nil
}
