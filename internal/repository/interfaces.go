package repository

import (
	"context"
	"errors"

	"github.com/menstrualmentor/backend/internal/models"
)

// ErrNotFound is returned when a lookup by ID matches no row
var ErrNotFound = errors.New("not found")

// CycleRepository defines the interface for cycle log data access
type CycleRepository interface {
	Create(ctx context.Context, cycle *models.Cycle) (*models.Cycle, error)
	GetByID(ctx context.Context, id string) (*models.Cycle, error)
	// GetRecentByUserID returns at most limit cycles, newest date first
	GetRecentByUserID(ctx context.Context, userID string, limit int) ([]models.Cycle, error)
	Delete(ctx context.Context, id string) error
}

// ProfileRepository defines the interface for user profile data access
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*models.UserProfile, error)
	Create(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error)
}

// TextAnalysisRepository stores free-text advisory exchanges
type TextAnalysisRepository interface {
	Create(ctx context.Context, record *models.TextAnalysis) error
}

// ImageAnalysisRepository stores image risk classifications
type ImageAnalysisRepository interface {
	Create(ctx context.Context, record *models.ImageAnalysis) error
}
