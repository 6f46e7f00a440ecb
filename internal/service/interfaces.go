package service

import (
	"context"
	"errors"

	"github.com/menstrualmentor/backend/internal/models"
)

var (
	// ErrCycleNotFound indicates the cycle does not exist or is not visible to the user
	ErrCycleNotFound = errors.New("cycle not found")
	// ErrForbidden indicates the cycle belongs to another user
	ErrForbidden = errors.New("cycle belongs to another user")
	// ErrInvalidImage indicates the image is not a decodable base64 data URL
	ErrInvalidImage = errors.New("invalid image data")
	// ErrEmptyText indicates a blank symptom description
	ErrEmptyText = errors.New("text is required")
	// ErrInvalidCredentials indicates Supabase Auth rejected the login
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// CycleService defines the interface for cycle logging and analysis
type CycleService interface {
	CreateCycle(ctx context.Context, userID string, req *models.CreateCycleRequest) (*models.Cycle, error)
	ListCycles(ctx context.Context, userID string, limit int) ([]models.CycleHistoryEntry, error)
	DeleteCycle(ctx context.Context, userID, cycleID string) error
	AnalyzeCycle(ctx context.Context, userID string) (*models.CycleAnalysisResponse, error)
	AnalyzeDetailed(ctx context.Context, userID string) (*models.DetailedAnalysisResponse, error)
}

// ImageAnalysisService classifies uploaded images by sampled red intensity
type ImageAnalysisService interface {
	AnalyzeImage(ctx context.Context, userID, dataURL string) (*models.ImageAnalysisResponse, error)
}

// TextAnalysisService answers free-text symptom descriptions with wellness advice
type TextAnalysisService interface {
	AnalyzeText(ctx context.Context, userID, text string) (*models.TextAnalysisResponse, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

// Advisor produces wellness advice for a symptom description
type Advisor interface {
	Advise(ctx context.Context, text string) (string, error)
}
