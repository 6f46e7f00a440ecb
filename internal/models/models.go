package models

import (
	"time"

	"github.com/menstrualmentor/backend/internal/analysis"
)

// User represents an authenticated user
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// UserProfile is the profile row created at signup
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// Cycle is a stored cycle log entry
type Cycle struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	CycleLength int             `json:"cycle_length"`
	Mood        analysis.Mood   `json:"mood"`
	Energy      analysis.Energy `json:"energy"`
	Date        CalendarDate    `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Record converts the stored entry into analytics engine input
func (c Cycle) Record() analysis.Record {
	return analysis.Record{
		Date:        c.Date.Time(),
		CycleLength: c.CycleLength,
		Mood:        c.Mood,
		Energy:      c.Energy,
	}
}

// Records converts a slice of cycles, preserving order
func Records(cycles []Cycle) []analysis.Record {
	records := make([]analysis.Record, len(cycles))
	for i, c := range cycles {
		records[i] = c.Record()
	}
	return records
}

// CreateCycleRequest represents the request to log a cycle.
// Date defaults to today when omitted.
type CreateCycleRequest struct {
	CycleLength int           `json:"cycle_length" binding:"required,min=15,max=45"`
	Mood        string        `json:"mood" binding:"required,oneof=Happy Neutral Sad Irritable Anxious"`
	Energy      string        `json:"energy" binding:"required,oneof=High Medium Low"`
	Date        *CalendarDate `json:"date"`
}

// CycleHistoryEntry is a stored cycle decorated for list display
type CycleHistoryEntry struct {
	Cycle
	MoodIcon   string `json:"mood_icon"`
	EnergyTone string `json:"energy_tone"`
}

// NewCycleHistoryEntry decorates a cycle with its icon and tone
func NewCycleHistoryEntry(c Cycle) CycleHistoryEntry {
	return CycleHistoryEntry{
		Cycle:      c,
		MoodIcon:   analysis.MoodIcon(c.Mood),
		EnergyTone: analysis.EnergyTone(c.Energy),
	}
}

// TextAnalysis is a persisted free-text advisory exchange
type TextAnalysis struct {
	ID         string    `json:"id,omitempty"`
	UserID     string    `json:"user_id"`
	InputText  string    `json:"input_text"`
	AIResponse string    `json:"ai_response"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

// ImageAnalysis is a persisted image risk classification.
// The image itself is never stored, only a placeholder reference.
type ImageAnalysis struct {
	ID             string             `json:"id,omitempty"`
	UserID         string             `json:"user_id"`
	ImageURL       string             `json:"image_url"`
	RedIntensity   float64            `json:"red_intensity"`
	RiskLevel      analysis.RiskLevel `json:"risk_level"`
	AnalysisResult string             `json:"analysis_result"`
	CreatedAt      time.Time          `json:"created_at,omitempty"`
}

// ImagePlaceholderURL is stored in place of uploaded image data
const ImagePlaceholderURL = "data:image/base64"

// AnalyzeImageRequest carries a base64 data URL
type AnalyzeImageRequest struct {
	Image string `json:"image" binding:"required"`
}

// ImageAnalysisResponse is returned by the image analysis endpoint
type ImageAnalysisResponse struct {
	RiskLevel    analysis.RiskLevel `json:"risk_level"`
	RedIntensity float64            `json:"red_intensity"`
	Analysis     string             `json:"analysis"`
}

// AnalyzeTextRequest carries the user's free-text symptom description
type AnalyzeTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// Advisory sources
const (
	AdvisorySourceModel    = "model"
	AdvisorySourceFallback = "fallback"
)

// TextAnalysisResponse is returned by the text analysis endpoint
type TextAnalysisResponse struct {
	Analysis string `json:"analysis"`
	Source   string `json:"source"`
}

// CycleAnalysisResponse wraps the lightweight analysis. Analysis is nil
// when the user has no records yet.
type CycleAnalysisResponse struct {
	DataSufficient   bool                    `json:"data_sufficient"`
	MinRecordsNeeded int                     `json:"min_records_needed"`
	TotalRecords     int                     `json:"total_records"`
	Analysis         *analysis.CycleAnalysis `json:"analysis,omitempty"`
	AverageDisplay   string                  `json:"average_display,omitempty"`
}

// DetailedAnalysisResponse wraps the detailed analysis. Analysis is nil
// below the minimum record count.
type DetailedAnalysisResponse struct {
	DataSufficient   bool                       `json:"data_sufficient"`
	MinRecordsNeeded int                        `json:"min_records_needed"`
	TotalRecords     int                        `json:"total_records"`
	Analysis         *analysis.DetailedAnalysis `json:"analysis,omitempty"`
	MoodShare        string                     `json:"mood_share,omitempty"`
	EnergyShare      string                     `json:"energy_share,omitempty"`
}

// LoginRequest represents the login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest represents the signup request
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Age      *int   `json:"age" binding:"omitempty,min=1,max=120"`
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         User         `json:"user"`
	Profile      *UserProfile `json:"profile,omitempty"`
}

// MeResponse is the current user with their profile, if one exists
type MeResponse struct {
	User    User         `json:"user"`
	Profile *UserProfile `json:"profile,omitempty"`
}
