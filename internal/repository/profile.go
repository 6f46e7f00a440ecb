package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/pkg/supabase"
)

const profilesTable = "user_profiles"

type profileRepository struct {
	client *supabase.Client
}

// NewProfileRepository creates a new user profile repository
func NewProfileRepository(client *supabase.Client) ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	body, err := r.client.Query(ctx, profilesTable, map[string]string{"id": "eq." + id})
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var profiles []models.UserProfile
	if err := json.Unmarshal(body, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("profile %s: %w", id, ErrNotFound)
	}

	return &profiles[0], nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	data := map[string]any{
		"id":   profile.ID,
		"name": profile.Name,
	}
	if profile.Age != nil {
		data["age"] = *profile.Age
	}

	body, err := r.client.Insert(ctx, profilesTable, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	var profiles []models.UserProfile
	if err := json.Unmarshal(body, &profiles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(profiles) == 0 {
		return nil, fmt.Errorf("no profile returned")
	}

	return &profiles[0], nil
}
