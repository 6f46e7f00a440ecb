package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/pkg/supabase"
)

const cyclesTable = "cycles"

type cycleRepository struct {
	client *supabase.Client
}

// NewCycleRepository creates a new cycle repository
func NewCycleRepository(client *supabase.Client) CycleRepository {
	return &cycleRepository{client: client}
}

func (r *cycleRepository) Create(ctx context.Context, cycle *models.Cycle) (*models.Cycle, error) {
	data := map[string]any{
		"user_id":      cycle.UserID,
		"cycle_length": cycle.CycleLength,
		"mood":         cycle.Mood,
		"energy":       cycle.Energy,
		"date":         cycle.Date.String(),
	}

	body, err := r.client.Insert(ctx, cyclesTable, data)
	if err != nil {
		return nil, fmt.Errorf("failed to create cycle: %w", err)
	}

	var cycles []models.Cycle
	if err := json.Unmarshal(body, &cycles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(cycles) == 0 {
		return nil, fmt.Errorf("no cycle returned")
	}

	return &cycles[0], nil
}

func (r *cycleRepository) GetByID(ctx context.Context, id string) (*models.Cycle, error) {
	query := map[string]string{
		"id": "eq." + id,
	}

	body, err := r.client.Query(ctx, cyclesTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get cycle: %w", err)
	}

	var cycles []models.Cycle
	if err := json.Unmarshal(body, &cycles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(cycles) == 0 {
		return nil, fmt.Errorf("cycle %s: %w", id, ErrNotFound)
	}

	return &cycles[0], nil
}

func (r *cycleRepository) GetRecentByUserID(ctx context.Context, userID string, limit int) ([]models.Cycle, error) {
	query := map[string]string{
		"user_id": "eq." + userID,
		"order":   "date.desc,created_at.desc",
		"limit":   strconv.Itoa(limit),
	}

	body, err := r.client.Query(ctx, cyclesTable, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get cycles: %w", err)
	}

	var cycles []models.Cycle
	if err := json.Unmarshal(body, &cycles); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return cycles, nil
}

func (r *cycleRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.DeleteWhere(ctx, cyclesTable, map[string]string{"id": "eq." + id}); err != nil {
		return fmt.Errorf("failed to delete cycle: %w", err)
	}
	return nil
}
