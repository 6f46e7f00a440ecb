package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/menstrualmentor/backend/internal/models"
	"github.com/menstrualmentor/backend/pkg/supabase"
)

// IdempotencyTTL bounds how long a stored response can be replayed.
const IdempotencyTTL = 24 * time.Hour

const idempotencyTable = "idempotency_keys"

// IdempotencyRepository stores the first response to each keyed POST
type IdempotencyRepository interface {
	// Get returns nil, nil when the key is unknown or older than IdempotencyTTL.
	Get(ctx context.Context, key, route, userID string) (*models.IdempotencyKey, error)
	Store(ctx context.Context, key, route, userID string, responseBody []byte, statusCode int) error
}

type idempotencyRow struct {
	Key          string          `json:"key"`
	Route        string          `json:"route"`
	UserID       string          `json:"user_id"`
	ResponseBody json.RawMessage `json:"response_body"`
	StatusCode   int             `json:"status_code"`
}

type idempotencyRepository struct {
	client *supabase.Client
	now    func() time.Time
}

// NewIdempotencyRepository creates a Supabase-backed idempotency store
func NewIdempotencyRepository(client *supabase.Client) IdempotencyRepository {
	return &idempotencyRepository{client: client, now: time.Now}
}

func (r *idempotencyRepository) Get(ctx context.Context, key, route, userID string) (*models.IdempotencyKey, error) {
	cutoff := r.now().Add(-IdempotencyTTL).UTC().Format(time.RFC3339)

	body, err := r.client.Query(ctx, idempotencyTable, map[string]string{
		"key":        "eq." + key,
		"route":      "eq." + route,
		"user_id":    "eq." + userID,
		"created_at": "gte." + cutoff,
		"order":      "created_at.desc",
		"limit":      "1",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query idempotency key: %w", err)
	}

	var keys []models.IdempotencyKey
	if err := json.Unmarshal(body, &keys); err != nil {
		return nil, fmt.Errorf("failed to unmarshal idempotency keys: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	return &keys[0], nil
}

func (r *idempotencyRepository) Store(ctx context.Context, key, route, userID string, responseBody []byte, statusCode int) error {
	row := idempotencyRow{
		Key:          key,
		Route:        route,
		UserID:       userID,
		ResponseBody: responseBody,
		StatusCode:   statusCode,
	}

	if _, err := r.client.Insert(ctx, idempotencyTable, row); err != nil {
		return fmt.Errorf("failed to store idempotency key for %s: %w", route, err)
	}

	return nil
}
