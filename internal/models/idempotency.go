package models

import (
	"encoding/json"
	"time"
)

// IdempotencyKey represents a stored idempotency key record
type IdempotencyKey struct {
	ID           string          `json:"id"`
	Key          string          `json:"key"`
	Route        string          `json:"route"`
	UserID       string          `json:"user_id"`
	ResponseBody json.RawMessage `json:"response_body"`
	StatusCode   int             `json:"status_code"`
	CreatedAt    time.Time       `json:"created_at"`
}
