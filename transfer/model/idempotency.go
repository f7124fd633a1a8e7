package model

import (
	"encoding/json"
	"time"
)

// IdempotencyKey identifies one deduplicated request in the cache.
type IdempotencyKey struct {
	Resource string
	Key      string
}

// IdempotencyCacheEntry is the cached state of a deduplicated request.
type IdempotencyCacheEntry struct {
	Status          string          `json:"status"`
	RequestBodyHash string          `json:"request_body_hash"`
	Response        json.RawMessage `json:"response,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
