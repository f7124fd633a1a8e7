package idempotency

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"encore.dev"
	"encore.dev/middleware"

	"encore.app/transfer/model"
)

// createMiddlewareRequest builds a middleware.Request for testing.
func createMiddlewareRequest(ctx context.Context, path string, headers http.Header, payload interface{}) middleware.Request {
	encoreReq := &encore.Request{
		Path:    path,
		Headers: headers,
		Payload: payload,
	}
	return middleware.NewRequest(ctx, encoreReq)
}

func TestExtractIdempotencyKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{IdempotencyHeader: []string{"push-retry-123"}},
			expectedKey: "push-retry-123",
		},
		{
			name:        "surrounding_whitespace_trimmed",
			headers:     http.Header{IdempotencyHeader: []string{"  push-retry-123  "}},
			expectedKey: "push-retry-123",
		},
		{
			name:          "missing_header",
			headers:       http.Header{},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "empty_header_value",
			headers:       http.Header{IdempotencyHeader: []string{""}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "whitespace_only_header",
			headers:       http.Header{IdempotencyHeader: []string{"   "}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:        "multiple_header_values_takes_first",
			headers:     http.Header{IdempotencyHeader: []string{"first-key", "second-key"}},
			expectedKey: "first-key",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := createMiddlewareRequest(context.Background(), "/v1/services/101/push", tc.headers, nil)

			key, err := extractIdempotencyKey(req)

			if tc.expectedError != "" {
				assert.NotNil(t, err)
				if err != nil {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
				assert.Empty(t, key)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tc.expectedKey, key)
			}
		})
	}
}

func TestHashBody(t *testing.T) {
	assert.Equal(t, "", hashBody(nil))
	assert.Equal(t, "", hashBody([]byte{}))

	sum := hashBody([]byte(`{"recipient_email":"recipient@example.com"}`))
	assert.Len(t, sum, 64)
	assert.Regexp(t, "^[a-f0-9]{64}$", sum)

	assert.Equal(t, sum, hashBody([]byte(`{"recipient_email":"recipient@example.com"}`)), "hash is deterministic")
	assert.NotEqual(t, sum, hashBody([]byte(`{"recipient_email":"other@example.com"}`)), "different bodies hash differently")
}

func TestValidateBodyHash(t *testing.T) {
	testCases := []struct {
		name          string
		entry         model.IdempotencyCacheEntry
		bodyHash      string
		expectedError string
	}{
		{
			name:     "matching_hashes",
			entry:    model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash: "abc123",
		},
		{
			name:     "empty_cached_hash_allows_any",
			entry:    model.IdempotencyCacheEntry{},
			bodyHash: "abc123",
		},
		{
			name:     "empty_new_hash_allows_any",
			entry:    model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash: "",
		},
		{
			name:          "conflicting_hashes",
			entry:         model.IdempotencyCacheEntry{RequestBodyHash: "abc123"},
			bodyHash:      "xyz789",
			expectedError: "idempotency key conflict: request body does not match previous request",
		},
		{
			name:          "hash_comparison_is_case_sensitive",
			entry:         model.IdempotencyCacheEntry{RequestBodyHash: "ABC123"},
			bodyHash:      "abc123",
			expectedError: "idempotency key conflict",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBodyHash(tc.entry, tc.bodyHash)

			if tc.expectedError != "" {
				assert.NotNil(t, err)
				if err != nil {
					assert.Contains(t, err.Error(), tc.expectedError)
				}
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestHandleProcessingEntry(t *testing.T) {
	response := handleProcessingEntry("push-retry-123")

	assert.NotNil(t, response.Err)
	if response.Err != nil {
		assert.Contains(t, response.Err.Error(), "request is already being processed")
	}
	assert.Nil(t, response.Payload)
}

func TestIdempotencyMiddlewareMissingKey(t *testing.T) {
	req := createMiddlewareRequest(context.Background(), "/v1/services/101/push", http.Header{},
		map[string]interface{}{"recipient_email": "recipient@example.com"})

	nextCalled := false
	next := func(req middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{
			Payload: map[string]interface{}{"success": true},
		}
	}

	response := IdempotencyMiddleware(req, next)

	assert.NotNil(t, response.Err)
	if response.Err != nil {
		assert.Contains(t, response.Err.Error(), "X-Idempotency-Key header is required")
	}
	assert.False(t, nextCalled, "a request without a key must never reach the push")
	assert.Nil(t, response.Payload)
}
