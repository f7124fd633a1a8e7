package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/transfer/model"
)

// IdempotencyHeader carries the client-chosen dedup key. Required on
// every endpoint tagged idempotency: a push retried after a timeout
// must never transfer the server twice.
const IdempotencyHeader = "X-Idempotency-Key"

const (
	statusProcessing = "processing"
	statusCompleted  = "completed"
)

//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := generateBodyHash(req)

	cacheKey := model.IdempotencyKey{
		Resource: req.Data().Path,
		Key:      idempotencyKey,
	}

	entry, cacheErr := IdempotencyCache.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if errors.Is(cacheErr, cache.Miss) {
			if err := markAsProcessing(req.Context(), cacheKey, bodyHash); err != nil {
				return middleware.Response{Err: err}
			}

			response := next(req)

			if response.Err != nil {
				// Clear the marker so the caller can retry with the
				// same key.
				deleteCacheEntry(req.Context(), cacheKey)
			} else {
				markAsCompleted(req.Context(), cacheKey, bodyHash, idempotencyKey, response)
			}

			return response
		}

		return middleware.Response{
			Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
		}
	}

	return handleExistingEntry(req, next, entry, bodyHash, idempotencyKey)
}

func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var idempotencyKey string
	if headers := req.Data().Headers; headers != nil {
		idempotencyKey = strings.TrimSpace(headers.Get(IdempotencyHeader))
	}

	if idempotencyKey == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}

	return idempotencyKey, nil
}

// generateBodyHash creates a hash of the request body for conflict detection
func generateBodyHash(req middleware.Request) string {
	var bodyHash string
	if payload := req.Data().Payload; payload != nil {
		if bodyBytes, err := json.Marshal(payload); err != nil {
			rlog.Error("failed to marshal request body", "error", err)
		} else {
			bodyHash = hashBody(bodyBytes)
		}
	}
	return bodyHash
}

func handleExistingEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, bodyHash, idempotencyKey string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case statusProcessing:
		return handleProcessingEntry(idempotencyKey)
	case statusCompleted:
		return handleCompletedEntry(req, next, entry, idempotencyKey)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", idempotencyKey, "status", entry.Status)
		return next(req)
	}
}

// validateBodyHash rejects a key reused with a different request body.
func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func handleProcessingEntry(idempotencyKey string) middleware.Response {
	rlog.Info("concurrent request detected", "key", idempotencyKey)
	return middleware.Response{
		Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
	}
}

// handleCompletedEntry replays the cached response for a finished
// request instead of running the push again.
func handleCompletedEntry(req middleware.Request, next middleware.Next, entry model.IdempotencyCacheEntry, idempotencyKey string) middleware.Response {
	if len(entry.Response) > 0 {
		rlog.Info("returning cached response", "key", idempotencyKey)

		responseType := req.Data().API.ResponseType
		if responseType != nil {
			responseValue := reflect.New(responseType.Elem()).Interface()

			err := json.Unmarshal(entry.Response, responseValue)
			if err == nil {
				return middleware.Response{Payload: responseValue}
			}
			rlog.Error("failed to unmarshal cached response", "error", err, "key", idempotencyKey)
		}
	}

	// Corrupted cache entry: fall through and process fresh.
	return next(req)
}

func markAsProcessing(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash string) *errs.Error {
	if err := IdempotencyCache.Set(ctx, cacheKey, model.IdempotencyCacheEntry{
		Status:          statusProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

func deleteCacheEntry(ctx context.Context, cacheKey model.IdempotencyKey) {
	if _, deleteErr := IdempotencyCache.Delete(ctx, cacheKey); deleteErr != nil {
		rlog.Error("failed to clear failed request from cache", "error", deleteErr)
	}
}

func markAsCompleted(ctx context.Context, cacheKey model.IdempotencyKey, bodyHash, idempotencyKey string, response middleware.Response) {
	completedEntry := model.IdempotencyCacheEntry{
		Status:          statusCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}

	if response.Payload != nil {
		payloadBytes, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		completedEntry.Response = payloadBytes
	}

	if setErr := IdempotencyCache.Set(ctx, cacheKey, completedEntry); setErr != nil {
		rlog.Error("failed to cache response", "error", setErr)
	}

	rlog.Debug("request completed and response cached", "key", idempotencyKey)
}

func hashBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
