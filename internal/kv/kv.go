package kv

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a key is missing or has expired.
var ErrNotFound = errors.New("kv: not found")

// Store is the small expiring key-value surface needed for OTP codes and
// chat transcripts.
type Store interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}
