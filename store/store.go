// Package store defines the backing-store abstraction used by rediskv.
//
// A Store is a conventional key-value server client: scalar get/set/delete,
// list push/pop/range/remove, hash field operations, glob key enumeration,
// and expiration. Implementations MUST report absence through the boolean
// and count return values, never through an error: a missing key on Get is
// (_, false, nil), a delete of nothing is (0, nil). Errors are reserved for
// transport and protocol failures. rediskv layers its own classification on
// top of that convention.
//
// All methods must be safe for concurrent use.
package store

import (
	"context"
	"time"
)

// TTL sentinels, mirroring the server's native TTL replies.
const (
	// TTLNone means the key exists but has no expiration set.
	TTLNone = time.Duration(-1)
	// TTLMissing means the key does not exist.
	TTLMissing = time.Duration(-2)
)

// Kind is the store-level type of a key.
type Kind string

const (
	KindString Kind = "string"
	KindList   Kind = "list"
	KindHash   Kind = "hash"
	KindNone   Kind = "none"
)

// Store is a minimal Redis-shaped client.
type Store interface {
	// Ping verifies connectivity to the backend.
	Ping(ctx context.Context) error
	// Close releases resources held by the client.
	Close() error

	// Set stores value under key. A positive ttl is attached atomically
	// with the write; ttl <= 0 means no expiration.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// Get returns (value, true, nil) on hit and ("", false, nil) on miss.
	Get(ctx context.Context, key string) (string, bool, error)
	// Del removes keys and returns how many existed.
	Del(ctx context.Context, keys ...string) (int64, error)

	// RPush appends values at the tail of the list under key, creating it
	// if absent, and returns the new length.
	RPush(ctx context.Context, key string, values ...string) (int64, error)
	// RPop removes and returns the tail element; ok=false when the list is
	// empty or absent.
	RPop(ctx context.Context, key string) (string, bool, error)
	// LRem removes occurrences of value from the list. count follows the
	// server convention: 0 removes all occurrences. Returns the number
	// removed.
	LRem(ctx context.Context, key string, count int64, value string) (int64, error)
	// LRange returns elements between start and stop inclusive; negative
	// indexes count from the tail, -1 being the last element.
	LRange(ctx context.Context, key string, start, stop int64) ([]string, error)

	// HSet stores value under field in the hash at key.
	HSet(ctx context.Context, key, field, value string) error
	// HGet returns (value, true, nil) on hit and ("", false, nil) when the
	// key or field is absent.
	HGet(ctx context.Context, key, field string) (string, bool, error)
	// HDel removes fields from the hash and returns how many existed.
	HDel(ctx context.Context, key string, fields ...string) (int64, error)
	// HGetAll returns every field of the hash; an absent key yields an
	// empty map.
	HGetAll(ctx context.Context, key string) (map[string]string, error)

	// Keys enumerates keys matching a glob pattern. Order is whatever the
	// backend returns; callers must not assume it is sorted.
	Keys(ctx context.Context, pattern string) ([]string, error)
	// Expire sets a fresh ttl on key; ok=false when the key does not exist.
	Expire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// TTL returns the remaining time to live, TTLNone for a key without
	// expiry, or TTLMissing for an absent key.
	TTL(ctx context.Context, key string) (time.Duration, error)
	// Type returns the Kind of the value at key, KindNone when absent.
	Type(ctx context.Context, key string) (Kind, error)
}
