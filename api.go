package rediskv

import (
	"context"
	"time"

	c "github.com/M-AnasGit/rediskv/codec"
	st "github.com/M-AnasGit/rediskv/store"
)

// Entry is a single key/value record returned by GetByPrefix and GetAll.
type Entry struct {
	Key   string
	Value any
}

// Client is the uniform facade over a Redis-shaped store. Every operation
// fails with *Error: 404 when the addressed key, field, element or match is
// absent, 500 on transport or codec failure. Operations taking a parse flag
// return the decoded value when parse is true and the raw encoded text
// (a string) when it is false.
type Client interface {
	// Connect verifies the store is reachable.
	Connect(ctx context.Context) error
	// Disconnect releases the store handle.
	Disconnect(ctx context.Context) error

	// Scalars
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, parse bool) (any, error)
	Delete(ctx context.Context, key string) error

	// Lists (tail semantics: push appends, pop takes the last element)
	ListPush(ctx context.Context, key string, value any) error
	ListPop(ctx context.Context, key string, parse bool) (any, error)
	ListRemove(ctx context.Context, key string, value any) error
	ListGet(ctx context.Context, key string, start, end int64, parse bool) ([]any, error)

	// Hashes
	HashSet(ctx context.Context, key, field string, value any) error
	HashGet(ctx context.Context, key, field string, parse bool) (any, error)
	HashGetAll(ctx context.Context, key string, parse bool) (map[string]any, error)
	HashDelete(ctx context.Context, key, field string) error

	// Expiration
	RefreshKey(ctx context.Context, key string, ttl time.Duration) error
	GetTimeToLive(ctx context.Context, key string) (time.Duration, error)

	// Composites
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
	GetAll(ctx context.Context) ([]Entry, error)
	DeleteAll(ctx context.Context, pattern string) error
}

// Options configure a Client. Only Store is required.
type Options struct {
	// Required
	Store st.Store

	Codec       c.Codec[any] // nil => codec.JSON[any]
	Logger      Logger       // nil => NopLogger
	Development bool         // enables per-operation debug diagnostics
}

func New(opts Options) (Client, error) {
	return newClient(opts)
}
