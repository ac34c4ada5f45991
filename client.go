package rediskv

import (
	"context"
	"fmt"
	"time"

	c "github.com/M-AnasGit/rediskv/codec"
	st "github.com/M-AnasGit/rediskv/store"
)

type client struct {
	store st.Store
	codec c.Codec[any]
	log   Logger
	dev   bool
}

var _ Client = (*client)(nil)

func newClient(opts Options) (*client, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("rediskv: store is required")
	}

	cl := &client{
		store: opts.Store,
		dev:   opts.Development,
	}

	// defaults
	cl.log = coalesce[Logger](opts.Logger, NopLogger{})
	if opts.Codec != nil {
		cl.codec = opts.Codec
	} else {
		cl.codec = c.JSON[any]{}
	}

	return cl, nil
}

// debug emits per-operation diagnostics only in development mode.
func (cl *client) debug(msg string, f Fields) {
	if cl.dev {
		cl.log.Debug(msg, f)
	}
}

// encode serializes a value for storage; failures surface as 500.
func (cl *client) encode(v any) (string, error) {
	b, err := cl.codec.Encode(v)
	if err != nil {
		return "", StoreFailure("Failed to encode value", err)
	}
	return string(b), nil
}

// decode honors the per-read parse flag: raw text when parse is false,
// the decoded value otherwise. A malformed payload is a 500, never a
// silent nil.
func (cl *client) decode(raw string, parse bool) (any, error) {
	if !parse {
		return raw, nil
	}
	v, err := cl.codec.Decode([]byte(raw))
	if err != nil {
		return nil, StoreFailure("Failed to decode value", err)
	}
	return v, nil
}

// ==============================
// Connection lifecycle
// ==============================

func (cl *client) Connect(ctx context.Context) error {
	if err := cl.store.Ping(ctx); err != nil {
		return classify(err, "Failed to connect to store")
	}
	cl.debug("connected", nil)
	return nil
}

func (cl *client) Disconnect(context.Context) error {
	if err := cl.store.Close(); err != nil {
		return classify(err, "Failed to disconnect from store")
	}
	cl.debug("disconnected", nil)
	return nil
}

// ==============================
// Scalars
// ==============================

func (cl *client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	enc, err := cl.encode(value)
	if err != nil {
		return err
	}
	if err := cl.store.Set(ctx, key, enc, ttl); err != nil {
		return classify(err, "Failed to set key")
	}
	cl.debug("set", Fields{"key": key, "ttl": ttl})
	return nil
}

func (cl *client) Get(ctx context.Context, key string, parse bool) (any, error) {
	raw, ok, err := cl.store.Get(ctx, key)
	if err != nil {
		return nil, classify(err, "Failed to get key")
	}
	if !ok {
		return nil, NotFound("Key not found")
	}
	cl.debug("get", Fields{"key": key, "parse": parse})
	return cl.decode(raw, parse)
}

func (cl *client) Delete(ctx context.Context, key string) error {
	n, err := cl.store.Del(ctx, key)
	if err != nil {
		return classify(err, "Failed to delete key")
	}
	if n == 0 {
		return NotFound("Key not found")
	}
	cl.debug("delete", Fields{"key": key})
	return nil
}

// ==============================
// Lists
// ==============================

func (cl *client) ListPush(ctx context.Context, key string, value any) error {
	enc, err := cl.encode(value)
	if err != nil {
		return err
	}
	if _, err := cl.store.RPush(ctx, key, enc); err != nil {
		return classify(err, "Failed to push to list")
	}
	cl.debug("list push", Fields{"key": key})
	return nil
}

func (cl *client) ListPop(ctx context.Context, key string, parse bool) (any, error) {
	raw, ok, err := cl.store.RPop(ctx, key)
	if err != nil {
		return nil, classify(err, "Failed to pop from list")
	}
	if !ok {
		return nil, NotFound("List is empty")
	}
	cl.debug("list pop", Fields{"key": key, "parse": parse})
	return cl.decode(raw, parse)
}

// ListRemove drops every occurrence of the encoded value, not just one.
func (cl *client) ListRemove(ctx context.Context, key string, value any) error {
	enc, err := cl.encode(value)
	if err != nil {
		return err
	}
	n, err := cl.store.LRem(ctx, key, 0, enc)
	if err != nil {
		return classify(err, "Failed to remove from list")
	}
	if n == 0 {
		return NotFound("Value not found in list")
	}
	cl.debug("list remove", Fields{"key": key, "removed": n})
	return nil
}

// ListGet returns the elements between start and end inclusive, -1 meaning
// the last element, exactly as the store's native range works.
func (cl *client) ListGet(ctx context.Context, key string, start, end int64, parse bool) ([]any, error) {
	raw, err := cl.store.LRange(ctx, key, start, end)
	if err != nil {
		return nil, classify(err, "Failed to read list")
	}
	if len(raw) == 0 {
		return nil, NotFound("List is empty")
	}
	out := make([]any, len(raw))
	for i, r := range raw {
		v, err := cl.decode(r, parse)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	cl.debug("list get", Fields{"key": key, "start": start, "end": end, "count": len(out)})
	return out, nil
}

// ==============================
// Hashes
// ==============================

func (cl *client) HashSet(ctx context.Context, key, field string, value any) error {
	enc, err := cl.encode(value)
	if err != nil {
		return err
	}
	if err := cl.store.HSet(ctx, key, field, enc); err != nil {
		return classify(err, "Failed to set hash field")
	}
	cl.debug("hash set", Fields{"key": key, "field": field})
	return nil
}

func (cl *client) HashGet(ctx context.Context, key, field string, parse bool) (any, error) {
	raw, ok, err := cl.store.HGet(ctx, key, field)
	if err != nil {
		return nil, classify(err, "Failed to get hash field")
	}
	if !ok {
		return nil, NotFound("Field not found")
	}
	cl.debug("hash get", Fields{"key": key, "field": field, "parse": parse})
	return cl.decode(raw, parse)
}

func (cl *client) HashGetAll(ctx context.Context, key string, parse bool) (map[string]any, error) {
	raw, err := cl.store.HGetAll(ctx, key)
	if err != nil {
		return nil, classify(err, "Failed to read hash")
	}
	if len(raw) == 0 {
		return nil, NotFound("Hash not found")
	}
	out := make(map[string]any, len(raw))
	for f, r := range raw {
		v, err := cl.decode(r, parse)
		if err != nil {
			return nil, err
		}
		out[f] = v
	}
	cl.debug("hash get all", Fields{"key": key, "fields": len(out)})
	return out, nil
}

func (cl *client) HashDelete(ctx context.Context, key, field string) error {
	n, err := cl.store.HDel(ctx, key, field)
	if err != nil {
		return classify(err, "Failed to delete hash field")
	}
	if n == 0 {
		return NotFound("Field not found")
	}
	cl.debug("hash delete", Fields{"key": key, "field": field})
	return nil
}

// ==============================
// Expiration
// ==============================

// RefreshKey re-arms the TTL on an existing key. Unlike every other
// operation, a missing key is a silent no-op rather than a 404; callers
// that need the distinction should call GetTimeToLive first.
func (cl *client) RefreshKey(ctx context.Context, key string, ttl time.Duration) error {
	ok, err := cl.store.Expire(ctx, key, ttl)
	if err != nil {
		return classify(err, "Failed to refresh key")
	}
	if !ok {
		cl.debug("refresh skipped (key missing)", Fields{"key": key})
		return nil
	}
	cl.debug("refresh", Fields{"key": key, "ttl": ttl})
	return nil
}

// GetTimeToLive returns the remaining TTL. A key with no expiry reports
// store.TTLNone; an absent key is a 404.
func (cl *client) GetTimeToLive(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := cl.store.TTL(ctx, key)
	if err != nil {
		return 0, classify(err, "Failed to read time to live")
	}
	if ttl == st.TTLMissing {
		return 0, NotFound("Key not found")
	}
	cl.debug("ttl", Fields{"key": key, "ttl": ttl})
	return ttl, nil
}
