package rediskv

import (
	"context"

	"golang.org/x/sync/errgroup"

	st "github.com/M-AnasGit/rediskv/store"
)

// GetByPrefix fetches every key under "<prefix>:" and returns one decoded
// Entry per key, ordered as the store enumerated them. Fetches run
// concurrently; results are paired to keys by index, never by completion
// order. A single failing fetch fails the whole call.
func (cl *client) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	keys, err := cl.store.Keys(ctx, prefix+":*")
	if err != nil {
		return nil, classify(err, "Failed to enumerate keys")
	}
	if len(keys) == 0 {
		return nil, NotFound("Index not found")
	}

	out := make([]Entry, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			v, err := cl.Get(gctx, key, true)
			if err != nil {
				return err
			}
			out[i] = Entry{Key: key, Value: v}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, classify(err, "Failed to get keys by prefix")
	}
	cl.debug("get by prefix", Fields{"prefix": prefix, "count": len(out)})
	return out, nil
}

// GetAll snapshots the whole store: every key is read with the primitive
// matching its store-level type, decoding enabled. Keys of unrecognized
// type are skipped.
func (cl *client) GetAll(ctx context.Context) ([]Entry, error) {
	keys, err := cl.store.Keys(ctx, "*")
	if err != nil {
		return nil, classify(err, "Failed to enumerate keys")
	}
	if len(keys) == 0 {
		return nil, NotFound("No keys found")
	}

	out := make([]Entry, 0, len(keys))
	for _, key := range keys {
		kind, err := cl.store.Type(ctx, key)
		if err != nil {
			return nil, classify(err, "Failed to read key type")
		}

		var v any
		switch kind {
		case st.KindString:
			v, err = cl.Get(ctx, key, true)
		case st.KindList:
			v, err = cl.ListGet(ctx, key, 0, -1, true)
		case st.KindHash:
			v, err = cl.HashGetAll(ctx, key, true)
		default:
			continue
		}
		if err != nil {
			return nil, classify(err, "Failed to get all keys")
		}
		out = append(out, Entry{Key: key, Value: v})
	}
	cl.debug("get all", Fields{"count": len(out)})
	return out, nil
}

// DeleteAll purges every key matching pattern ("" means "*"). Enumeration
// and deletion are two separate steps, so a key removed by another writer
// in between surfaces as a 404 from one of the concurrent deletes.
func (cl *client) DeleteAll(ctx context.Context, pattern string) error {
	pattern = coalesce(pattern, "*")
	keys, err := cl.store.Keys(ctx, pattern)
	if err != nil {
		return classify(err, "Failed to enumerate keys")
	}
	if len(keys) == 0 {
		return NotFound("No keys found")
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			return cl.Delete(gctx, key)
		})
	}
	if err := g.Wait(); err != nil {
		return classify(err, "Failed to delete keys")
	}
	cl.debug("delete all", Fields{"pattern": pattern, "count": len(keys)})
	return nil
}
