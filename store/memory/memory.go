// Package memory implements store.Store in process memory.
//
// It exists for local development and tests: same contract as the redis
// store (lazy expiration, glob key enumeration, empty aggregates deleted on
// last removal) with no server. Entries are copy-on-write; per-key mutations
// go through the concurrent map's atomic Compute, so no store-wide lock is
// taken.
package memory

import (
	"context"
	"path"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/M-AnasGit/rediskv/store"
)

type entry struct {
	kind store.Kind
	str  string
	list []string
	hash map[string]string
	exp  time.Time // zero => no TTL
}

func (e *entry) expired(now time.Time) bool {
	return !e.exp.IsZero() && now.After(e.exp)
}

type Memory struct {
	entries *xsync.MapOf[string, *entry]
}

var _ store.Store = (*Memory)(nil)

func New() *Memory {
	return &Memory{entries: xsync.NewMapOf[string, *entry]()}
}

func (m *Memory) Ping(context.Context) error { return nil }
func (m *Memory) Close() error               { return nil }

// load returns the live entry for key, lazily dropping it when expired.
func (m *Memory) load(key string) (*entry, bool) {
	e, ok := m.entries.Load(key)
	if !ok {
		return nil, false
	}
	if e.expired(time.Now()) {
		m.entries.Compute(key, func(old *entry, loaded bool) (*entry, bool) {
			if loaded && old == e {
				return nil, true // drop only the entry we saw
			}
			return old, !loaded
		})
		return nil, false
	}
	return e, true
}

func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	e := &entry{kind: store.KindString, str: value}
	if ttl > 0 {
		e.exp = time.Now().Add(ttl)
	}
	m.entries.Store(key, e)
	return nil
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	e, ok := m.load(key)
	if !ok || e.kind != store.KindString {
		return "", false, nil
	}
	return e.str, true, nil
}

func (m *Memory) Del(_ context.Context, keys ...string) (int64, error) {
	var n int64
	now := time.Now()
	for _, k := range keys {
		if e, ok := m.entries.LoadAndDelete(k); ok && !e.expired(now) {
			n++
		}
	}
	return n, nil
}

func (m *Memory) RPush(_ context.Context, key string, values ...string) (int64, error) {
	var length int64
	m.entries.Compute(key, func(old *entry, loaded bool) (*entry, bool) {
		if !loaded || old.expired(time.Now()) || old.kind != store.KindList {
			old = &entry{kind: store.KindList}
		}
		nl := make([]string, 0, len(old.list)+len(values))
		nl = append(nl, old.list...)
		nl = append(nl, values...)
		length = int64(len(nl))
		return &entry{kind: store.KindList, list: nl, exp: old.exp}, false
	})
	return length, nil
}

func (m *Memory) RPop(_ context.Context, key string) (string, bool, error) {
	var (
		val string
		hit bool
	)
	m.entries.Compute(key, func(old *entry, loaded bool) (*entry, bool) {
		if !loaded || old.expired(time.Now()) || old.kind != store.KindList || len(old.list) == 0 {
			return old, !loaded // leave whatever is there untouched
		}
		val, hit = old.list[len(old.list)-1], true
		rest := old.list[:len(old.list)-1]
		if len(rest) == 0 {
			return nil, true // empty list keys do not linger
		}
		nl := make([]string, len(rest))
		copy(nl, rest)
		return &entry{kind: store.KindList, list: nl, exp: old.exp}, false
	})
	return val, hit, nil
}

func (m *Memory) LRem(_ context.Context, key string, _ int64, value string) (int64, error) {
	var removed int64
	m.entries.Compute(key, func(old *entry, loaded bool) (*entry, bool) {
		if !loaded || old.expired(time.Now()) || old.kind != store.KindList {
			return old, !loaded
		}
		nl := make([]string, 0, len(old.list))
		for _, v := range old.list {
			if v == value {
				removed++
				continue
			}
			nl = append(nl, v)
		}
		if len(nl) == 0 {
			return nil, true
		}
		return &entry{kind: store.KindList, list: nl, exp: old.exp}, false
	})
	return removed, nil
}

func (m *Memory) LRange(_ context.Context, key string, start, stop int64) ([]string, error) {
	e, ok := m.load(key)
	if !ok || e.kind != store.KindList {
		return nil, nil
	}
	n := int64(len(e.list))
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return nil, nil
	}
	out := make([]string, stop-start+1)
	copy(out, e.list[start:stop+1])
	return out, nil
}

func (m *Memory) HSet(_ context.Context, key, field, value string) error {
	m.entries.Compute(key, func(old *entry, loaded bool) (*entry, bool) {
		if !loaded || old.expired(time.Now()) || old.kind != store.KindHash {
			old = &entry{kind: store.KindHash}
		}
		nh := make(map[string]string, len(old.hash)+1)
		for k, v := range old.hash {
			nh[k] = v
		}
		nh[field] = value
		return &entry{kind: store.KindHash, hash: nh, exp: old.exp}, false
	})
	return nil
}

func (m *Memory) HGet(_ context.Context, key, field string) (string, bool, error) {
	e, ok := m.load(key)
	if !ok || e.kind != store.KindHash {
		return "", false, nil
	}
	v, ok := e.hash[field]
	return v, ok, nil
}

func (m *Memory) HDel(_ context.Context, key string, fields ...string) (int64, error) {
	var removed int64
	m.entries.Compute(key, func(old *entry, loaded bool) (*entry, bool) {
		if !loaded || old.expired(time.Now()) || old.kind != store.KindHash {
			return old, !loaded
		}
		nh := make(map[string]string, len(old.hash))
		for k, v := range old.hash {
			nh[k] = v
		}
		for _, f := range fields {
			if _, ok := nh[f]; ok {
				delete(nh, f)
				removed++
			}
		}
		if len(nh) == 0 {
			return nil, true
		}
		return &entry{kind: store.KindHash, hash: nh, exp: old.exp}, false
	})
	return removed, nil
}

func (m *Memory) HGetAll(_ context.Context, key string) (map[string]string, error) {
	e, ok := m.load(key)
	if !ok || e.kind != store.KindHash {
		return map[string]string{}, nil
	}
	out := make(map[string]string, len(e.hash))
	for k, v := range e.hash {
		out[k] = v
	}
	return out, nil
}

func (m *Memory) Keys(_ context.Context, pattern string) ([]string, error) {
	now := time.Now()
	var out []string
	m.entries.Range(func(k string, e *entry) bool {
		if e.expired(now) {
			return true
		}
		if ok, err := path.Match(pattern, k); err == nil && ok {
			out = append(out, k)
		}
		return true
	})
	return out, nil
}

func (m *Memory) Expire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	var ok bool
	m.entries.Compute(key, func(old *entry, loaded bool) (*entry, bool) {
		if !loaded || old.expired(time.Now()) {
			return old, !loaded
		}
		ok = true
		ne := *old
		ne.exp = time.Now().Add(ttl)
		return &ne, false
	})
	return ok, nil
}

func (m *Memory) TTL(_ context.Context, key string) (time.Duration, error) {
	e, ok := m.load(key)
	if !ok {
		return store.TTLMissing, nil
	}
	if e.exp.IsZero() {
		return store.TTLNone, nil
	}
	return time.Until(e.exp), nil
}

func (m *Memory) Type(_ context.Context, key string) (store.Kind, error) {
	e, ok := m.load(key)
	if !ok {
		return store.KindNone, nil
	}
	return e.kind, nil
}
