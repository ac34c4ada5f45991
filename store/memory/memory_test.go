package memory

import (
	"context"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/M-AnasGit/rediskv/store"
)

func TestScalars(t *testing.T) {
	ctx := context.Background()
	m := New()

	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatalf("miss expected")
	}
	if err := m.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, _ := m.Get(ctx, "k"); !ok || v != "v" {
		t.Fatalf("Get: %q %v", v, ok)
	}

	if n, _ := m.Del(ctx, "k", "ghost"); n != 1 {
		t.Fatalf("Del count: %d", n)
	}
	if n, _ := m.Del(ctx, "k"); n != 0 {
		t.Fatalf("second Del count: %d", n)
	}
}

func TestLazyExpiry(t *testing.T) {
	ctx := context.Background()
	m := New()

	if err := m.Set(ctx, "k", "v", 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok, _ := m.Get(ctx, "k"); !ok {
		t.Fatalf("hit expected before expiry")
	}
	time.Sleep(25 * time.Millisecond)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatalf("miss expected after expiry")
	}
	if kind, _ := m.Type(ctx, "k"); kind != store.KindNone {
		t.Fatalf("expired key kind: %v", kind)
	}
}

func TestListOps(t *testing.T) {
	ctx := context.Background()
	m := New()

	if n, _ := m.RPush(ctx, "l", "a", "b", "c"); n != 3 {
		t.Fatalf("RPush length: %d", n)
	}
	if got, _ := m.LRange(ctx, "l", 0, -1); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("LRange full: %v", got)
	}
	if got, _ := m.LRange(ctx, "l", 1, 2); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("LRange [1,2]: %v", got)
	}
	if got, _ := m.LRange(ctx, "l", -2, -1); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("LRange [-2,-1]: %v", got)
	}
	if got, _ := m.LRange(ctx, "l", 5, 9); len(got) != 0 {
		t.Fatalf("LRange past end: %v", got)
	}

	if v, ok, _ := m.RPop(ctx, "l"); !ok || v != "c" {
		t.Fatalf("RPop: %q %v", v, ok)
	}

	if n, _ := m.LRem(ctx, "l", 0, "a"); n != 1 {
		t.Fatalf("LRem count: %d", n)
	}
	// removing the last element deletes the key
	if n, _ := m.LRem(ctx, "l", 0, "b"); n != 1 {
		t.Fatalf("LRem count: %d", n)
	}
	if kind, _ := m.Type(ctx, "l"); kind != store.KindNone {
		t.Fatalf("drained list kind: %v", kind)
	}
	if _, ok, _ := m.RPop(ctx, "l"); ok {
		t.Fatalf("RPop on drained list should miss")
	}
}

func TestLRemAllOccurrences(t *testing.T) {
	ctx := context.Background()
	m := New()

	if _, err := m.RPush(ctx, "l", "x", "y", "x", "x"); err != nil {
		t.Fatalf("RPush: %v", err)
	}
	if n, _ := m.LRem(ctx, "l", 0, "x"); n != 3 {
		t.Fatalf("LRem removed %d, want 3", n)
	}
	if got, _ := m.LRange(ctx, "l", 0, -1); !reflect.DeepEqual(got, []string{"y"}) {
		t.Fatalf("after LRem: %v", got)
	}
}

func TestHashOps(t *testing.T) {
	ctx := context.Background()
	m := New()

	if err := m.HSet(ctx, "h", "f1", "v1"); err != nil {
		t.Fatalf("HSet: %v", err)
	}
	if err := m.HSet(ctx, "h", "f2", "v2"); err != nil {
		t.Fatalf("HSet: %v", err)
	}

	if v, ok, _ := m.HGet(ctx, "h", "f1"); !ok || v != "v1" {
		t.Fatalf("HGet: %q %v", v, ok)
	}
	if _, ok, _ := m.HGet(ctx, "h", "nope"); ok {
		t.Fatalf("HGet absent field should miss")
	}

	all, _ := m.HGetAll(ctx, "h")
	if !reflect.DeepEqual(all, map[string]string{"f1": "v1", "f2": "v2"}) {
		t.Fatalf("HGetAll: %v", all)
	}
	// callers own the returned map
	all["f3"] = "v3"
	if _, ok, _ := m.HGet(ctx, "h", "f3"); ok {
		t.Fatalf("HGetAll leaked internal state")
	}

	if n, _ := m.HDel(ctx, "h", "f1", "nope"); n != 1 {
		t.Fatalf("HDel count: %d", n)
	}
	// deleting the last field deletes the key
	if n, _ := m.HDel(ctx, "h", "f2"); n != 1 {
		t.Fatalf("HDel count: %d", n)
	}
	if kind, _ := m.Type(ctx, "h"); kind != store.KindNone {
		t.Fatalf("drained hash kind: %v", kind)
	}
}

func TestKeysGlob(t *testing.T) {
	ctx := context.Background()
	m := New()

	for _, k := range []string{"users:1", "users:2", "orders:1"} {
		if err := m.Set(ctx, k, "v", 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}

	got, _ := m.Keys(ctx, "users:*")
	sort.Strings(got)
	if !reflect.DeepEqual(got, []string{"users:1", "users:2"}) {
		t.Fatalf("Keys users:*: %v", got)
	}

	all, _ := m.Keys(ctx, "*")
	if len(all) != 3 {
		t.Fatalf("Keys *: %v", all)
	}

	if got, _ := m.Keys(ctx, "none:*"); len(got) != 0 {
		t.Fatalf("Keys none:*: %v", got)
	}
}

func TestExpireAndTTL(t *testing.T) {
	ctx := context.Background()
	m := New()

	if ttl, _ := m.TTL(ctx, "ghost"); ttl != store.TTLMissing {
		t.Fatalf("TTL of missing key: %v", ttl)
	}
	if ok, _ := m.Expire(ctx, "ghost", time.Minute); ok {
		t.Fatalf("Expire on missing key should report false")
	}

	if err := m.Set(ctx, "k", "v", 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if ttl, _ := m.TTL(ctx, "k"); ttl != store.TTLNone {
		t.Fatalf("TTL without expiry: %v", ttl)
	}

	if ok, _ := m.Expire(ctx, "k", time.Minute); !ok {
		t.Fatalf("Expire on live key should report true")
	}
	ttl, _ := m.TTL(ctx, "k")
	if ttl <= 0 || ttl > time.Minute {
		t.Fatalf("TTL after Expire: %v", ttl)
	}
}

func TestTypeKinds(t *testing.T) {
	ctx := context.Background()
	m := New()

	_ = m.Set(ctx, "s", "v", 0)
	_, _ = m.RPush(ctx, "l", "v")
	_ = m.HSet(ctx, "h", "f", "v")

	for key, want := range map[string]store.Kind{
		"s":    store.KindString,
		"l":    store.KindList,
		"h":    store.KindHash,
		"none": store.KindNone,
	} {
		if kind, _ := m.Type(ctx, key); kind != want {
			t.Fatalf("Type(%s): got %v want %v", key, kind, want)
		}
	}
}
