package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSetGetRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "session", `{"a":1}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, found, err := store.Get(ctx, "session")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found {
		t.Fatal("key not found after set")
	}
	if value != `{"a":1}` {
		t.Errorf("value = %q", value)
	}
}

func TestGetMissingKey(t *testing.T) {
	store := testStore(t)
	value, found, err := store.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found || value != "" {
		t.Errorf("got (%q, %v), want empty and not found", value, found)
	}
}

func TestSetOverwrites(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "k", "one"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "k", "two"); err != nil {
		t.Fatalf("set again: %v", err)
	}
	value, _, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != "two" {
		t.Errorf("value = %q, want %q", value, "two")
	}
}

func TestRemove(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Remove(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, found, _ := store.Get(ctx, "k"); found {
		t.Error("key still present after remove")
	}
	// removing again is a no-op
	if err := store.Remove(ctx, "k"); err != nil {
		t.Errorf("remove absent key: %v", err)
	}
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestJSONRoundTrip(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	in := payload{Name: "widget", Count: 3}
	if err := SetJSON(ctx, store, "p", in); err != nil {
		t.Fatalf("set json: %v", err)
	}
	out, found, err := GetJSON[payload](ctx, store, "p")
	if err != nil {
		t.Fatalf("get json: %v", err)
	}
	if !found {
		t.Fatal("key not found")
	}
	if out != in {
		t.Errorf("got %+v, want %+v", out, in)
	}
}

func TestGetJSONMissingKey(t *testing.T) {
	store := testStore(t)
	_, found, err := GetJSON[payload](context.Background(), store, "absent")
	if err != nil {
		t.Fatalf("get json: %v", err)
	}
	if found {
		t.Error("absent key reported found")
	}
}

func TestGetJSONMalformedValue(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "bad", "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}
	_, _, err := GetJSON[payload](ctx, store, "bad")
	var storeErr *Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("got %T (%v), want *Error", err, err)
	}
	if storeErr.Kind != KindJSONParse {
		t.Errorf("kind = %v, want KindJSONParse", storeErr.Kind)
	}
	if storeErr.Key != "bad" {
		t.Errorf("key = %q", storeErr.Key)
	}
}

func TestGetJSONMistypedValue(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, "mistyped", `{"count": "three"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	_, _, err := GetJSON[payload](ctx, store, "mistyped")
	var storeErr *Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("got %T (%v), want *Error", err, err)
	}
	if storeErr.Kind != KindDecode {
		t.Errorf("kind = %v, want KindDecode", storeErr.Kind)
	}
}

func TestOpenCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	store.Close()
}
