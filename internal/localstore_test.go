package internal

import (
	"path/filepath"
	"testing"

	"github.com/akwaba-bebe/akwaba-cli/testutil"
)

func TestLocalStore_SetGet(t *testing.T) {
	store := NewLocalStore(testutil.CreateInMemoryDB(t))

	if err := store.Set("greeting", "akwaba"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, ok, err := store.Get("greeting")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if value != "akwaba" {
		t.Errorf("Get() = %q, want %q", value, "akwaba")
	}
}

func TestLocalStore_GetMissing(t *testing.T) {
	store := NewLocalStore(testutil.CreateInMemoryDB(t))

	value, ok, err := store.Get("nope")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Errorf("Get() ok = true for missing key, value = %q", value)
	}
}

func TestLocalStore_SetOverwrites(t *testing.T) {
	store := NewLocalStore(testutil.CreateInMemoryDB(t))

	if err := store.Set(KeyToken, "first"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(KeyToken, "second"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, _, err := store.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "second" {
		t.Errorf("Get() = %q, want %q", value, "second")
	}
}

func TestLocalStore_Delete(t *testing.T) {
	store := NewLocalStore(testutil.CreateInMemoryDB(t))

	if err := store.Set(KeyToken, "abc"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Delete(KeyToken); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, ok, err := store.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() ok = true after Delete()")
	}
}

func TestLocalStore_DeleteMissingIsNoop(t *testing.T) {
	store := NewLocalStore(testutil.CreateInMemoryDB(t))

	if err := store.Delete("never-set"); err != nil {
		t.Errorf("Delete() of missing key error = %v, want nil", err)
	}
}

func TestOpenLocalStore_CreatesFileAndSurvivesReopen(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	path := filepath.Join(dir, "state", "state.db")

	store, err := OpenLocalStore(path)
	if err != nil {
		t.Fatalf("OpenLocalStore() error = %v", err)
	}
	if err := store.Set(KeyUserName, "Kouassi Jean"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenLocalStore(path)
	if err != nil {
		t.Fatalf("OpenLocalStore() reopen error = %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get(KeyUserName)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || value != "Kouassi Jean" {
		t.Errorf("Get() after reopen = %q, %v; want %q, true", value, ok, "Kouassi Jean")
	}
}
