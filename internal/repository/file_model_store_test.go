package repository

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
)

func TestFileModelStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models", "artifact.json")
	store, err := NewFileModelStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ctx := context.Background()
	if _, err := store.Load(ctx); !errors.Is(err, models.ErrArtifactNotFound) {
		t.Fatalf("missing artifact must report ErrArtifactNotFound, got %v", err)
	}

	blob := []byte(`{"version":1}`)
	if err := store.Save(ctx, blob); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(got, blob) {
		t.Fatalf("loaded blob differs: %q", got)
	}
}

func TestFileModelStoreOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "artifact.json")
	store, err := NewFileModelStore(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	ctx := context.Background()
	if err := store.Save(ctx, []byte("first")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, []byte("second")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != "second" {
		t.Fatalf("expected latest blob, got %q", got)
	}
}
