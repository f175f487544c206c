package repository

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestGalleryRepository_ListFileNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.jpg", "a.PNG", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.jpg"), 0o755); err != nil {
		t.Fatal(err)
	}

	names, err := NewGalleryRepository(dir).ListFileNames(context.Background())
	if err != nil {
		t.Fatalf("ListFileNames: %v", err)
	}
	sort.Strings(names)
	want := []string{"a.PNG", "b.jpg", "notes.txt"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func TestGalleryRepository_MissingDirectory(t *testing.T) {
	repo := NewGalleryRepository(filepath.Join(t.TempDir(), "does-not-exist"))
	if _, err := repo.ListFileNames(context.Background()); err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestGalleryRepository_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.jpg")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGalleryRepository(file).ListFileNames(context.Background()); err == nil {
		t.Fatal("expected error when path is a file")
	}
}
