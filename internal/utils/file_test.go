package utils

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"100000001.bmp", true},
		{"photo.JPG", true},
		{"scan.tiff", true},
		{"pic.webp", true},
		{"notes.txt", false},
		{"annotation.xml", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := IsImageFile(tt.name); got != tt.expected {
			t.Errorf("IsImageFile(%q): expected %v, got %v", tt.name, tt.expected, got)
		}
	}
}

func TestStem(t *testing.T) {
	if got := Stem("/data/images/100000001.bmp"); got != "100000001" {
		t.Errorf("expected stem 100000001, got %q", got)
	}
	if got := Stem("plain"); got != "plain" {
		t.Errorf("expected stem plain, got %q", got)
	}
}

func TestImageStems(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.bmp"))
	touch(t, filepath.Join(dir, "a.jpg"))
	touch(t, filepath.Join(dir, "c.txt"))
	if err := os.Mkdir(filepath.Join(dir, "sub.bmp"), 0755); err != nil {
		t.Fatal(err)
	}

	stems, err := ImageStems(dir)
	if err != nil {
		t.Fatalf("ImageStems failed: %v", err)
	}
	if !reflect.DeepEqual(stems, []string{"a", "b"}) {
		t.Errorf("expected stems [a b], got %v", stems)
	}
}

func TestFindImagePriority(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "img.jpg"))
	touch(t, filepath.Join(dir, "img.bmp"))

	path, ok := FindImage(dir, "img", nil)
	if !ok {
		t.Fatal("expected to find an image")
	}
	if filepath.Ext(path) != ".bmp" {
		t.Errorf("expected .bmp to win the priority order, got %q", path)
	}

	if _, ok := FindImage(dir, "missing", nil); ok {
		t.Error("expected no match for unknown stem")
	}
}

func TestListFilesWithExt(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.txt"))
	touch(t, filepath.Join(dir, "a.txt"))
	touch(t, filepath.Join(dir, "c.json"))

	files, err := ListFilesWithExt(dir, ".txt")
	if err != nil {
		t.Fatalf("ListFilesWithExt failed: %v", err)
	}
	expected := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")}
	if !reflect.DeepEqual(files, expected) {
		t.Errorf("expected %v, got %v", expected, files)
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	if !DirExists(dir) {
		t.Error("expected directory to exist")
	}
	// Second call is a no-op.
	if err := EnsureDir(dir); err != nil {
		t.Errorf("EnsureDir on existing dir failed: %v", err)
	}
}
