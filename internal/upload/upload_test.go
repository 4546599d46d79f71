package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store
}

// formFile builds a parsed multipart file the way a handler would see it.
func formFile(t *testing.T, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	file, header, err := req.FormFile("image")
	if err != nil {
		t.Fatalf("FormFile: %v", err)
	}
	t.Cleanup(func() { file.Close() })
	return file, header
}

func TestSaveAndResolve(t *testing.T) {
	store := newTestStore(t)

	file, header := formFile(t, "portrait.jpg", []byte("not really a jpeg"))
	url, err := store.Save(file, header, "hero")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(url, URLPrefix+"hero_") || !strings.HasSuffix(url, ".jpg") {
		t.Errorf("unexpected URL shape: %q", url)
	}

	filename := strings.TrimPrefix(url, URLPrefix)
	path, ok := store.Resolve(filename)
	if !ok {
		t.Fatalf("Resolve(%q) failed", filename)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "not really a jpeg" {
		t.Errorf("stored content mismatch: %q", data)
	}
}

func TestSaveRejectsBadExtension(t *testing.T) {
	store := newTestStore(t)

	file, header := formFile(t, "script.sh", []byte("#!/bin/sh"))
	if _, err := store.Save(file, header, "hero"); err != ErrFileType {
		t.Errorf("expected ErrFileType, got %v", err)
	}
}

func TestResolveRejectsTraversal(t *testing.T) {
	store := newTestStore(t)

	// Plant a file outside the upload dir.
	outside := filepath.Join(filepath.Dir(store.BaseDir()), "secret.txt")
	if err := os.WriteFile(outside, []byte("secret"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	for _, name := range []string{"../secret.txt", "a/../../secret.txt", "", "."} {
		if _, ok := store.Resolve(name); ok {
			t.Errorf("Resolve(%q) should be rejected", name)
		}
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)

	file, header := formFile(t, "portrait.png", []byte("png bytes"))
	url, err := store.Save(file, header, "about")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !store.Delete(url) {
		t.Fatal("Delete should succeed for a stored file")
	}
	if store.Delete(url) {
		t.Error("second Delete should report failure")
	}

	// External URLs are ignored, not treated as local paths.
	if store.Delete("https://images.example.com/stock.jpg") {
		t.Error("Delete should ignore external URLs")
	}
}

func TestDirSize(t *testing.T) {
	store := newTestStore(t)

	file, header := formFile(t, "a.webp", []byte("12345"))
	if _, err := store.Save(file, header, "hero"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	size, err := store.DirSize()
	if err != nil {
		t.Fatalf("DirSize: %v", err)
	}
	if size != 5 {
		t.Errorf("DirSize: got %d, want 5", size)
	}
}
