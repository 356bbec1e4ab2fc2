package organizer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sortdir/internal/classify"
	"sortdir/internal/logging"
	"sortdir/internal/testsupport"
)

func newTestOrganizer(t *testing.T, attempts int) *Organizer {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithCollisionCap(attempts))
	return New(cfg, logging.NewNop())
}

func TestResolveDestinationCreatesCategoryDir(t *testing.T) {
	root := t.TempDir()
	o := newTestOrganizer(t, 10)

	dest, err := o.resolveDestination(root, classify.Images, "a.jpg")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if dest != filepath.Join(root, "Images", "a.jpg") {
		t.Fatalf("unexpected destination %s", dest)
	}
	info, err := os.Stat(filepath.Join(root, "Images"))
	if err != nil || !info.IsDir() {
		t.Fatalf("category dir missing: %v", err)
	}
}

func TestResolveDestinationAppendsCounter(t *testing.T) {
	root := t.TempDir()
	o := newTestOrganizer(t, 10)

	imagesDir := filepath.Join(root, "Images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"a.jpg", "a_1.jpg"} {
		if err := os.WriteFile(filepath.Join(imagesDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	dest, err := o.resolveDestination(root, classify.Images, "a.jpg")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if dest != filepath.Join(imagesDir, "a_2.jpg") {
		t.Fatalf("expected a_2.jpg, got %s", dest)
	}
}

func TestResolveDestinationNoExtension(t *testing.T) {
	root := t.TempDir()
	o := newTestOrganizer(t, 10)

	othersDir := filepath.Join(root, "Others")
	if err := os.MkdirAll(othersDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(othersDir, "notes"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	dest, err := o.resolveDestination(root, classify.Others, "notes")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if dest != filepath.Join(othersDir, "notes_1") {
		t.Fatalf("expected notes_1, got %s", dest)
	}
}

func TestResolveDestinationDotfileKeepsName(t *testing.T) {
	root := t.TempDir()
	o := newTestOrganizer(t, 10)

	othersDir := filepath.Join(root, "Others")
	if err := os.MkdirAll(othersDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(othersDir, ".env"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	dest, err := o.resolveDestination(root, classify.Others, ".env")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if dest != filepath.Join(othersDir, ".env_1") {
		t.Fatalf("expected .env_1, got %s", dest)
	}
}

func TestResolveDestinationExhaustsAttempts(t *testing.T) {
	root := t.TempDir()
	o := newTestOrganizer(t, 3)

	docsDir := filepath.Join(root, "Documents")
	if err := os.MkdirAll(docsDir, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"r.pdf", "r_1.pdf", "r_2.pdf", "r_3.pdf"} {
		if err := os.WriteFile(filepath.Join(docsDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	_, err := o.resolveDestination(root, classify.Documents, "r.pdf")
	if !errors.Is(err, ErrDestinationExhausted) {
		t.Fatalf("expected ErrDestinationExhausted, got %v", err)
	}
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		name string
		stem string
		ext  string
	}{
		{"a.jpg", "a", ".jpg"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"notes", "notes", ""},
		{".env", ".env", ""},
		{"trailing.", "trailing", "."},
	}
	for _, tc := range cases {
		stem, ext := splitName(tc.name)
		if stem != tc.stem || ext != tc.ext {
			t.Errorf("splitName(%q) = (%q, %q), want (%q, %q)", tc.name, stem, ext, tc.stem, tc.ext)
		}
	}
}
