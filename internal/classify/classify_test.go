package classify_test

import (
	"testing"

	"sortdir/internal/classify"
)

func TestClassifyKnownExtensions(t *testing.T) {
	cases := []struct {
		path string
		want classify.Category
	}{
		{"photo.jpg", classify.Images},
		{"photo.JPG", classify.Images},
		{"diagram.svg", classify.Images},
		{"report.PDF", classify.Documents},
		{"sheet.xlsx", classify.Documents},
		{"clip.mkv", classify.Videos},
		{"song.FLAC", classify.Audio},
		{"bundle.tar", classify.Archives},
		{"backup.7z", classify.Archives},
		{"main.go", classify.Code},
		{"config.YAML", classify.Code},
		{"/some/dir/nested.webm", classify.Videos},
	}
	for _, tc := range cases {
		if got := classify.Classify(tc.path); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.path, got, tc.want)
		}
	}
}

func TestClassifyFallsBackToOthers(t *testing.T) {
	for _, path := range []string{"notes", "data.xyz", "trailing.", "weird.tar.unknown"} {
		if got := classify.Classify(path); got != classify.Others {
			t.Errorf("Classify(%q) = %s, want Others", path, got)
		}
	}
}

// Dotfiles have no extension even when the name after the dot matches a
// known one, so ".go" or ".json" never land in Code.
func TestClassifyDotfiles(t *testing.T) {
	for _, path := range []string{".go", ".json", ".html", ".env", ".gitignore"} {
		if got := classify.Classify(path); got != classify.Others {
			t.Errorf("Classify(%q) = %s, want Others", path, got)
		}
	}
}

func TestExtension(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"a.jpg", "jpg"},
		{"b.JPG", "jpg"},
		{"archive.tar.gz", "gz"},
		{"notes", ""},
		{"trailing.", ""},
		{".env", ""},
		{".gitignore", ""},
		{".tar.gz", "gz"},
		{"/abs/path/to/file.TXT", "txt"},
	}
	for _, tc := range cases {
		if got := classify.Extension(tc.path); got != tc.want {
			t.Errorf("Extension(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

// The table relies on every extension belonging to exactly one category;
// classification order would silently decide ties otherwise.
func TestNoExtensionOwnedTwice(t *testing.T) {
	seen := map[string]classify.Category{}
	for category, exts := range classify.Categories() {
		for _, ext := range exts {
			if prev, ok := seen[ext]; ok {
				t.Errorf("extension %q owned by both %s and %s", ext, prev, category)
			}
			seen[ext] = category
		}
	}
}

func TestOrderCoversAllCategories(t *testing.T) {
	position := map[classify.Category]int{}
	for i, category := range classify.Order {
		position[category] = i
	}
	for category := range classify.Categories() {
		if _, ok := position[category]; !ok {
			t.Errorf("category %s missing from report order", category)
		}
	}
	if last := classify.Order[len(classify.Order)-1]; last != classify.Errors {
		t.Errorf("expected Errors to close the report order, got %s", last)
	}
}
