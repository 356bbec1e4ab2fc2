package classify

import (
	"path/filepath"
	"strings"
)

// Category names a destination bucket under the scan root.
type Category string

const (
	Images    Category = "Images"
	Documents Category = "Documents"
	Videos    Category = "Videos"
	Audio     Category = "Audio"
	Archives  Category = "Archives"
	Code      Category = "Code"
	Others    Category = "Others"
	// Errors is a counting pseudo-category; no files are ever placed in it.
	Errors Category = "Errors"
)

// Order is the fixed category order used for classification and reporting.
// Others and Errors come last and never own extensions.
var Order = []Category{Images, Documents, Videos, Audio, Archives, Code, Others, Errors}

type entry struct {
	category   Category
	extensions map[string]struct{}
}

var table = []entry{
	{Images, extensionSet("jpg", "jpeg", "png", "gif", "svg", "bmp", "webp")},
	{Documents, extensionSet("pdf", "doc", "docx", "txt", "xls", "xlsx", "ppt", "pptx")},
	{Videos, extensionSet("mp4", "mov", "mkv", "webm", "avi")},
	{Audio, extensionSet("mp3", "wav", "flac", "aac")},
	{Archives, extensionSet("zip", "rar", "tar", "gz", "7z")},
	{Code, extensionSet("rs", "py", "js", "ts", "go", "java", "c", "cpp", "html", "css", "json", "yaml", "yml")},
}

func extensionSet(exts ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[ext] = struct{}{}
	}
	return set
}

// Categories returns the extension sets keyed by category. The returned map
// is a copy; mutating it does not affect classification.
func Categories() map[Category][]string {
	out := make(map[Category][]string, len(table))
	for _, row := range table {
		exts := make([]string, 0, len(row.extensions))
		for ext := range row.extensions {
			exts = append(exts, ext)
		}
		out[row.category] = exts
	}
	return out
}

// Extension returns the lowercase extension of the path's base name without
// the leading dot. A name with no dot, a bare trailing dot, or a dotfile
// whose only dot leads the name (".env") yields "".
func Extension(path string) string {
	base := filepath.Base(path)
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return ""
	}
	return strings.ToLower(base[idx+1:])
}

// Classify returns the category owning the path's extension, or Others when
// no category claims it. Total over any input path.
func Classify(path string) Category {
	ext := Extension(path)
	if ext == "" {
		return Others
	}
	for _, row := range table {
		if _, ok := row.extensions[ext]; ok {
			return row.category
		}
	}
	return Others
}
