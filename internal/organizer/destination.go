package organizer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sortdir/internal/classify"
	"sortdir/internal/services"
)

// ErrDestinationExhausted marks a collision probe loop that hit its cap
// without finding a free name.
var ErrDestinationExhausted = errors.New("destination name slots exhausted")

// resolveDestination ensures the category directory exists under root and
// returns a path inside it that no existing file occupies. When the source
// name is taken, `_<N>` is appended to the stem (N starting at 1) while the
// original extension is preserved. The probe loop is capped so a pathological
// directory cannot spin forever.
func (o *Organizer) resolveDestination(root string, category classify.Category, sourceName string) (string, error) {
	dir := filepath.Join(root, string(category))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", services.Wrap(services.ErrTransient, "organizing", "ensure category dir", fmt.Sprintf("failed to create %s", dir), err)
	}

	candidate := filepath.Join(dir, sourceName)
	taken, err := pathExists(candidate)
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "organizing", "probe destination", "failed to inspect destination", err)
	}
	if !taken {
		return candidate, nil
	}

	stem, ext := splitName(sourceName)
	for attempt := 1; attempt <= o.maxCollisionAttempts; attempt++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, attempt, ext))
		taken, err := pathExists(candidate)
		if err != nil {
			return "", services.Wrap(services.ErrTransient, "organizing", "probe destination", "failed to inspect destination", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %d attempts in %s", ErrDestinationExhausted, o.maxCollisionAttempts, dir)
}

func pathExists(path string) (bool, error) {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// splitName separates a file name into stem and extension, keeping the
// leading dot on the extension. A name without a dot, or a dotfile whose only
// dot is the leading one, has no extension.
func splitName(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	stem = strings.TrimSuffix(name, ext)
	if stem == "" {
		return name, ""
	}
	return stem, ext
}
