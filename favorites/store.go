// Package favorites persists the user's favorite cities as a JSON array of
// strings in a single file.
package favorites

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// DefaultFile is the favorites file used when none is configured
const DefaultFile = "favorites.json"

// Load reads the favorite cities stored at path. A missing file or one that
// does not hold a JSON array of strings yields an empty list. Only a file
// that exists but cannot be read is reported as an error.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites: %w", err)
	}

	var cities []string
	if err := json.Unmarshal(data, &cities); err != nil {
		log.Printf("Ignoring malformed favorites file %s: %v", path, err)
		return []string{}, nil
	}
	if cities == nil {
		cities = []string{}
	}

	log.Printf("Loaded %d favorite cities from %s", len(cities), path)
	return cities, nil
}

// Save writes cities to path, replacing any previous content. When the file
// does not exist yet a notice is written to out first. The data is written
// to a temporary file in the same directory and renamed over path.
func Save(cities []string, path string, out io.Writer) error {
	// An existing file keeps its permissions across the rename
	mode := fs.FileMode(0o644)
	info, err := os.Stat(path)
	switch {
	case err == nil:
		mode = info.Mode().Perm()
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(out, "A file \"%s\" has been created to record favorite cities.\n", path)
	}

	if cities == nil {
		cities = []string{}
	}
	data, err := json.Marshal(cities)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".favorites-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set favorites permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write favorites: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	log.Printf("Saved %d favorite cities to %s", len(cities), path)
	return nil
}
