package baseline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
)

// ErrBaselineNotFound is returned when a named baseline doesn't exist.
var ErrBaselineNotFound = errors.New("baseline not found")

// Store manages baseline persistence as JSON files in a directory.
type Store struct {
	Dir string
}

// NewStore creates a store rooted at the given directory.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// DefaultDir returns the default baseline directory (~/.configlint/baselines).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".configlint/baselines"
	}
	return filepath.Join(home, ".configlint", "baselines")
}

// ResolveDir returns the baseline directory from CONFIGLINT_BASELINE_DIR or
// the default.
func ResolveDir(environ []string) string {
	for _, env := range environ {
		if strings.HasPrefix(env, "CONFIGLINT_BASELINE_DIR=") {
			return strings.TrimPrefix(env, "CONFIGLINT_BASELINE_DIR=")
		}
	}
	return DefaultDir()
}

// Save stores a baseline under its name.
func (s *Store) Save(b Baseline) error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path(b.Name), data, 0644)
}

// Load retrieves a baseline by name.
func (s *Store) Load(name string) (Baseline, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Baseline{}, ErrBaselineNotFound
		}
		return Baseline{}, err
	}

	var b Baseline
	if err := json.Unmarshal(data, &b); err != nil {
		return Baseline{}, err
	}

	return b, nil
}

// List returns summaries of all stored baselines.
func (s *Store) List() ([]Summary, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Summary{}, nil
		}
		return nil, err
	}

	var summaries []Summary
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.Dir, entry.Name()))
		if err != nil {
			continue
		}

		var b Baseline
		if err := json.Unmarshal(data, &b); err != nil {
			continue
		}

		summaries = append(summaries, Summary{
			Name:      b.Name,
			Errors:    len(b.Fingerprints),
			Timestamp: b.Timestamp,
		})
	}

	return summaries, nil
}

// Delete removes a baseline by name.
func (s *Store) Delete(name string) error {
	err := os.Remove(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrBaselineNotFound
		}
		return err
	}
	return nil
}

// Exists checks whether a named baseline is stored.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}

func (s *Store) path(name string) string {
	safeName := strings.ReplaceAll(name, "/", "_")
	safeName = strings.ReplaceAll(safeName, "\\", "_")
	return filepath.Join(s.Dir, safeName+".json")
}
