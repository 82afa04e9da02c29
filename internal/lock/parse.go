package lock

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/mwrona/comprep/internal/manifest"
)

// Load reads a uv.lock file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project lock file path
	if err != nil {
		return nil, fmt.Errorf("reading lock file: %w", err)
	}
	return Parse(data)
}

// Parse parses uv.lock content. Fields beyond package name/version are
// ignored; the lock's full schema belongs to the external tool.
func Parse(data []byte) (*File, error) {
	var lf File
	if err := toml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parsing lock TOML: %w", err)
	}
	return &lf, nil
}

// Has reports whether the lock pins the given package, comparing
// normalized names.
func (f *File) Has(name string) bool {
	want := manifest.Normalize(name)
	for _, p := range f.Packages {
		if manifest.Normalize(p.Name) == want {
			return true
		}
	}
	return false
}

// MissingFrom returns manifest package names that do not appear in the
// lock. This is informational only; keeping the lock consistent with the
// manifest is the environment manager's job.
func (f *File) MissingFrom(m *manifest.File) []string {
	var missing []string
	for _, r := range m.Packages() {
		if !f.Has(r.Name) {
			missing = append(missing, r.Name)
		}
	}
	return missing
}
