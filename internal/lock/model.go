package lock

// File represents the parts of a uv.lock file this tool reads. The lock is
// produced and consumed by the environment manager; we only report on it.
type File struct {
	Version  int       `toml:"version"`
	Packages []Package `toml:"package"`
}

// Package records one resolved package pin.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}
