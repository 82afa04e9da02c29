package manifest

import (
	"fmt"
	"os"
	"strings"
)

// Load reads and parses a requirements file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the project manifest path
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	f.Path = path
	return f, nil
}

// Parse parses requirements file content. Blank lines and full-line comments
// are dropped; inline comments are stripped. Anything else is kept in order.
func Parse(data []byte) (*File, error) {
	f := &File{}
	for i, line := range strings.Split(string(data), "\n") {
		line = stripComment(line)
		if line == "" {
			continue
		}
		req, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("manifest line %d: %w", i+1, err)
		}
		f.Entries = append(f.Entries, req)
	}
	return f, nil
}

// ParseLine parses a single requirement line into name and constraint.
// Option lines (starting with '-') are returned with an empty Name.
func ParseLine(line string) (Requirement, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Requirement{}, fmt.Errorf("empty requirement")
	}
	if strings.HasPrefix(line, "-") {
		// Installer option or include (-r, -e, --index-url, ...). The
		// external installer interprets these; we only carry them.
		return Requirement{Raw: line}, nil
	}

	name := line
	constraint := ""
	if i := strings.IndexAny(line, "=<>!~;@ ["); i >= 0 {
		name = line[:i]
		constraint = strings.TrimSpace(line[i:])
	}
	if !validName(name) {
		return Requirement{}, fmt.Errorf("invalid package name %q", name)
	}
	if constraint != "" && !strings.ContainsRune("=<>!~;@[", rune(constraint[0])) {
		return Requirement{}, fmt.Errorf("invalid constraint %q for package %q", constraint, name)
	}
	return Requirement{Name: name, Constraint: constraint, Raw: line}, nil
}

// Append adds requirement lines to the end of a manifest file, creating it
// if absent.
func Append(path string, lines []string) error {
	// O_RDWR so the trailing-byte check below can read; a write-only
	// descriptor cannot.
	fh, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644) //nolint:gosec // manifest needs to be readable
	if err != nil {
		return fmt.Errorf("opening manifest: %w", err)
	}
	defer func() { _ = fh.Close() }()

	// Make sure we start on a fresh line when the file has content that
	// does not end with a newline.
	if info, err := fh.Stat(); err == nil && info.Size() > 0 {
		buf := make([]byte, 1)
		if _, err := fh.ReadAt(buf, info.Size()-1); err != nil {
			return fmt.Errorf("reading manifest tail: %w", err)
		}
		if buf[0] != '\n' {
			if _, err := fh.WriteString("\n"); err != nil {
				return fmt.Errorf("writing manifest: %w", err)
			}
		}
	}

	for _, l := range lines {
		if _, err := fh.WriteString(l + "\n"); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
	}
	return nil
}

// stripComment removes trailing comments and surrounding whitespace.
func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// validName accepts names of the form accepted by package indexes: ASCII
// letters and digits, with '-', '_' and '.' allowed between them.
func validName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
			if i == 0 || i == len(name)-1 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
