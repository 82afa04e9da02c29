package manifest

import "strings"

// File is a parsed requirements manifest. Entries preserves the original
// line order, including option lines (-r, -e, --index-url, ...) that are
// not package requirements.
type File struct {
	Path    string
	Entries []Requirement
}

// Requirement is one manifest line: a package name plus whatever constraint
// text follows it. Option lines carry only Raw with an empty Name.
type Requirement struct {
	Name       string
	Constraint string
	Raw        string
}

// IsPackage reports whether the entry names a package (as opposed to an
// option line or include directive).
func (r Requirement) IsPackage() bool {
	return r.Name != ""
}

// Packages returns the named package entries, in manifest order.
func (f *File) Packages() []Requirement {
	var pkgs []Requirement
	for _, e := range f.Entries {
		if e.IsPackage() {
			pkgs = append(pkgs, e)
		}
	}
	return pkgs
}

// Has reports whether the manifest lists the given package, comparing
// normalized names.
func (f *File) Has(name string) bool {
	want := Normalize(name)
	for _, e := range f.Entries {
		if e.IsPackage() && Normalize(e.Name) == want {
			return true
		}
	}
	return false
}

// Normalize canonicalizes a package name: lowercase, with runs of
// '-', '_' and '.' collapsed to a single '-'. This matches how package
// indexes compare names, so "Foo_Bar" and "foo.bar" name the same package.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	sep := false
	for _, c := range strings.ToLower(name) {
		if c == '-' || c == '_' || c == '.' {
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('-')
		}
		sep = false
		b.WriteRune(c)
	}
	return b.String()
}
