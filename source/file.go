// Package source models compilation inputs: named files with contents, and
// the line/column-aware locations the lexer and parser attach to every node.
package source

// File is an immutable input to the compiler. Both Name and Contents may be
// empty: a synthetic source (e.g. "global", used for compile-time constants
// that don't originate in any real file) may carry a name with no contents.
type File struct {
	Name     string
	Contents string
}

// New creates a source file value.
func New(name, contents string) *File {
	return &File{Name: name, Contents: contents}
}

// Len returns the length of Contents in bytes; the only derived quantity the
// spec allows on File.
func (f *File) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Contents)
}

func (f *File) String() string {
	if f == nil {
		return "<nil>"
	}
	if f.Name != "" {
		return f.Name
	}
	return "<unnamed>"
}
