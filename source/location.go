package source

import "sync"

// lineIndex maps byte offsets to 1-indexed (line, column) pairs for a single
// File. Built lazily and cached on first use since most files are never
// asked for a line/column at all (e.g. synthetic "global" sources).
type lineIndex struct {
	tabWidth   int
	lineStarts []int // byte offset of the first byte of each line
}

// DefaultTabWidth is the column width the spec says tabs default to: 1.
const DefaultTabWidth = 1

func newLineIndex(contents string, tabWidth int) *lineIndex {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	starts := []int{0}
	for i := 0; i < len(contents); i++ {
		switch contents[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			// \r\n counts as one terminator; bare \r also terminates a line.
			if i+1 < len(contents) && contents[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		case '\f':
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{tabWidth: tabWidth, lineStarts: starts}
}

// lineColumn returns the 1-indexed line and column for a byte offset.
func (li *lineIndex) lineColumn(offset int) (line, column int) {
	// Binary search for the line containing offset.
	lo, hi := 0, len(li.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if li.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	line = lo + 1
	lineStart := li.lineStarts[lo]
	col := 1
	for i := lineStart; i < offset; i++ {
		col++
	}
	return line, col
}

type fileIndexCache struct {
	mu    sync.Mutex
	cache map[*File]*lineIndex
}

var indexCache = &fileIndexCache{cache: make(map[*File]*lineIndex)}

func indexFor(f *File, tabWidth int) *lineIndex {
	indexCache.mu.Lock()
	defer indexCache.mu.Unlock()
	if li, ok := indexCache.cache[f]; ok {
		return li
	}
	li := newLineIndex(f.Contents, tabWidth)
	indexCache.cache[f] = li
	return li
}

// Point is one endpoint of a Location: a character offset plus its derived
// 1-indexed line and column.
type Point struct {
	Offset int
	Line   int
	Column int
}

// Location is a half-open character range [Begin.Offset, End.Offset) within
// a single File. The zero value is not a valid Location; use Unknown.
type Location struct {
	file    *File
	begin   Point
	end     Point
	known   bool
}

// Unknown is the distinguished "no location" value. It compares equal to
// itself and orders after every known Location.
var Unknown = Location{}

// IsUnknown reports whether l carries no location information.
func (l Location) IsUnknown() bool { return !l.known }

// File returns the source file the location refers to, or nil for Unknown.
func (l Location) File() *File { return l.file }

// Begin returns the inclusive start point.
func (l Location) Begin() Point { return l.begin }

// End returns the exclusive end point.
func (l Location) End() Point { return l.end }

// Merge returns the span from a.Begin to b.End. Both locations must refer
// to the same source file; if either is Unknown, or they name different
// files, Merge returns Unknown.
func Merge(a, b Location) Location {
	if a.IsUnknown() || b.IsUnknown() || a.file != b.file {
		return Unknown
	}
	return Location{file: a.file, begin: a.begin, end: b.end, known: true}
}

// Compare orders locations by source file identity, then by begin offset,
// then by end offset. Unknown orders after every known location and
// compares equal to itself.
func Compare(a, b Location) int {
	if a.IsUnknown() && b.IsUnknown() {
		return 0
	}
	if a.IsUnknown() {
		return 1
	}
	if b.IsUnknown() {
		return -1
	}
	if a.file != b.file {
		// Order by file name for determinism; files are otherwise incomparable.
		switch {
		case a.file.Name < b.file.Name:
			return -1
		case a.file.Name > b.file.Name:
			return 1
		}
	}
	if a.begin.Offset != b.begin.Offset {
		if a.begin.Offset < b.begin.Offset {
			return -1
		}
		return 1
	}
	switch {
	case a.end.Offset < b.end.Offset:
		return -1
	case a.end.Offset > b.end.Offset:
		return 1
	default:
		return 0
	}
}

func (l Location) String() string {
	if l.IsUnknown() {
		return "<unknown>"
	}
	return l.file.String()
}

// Builder accumulates begin/end offsets against a File and produces an
// immutable Location. Reusable across many builds against the same file to
// amortize the lazily-built line index.
type Builder struct {
	file     *File
	tabWidth int
}

// NewBuilder creates a location builder bound to a single source file.
func NewBuilder(f *File, tabWidth int) *Builder {
	return &Builder{file: f, tabWidth: tabWidth}
}

// At produces a zero-width Location at the given byte offset.
func (b *Builder) At(offset int) Location {
	return b.Span(offset, offset)
}

// Span produces a Location over [begin, end).
func (b *Builder) Span(begin, end int) Location {
	if b.file == nil {
		return Unknown
	}
	idx := indexFor(b.file, b.tabWidth)
	bl, bc := idx.lineColumn(begin)
	el, ec := idx.lineColumn(end)
	return Location{
		file:  b.file,
		begin: Point{Offset: begin, Line: bl, Column: bc},
		end:   Point{Offset: end, Line: el, Column: ec},
		known: true,
	}
}
