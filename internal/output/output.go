// Package output renders resolver results for the terminal: plain or JSON
// file listings, informational notices, and colorized diffs.
package output

// Format selects the listing output format.
type Format int

const (
	FormatConsole Format = iota
	FormatJSON
)

// Options controls how a listing is written.
type Options struct {
	// OutputPath is a file to write to; empty means stdout.
	OutputPath string
}

// FileListReport is the result of one changed-files resolution.
type FileListReport struct {
	RepoPath string
	Base     string
	Author   string // empty in unfiltered mode
	Files    []string
}

// ListWriter writes a file listing in some format.
type ListWriter interface {
	Write(report *FileListReport, options Options) error
}

// NewListWriter returns the writer for the given format.
func NewListWriter(format Format) ListWriter {
	if format == FormatJSON {
		return &JSONListWriter{}
	}
	return &ConsoleListWriter{}
}
