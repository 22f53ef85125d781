package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	diffAdd    = color.New(color.FgGreen)
	diffDel    = color.New(color.FgRed)
	diffHunk   = color.New(color.FgCyan)
	diffHeader = color.New(color.Bold)
)

// RenderDiff writes a unified diff with per-line coloring: additions green,
// deletions red, hunk headers cyan, file headers bold. Color is suppressed
// automatically when the destination is not a terminal.
func RenderDiff(w io.Writer, diff string) error {
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		var err error
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"),
			strings.HasPrefix(line, "diff "), strings.HasPrefix(line, "index "):
			_, err = diffHeader.Fprintln(w, line)
		case strings.HasPrefix(line, "@@"):
			_, err = diffHunk.Fprintln(w, line)
		case strings.HasPrefix(line, "+"):
			_, err = diffAdd.Fprintln(w, line)
		case strings.HasPrefix(line, "-"):
			_, err = diffDel.Fprintln(w, line)
		default:
			_, err = fmt.Fprintln(w, line)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
