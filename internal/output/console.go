package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// ConsoleListWriter writes file listings as plain lines, one path per line,
// so the output stays pipeable into fzf-style pickers.
type ConsoleListWriter struct{}

// Write outputs the file listing to the console or options.OutputPath.
func (w *ConsoleListWriter) Write(report *FileListReport, options Options) error {
	out, closer, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	for _, path := range report.Files {
		if _, err := fmt.Fprintln(out, path); err != nil {
			return err
		}
	}
	return nil
}

// Notice prints a short informational message for the "nothing to show"
// outcome. Every failure cause reads the same to the user.
func Notice(w io.Writer, msg string) {
	fmt.Fprintln(w, color.YellowString(msg))
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
