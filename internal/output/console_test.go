package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
)

func TestConsoleListWriter_OnePathPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	report := &FileListReport{
		RepoPath: "/repo",
		Base:     "main",
		Files:    []string{"a.go", "src/b.go"},
	}

	w := &ConsoleListWriter{}
	if err := w.Write(report, Options{OutputPath: path}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "a.go\nsrc/b.go\n"
	if string(data) != want {
		t.Fatalf("output = %q, want %q", string(data), want)
	}
}

func TestNotice(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	Notice(&buf, "no changed files for main")
	if buf.String() != "no changed files for main\n" {
		t.Fatalf("notice = %q", buf.String())
	}
}
