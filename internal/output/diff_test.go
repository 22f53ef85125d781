package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestRenderDiff_PreservesLines(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	diff := strings.Join([]string{
		"diff --git a/a.txt b/a.txt",
		"index 1111111..2222222 100644",
		"--- a/a.txt",
		"+++ b/a.txt",
		"@@ -1 +1,2 @@",
		" one",
		"+two",
	}, "\n") + "\n"

	var buf bytes.Buffer
	if err := RenderDiff(&buf, diff); err != nil {
		t.Fatalf("RenderDiff: %v", err)
	}
	if buf.String() != diff {
		t.Fatalf("rendered = %q, want %q", buf.String(), diff)
	}
}

func TestRenderDiff_EmptyInput(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	if err := RenderDiff(&buf, ""); err != nil {
		t.Fatalf("RenderDiff: %v", err)
	}
	if buf.String() != "\n" {
		t.Fatalf("rendered = %q, want single newline", buf.String())
	}
}
