package output

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONListWriter writes file listings as JSON.
type JSONListWriter struct{}

// JSONListReport is the JSON output structure for a file listing.
type JSONListReport struct {
	RepoPath   string   `json:"repo"`
	Base       string   `json:"base"`
	Author     string   `json:"author,omitempty"`
	TotalFiles int      `json:"totalFiles"`
	Files      []string `json:"files"`
}

// Write outputs the file listing as JSON.
func (w *JSONListWriter) Write(report *FileListReport, options Options) error {
	jsonReport := JSONListReport{
		RepoPath:   report.RepoPath,
		Base:       report.Base,
		Author:     report.Author,
		TotalFiles: len(report.Files),
		Files:      report.Files,
	}
	return writeJSON(jsonReport, options.OutputPath)
}

func writeJSON(data interface{}, outputPath string) error {
	encoder := json.NewEncoder(os.Stdout)
	if outputPath != "" {
		file, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer file.Close()
		encoder = json.NewEncoder(file)
	}

	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
