package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/scan-io-git/commentcheck/internal/checker"
	"github.com/scan-io-git/commentcheck/internal/findings"
	"github.com/scan-io-git/commentcheck/pkg/shared/files"
)

// Supported report formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

// Result is everything a report is rendered from.
type Result struct {
	RunID     string             `json:"run_id"`
	StartedAt time.Time          `json:"started_at"`
	Summary   checker.Summary    `json:"summary"`
	Counts    map[string]int     `json:"counts"`
	Findings  []findings.Finding `json:"findings"`
}

// NewResult assembles a Result with a fresh run id.
func NewResult(started time.Time, summary checker.Summary, found []findings.Finding) Result {
	if found == nil {
		found = []findings.Finding{}
	}
	return Result{
		RunID:     uuid.NewString(),
		StartedAt: started.UTC(),
		Summary:   summary,
		Counts:    findings.CountByRule(found),
		Findings:  found,
	}
}

// Write renders the result in the given format.
func Write(w io.Writer, format string, r Result) error {
	switch format {
	case FormatText, "":
		return writeText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatSARIF:
		return writeSARIF(w, r)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// WriteFile renders the result into path. A directory, or a path without an
// extension, receives a file named after the run and the format.
func WriteFile(path, format string, r Result) (string, error) {
	nameTemplate := fmt.Sprintf("commentcheck-report-%s.%s", r.RunID, extension(format))
	fullPath, folder, err := files.DetermineFileFullPath(path, nameTemplate)
	if err != nil {
		return "", err
	}
	if err := files.CreateFolderIfNotExists(folder); err != nil {
		return "", err
	}

	file, err := os.OpenFile(filepath.Clean(fullPath), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create report file %q: %w", fullPath, err)
	}

	if err := Write(file, format, r); err != nil {
		_ = file.Close()
		_ = os.Remove(fullPath)
		return "", fmt.Errorf("failed to write report %q: %w", fullPath, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close report %q: %w", fullPath, err)
	}
	return fullPath, nil
}

func extension(format string) string {
	switch format {
	case FormatJSON:
		return "json"
	case FormatSARIF:
		return "sarif"
	default:
		return "txt"
	}
}

func writeText(w io.Writer, r Result) error {
	for _, f := range r.Findings {
		if _, err := fmt.Fprintf(w, "%s:%d: %s [%s]\n", f.FilePath, f.Line, f.Message, f.RuleID); err != nil {
			return err
		}
	}
	for _, file := range r.Summary.Files {
		if file.Status == checker.StatusFailed {
			if _, err := fmt.Fprintf(w, "%s: not checked: %s\n", file.Path, file.Message); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(w, "%d finding(s) in %d file(s), %d file(s) failed\n",
		len(r.Findings), len(r.Summary.Files), r.Summary.Failed)
	return err
}
