package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetermineFileFullPath(t *testing.T) {
	type testCase struct {
		name         string
		inputPath    string
		nameTemplate string
		expectFile   string
		expectFolder string
		setup        func(t *testing.T) (inputPath, expectFile, expectFolder string)
	}

	tmpDir := t.TempDir()

	tests := []testCase{
		{
			name:         "Directory path with name template",
			inputPath:    tmpDir,
			nameTemplate: "output.json",
			expectFile:   filepath.Join(tmpDir, "output.json"),
			expectFolder: tmpDir,
		},
		{
			name:         "File path with extension",
			inputPath:    filepath.Join(tmpDir, "data.json"),
			nameTemplate: "ignored.txt",
			expectFile:   filepath.Join(tmpDir, "data.json"),
			expectFolder: tmpDir,
			setup: func(t *testing.T) (string, string, string) {
				f := filepath.Join(tmpDir, "data.json")
				_ = os.WriteFile(f, []byte("test"), 0644)
				return f, f, tmpDir
			},
		},
		{
			name:         "Path with no extension, treat as folder",
			inputPath:    filepath.Join(tmpDir, "output_folder"),
			nameTemplate: "report.log",
			expectFile:   filepath.Join(tmpDir, "output_folder", "report.log"),
			expectFolder: filepath.Join(tmpDir, "output_folder"),
		},
		{
			name:         "Non-existent file with extension",
			inputPath:    filepath.Join(tmpDir, "nonexistent.yaml"),
			nameTemplate: "ignored.txt",
			expectFile:   filepath.Join(tmpDir, "nonexistent.yaml"),
			expectFolder: tmpDir,
		},
		{
			name:         "Non-existent folder",
			inputPath:    filepath.Join(tmpDir, "missing_folder"),
			nameTemplate: "result.json",
			expectFile:   filepath.Join(tmpDir, "missing_folder", "result.json"),
			expectFolder: filepath.Join(tmpDir, "missing_folder"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actualPath := tt.inputPath
			expectFile := tt.expectFile
			expectFolder := tt.expectFolder

			if tt.setup != nil {
				actualPath, expectFile, expectFolder = tt.setup(t)
			}

			filePath, folderPath, err := DetermineFileFullPath(actualPath, tt.nameTemplate)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if filePath != expectFile {
				t.Errorf("Expected file path %s, got %s", expectFile, filePath)
			}
			if folderPath != expectFolder {
				t.Errorf("Expected folder path %s, got %s", expectFolder, folderPath)
			}
		})
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "empty", content: "", want: nil},
		{name: "no final newline", content: "a\nb", want: []string{"a", "b"}},
		{name: "final newline", content: "a\nb\n", want: []string{"a", "b"}},
		{name: "crlf", content: "a\r\nb\r\n", want: []string{"a", "b"}},
		{name: "blank lines kept", content: "a\n\n\nb\n", want: []string{"a", "", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d lines, got %d: %q", len(tt.want), len(got), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Line %d: expected %q, got %q", i+1, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestReadLines(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Foo.java")
	if err := os.WriteFile(path, []byte("class Foo {\n}\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	lines, err := ReadLines(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(lines) != 2 || lines[0] != "class Foo {" || lines[1] != "}" {
		t.Errorf("Unexpected lines: %q", lines)
	}

	if _, err := ReadLines(tmpDir); err == nil {
		t.Errorf("Expected an error for a directory")
	}
	if _, err := ReadLines(filepath.Join(tmpDir, "missing.java")); err == nil {
		t.Errorf("Expected an error for a missing file")
	}
}

func TestEnsureWithinRoot(t *testing.T) {
	root := t.TempDir()

	inside, err := EnsureWithinRoot(root, filepath.Join(root, "src", "A.java"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if inside != filepath.Join(root, "src", "A.java") {
		t.Errorf("Unexpected path %s", inside)
	}

	if _, err := EnsureWithinRoot(root, filepath.Join(root, "..", "etc", "passwd")); err == nil {
		t.Errorf("Expected an error for a path outside of root")
	}

	if got, err := EnsureWithinRoot("", "a/../b"); err != nil || got != "b" {
		t.Errorf("Expected cleaned path without root, got %q (%v)", got, err)
	}
}
