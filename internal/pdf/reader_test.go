package pdf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPageTextsErrors(t *testing.T) {
	reader := NewReader(testMaxFileSize)
	tmpDir := t.TempDir()

	notPDF := filepath.Join(tmpDir, "doc.txt")
	if err := os.WriteFile(notPDF, []byte("text"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr string
	}{
		{"empty path", "", "path cannot be empty"},
		{"non-existent file", filepath.Join(tmpDir, "missing.pdf"), "does not exist"},
		{"wrong extension", notPDF, "not a PDF"},
		{"directory", tmpDir, "directory"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reader.PageTexts(tt.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestPageTextsSizeLimit(t *testing.T) {
	reader := NewReader(5)
	tmpDir := t.TempDir()

	big := filepath.Join(tmpDir, "big.pdf")
	if err := os.WriteFile(big, []byte("more than five bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := reader.PageTexts(big)
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Errorf("expected size limit error, got %v", err)
	}
}
