package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chat2pdf "github.com/alnah/go-chat2pdf"
	"github.com/alnah/go-chat2pdf/internal/yamlutil"
)

// Sentinel errors for transcript loading.
var (
	ErrUnsupportedFormat = errors.New("unsupported transcript format")
	ErrTranscriptParse   = errors.New("failed to parse transcript")
)

// LoadTranscript reads a chat export from a JSON or YAML file.
// The format is chosen by file extension.
func LoadTranscript(path string) (chat2pdf.ChatExport, error) {
	var export chat2pdf.ChatExport

	data, err := os.ReadFile(path) // #nosec G304 -- transcript path is user-provided
	if err != nil {
		return export, fmt.Errorf("reading transcript: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &export); err != nil {
			return export, fmt.Errorf("%w: %v", ErrTranscriptParse, err)
		}
	case ".yaml", ".yml":
		if err := yamlutil.UnmarshalStrict(data, &export); err != nil {
			return export, fmt.Errorf("%w: %v", ErrTranscriptParse, err)
		}
	default:
		return export, fmt.Errorf("%w: %q (expected .json, .yaml, or .yml)", ErrUnsupportedFormat, filepath.Ext(path))
	}

	return export, nil
}
