// Package dictionary loads code tables from disk, in either the flat text
// format or the precomputed binary artifact format, and hands them to the
// congkit engine. All file I/O lives here; the engine itself never touches
// the filesystem.
package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// FileFormat represents the supported table file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatText               // flat text table, system of record
	FormatBinary             // msgpack entry sequence, derived artifact
)

// FormatInfo contains metadata about a table file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatText: {
		Format:      FormatText,
		Description: "Text Code Table",
		Extensions:  []string{".txt"},
		MinSize:     1,
	},
	FormatBinary: {
		Format:      FormatBinary,
		Description: "Binary Table Artifact",
		Extensions:  []string{".dat", ".bin"},
		MinSize:     1, // msgpack array header at minimum
	},
}

// ValidateFileFormat checks if a file matches the expected format
func ValidateFileFormat(filename string, expectedFormat FileFormat) error {
	fileInfo, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}

	formatInfo, exists := supportedFormats[expectedFormat]
	if !exists {
		return fmt.Errorf("unknown format: %v", expectedFormat)
	}

	if fileInfo.Size() < formatInfo.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, fileInfo.Size(), formatInfo.Description, formatInfo.MinSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	validExt := false
	for _, validExtension := range formatInfo.Extensions {
		if ext == validExtension {
			validExt = true
			break
		}
	}
	if !validExt {
		return fmt.Errorf("file %s has invalid extension %s for format %s (expected: %v)",
			filename, ext, formatInfo.Description, formatInfo.Extensions)
	}

	log.Debugf("Table file %s validated as %s", filename, formatInfo.Description)
	return nil
}

// DetectFileFormat attempts to detect the format of a file by extension
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt":
		if err := ValidateFileFormat(filename, FormatText); err == nil {
			return FormatText, nil
		}
	case ".dat", ".bin":
		if err := ValidateFileFormat(filename, FormatBinary); err == nil {
			return FormatBinary, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s", filename)
}

// GetFormatInfo returns information about a specific format
func GetFormatInfo(format FileFormat) (FormatInfo, bool) {
	info, exists := supportedFormats[format]
	return info, exists
}
