package dictionary

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lokchuen/congkit/pkg/congkit"
)

// LoadFile builds a table from a file, detecting text vs binary format
// from the filename.
func LoadFile(filename string, version congkit.Version, filter congkit.Filter) (*congkit.DB, error) {
	format, err := DetectFileFormat(filename)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatText:
		return LoadTextFile(filename, version, filter)
	case FormatBinary:
		return LoadBinaryFile(filename, version, filter)
	}
	return nil, fmt.Errorf("unsupported table format for %s", filename)
}

// LoadTextFile builds a table from a flat text table file.
func LoadTextFile(filename string, version congkit.Version, filter congkit.Filter) (*congkit.DB, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", filename, err)
	}
	db, err := congkit.FromText(string(data), version, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse table %s: %w", filename, err)
	}
	log.Debugf("Loaded text table %s: %d entries", filename, db.Len())
	return db, nil
}

// LoadBinaryFile builds a table from a precomputed binary artifact.
func LoadBinaryFile(filename string, version congkit.Version, filter congkit.Filter) (*congkit.DB, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", filename, err)
	}
	db, err := congkit.FromBytes(data, version, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artifact %s: %w", filename, err)
	}
	log.Debugf("Loaded binary table %s: %d entries", filename, db.Len())
	return db, nil
}

// BuildArtifact converts a text table into the binary artifact format.
// The filter chooses which entries the artifact carries; version binding
// stays out of the artifact and happens when the artifact is loaded.
func BuildArtifact(textPath, outPath string, filter congkit.Filter) (int, error) {
	data, err := os.ReadFile(textPath)
	if err != nil {
		return 0, fmt.Errorf("failed to read table %s: %w", textPath, err)
	}
	entries, err := congkit.ParseEntries(string(data), filter)
	if err != nil {
		return 0, fmt.Errorf("failed to parse table %s: %w", textPath, err)
	}
	encoded, err := congkit.EncodeEntries(entries)
	if err != nil {
		return 0, fmt.Errorf("failed to encode entries: %w", err)
	}
	if err := os.WriteFile(outPath, encoded, 0644); err != nil {
		return 0, fmt.Errorf("failed to write artifact %s: %w", outPath, err)
	}
	log.Debugf("Wrote artifact %s: %d entries, %d bytes", outPath, len(entries), len(encoded))
	return len(entries), nil
}
