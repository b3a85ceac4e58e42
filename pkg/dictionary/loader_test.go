package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lokchuen/congkit/pkg/congkit"
)

const testTable = `# test table
我 我 1 1 1 1 0 0 0 0 0 hqi hqi hqi 5
你 你 1 1 0 0 0 0 0 0 0 onf onf onf 2
あ あ 0 0 0 0 0 1 0 0 0 vi vi vi 10
`

func writeTestTable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "table.txt")
	if err := os.WriteFile(path, []byte(testTable), 0644); err != nil {
		t.Fatalf("Writing table: %v", err)
	}
	return path
}

func TestDetectFileFormat(t *testing.T) {
	dir := t.TempDir()
	textPath := filepath.Join(dir, "table.txt")
	binPath := filepath.Join(dir, "table.dat")
	if err := os.WriteFile(textPath, []byte(testTable), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(binPath, []byte{0x90}, 0644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		path    string
		want    FileFormat
		wantErr bool
	}{
		{textPath, FormatText, false},
		{binPath, FormatBinary, false},
		{filepath.Join(dir, "missing.txt"), FormatUnknown, true},
		{filepath.Join(dir, "table.csv"), FormatUnknown, true},
	}
	for _, tc := range testCases {
		t.Run(filepath.Base(tc.path), func(t *testing.T) {
			format, err := DetectFileFormat(tc.path)
			if tc.wantErr {
				if err == nil {
					t.Fatal("Expected detection error")
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFileFormat failed: %v", err)
			}
			if format != tc.want {
				t.Errorf("Format = %v, want %v", format, tc.want)
			}
		})
	}
}

func TestLoadTextFile(t *testing.T) {
	path := writeTestTable(t)

	db, err := LoadFile(path, congkit.V3, congkit.FilterChinese())
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if db.Len() != 2 {
		t.Fatalf("Expected 2 entries, got %d", db.Len())
	}
	if code, ok := db.Code('我'); !ok || code != "hqi" {
		t.Errorf("Code(我) = %q, %v", code, ok)
	}
}

func TestArtifactRoundTrip(t *testing.T) {
	textPath := writeTestTable(t)
	artifactPath := filepath.Join(filepath.Dir(textPath), "table.dat")

	count, err := BuildArtifact(textPath, artifactPath, congkit.FilterAll())
	if err != nil {
		t.Fatalf("BuildArtifact failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("Expected 3 entries in artifact, got %d", count)
	}

	fromText, err := LoadTextFile(textPath, congkit.V3, congkit.FilterChinese())
	if err != nil {
		t.Fatalf("LoadTextFile failed: %v", err)
	}
	fromArtifact, err := LoadFile(artifactPath, congkit.V3, congkit.FilterChinese())
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if fromText.Len() != fromArtifact.Len() {
		t.Fatalf("Entry counts differ: text %d, artifact %d", fromText.Len(), fromArtifact.Len())
	}
	for _, c := range []rune{'我', '你'} {
		a, _ := fromText.Code(c)
		b, _ := fromArtifact.Code(c)
		if a != b {
			t.Errorf("Code(%c) differs: text %q, artifact %q", c, a, b)
		}
	}
}

func TestLoadBinaryFileGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.dat")
	if err := os.WriteFile(path, []byte{0xc1, 0x00, 0xff}, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBinaryFile(path, congkit.V3, congkit.FilterAll()); err == nil {
		t.Fatal("Expected decode error for garbage artifact")
	}
}
