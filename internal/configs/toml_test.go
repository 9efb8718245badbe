package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestDecodeTOMLKeepsKeyOrder(t *testing.T) {
	content := []byte("[b]\nx = 1\n[a]\nx = 2\n[c]\nx = 3\n")

	var data map[string]map[string]int
	md, err := DecodeTOML(content, &data)
	if err != nil {
		t.Fatalf("DecodeTOML failed: %v", err)
	}

	var tables []string
	for _, key := range md.Keys() {
		if len(key) == 1 {
			tables = append(tables, key[0])
		}
	}
	if strings.Join(tables, ",") != "b,a,c" {
		t.Errorf("Expected document order b,a,c, got %v", tables)
	}
}

func TestWriteFileAtomicCreatesDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	testFile := "/home/jane/.config/gswitch/config.toml"

	if err := WriteFileAtomic(fs, testFile, []byte("x = 1\n"), 0600); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}

	content, err := afero.ReadFile(fs, testFile)
	if err != nil {
		t.Fatalf("File was not created: %v", err)
	}
	if string(content) != "x = 1\n" {
		t.Errorf("Unexpected content %q", content)
	}
}

func TestWriteFileAtomicReplacesAndLeavesNoTempFiles(t *testing.T) {
	fs := afero.NewOsFs()
	dir := t.TempDir()
	testFile := filepath.Join(dir, "config.toml")

	if err := WriteFileAtomic(fs, testFile, []byte("old"), 0600); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := WriteFileAtomic(fs, testFile, []byte("new"), 0600); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	content, err := os.ReadFile(testFile)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(content) != "new" {
		t.Errorf("Expected replaced content, got %q", content)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the target file, found %d entries", len(entries))
	}

	info, err := os.Stat(testFile)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Expected 0600 permissions, got %v", info.Mode().Perm())
	}
}

func TestWriteFileAtomicReadOnlyFs(t *testing.T) {
	base := afero.NewMemMapFs()
	if err := afero.WriteFile(base, "/cfg/config.toml", []byte("original"), 0600); err != nil {
		t.Fatal(err)
	}
	fs := afero.NewReadOnlyFs(base)

	if err := WriteFileAtomic(fs, "/cfg/config.toml", []byte("changed"), 0600); err == nil {
		t.Fatal("Expected error writing to read-only filesystem")
	}

	content, _ := afero.ReadFile(base, "/cfg/config.toml")
	if string(content) != "original" {
		t.Errorf("Target modified despite failure: %q", content)
	}
}
