package configs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// EncodeTOML encodes data as a TOML document.
func EncodeTOML(data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeTOML decodes a TOML document into data. The returned metadata keeps
// the document order of keys.
func DecodeTOML(content []byte, data interface{}) (toml.MetaData, error) {
	return toml.Decode(string(content), data)
}

// WriteFileAtomic writes content to a temporary file beside filePath and
// renames it over filePath. Parent directories are created with 0700.
// On failure filePath is left as it was.
func WriteFileAtomic(fs afero.Fs, filePath string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(filePath)
	if err := fs.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(filePath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file: %w", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := fs.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", tmpName, err)
	}
	if err := fs.Rename(tmpName, filePath); err != nil {
		return fmt.Errorf("replacing %s: %w", filePath, err)
	}

	committed = true
	return nil
}
