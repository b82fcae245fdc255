// Package filestore persists single JSON documents with atomic replacement.
// A missing document is reported distinctly from a corrupt or unreadable one
// so callers can choose "absent, use default" without swallowing real
// failures.
package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"keyvend/internal/infra"
)

// LoadJSON reads the document at path into out. It returns false with a nil
// error when the document does not exist; out is left untouched in that case.
func LoadJSON(path string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to read document "+path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, infra.WrapRepoErr("failed to decode document "+path, err, infra.KindCorrupt)
	}
	return true, nil
}

// SaveJSON writes v as the whole document at path, via a temp file and rename
// so readers never observe a partial write.
func SaveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return infra.WrapRepoErr("failed to encode document "+path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return infra.WrapRepoErr("failed to create directory "+dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return infra.WrapRepoErr("failed to create temp file for "+path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to write temp file for "+path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to close temp file for "+path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return infra.WrapRepoErr("failed to replace document "+path, err)
	}
	return nil
}
