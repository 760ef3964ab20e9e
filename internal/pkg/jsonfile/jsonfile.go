// Package jsonfile reads and atomically writes JSON documents on disk
package jsonfile

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Read decodes the file at path into out.
// The returned error wraps os.ErrNotExist when the file is missing.
func Read(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// Write encodes v and replaces the file at path through a temporary file,
// creating the parent directory on demand.
func Write(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Exists reports whether a regular file is present at path
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
