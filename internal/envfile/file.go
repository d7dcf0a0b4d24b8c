package envfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile parses the .env file at path. A missing file yields an empty map.
func ReadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	env, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return env, nil
}

// PatchFile upserts updates into the .env file at path, creating it when
// absent. The write is atomic: content lands in a temp file first and is
// renamed over the target.
func PatchFile(path string, updates map[string]string) error {
	var content string
	data, err := os.ReadFile(path)
	if err == nil {
		content = string(data)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return writeFileAtomic(path, []byte(Patch(content, updates)), 0o644)
}

// writeFileAtomic writes data to filename via a temp file and rename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	return os.Rename(tmpName, filename)
}
