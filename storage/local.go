package storage

import (
	"os"
	"path/filepath"
)

// Local is a filesystem-backed Store rooted at a single directory.
type Local struct {
	dir string
}

func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

func (l *Local) Save(suggestedName string, data []byte) (string, error) {
	if !validName(suggestedName) || !AllowedExt(suggestedName) {
		return "", ErrInvalidName
	}

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return "", err
	}

	name := storedName(suggestedName)
	if err := os.WriteFile(filepath.Join(l.dir, name), data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

func (l *Local) Read(name string) ([]byte, error) {
	if !validName(name) {
		return nil, ErrInvalidName
	}

	data, err := os.ReadFile(filepath.Join(l.dir, name))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	return data, err
}

func (l *Local) Delete(name string) error {
	if !validName(name) {
		return ErrInvalidName
	}

	err := os.Remove(filepath.Join(l.dir, name))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// List returns the stored image names, skipping anything outside the
// extension allow-list.
func (l *Local) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !AllowedExt(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
