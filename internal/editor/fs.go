package editor

import "os"

// FileStore is the narrow filesystem surface the editor touches: whole-file
// reads and writes addressed by a user-supplied path. The path is used as
// given; no validation happens beyond the emptiness check in Apply.
type FileStore interface {
	// ReadFile returns the full contents of the file at path.
	ReadFile(path string) (string, error)

	// WriteFile replaces the file at path with contents.
	WriteFile(path string, contents string) error
}

// OSFileStore backs FileStore with the local filesystem.
type OSFileStore struct{}

func (OSFileStore) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (OSFileStore) WriteFile(path string, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
