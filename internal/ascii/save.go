package ascii

import "os"

// Save writes s to path, replacing any existing file.
func Save(s, path string) error {
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
