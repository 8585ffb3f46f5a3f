package gamedata

import (
	"encoding/json"
	"fmt"
	"io/fs"
)

// Load reads and unmarshals a JSON file from the embedded quiz data.
func Load[T any](filename string) (T, error) {
	return loadFS[T](dataFS, filename)
}

// loadFS reads and unmarshals a JSON file from fsys.
func loadFS[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("read quiz data %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse quiz data %s: %w", filename, err)
	}

	return result, nil
}
