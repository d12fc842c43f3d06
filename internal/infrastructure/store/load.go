package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// loadJSONFile decodes a JSON array file into out.
func loadJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
