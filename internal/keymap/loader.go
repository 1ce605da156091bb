package keymap

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// keymapConfig is the JSON file format.
type keymapConfig struct {
	Name     string    `json:"name"`
	Bindings []Binding `json:"bindings"`
}

// LoadFile loads a keymap from a JSON file. The file's bindings are layered
// on top of the defaults, so a user file only needs to list overrides.
func LoadFile(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	return LoadReader(f)
}

// LoadReader loads a keymap from a reader.
func LoadReader(r io.Reader) (*Keymap, error) {
	var config keymapConfig
	if err := json.NewDecoder(r).Decode(&config); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}

	km := Default().With(config.Bindings...)
	if config.Name != "" {
		km.Name = config.Name
	}
	return km, nil
}
