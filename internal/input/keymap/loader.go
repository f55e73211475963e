package keymap

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// keymapFile is the on-disk TOML shape:
//
//	name = "user"
//	[[bindings]]
//	keys = "<C-t>"
//	action = "indent.shiftRight"
type keymapFile struct {
	Name     string    `toml:"name"`
	Bindings []Binding `toml:"bindings"`
}

// Load reads a keymap from a TOML file. Bindings start from the
// default table; entries in the file add to or override it.
func Load(path string) (*Keymap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keymap: %w", err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader reads a keymap in TOML form from r, layered over the
// default table.
func LoadReader(r io.Reader) (*Keymap, error) {
	var file keymapFile
	dec := toml.NewDecoder(r)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode keymap: %w", err)
	}

	k := Default()
	if file.Name != "" {
		k.name = file.Name
	}
	for _, b := range file.Bindings {
		if err := k.Bind(b.Keys, b.Action); err != nil {
			return nil, err
		}
	}
	return k, nil
}
