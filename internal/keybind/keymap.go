package keybind

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type keymapFile struct {
	Bindings []Binding `yaml:"bindings"`
}

// LoadKeymap reads user bindings from a YAML file of the form:
//
//	bindings:
//	  - command: indent
//	    key: ctrl+i
func LoadKeymap(path string) ([]Binding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap %s: %w", path, err)
	}
	return ParseKeymap(data)
}

// ParseKeymap decodes keymap YAML. Entries missing a command or key are rejected.
func ParseKeymap(data []byte) ([]Binding, error) {
	var file keymapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse keymap: %w", err)
	}
	out := make([]Binding, 0, len(file.Bindings))
	for i, b := range file.Bindings {
		b.Command = strings.TrimSpace(b.Command)
		b.Key = strings.TrimSpace(b.Key)
		if b.Command == "" || b.Key == "" {
			return nil, fmt.Errorf("keymap entry %d: command and key are required", i)
		}
		out = append(out, b)
	}
	return out, nil
}
