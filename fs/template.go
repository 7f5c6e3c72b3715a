package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/docspan"
	"gopkg.in/yaml.v3"
)

// ReadTemplate loads a template definition from a YAML file.
func ReadTemplate(path string) (*docspan.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	var tmpl docspan.Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, docspan.Errorf(docspan.EINVALID, "failed to decode template %s: %v", path, err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// WriteTemplate stores a template definition as YAML, creating parent
// directories as needed.
func WriteTemplate(path string, tmpl *docspan.Template) error {
	if err := tmpl.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(tmpl)
	if err != nil {
		return fmt.Errorf("failed to encode template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
