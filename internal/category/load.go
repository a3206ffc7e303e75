package category

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/julienpequegnot/tagdesk/internal/taxonomy"
)

// LoadFile reads a taxonomy file. The format follows the extension: .yaml/.yml,
// .toml or .json. YAML and JSON files may also hold a bare list of categories.
func LoadFile(path string) ([]taxonomy.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var file taxonomy.FileDoc
	var list []taxonomy.CategoryDoc
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			if err := yaml.Unmarshal(data, &list); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case ".json":
		if strings.HasPrefix(strings.TrimSpace(string(data)), "[") {
			err = json.Unmarshal(data, &list)
		} else {
			err = json.Unmarshal(data, &file)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported taxonomy format %q", ext)
	}

	if len(file.Categories) == 0 {
		file.Categories = list
	}
	return Decode(file.Categories)
}

// Decode converts category documents and checks their keys.
func Decode(docs []taxonomy.CategoryDoc) ([]taxonomy.Category, error) {
	seen := make(map[string]bool, len(docs))
	categories := make([]taxonomy.Category, 0, len(docs))
	for i, d := range docs {
		if d.Key == "" {
			return nil, fmt.Errorf("category #%d has no key", i+1)
		}
		if seen[d.Key] {
			return nil, fmt.Errorf("duplicate category key %q", d.Key)
		}
		seen[d.Key] = true
		categories = append(categories, d.Category())
	}
	return categories, nil
}
