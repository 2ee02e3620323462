// Package tools manages the registry of companion analysis tools and
// launches them as detached subprocesses. The planner fronts a small hub of
// sibling apps; each tool runs independently and is only tracked by PID.
package tools

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed tools.yaml
var defaultToolsYAML []byte

// Tool describes one launchable companion application
type Tool struct {
	Features    []string `json:"features,omitempty" yaml:"features"`
	Command     []string `json:"command" yaml:"command"`
	Slug        string   `json:"slug" yaml:"slug"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url,omitempty" yaml:"url"`
}

// LoadRegistry reads tool definitions from path. An empty path selects the
// built-in registry.
func LoadRegistry(path string) ([]Tool, error) {
	data := defaultToolsYAML
	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read tools file: %w", err)
		}
		data = fileData
	}
	return parseRegistry(data)
}

func parseRegistry(data []byte) ([]Tool, error) {
	var doc struct {
		Tools []Tool `yaml:"tools"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse tools file: %w", err)
	}
	if len(doc.Tools) == 0 {
		return nil, fmt.Errorf("tools file defines no tools")
	}

	seen := make(map[string]bool, len(doc.Tools))
	for _, tool := range doc.Tools {
		if tool.Slug == "" || tool.Name == "" {
			return nil, fmt.Errorf("every tool needs a slug and a name")
		}
		if len(tool.Command) == 0 {
			return nil, fmt.Errorf("tool %q: command is required", tool.Slug)
		}
		if seen[tool.Slug] {
			return nil, fmt.Errorf("duplicate tool slug %q", tool.Slug)
		}
		seen[tool.Slug] = true
	}
	return doc.Tools, nil
}
