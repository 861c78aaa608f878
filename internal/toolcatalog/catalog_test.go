package toolcatalog

import "testing"

func TestAllReturnsNineTools(t *testing.T) {
	tools := All()
	if len(tools) != 9 {
		t.Fatalf("expected 9 tools, got %d", len(tools))
	}
	seen := make(map[string]bool, len(tools))
	for _, tool := range tools {
		if tool.Name == "" {
			t.Fatalf("tool has empty name: %+v", tool)
		}
		if seen[tool.Name] {
			t.Fatalf("duplicate tool name %q", tool.Name)
		}
		seen[tool.Name] = true
		if tool.Path == "" {
			t.Fatalf("tool %q has empty path", tool.Name)
		}
		if tool.Description == "" {
			t.Fatalf("tool %q has empty description", tool.Name)
		}
		if tool.Schema == nil {
			t.Fatalf("tool %q has nil schema", tool.Name)
		}
	}
}

func TestAllToolsHaveUniquePaths(t *testing.T) {
	tools := All()
	seen := make(map[string]bool, len(tools))
	for _, tool := range tools {
		if seen[tool.Path] {
			t.Fatalf("duplicate tool path %q", tool.Path)
		}
		seen[tool.Path] = true
	}
}
