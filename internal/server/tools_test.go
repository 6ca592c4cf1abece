package server

import (
	"testing"
)

func toolsByName() map[string]Tool {
	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}
	return toolMap
}

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"names_extract",
		"names_parse_text",
		"names_read",
		"names_filter",
		"names_search",
		"image_info",
		"image_preview",
		"image_ocr",
		"ocr_info",
	}

	toolMap := toolsByName()
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}
			if _, ok := tool.InputSchema["properties"].(map[string]interface{}); !ok {
				t.Error("InputSchema properties missing or not an object")
			}
		})
	}
}

func TestToolDefinitions_Required(t *testing.T) {
	tests := []struct {
		tool     string
		required string
	}{
		{"names_extract", "images"},
		{"names_parse_text", "text"},
		{"names_search", "name"},
		{"image_info", "path"},
		{"image_preview", "path"},
		{"image_ocr", "path"},
	}

	toolMap := toolsByName()
	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			requiredList, ok := toolMap[tt.tool].InputSchema["required"].([]string)
			if !ok {
				t.Fatal("'required' should be a string slice")
			}

			found := false
			for _, r := range requiredList {
				if r == tt.required {
					found = true
				}
			}
			if !found {
				t.Errorf("%s should require %q, got %v", tt.tool, tt.required, requiredList)
			}

			props := toolMap[tt.tool].InputSchema["properties"].(map[string]interface{})
			if _, ok := props[tt.required]; !ok {
				t.Errorf("required property %q is not declared", tt.required)
			}
		})
	}
}

func TestToolDefinitions_OptionalPaths(t *testing.T) {
	toolMap := toolsByName()
	for _, name := range []string{"names_read", "names_filter", "ocr_info"} {
		if _, ok := toolMap[name].InputSchema["required"]; ok {
			t.Errorf("%s should have no required arguments", name)
		}
	}
}
