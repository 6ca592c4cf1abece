package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Name Lists
		{
			Name:        "names_extract",
			Description: "Run OCR over one or more images of numbered lists, collect the names in first-seen order without duplicates, and write them to a CSV file with a single Name column.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"images": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Image paths, processed in the given order",
						"minItems":    1,
					},
					"output": stringProp("CSV file to write. Defaults to the configured list (extracted_list.csv)"),
				},
				"required": []string{"images"},
			},
		},
		{
			Name:        "names_parse_text",
			Description: "Parse numbered-list lines (\"12. Jane Doe\") out of a block of text and return the names that would be extracted from it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"text": stringProp("Text to parse, one list item per line"),
				},
				"required": []string{"text"},
			},
		},
		{
			Name:        "names_read",
			Description: "Read the names stored in a CSV list.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("CSV file to read. Defaults to the configured list"),
				},
			},
		},
		{
			Name:        "names_filter",
			Description: "Return the names from a CSV list that contain the query, ignoring case. An empty query returns every name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":  stringProp("CSV file to read. Defaults to the configured list"),
					"query": stringProp("Substring to look for"),
				},
			},
		},
		{
			Name:        "names_search",
			Description: "Open a browser, submit the name to the configured search engine and return the beginning of the result page text. Slow: waits several seconds to look like a person typing.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": stringProp("Query to submit, usually a name from the list"),
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of characters to return. Default 1000",
						"minimum":     1,
					},
				},
				"required": []string{"name"},
			},
		},

		// Images
		{
			Name:        "image_info",
			Description: "Get the width, height, format and file size of an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_preview",
			Description: "Return the preprocessed image (grayscale, upscaled, contrast enhanced) that OCR would see, as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the image file"),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Upscale factor. Default 2",
					},
					"contrast": map[string]interface{}{
						"type":        "number",
						"description": "Contrast factor, 1 leaves contrast unchanged. Default 2",
					},
					"region": stringProp("Part of the page to keep: full, left-half, right-half, top-half, bottom-half, top-left, top-right, bottom-left, bottom-right, center, or x1,y1,x2,y2"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_ocr",
			Description: "Preprocess an image and return the raw text recognized by Tesseract, before any list parsing.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "ocr_info",
			Description: "Report whether Tesseract is available, its version and the installed languages.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
