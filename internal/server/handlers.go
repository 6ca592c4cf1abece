package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ironsheep/name-list-tools/internal/csvstore"
	"github.com/ironsheep/name-list-tools/internal/extract"
	"github.com/ironsheep/name-list-tools/internal/imaging"
	"github.com/ironsheep/name-list-tools/internal/names"
	"github.com/ironsheep/name-list-tools/internal/ocr"
	"github.com/ironsheep/name-list-tools/internal/search"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "names_extract", "names_search").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// argumentError marks a tool call whose arguments failed to decode or
// validate.
type argumentError struct {
	err error
}

func (e *argumentError) Error() string { return e.err.Error() }
func (e *argumentError) Unwrap() error { return e.err }

var errToolUnavailable = errors.New("tool not configured")

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Invalid arguments return code -32602; other tool errors return -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	logger := s.logger.With(zap.String("tool", params.Name))
	logger.Debug("tool call")

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		var argErr *argumentError
		if errors.As(err, &argErr) {
			return s.errorResponse(req.ID, codeInvalidParams, "Invalid arguments", err.Error())
		}
		logger.Warn("tool failed", zap.Error(err))
		return s.errorResponse(req.ID, codeToolFailed, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Name Lists
	case "names_extract":
		return s.handleNamesExtract(ctx, args)
	case "names_parse_text":
		return s.handleNamesParseText(args)
	case "names_read":
		return s.handleNamesRead(args)
	case "names_filter":
		return s.handleNamesFilter(args)
	case "names_search":
		return s.handleNamesSearch(ctx, args)

	// Images
	case "image_info":
		return s.handleImageInfo(args)
	case "image_preview":
		return s.handleImagePreview(args)
	case "image_ocr":
		return s.handleImageOCR(ctx, args)
	case "ocr_info":
		return ocr.GetOCRInfo(), nil

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// decodeArgs unmarshals args into v and validates its struct tags. Missing
// arguments decode as an empty object.
func (s *Server) decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return &argumentError{err: err}
	}
	if err := s.validate.Struct(v); err != nil {
		return &argumentError{err: formatValidation(err)}
	}
	return nil
}

func formatValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s: must satisfy %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s: %s", field, fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Name List Handlers ===

// NameListResult is returned by the list reading tools.
type NameListResult struct {
	Path  string   `json:"path,omitempty"`
	Names []string `json:"names"`
	Count int      `json:"count"`
	Total int      `json:"total,omitempty"`
}

type namesExtractArgs struct {
	Images []string `json:"images" validate:"required,min=1,dive,required"`
	Output string   `json:"output"`
}

func (s *Server) handleNamesExtract(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a namesExtractArgs
	if err := s.decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if s.pipeline == nil {
		return nil, fmt.Errorf("names_extract: %w", errToolUnavailable)
	}
	if a.Output == "" {
		a.Output = s.csvPath
	}
	return s.pipeline.Run(ctx, a.Images, a.Output, extractHooks(s.logger))
}

type namesParseTextArgs struct {
	Text string `json:"text" validate:"required"`
}

func (s *Server) handleNamesParseText(args json.RawMessage) (interface{}, error) {
	var a namesParseTextArgs
	if err := s.decodeArgs(args, &a); err != nil {
		return nil, err
	}
	found := names.Parse(a.Text)
	return &NameListResult{Names: found, Count: len(found)}, nil
}

type namesReadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleNamesRead(args json.RawMessage) (interface{}, error) {
	var a namesReadArgs
	if err := s.decodeArgs(args, &a); err != nil {
		return nil, err
	}
	path := s.listPath(a.Path)
	list, err := csvstore.Read(path)
	if err != nil {
		return nil, err
	}
	return &NameListResult{Path: path, Names: list, Count: len(list)}, nil
}

type namesFilterArgs struct {
	Path  string `json:"path"`
	Query string `json:"query"`
}

func (s *Server) handleNamesFilter(args json.RawMessage) (interface{}, error) {
	var a namesFilterArgs
	if err := s.decodeArgs(args, &a); err != nil {
		return nil, err
	}
	path := s.listPath(a.Path)
	list, err := csvstore.Read(path)
	if err != nil {
		return nil, err
	}
	matched := names.Filter(list, a.Query)
	return &NameListResult{Path: path, Names: matched, Count: len(matched), Total: len(list)}, nil
}

// SearchResult is returned by names_search.
type SearchResult struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

type namesSearchArgs struct {
	Name  string `json:"name" validate:"required"`
	Limit int    `json:"limit" validate:"gte=0"`
}

func (s *Server) handleNamesSearch(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a namesSearchArgs
	if err := s.decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if s.searcher == nil {
		return nil, fmt.Errorf("names_search: %w", errToolUnavailable)
	}
	text, err := s.searcher.Search(ctx, a.Name)
	if err != nil {
		return nil, err
	}
	if a.Limit > 0 {
		text = search.Truncate(text, a.Limit)
	}
	return &SearchResult{Name: a.Name, Text: text}, nil
}

func (s *Server) listPath(path string) string {
	if path == "" {
		return s.csvPath
	}
	return path
}

// === Image Handlers ===

type imagePathArgs struct {
	Path string `json:"path" validate:"required"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := s.decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(a.Path)
}

type imagePreviewArgs struct {
	Path     string  `json:"path" validate:"required"`
	Scale    float64 `json:"scale" validate:"gte=0,lte=8"`
	Contrast float64 `json:"contrast" validate:"gte=0"`
	Region   string  `json:"region"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var a imagePreviewArgs
	if err := s.decodeArgs(args, &a); err != nil {
		return nil, err
	}
	opts := s.preprocess
	if a.Scale > 0 {
		opts.Scale = a.Scale
	}
	if a.Contrast > 0 {
		opts.Contrast = a.Contrast
	}
	if a.Region != "" {
		opts.Region = a.Region
	}
	return imaging.Preview(a.Path, opts)
}

// OCRTextResult is returned by image_ocr.
type OCRTextResult struct {
	Path string `json:"path"`
	Text string `json:"text"`
}

func (s *Server) handleImageOCR(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a imagePathArgs
	if err := s.decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if s.pipeline == nil {
		return nil, fmt.Errorf("image_ocr: %w", errToolUnavailable)
	}
	text, err := s.pipeline.RecognizeImage(ctx, a.Path)
	if err != nil {
		return nil, err
	}
	return &OCRTextResult{Path: a.Path, Text: text}, nil
}

func extractHooks(logger *zap.Logger) extract.Hooks {
	return extract.Hooks{
		ImageStarted: func(index, total int, path string) {
			logger.Info("processing image", zap.Int("index", index), zap.Int("total", total), zap.String("path", path))
		},
		NamesParsed: func(index int, path string, added, total int) {
			logger.Debug("names parsed", zap.String("path", path), zap.Int("added", added), zap.Int("total", total))
		},
	}
}
