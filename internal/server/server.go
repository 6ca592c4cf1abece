package server

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ironsheep/name-list-tools/internal/csvstore"
	"github.com/ironsheep/name-list-tools/internal/extract"
	"github.com/ironsheep/name-list-tools/internal/imaging"
	"github.com/ironsheep/name-list-tools/internal/logging"
	"github.com/ironsheep/name-list-tools/internal/search"
)

// Version is reported in the initialize handshake.
var Version = "0.1.0"

// Server handles MCP protocol communication
type Server struct {
	csvPath    string
	pipeline   *extract.Pipeline
	searcher   search.Searcher
	preprocess imaging.PreprocessOptions
	logger     *zap.Logger
	validate   *validator.Validate
}

// Options wires a Server to its collaborators.
type Options struct {
	// CSVPath is the name list used when a tool call gives no path.
	CSVPath string

	// Pipeline runs extractions. Required for names_extract and image_ocr.
	Pipeline *extract.Pipeline

	// Searcher runs names_search. Nil disables the tool.
	Searcher search.Searcher

	// Preprocess is applied by image_preview when the call does not
	// override it.
	Preprocess imaging.PreprocessOptions

	Logger *zap.Logger
}

// MCPRequest represents an incoming JSON-RPC request
type MCPRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// MCPResponse represents an outgoing JSON-RPC response
type MCPResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   *MCPError   `json:"error,omitempty"`
}

// MCPError represents a JSON-RPC error
type MCPError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// JSON-RPC error codes used by the server.
const (
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeToolFailed     = -32000
)

// New creates a new MCP server instance
func New(opts Options) *Server {
	csvPath := opts.CSVPath
	if csvPath == "" {
		csvPath = csvstore.DefaultFileName
	}
	preprocess := opts.Preprocess
	if preprocess == (imaging.PreprocessOptions{}) {
		preprocess = imaging.DefaultPreprocessOptions()
	}
	return &Server{
		csvPath:    csvPath,
		pipeline:   opts.Pipeline,
		searcher:   opts.Searcher,
		preprocess: preprocess,
		logger:     logging.OrNop(opts.Logger),
		validate:   validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Run serves requests from stdin, writing responses to stdout, until stdin
// is closed.
func (s *Server) Run(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// Serve reads newline-delimited JSON-RPC requests from r and writes one
// response line per request to w.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("failed to parse request", zap.Error(err))
			continue
		}

		resp := s.handleRequest(ctx, &req)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				s.logger.Error("failed to encode response", zap.Error(err))
			}
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(ctx context.Context, req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(ctx, req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return s.errorResponse(req.ID, codeMethodNotFound, fmt.Sprintf("Method not found: %s", req.Method), "")
	}
}

// handleInitialize responds to the initialize request
func (s *Server) handleInitialize(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{},
			},
			"serverInfo": map[string]interface{}{
				"name":    "name-tools-mcp",
				"version": Version,
			},
		},
	}
}
