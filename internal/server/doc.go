// Package server implements the MCP (Model Context Protocol) server for the
// name list tools.
//
// This package provides a JSON-RPC 2.0 server that exposes extraction,
// reading, filtering and searching of name lists to MCP-compatible clients.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Name Lists:
//   - names_extract: OCR images and write the names found to CSV
//   - names_parse_text: Parse names out of already recognized text
//   - names_read: Read a CSV name list
//   - names_filter: Case-insensitive substring filter over a list
//   - names_search: Submit a name to the search engine in a browser
//
// Images:
//   - image_info: Dimensions, format and size
//   - image_preview: The preprocessed image OCR would see
//   - image_ocr: Raw recognized text of one image
//   - ocr_info: Tesseract availability and languages
//
// # Error Handling
//
// Tool errors are returned as JSON-RPC error responses with:
//   - code: -32602 for arguments that fail to decode or validate,
//     -32000 for tool execution failure
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.Options{
//	    CSVPath:  "extracted_list.csv",
//	    Pipeline: extract.NewPipeline(ocr.NewTesseract(ocr.DefaultOptions())),
//	    Searcher: search.NewBrowser(search.DefaultOptions(), logger),
//	    Logger:   logger,
//	})
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
