// Package server implements the MCP (Model Context Protocol) server for
// hue-wheel segmentation tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the adaptive
// hue segmentation pipeline through the MCP protocol, for MCP-compatible
// clients that want named color regions of the hue circle.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout, plus notifications for
//     streamed partial results
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - hue_segments: Segment the hue circle for a saturation/lightness
//     pair and return the final merged segment list
//   - hue_segments_stream: Same computation, but each intermediate
//     snapshot is emitted as a hue/snapshot notification line before the
//     final response
//   - hue_sample: Name the color at a single (hue, saturation, lightness)
//   - palette_render: Render a segmentation as a base64 PNG strip
//   - cache_clear: Drop all memoized segmentation results
//
// # Result Caching
//
// Finished segmentations are memoized per (saturation, lightness) for the
// lifetime of the process. Concurrent requests for the same pair share a
// single computation, and a failed computation is not cached, so the pair
// can be retried. cache_clear resets the memo.
//
// # Streaming
//
// hue_segments_stream writes one JSON notification per changed snapshot:
//
//	{"jsonrpc":"2.0","method":"hue/snapshot","params":{"segments":[...]}}
//
// each on its own line, followed by the tool response with the final
// list. If the oracle fails, the error is reported as the JSON-RPC
// response and no further snapshots are written; any snapshots a client
// has already rendered must be treated as stale.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
