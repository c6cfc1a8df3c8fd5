package server

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/hueforge/hue-wheel-mcp/internal/hue"
	"github.com/hueforge/hue-wheel-mcp/internal/oracle"
)

// SamplerFactory binds a saturation and lightness pair to the oracle that
// will answer hue lookups for it.
type SamplerFactory func(saturation, lightness float64) hue.SampleFunc

// Server handles MCP protocol communication
type Server struct {
	results    *hue.ResultCache
	samplerFor SamplerFactory

	in  io.Reader
	out io.Writer
	mu  sync.Mutex // serializes responses and notifications on out
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

// MCPNotification represents an outgoing notification (no ID)
type MCPNotification struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// New creates a new MCP server instance. The oracle is chosen from the
// environment: HUE_MCP_COLOR_API selects the remote naming API at that
// base URL, otherwise the built-in offline oracle answers lookups.
func New() *Server {
	var factory SamplerFactory
	if base := os.Getenv("HUE_MCP_COLOR_API"); base != "" {
		factory = oracle.NewClient(base, httpClientFromEnv()).Sampler
	} else {
		factory = oracle.NewLocal().Sampler
	}
	return NewWithSampler(factory)
}

// NewWithSampler creates a server over an explicit oracle binding. Tests
// use it to substitute counting or failing oracles.
func NewWithSampler(factory SamplerFactory) *Server {
	return &Server{
		results:    hue.NewResultCache(),
		samplerFor: factory,
		in:         os.Stdin,
		out:        os.Stdout,
	}
}

// httpClientFromEnv builds the naming API's HTTP client, honoring
// HUE_MCP_HTTP_TIMEOUT (a Go duration string) when set.
func httpClientFromEnv() *http.Client {
	timeout := oracle.DefaultTimeout
	if v := os.Getenv("HUE_MCP_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("Invalid HUE_MCP_HTTP_TIMEOUT %q: %v", v, err)
		} else {
			timeout = d
		}
	}
	return &http.Client{Timeout: timeout}
}

// Run starts the MCP server, reading from stdin and writing to stdout
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.in)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req MCPRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Printf("Failed to parse request: %v", err)
			continue
		}

		resp := s.handleRequest(&req)
		if resp != nil {
			if err := s.write(resp); err != nil {
				log.Printf("Failed to encode response: %v", err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	return nil
}

// write encodes one JSON value as a single output line. Notifications
// from an in-progress stream and the final response share this path, so
// lines never interleave.
func (s *Server) write(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.NewEncoder(s.out).Encode(v)
}

// notify emits a JSON-RPC notification line.
func (s *Server) notify(method string, params interface{}) {
	n := MCPNotification{JSONRPC: "2.0", Method: method, Params: params}
	if err := s.write(n); err != nil {
		log.Printf("Failed to encode notification: %v", err)
	}
}

// handleRequest routes requests to appropriate handlers
func (s *Server) handleRequest(req *MCPRequest) *MCPResponse {
	switch req.Method {
	case "initialize":
		return s.handleInitialize(req)
	case "notifications/initialized":
		// Client acknowledgment, no response needed
		return nil
	case "tools/list":
		return s.handleToolsList(req)
	case "tools/call":
		return s.handleToolsCall(req)
	case "ping":
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Result:  map[string]interface{}{},
		}
	default:
		return &MCPResponse{
			JSONRPC: "2.0",
			ID:      req.ID,
			Error: &MCPError{
				Code:    -32601,
				Message: fmt.Sprintf("Method not found: %s", req.Method),
			},
		}
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
				"name":    "hue-wheel-mcp",
				"version": "0.1.0",
			},
		},
	}
}
