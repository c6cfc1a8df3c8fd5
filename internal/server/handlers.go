package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hueforge/hue-wheel-mcp/internal/hue"
	"github.com/hueforge/hue-wheel-mcp/internal/palette"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "hue_segments").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Segmentation
	case "hue_segments":
		return s.handleHueSegments(args)
	case "hue_segments_stream":
		return s.handleHueSegmentsStream(args)

	// Point Lookup
	case "hue_sample":
		return s.handleHueSample(args)

	// Rendering
	case "palette_render":
		return s.handlePaletteRender(args)

	// Maintenance
	case "cache_clear":
		return s.handleCacheClear(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// validatePercent rejects values outside 0-100.
func validatePercent(name string, v float64) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("%s must be between 0 and 100, got %g", name, v)
	}
	return nil
}

// === Segmentation Handlers ===

type hueSegmentsArgs struct {
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// segmentsResult is the shared result shape of the segmentation tools.
type segmentsResult struct {
	Saturation float64          `json:"saturation"`
	Lightness  float64          `json:"lightness"`
	Count      int              `json:"count"`
	Segments   []hue.HueSegment `json:"segments"`
}

func (s *Server) handleHueSegments(args json.RawMessage) (interface{}, error) {
	var a hueSegmentsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	segments, err := s.segmentsFor(a.Saturation, a.Lightness)
	if err != nil {
		return nil, err
	}
	return &segmentsResult{
		Saturation: a.Saturation,
		Lightness:  a.Lightness,
		Count:      len(segments),
		Segments:   segments,
	}, nil
}

// segmentsFor runs (or recalls) the memoized segmentation for the pair.
func (s *Server) segmentsFor(saturation, lightness float64) ([]hue.HueSegment, error) {
	if err := validatePercent("saturation", saturation); err != nil {
		return nil, err
	}
	if err := validatePercent("lightness", lightness); err != nil {
		return nil, err
	}
	return s.results.Segments(context.Background(), hue.Options{
		Saturation: saturation,
		Lightness:  lightness,
		Sample:     s.samplerFor(saturation, lightness),
	})
}

func (s *Server) handleHueSegmentsStream(args json.RawMessage) (interface{}, error) {
	var a hueSegmentsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := validatePercent("saturation", a.Saturation); err != nil {
		return nil, err
	}
	if err := validatePercent("lightness", a.Lightness); err != nil {
		return nil, err
	}

	events := hue.Stream(context.Background(), hue.Options{
		Saturation: a.Saturation,
		Lightness:  a.Lightness,
		Sample:     s.samplerFor(a.Saturation, a.Lightness),
	})

	var final []hue.HueSegment
	for ev := range events {
		if ev.Err != nil {
			return nil, ev.Err
		}
		if ev.Final {
			final = ev.Snapshot.Segments
			continue
		}
		s.notify("hue/snapshot", ev.Snapshot)
	}

	return &segmentsResult{
		Saturation: a.Saturation,
		Lightness:  a.Lightness,
		Count:      len(final),
		Segments:   final,
	}, nil
}

// === Point Lookup Handlers ===

type hueSampleArgs struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

func (s *Server) handleHueSample(args json.RawMessage) (interface{}, error) {
	var a hueSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := validatePercent("saturation", a.Saturation); err != nil {
		return nil, err
	}
	if err := validatePercent("lightness", a.Lightness); err != nil {
		return nil, err
	}

	sample := s.samplerFor(a.Saturation, a.Lightness)
	return sample(context.Background(), hue.Normalize(a.Hue))
}

// === Rendering Handlers ===

type paletteRenderArgs struct {
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
}

func (s *Server) handlePaletteRender(args json.RawMessage) (interface{}, error) {
	var a paletteRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	segments, err := s.segmentsFor(a.Saturation, a.Lightness)
	if err != nil {
		return nil, err
	}
	return palette.RenderStrip(segments, a.Width, a.Height)
}

// === Maintenance Handlers ===

func (s *Server) handleCacheClear(json.RawMessage) (interface{}, error) {
	s.results.Clear()
	return map[string]interface{}{"cleared": true}, nil
}
