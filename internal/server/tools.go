package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Segmentation
		{
			Name:        "hue_segments",
			Description: "Discover the named color regions of the full hue circle (0-360 degrees) at a fixed saturation and lightness. Returns an ordered list of segments, each covering a contiguous hue range mapped to one color name. Results are cached per saturation/lightness pair.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"saturation": map[string]interface{}{
						"type":        "number",
						"description": "Saturation percentage (0-100)",
					},
					"lightness": map[string]interface{}{
						"type":        "number",
						"description": "Lightness percentage (0-100)",
					},
				},
				"required": []string{"saturation", "lightness"},
			},
		},
		{
			Name:        "hue_segments_stream",
			Description: "Same segmentation as hue_segments, but partial results are emitted incrementally as hue/snapshot notifications (one JSON object per line) while the wheel is being explored. The final segment list is returned as the tool result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"saturation": map[string]interface{}{
						"type":        "number",
						"description": "Saturation percentage (0-100)",
					},
					"lightness": map[string]interface{}{
						"type":        "number",
						"description": "Lightness percentage (0-100)",
					},
				},
				"required": []string{"saturation", "lightness"},
			},
		},

		// Point Lookup
		{
			Name:        "hue_sample",
			Description: "Look up the color name and RGB/HSL values at a single hue for the given saturation and lightness. Bypasses the segment cache.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hue": map[string]interface{}{
						"type":        "number",
						"description": "Hue in degrees; any real value, wrapped onto [0,360)",
					},
					"saturation": map[string]interface{}{
						"type":        "number",
						"description": "Saturation percentage (0-100)",
					},
					"lightness": map[string]interface{}{
						"type":        "number",
						"description": "Lightness percentage (0-100)",
					},
				},
				"required": []string{"hue", "saturation", "lightness"},
			},
		},

		// Rendering
		{
			Name:        "palette_render",
			Description: "Render the segmentation for a saturation/lightness pair as a horizontal color strip (base64-encoded PNG). Band widths are proportional to each segment's angular span.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"saturation": map[string]interface{}{
						"type":        "number",
						"description": "Saturation percentage (0-100)",
					},
					"lightness": map[string]interface{}{
						"type":        "number",
						"description": "Lightness percentage (0-100)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Output width in pixels. Default 720",
						"default":     720,
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Output height in pixels. Default 60",
						"default":     60,
					},
				},
				"required": []string{"saturation", "lightness"},
			},
		},

		// Maintenance
		{
			Name:        "cache_clear",
			Description: "Drop all cached segmentation results so subsequent requests recompute from the oracle.",
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
