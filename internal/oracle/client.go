package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hueforge/hue-wheel-mcp/internal/hue"
)

// DefaultTimeout bounds a single naming API request when the caller does
// not supply its own http.Client.
const DefaultTimeout = 10 * time.Second

// Client is an adapter for a remote color-naming HTTP API. It queries
// `GET {base}/id?hsl=H,S%,L%` and expects the response body to carry the
// name, rgb and hsl blocks of the queried color.
//
// Every failure (transport, non-2xx status, malformed body) surfaces as a
// *hue.OracleError so the segmentation core sees one uniform error kind.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given API base URL. A nil httpClient
// selects a default client with DefaultTimeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// apiColor mirrors the naming API's response document. Only the fields
// the descriptor needs are decoded.
type apiColor struct {
	Name struct {
		Value string `json:"value"`
	} `json:"name"`
	RGB struct {
		Value string `json:"value"`
		R     int    `json:"r"`
		G     int    `json:"g"`
		B     int    `json:"b"`
	} `json:"rgb"`
	HSL struct {
		Value string  `json:"value"`
		H     float64 `json:"h"`
		S     float64 `json:"s"`
		L     float64 `json:"l"`
	} `json:"hsl"`
}

// Sampler binds a saturation and lightness and returns the resulting
// SampleFunc for the segmentation core.
func (c *Client) Sampler(saturation, lightness float64) hue.SampleFunc {
	return func(ctx context.Context, h float64) (*hue.ColorDescriptor, error) {
		return c.Sample(ctx, h, saturation, lightness)
	}
}

// Sample queries the naming API for the color at (h, saturation,
// lightness), with saturation and lightness in percent.
func (c *Client) Sample(ctx context.Context, h, saturation, lightness float64) (*hue.ColorDescriptor, error) {
	h = hue.Normalize(h)

	q := url.Values{}
	q.Set("hsl", fmt.Sprintf("%g,%g%%,%g%%", h, saturation, lightness))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/id?"+q.Encode(), nil)
	if err != nil {
		return nil, &hue.OracleError{Hue: h, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &hue.OracleError{Hue: h, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &hue.OracleError{Hue: h, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	var body apiColor
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &hue.OracleError{Hue: h, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return &hue.ColorDescriptor{
		Name: body.Name.Value,
		RGB: hue.RGBValue{
			Value: body.RGB.Value,
			R:     body.RGB.R,
			G:     body.RGB.G,
			B:     body.RGB.B,
		},
		HSL: hue.HSLValue{
			Value: body.HSL.Value,
			H:     body.HSL.H,
			S:     body.HSL.S,
			L:     body.HSL.L,
		},
	}, nil
}
