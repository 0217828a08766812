// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/voter-roll/models"
	"github.com/danielhkuo/voter-roll/voterutil"
)

// Extraction is the best-effort result of reading an identity document
// image. Empty fields mean the extractor found nothing usable.
type Extraction struct {
	Aadhar string `json:"aadhar"`
	DOB    string `json:"dob"`
}

// Client calls an image-to-text extraction endpoint with a base64 JPEG
// and returns whatever Aadhaar number and birth date it could read.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

func NewClient(endpoint, apiKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{endpoint: endpoint, apiKey: apiKey, http: httpClient}
}

// Extract reads an Aadhaar number and birth date from a base64-encoded
// image. Data-URL prefixes are stripped before upload. The Aadhaar is
// normalized and kept only at full length; anything shorter is treated
// as not found.
func (c *Client) Extract(ctx context.Context, base64Image string) (Extraction, error) {
	if i := strings.IndexByte(base64Image, ','); i >= 0 {
		base64Image = base64Image[i+1:]
	}

	payload, err := json.Marshal(map[string]string{"image": base64Image})
	if err != nil {
		return Extraction{}, fmt.Errorf("encode extraction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return Extraction{}, fmt.Errorf("build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Extraction{}, fmt.Errorf("extraction call failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Extraction{}, fmt.Errorf("read extraction response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Extraction{}, fmt.Errorf("extraction endpoint returned status %d", resp.StatusCode)
	}

	var out Extraction
	if err := json.Unmarshal(body, &out); err != nil {
		return Extraction{}, fmt.Errorf("malformed extraction response: %w", err)
	}

	out.Aadhar = voterutil.NormalizeAadhar(out.Aadhar)
	if len(out.Aadhar) != models.AadharLength {
		out.Aadhar = ""
	}
	if voterutil.CalculatedAge(out.DOB) == "" {
		out.DOB = ""
	}
	return out, nil
}
