// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package rollclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/voter-roll/models"
)

// DefaultTimeout bounds every remote call; a timeout surfaces as a
// connectivity failure.
const DefaultTimeout = 15 * time.Second

// ErrConnectivity covers unreachable endpoints, timeouts, non-2xx
// statuses and malformed response bodies. Callers never see a raw
// transport error.
var ErrConnectivity = errors.New("store unreachable")

// RemoteError is a failure the store itself declared in a well-formed
// response body.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string { return e.Message }

// Metadata holds the selection-control data returned by the store.
type Metadata struct {
	Booths   []string
	HouseMap map[string][]string
	WardMap  map[string]map[string][]string
}

// Client talks to the roll store's query interface. The endpoint URL is
// injected explicitly so tests can point it at a local server.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the store at baseURL. A nil httpClient
// gets a default with DefaultTimeout applied.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// FetchMetadata returns the booth list and house-number maps used to
// populate the selection controls.
func (c *Client) FetchMetadata(ctx context.Context) (Metadata, error) {
	var resp models.MetadataResponse
	if err := c.get(ctx, url.Values{"action": {models.ActionGetMetadata}}, &resp); err != nil {
		return Metadata{}, fmt.Errorf("fetch metadata: %w", err)
	}
	if !resp.Success {
		return Metadata{}, &RemoteError{Message: resp.Error}
	}
	return Metadata{Booths: resp.Booths, HouseMap: resp.HouseMap, WardMap: resp.WardMap}, nil
}

// Search returns the records for a booth/house selection. Ward may be
// empty. An empty result is a success with zero records.
func (c *Client) Search(ctx context.Context, booth, ward, house string) ([]models.VoterRecord, error) {
	params := url.Values{
		"action": {models.ActionSearch},
		"booth":  {booth},
		"house":  {house},
	}
	if ward != "" {
		params.Set("ward", ward)
	}

	var resp models.SearchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if !resp.Success {
		return nil, &RemoteError{Message: resp.Error}
	}
	return resp.Data, nil
}

// SearchByName returns records whose name or relation name contains the
// query, case-insensitively. An empty query returns an empty result
// without contacting the store.
func (c *Client) SearchByName(ctx context.Context, query string) ([]models.VoterRecord, error) {
	if strings.TrimSpace(query) == "" {
		return []models.VoterRecord{}, nil
	}

	var resp models.SearchResponse
	params := url.Values{"action": {models.ActionSearchByName}, "query": {query}}
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("search by name: %w", err)
	}
	if !resp.Success {
		return nil, &RemoteError{Message: resp.Error}
	}
	return resp.Data, nil
}

// Save submits the entire collection as one bulk upsert and returns the
// store's message. The response body is always read and parsed; success
// is never assumed.
func (c *Client) Save(ctx context.Context, records []models.VoterRecord) (string, error) {
	var resp models.SaveResponse
	if err := c.post(ctx, models.SaveRequest{Action: models.ActionSave, Data: records}, &resp); err != nil {
		return "", fmt.Errorf("save: %w", err)
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = resp.Error
		}
		return "", &RemoteError{Message: msg}
	}
	return resp.Message, nil
}

// Delete archives the matched row remotely with the given reason. Only
// called for records that have a remote counterpart.
func (c *Client) Delete(ctx context.Context, booth, voterNo, reason string) (string, error) {
	req := models.DeleteRequest{
		Action:  models.ActionDelete,
		Booth:   booth,
		VoterNo: voterNo,
		Reason:  reason,
	}

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := c.post(ctx, req, &resp); err != nil {
		return "", fmt.Errorf("delete: %w", err)
	}
	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = resp.Error
		}
		return "", &RemoteError{Message: msg}
	}
	return resp.Message, nil
}

// CheckDuplicateAadhar scans the store for the Aadhaar value under a
// different voter number. Any failure degrades to "no duplicate": a
// false negative must not block data entry.
func (c *Client) CheckDuplicateAadhar(ctx context.Context, aadhar, excludeVoterNo string) models.DuplicateCheckResponse {
	params := url.Values{
		"action":  {models.ActionCheckAadhar},
		"aadhar":  {aadhar},
		"voterNo": {excludeVoterNo},
	}

	var resp models.DuplicateCheckResponse
	if err := c.get(ctx, params, &resp); err != nil {
		slog.Warn("duplicate check degraded", "error", err)
		return models.DuplicateCheckResponse{IsDuplicate: false}
	}
	return resp
}

func (c *Client) get(ctx context.Context, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectivity, err)
	}

	// The store reports declared failures in-body with non-2xx codes;
	// those still parse below. Anything else is a connectivity failure.
	if err := json.Unmarshal(body, out); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("%w: status %d", ErrConnectivity, resp.StatusCode)
		}
		return fmt.Errorf("%w: malformed response: %v", ErrConnectivity, err)
	}
	return nil
}
