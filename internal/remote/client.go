package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/weckerleben/bday-guests/internal/store"
)

// DefaultAPIURL is the jsonbin-style blob store endpoint.
const DefaultAPIURL = "https://api.jsonbin.io/v3/b"

// Client talks to a remote JSON blob store holding a single document per
// bin. It carries no retry logic: a failed call surfaces to the caller and
// is retried only on the next natural sync trigger.
type Client struct {
	apiURL string
	binID  string
	apiKey string
	http   *http.Client
}

// NewClient creates a blob store client. apiURL falls back to
// DefaultAPIURL when empty.
func NewClient(apiURL, binID, apiKey string) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL: apiURL,
		binID:  binID,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 15 * time.Second},
	}
}

// IsConfigured reports whether both the bin id and the api key are set.
func (c *Client) IsConfigured() bool {
	return c.binID != "" && c.apiKey != ""
}

// Load fetches the latest remote document. The store wraps the document in
// a {"record": ...} envelope.
func (c *Client) Load(ctx context.Context) (store.Document, error) {
	if !c.IsConfigured() {
		return store.Document{}, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/"+c.binID+"/latest", nil)
	if err != nil {
		return store.Document{}, fmt.Errorf("building load request: %w", err)
	}
	req.Header.Set("X-Master-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return store.Document{}, fmt.Errorf("loading remote document: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound:
		return store.Document{}, fmt.Errorf("%w: check the bin id", ErrBinNotFound)
	case http.StatusUnauthorized:
		return store.Document{}, fmt.Errorf("%w: check that the api key has access to this bin", ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return store.Document{}, httpError(resp)
	}

	var envelope struct {
		Record json.RawMessage `json:"record"`
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return store.Document{}, fmt.Errorf("reading remote response: %w", err)
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return store.Document{}, fmt.Errorf("parsing remote response: %w", err)
	}

	doc, err := store.DecodeDocument(envelope.Record)
	if err != nil {
		return store.Document{}, fmt.Errorf("decoding remote document: %w", err)
	}
	return doc, nil
}

// Save overwrites the remote document.
func (c *Client) Save(ctx context.Context, doc store.Document) error {
	if !c.IsConfigured() {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.apiURL+"/"+c.binID, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building save request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Master-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("saving remote document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: check that the api key has access to this bin", ErrUnauthorized)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httpError(resp)
	}
	return nil
}

func httpError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if len(body) == 0 {
		return fmt.Errorf("remote store returned status %d", resp.StatusCode)
	}
	return fmt.Errorf("remote store returned status %d: %s", resp.StatusCode, string(body))
}
