package putio

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the put.io v2 API root.
	DefaultBaseURL = "https://api.put.io/v2"
	// DefaultAppURL is the web app root, used for Open-in-browser.
	DefaultAppURL = "https://app.put.io"

	requestTimeout = 30 * time.Second
)

// Client talks to the put.io REST API. It is safe for use from the
// short-lived worker goroutines the UI spawns, since it holds no mutable
// state beyond the embedded http.Client.
type Client struct {
	baseURL string
	appURL  string
	token   string
	http    *http.Client
}

// NewClient builds a client for the given OAuth token. baseURL overrides the
// API root for tests; pass "" for the real service.
func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		appURL:  DefaultAppURL,
		token:   token,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// List fetches one folder's metadata and children.
func (c *Client) List(folderID int64) (*ListResponse, error) {
	q := url.Values{"parent_id": {strconv.FormatInt(folderID, 10)}}
	var resp ListResponse
	if err := c.get("/files/list", q, &resp); err != nil {
		return nil, fmt.Errorf("list folder %d: %w", folderID, err)
	}
	return &resp, nil
}

// Search runs a server-side search across the whole store.
func (c *Client) Search(query string) (*SearchResponse, error) {
	q := url.Values{"query": {query}}
	var resp SearchResponse
	if err := c.get("/files/search", q, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return &resp, nil
}

// Delete removes a file or folder from the store.
func (c *Client) Delete(fileID int64) error {
	form := url.Values{"file_ids": {strconv.FormatInt(fileID, 10)}}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/files/delete", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("delete file %d: %w", fileID, err)
	}
	return nil
}

// URL resolves a file's shareable download URL.
func (c *Client) URL(fileID int64) (string, error) {
	var resp urlResponse
	if err := c.get(fmt.Sprintf("/files/%d/url", fileID), nil, &resp); err != nil {
		return "", fmt.Errorf("get url for file %d: %w", fileID, err)
	}
	return resp.URL, nil
}

// StreamURL builds the direct streaming URL for a video file.
func (c *Client) StreamURL(fileID int64) string {
	return fmt.Sprintf("%s/files/%d/stream?oauth_token=%s", c.baseURL, fileID, url.QueryEscape(c.token))
}

// AppURL builds the web-app URL for a file, for opening in a browser.
func (c *Client) AppURL(fileID int64) string {
	return fmt.Sprintf("%s/files/%d", c.appURL, fileID)
}

func (c *Client) get(path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var e errorResponse
		if json.Unmarshal(body, &e) == nil {
			apiErr.Type = e.ErrorType
			apiErr.Message = e.ErrorMessage
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
