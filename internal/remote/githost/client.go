// Package githost provides a client for the source-hosting contents
// API: reading and writing a single JSON project file at a repository
// path. Reads return the content plus a revision marker; writes require
// the prior marker to update and omit it to create.
package githost

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned when the file does not exist at the path.
var ErrNotFound = errors.New("githost: file not found")

// DefaultBaseURL is the hosted API endpoint.
const DefaultBaseURL = "https://api.github.com"

// File is the content of a repository file with its revision marker.
type File struct {
	Content  []byte
	Revision string
}

// Client reads and writes one repository's contents.
type Client struct {
	baseURL string
	token   string
	owner   string
	repo    string
	branch  string
	http    *http.Client
}

// New creates a client authenticated by a personal access token.
func New(token, owner, repo, branch string) *Client {
	return &Client{
		baseURL: DefaultBaseURL,
		token:   token,
		owner:   owner,
		repo:    repo,
		branch:  branch,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// WithBaseURL overrides the API endpoint. Used by tests and self-hosted
// installations.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = strings.TrimRight(u, "/")
	return c
}

func (c *Client) contentsURL(path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, c.owner, c.repo, path)
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
}

type contentsResponse struct {
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	SHA      string `json:"sha"`
}

// Get fetches the file at path, returning its content and revision
// marker.
func (c *Client) Get(ctx context.Context, path string) (*File, error) {
	url := c.contentsURL(path)
	if c.branch != "" {
		url += "?ref=" + c.branch
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("githost: build request: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("githost: get %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("githost: get %s: unexpected status %s", path, resp.Status)
	}

	var body contentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("githost: decode response: %w", err)
	}
	content, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(body.Content, "\n", ""))
	if err != nil {
		return nil, fmt.Errorf("githost: decode content: %w", err)
	}
	return &File{Content: content, Revision: body.SHA}, nil
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
	Branch  string `json:"branch,omitempty"`
}

type putResponse struct {
	Content struct {
		SHA string `json:"sha"`
	} `json:"content"`
}

// Put writes the file at path. An empty revision creates the file; a
// non-empty revision updates it and must match the server's current
// marker. Returns the new revision marker.
func (c *Client) Put(ctx context.Context, path, message string, content []byte, revision string) (string, error) {
	payload := putRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		SHA:     revision,
		Branch:  c.branch,
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("githost: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(path), bytes.NewReader(buf))
	if err != nil {
		return "", fmt.Errorf("githost: build request: %w", err)
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("githost: put %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("githost: put %s: unexpected status %s", path, resp.Status)
	}

	var body putResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("githost: decode response: %w", err)
	}
	return body.Content.SHA, nil
}
