package api

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
	"strconv"
	"strings"
	"time"

	"github.com/scourlabs/scour/internal/limits"
	"github.com/scourlabs/scour/internal/logging"
)

var (
	ErrUnauthorized = errors.New("api: unauthorized")
	ErrNotFound     = errors.New("api: not found")
)

// Client talks to the cleaning service.
type Client interface {
	Schema(ctx context.Context) (Schema, error)
	Issues(ctx context.Context, filter IssueFilter) ([]Issue, error)
	Samples(ctx context.Context, table string, limit int) (SampleSet, error)
	ToggleFavorite(ctx context.Context, issueID string, favorite bool) (Issue, error)
	Meta(ctx context.Context) (Meta, error)
}

// HTTPClient is the standard Client over HTTP/JSON.
type HTTPClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	UserAgent  string
}

type issuesResponse struct {
	Issues []Issue `json:"issues"`
}

// Schema fetches the dataset schema.
func (c HTTPClient) Schema(ctx context.Context) (Schema, error) {
	var out Schema
	err := c.getJSON(ctx, "/api/v1/schema", nil, &out)
	return out, err
}

// Issues lists data-quality findings matching the filter.
func (c HTTPClient) Issues(ctx context.Context, filter IssueFilter) ([]Issue, error) {
	query := url.Values{}
	if filter.Table != "" {
		query.Set("table", filter.Table)
	}
	if filter.Severity != "" {
		query.Set("severity", filter.Severity)
	}
	if filter.FavoriteOnly {
		query.Set("favorite", "true")
	}
	var out issuesResponse
	if err := c.getJSON(ctx, "/api/v1/issues", query, &out); err != nil {
		return nil, err
	}
	return out.Issues, nil
}

// Samples fetches up to limit raw rows from a table. The limit is
// normalized through limits.ClampSampleRows.
func (c HTTPClient) Samples(ctx context.Context, table string, limit int) (SampleSet, error) {
	var out SampleSet
	table = strings.TrimSpace(table)
	if table == "" {
		return out, errors.New("api: table is required")
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limits.ClampSampleRows(limit)))
	err := c.getJSON(ctx, "/api/v1/tables/"+url.PathEscape(table)+"/samples", query, &out)
	return out, err
}

// ToggleFavorite sets the favorite flag on an issue and returns the
// updated issue.
func (c HTTPClient) ToggleFavorite(ctx context.Context, issueID string, favorite bool) (Issue, error) {
	var out Issue
	issueID = strings.TrimSpace(issueID)
	if issueID == "" {
		return out, errors.New("api: issue id is required")
	}
	body, err := json.Marshal(map[string]bool{"favorite": favorite})
	if err != nil {
		return out, fmt.Errorf("api: encode favorite: %w", err)
	}
	err = c.doJSON(ctx, http.MethodPut, "/api/v1/issues/"+url.PathEscape(issueID)+"/favorite", nil, body, &out)
	return out, err
}

// Meta identifies the backend service and version.
func (c HTTPClient) Meta(ctx context.Context) (Meta, error) {
	var out Meta
	err := c.getJSON(ctx, "/api/v1/meta", nil, &out)
	return out, err
}

func (c HTTPClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

func (c HTTPClient) doJSON(ctx context.Context, method, path string, query url.Values, body []byte, out any) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		return errors.New("api: base url is required")
	}
	endpoint := base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("api: request: %w", err)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = "scour"
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := strings.TrimSpace(c.Token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("api: request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("api: close response: %w", cerr)
		}
	}()
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w (%s %s)", ErrUnauthorized, method, path)
	case http.StatusNotFound:
		return fmt.Errorf("%w (%s %s)", ErrNotFound, method, path)
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return fmt.Errorf("api: status %d on %s %s: %s", resp.StatusCode, method, path, strings.TrimSpace(string(snippet)))
	}
	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api: read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		// A proxy answering 200 with an HTML error page is the usual culprit.
		slog.Debug("api: undecodable response",
			slog.String("method", method),
			slog.String("path", path),
			logging.PayloadAttr("body", data),
		)
		return fmt.Errorf("api: decode response: %w", err)
	}
	return nil
}
