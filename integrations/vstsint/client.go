// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package vstsint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"
)

const (
	apiVersion       = "6.0"
	projectsPageSize = 100
	// error bodies are cut to this size
	maxErrorBodySize = 4096
)

type JSONPatchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	From  string `json:"from,omitempty"`
	Value any    `json:"value"`
}

type Link struct {
	Href string `json:"href"`
}

type WorkItem struct {
	ID     int             `json:"id"`
	Rev    int             `json:"rev"`
	Fields map[string]any  `json:"fields"`
	Links  map[string]Link `json:"_links"`
	URL    string          `json:"url"`
}

// WebURL is the link to the work item in the browser.
func (w WorkItem) WebURL() string {
	if link, ok := w.Links["html"]; ok {
		return link.Href
	}
	return ""
}

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	State       string `json:"state"`
}

type WorkItemTypeDefinition struct {
	Name          string `json:"name"`
	ReferenceName string `json:"referenceName"`
	Description   string `json:"description"`
	Color         string `json:"color"`
	IsDisabled    bool   `json:"isDisabled"`
}

type listResponse[T any] struct {
	Count int `json:"count"`
	Value []T `json:"value"`
}

// APIError is returned for every non 2xx response.
type APIError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("azure devops responded with %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

// Client talks to the REST api of a single azure devops organization.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// WithRateLimiter makes every request wait for the limiter. A nil limiter disables limiting.
func (c *Client) WithRateLimiter(limiter *rate.Limiter) *Client {
	c.limiter = limiter
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) buildURL(path string, query url.Values) string {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api-version", apiVersion)
	return c.baseURL + path + "?" + query.Encode()
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, contentType string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("could not encode request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}

	u := c.buildURL(path, query)
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("could not build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return &APIError{StatusCode: resp.StatusCode, URL: u, Body: string(b)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response of %s: %w", u, err)
	}
	return nil
}

// CreateWorkItem creates a work item of the given type.
// workItemType is the reference name, for example Microsoft.VSTS.WorkItemTypes.Task.
func (c *Client) CreateWorkItem(ctx context.Context, project string, workItemType string, operations []JSONPatchOperation) (WorkItem, error) {
	var workItem WorkItem
	path := fmt.Sprintf("%s/_apis/wit/workitems/$%s", url.PathEscape(project), url.PathEscape(workItemType))
	err := c.do(ctx, http.MethodPatch, path, nil, "application/json-patch+json", operations, &workItem)
	return workItem, err
}

// GetProjects returns all well formed projects.
func (c *Client) GetProjects(ctx context.Context) ([]Project, error) {
	projects := make([]Project, 0)
	for skip := 0; ; skip += projectsPageSize {
		var page listResponse[Project]
		query := url.Values{
			"stateFilter": {"WellFormed"},
			"$skip":       {strconv.Itoa(skip)},
			"$top":        {strconv.Itoa(projectsPageSize)},
		}
		if err := c.do(ctx, http.MethodGet, "_apis/projects", query, "", nil, &page); err != nil {
			return nil, err
		}
		projects = append(projects, page.Value...)
		if len(page.Value) < projectsPageSize {
			return projects, nil
		}
	}
}

func (c *Client) GetWorkItemTypes(ctx context.Context, project string) ([]WorkItemTypeDefinition, error) {
	var types listResponse[WorkItemTypeDefinition]
	path := fmt.Sprintf("%s/_apis/wit/workitemtypes", url.PathEscape(project))
	if err := c.do(ctx, http.MethodGet, path, nil, "", nil, &types); err != nil {
		return nil, err
	}
	return types.Value, nil
}
