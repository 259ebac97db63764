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
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const workItemResponse = `{
	"id": 309,
	"rev": 1,
	"fields": {
		"System.AreaPath": "Fabrikam-Fiber-Git",
		"System.TeamProject": "Fabrikam-Fiber-Git",
		"System.IterationPath": "Fabrikam-Fiber-Git",
		"System.WorkItemType": "Task",
		"System.State": "New",
		"System.Title": "Hello",
		"System.Description": "Fix this."
	},
	"_links": {
		"self": {"href": "https://fabrikam-fiber-inc.visualstudio.com/DefaultCollection/_apis/wit/workItems/309"},
		"html": {"href": "https://fabrikam-fiber-inc.visualstudio.com/web/wi.aspx?pcguid=d81542e4-cdfa-4333-b082-1ae2d6c3ad16&id=309"}
	},
	"url": "https://fabrikam-fiber-inc.visualstudio.com/DefaultCollection/_apis/wit/workItems/309"
}`

func TestClientCreateWorkItem(t *testing.T) {
	t.Run("should send a json patch document", func(t *testing.T) {
		var operations []JSONPatchOperation
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/0987654321/_apis/wit/workitems/$Microsoft.VSTS.WorkItemTypes.Task", r.URL.Path)
			assert.Equal(t, "6.0", r.URL.Query().Get("api-version"))
			assert.Equal(t, "application/json-patch+json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&operations))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(workItemResponse)) // nolint:errcheck
		}))
		defer server.Close()

		client := NewClient(server.URL, server.Client())
		workItem, err := client.CreateWorkItem(context.Background(), "0987654321", string(WorkItemTypeTask), []JSONPatchOperation{
			{Op: "add", Path: "/fields/System.Title", Value: "Hello"},
			{Op: "add", Path: "/fields/System.Description", Value: ""},
		})
		require.NoError(t, err)

		assert.Equal(t, 309, workItem.ID)
		assert.Equal(t, "Hello", workItem.Fields["System.Title"])
		assert.Equal(t, "https://fabrikam-fiber-inc.visualstudio.com/web/wi.aspx?pcguid=d81542e4-cdfa-4333-b082-1ae2d6c3ad16&id=309", workItem.WebURL())

		require.Len(t, operations, 2)
		assert.Equal(t, "/fields/System.Title", operations[0].Path)
		assert.Equal(t, "Hello", operations[0].Value)
		// empty values are sent, azure devops rejects an add without value
		assert.Equal(t, "", operations[1].Value)
	})

	t.Run("should return an api error for non 2xx responses", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"TF401320: Rule Error for field Title"}`)) // nolint:errcheck
		}))
		defer server.Close()

		_, err := NewClient(server.URL+"/", server.Client()).CreateWorkItem(context.Background(), "p", string(WorkItemTypeBug), nil)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "TF401320")
	})

	t.Run("should fail on malformed json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": `)) // nolint:errcheck
		}))
		defer server.Close()

		_, err := NewClient(server.URL, server.Client()).CreateWorkItem(context.Background(), "p", string(WorkItemTypeBug), nil)
		assert.Error(t, err)
		var apiErr *APIError
		assert.NotErrorAs(t, err, &apiErr)
	})
}

func TestClientGetProjects(t *testing.T) {
	var skips []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/_apis/projects", r.URL.Path)
		assert.Equal(t, "WellFormed", r.URL.Query().Get("stateFilter"))
		assert.Equal(t, "100", r.URL.Query().Get("$top"))
		skip := r.URL.Query().Get("$skip")
		skips = append(skips, skip)

		count := 100
		if skip != "0" {
			count = 1
		}
		offset, _ := strconv.Atoi(skip)
		projects := make([]Project, 0, count)
		for i := range count {
			projects = append(projects, Project{ID: fmt.Sprintf("project-%d", offset+i), Name: fmt.Sprintf("Project %d", offset+i), State: "wellFormed"})
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(listResponse[Project]{Count: count, Value: projects}) // nolint:errcheck
	}))
	defer server.Close()

	projects, err := NewClient(server.URL, server.Client()).GetProjects(context.Background())
	require.NoError(t, err)

	assert.Len(t, projects, 101)
	assert.Equal(t, "project-100", projects[100].ID)
	assert.Equal(t, []string{"0", "100"}, skips)
}

func TestClientGetWorkItemTypes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Fabrikam Fiber/_apis/wit/workitemtypes", r.URL.Path)
		w.Write([]byte(`{"count":2,"value":[{"name":"Bug","referenceName":"Microsoft.VSTS.WorkItemTypes.Bug"},{"name":"Task","referenceName":"Microsoft.VSTS.WorkItemTypes.Task","isDisabled":true}]}`)) // nolint:errcheck
	}))
	defer server.Close()

	types, err := NewClient(server.URL, server.Client()).GetWorkItemTypes(context.Background(), "Fabrikam Fiber")
	require.NoError(t, err)

	require.Len(t, types, 2)
	assert.Equal(t, "Microsoft.VSTS.WorkItemTypes.Bug", types[0].ReferenceName)
	assert.True(t, types[1].IsDisabled)
}

func TestClientRateLimit(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"count":0,"value":[]}`)) // nolint:errcheck
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client()).WithRateLimiter(rate.NewLimiter(rate.Every(time.Hour), 1))

	_, err := client.GetWorkItemTypes(context.Background(), "p")
	require.NoError(t, err)

	// the next token is an hour away, the deadline cannot be met
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.GetWorkItemTypes(ctx, "p")
	assert.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}
