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

package common

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheTransport(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("hello " + r.Header.Get("Authorization"))) // nolint:errcheck
	}))
	defer server.Close()

	get := func(t *testing.T, client *http.Client, method, path, auth string) (int, string) {
		req, err := http.NewRequest(method, server.URL+path, strings.NewReader(""))
		require.NoError(t, err)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		resp, err := client.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return resp.StatusCode, string(body)
	}

	t.Run("should serve repeated GET requests from the cache", func(t *testing.T) {
		calls.Store(0)
		cache := NewCacheTransport(10, time.Minute)
		client := &http.Client{Transport: cache.Wrap(nil)}

		_, first := get(t, client, http.MethodGet, "/projects", "Bearer a")
		_, second := get(t, client, http.MethodGet, "/projects", "Bearer a")

		assert.Equal(t, "hello Bearer a", first)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("should not share entries between credentials", func(t *testing.T) {
		calls.Store(0)
		cache := NewCacheTransport(10, time.Minute)
		client := &http.Client{Transport: cache.Wrap(nil)}

		_, a := get(t, client, http.MethodGet, "/projects", "Bearer a")
		_, b := get(t, client, http.MethodGet, "/projects", "Bearer b")

		assert.Equal(t, "hello Bearer a", a)
		assert.Equal(t, "hello Bearer b", b)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("should never cache other methods", func(t *testing.T) {
		calls.Store(0)
		cache := NewCacheTransport(10, time.Minute)
		client := &http.Client{Transport: cache.Wrap(nil)}

		get(t, client, http.MethodPatch, "/workitems", "Bearer a")
		get(t, client, http.MethodPatch, "/workitems", "Bearer a")

		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("should not cache unsuccessful responses", func(t *testing.T) {
		calls.Store(0)
		cache := NewCacheTransport(10, time.Minute)
		client := &http.Client{Transport: cache.Wrap(nil)}

		status, _ := get(t, client, http.MethodGet, "/fail", "")
		get(t, client, http.MethodGet, "/fail", "")

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, int32(2), calls.Load())
		assert.Equal(t, 0, cache.Len())
	})
}
