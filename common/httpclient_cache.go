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
	"bufio"
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// CacheTransport keeps successful GET responses in memory.
// Responses are keyed by url and credentials, so two identities never share an entry.
type CacheTransport struct {
	cache *expirable.LRU[string, []byte]
}

func NewCacheTransport(cacheSize int, expiration time.Duration) *CacheTransport {
	return &CacheTransport{
		cache: expirable.NewLRU[string, []byte](cacheSize, nil, expiration),
	}
}

// Wrap returns a round tripper serving GET requests from the cache before calling next.
func (c *CacheTransport) Wrap(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodGet {
			return next.RoundTrip(req)
		}

		key := cacheKey(req)

		if val, ok := c.cache.Get(key); ok {
			slog.Debug("cache hit", "url", req.URL.String())
			return responseFromBytes(val, req)
		}

		resp, err := next.RoundTrip(req)
		if err != nil {
			return resp, err
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp, nil
		}

		v, err := httputil.DumpResponse(resp, true)
		if err != nil {
			slog.Warn("could not dump response, skipping cache", "err", err)
			return resp, nil
		}
		resp.Body.Close()

		c.cache.Add(key, v)

		return responseFromBytes(v, req)
	})
}

func (c *CacheTransport) Len() int {
	return c.cache.Len()
}

func (c *CacheTransport) Purge() {
	c.cache.Purge()
}

func responseFromBytes(v []byte, req *http.Request) (*http.Response, error) {
	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(v)), req)
	if err != nil {
		return nil, fmt.Errorf("failed to read cached response: %w", err)
	}
	return resp, nil
}

func cacheKey(req *http.Request) string {
	key := req.URL.String()

	auth := req.Header.Get("Authorization")
	cookie := req.Header.Get("Cookie")

	if auth != "" || cookie != "" {
		h := sha256.New()
		h.Write([]byte(key))
		h.Write([]byte(auth))
		h.Write([]byte(cookie))
		return fmt.Sprintf("%x", h.Sum(nil))
	}

	return key
}
