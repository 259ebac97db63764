// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitErrorTracking(t *testing.T) {
	t.Run("should be disabled without dsn", func(t *testing.T) {
		flush, err := InitErrorTracking("", "test", "dev")
		require.NoError(t, err)
		assert.NotPanics(t, flush)
	})

	t.Run("should reject a malformed dsn", func(t *testing.T) {
		_, err := InitErrorTracking("not a dsn", "test", "dev")
		assert.Error(t, err)
	})

	t.Run("should not panic when alerting without a client", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Alert("something failed", errors.New("boom"))
			RecoverAndAlert("something panicked", "boom")
		})
	})
}

func TestInitTracing(t *testing.T) {
	t.Run("should be disabled without endpoint", func(t *testing.T) {
		shutdown, err := InitTracing(context.Background(), "")
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})

	t.Run("should export to the endpoint", func(t *testing.T) {
		shutdown, err := InitTracing(context.Background(), "http://localhost:4318")
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})
}
