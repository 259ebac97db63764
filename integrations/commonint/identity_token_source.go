// Copyright 2026 l3montree GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package commonint

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/l3montree-dev/alertflow/database/models"
	"github.com/l3montree-dev/alertflow/shared"
	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// refreshes of the same identity are collapsed process wide
var identityRefreshGroup singleflight.Group

// IdentityTokenSource hands out the access token stored on an identity.
// Expired tokens are refreshed through the oauth2 config and written back to the identity.
type IdentityTokenSource struct {
	ctx                context.Context
	oauth2Config       *oauth2.Config
	identityRepository shared.IdentityRepository

	mu       sync.Mutex
	identity models.Identity
}

var _ oauth2.TokenSource = (*IdentityTokenSource)(nil)

func NewIdentityTokenSource(ctx context.Context, identityRepository shared.IdentityRepository, oauth2Config *oauth2.Config, identity models.Identity) *IdentityTokenSource {
	return &IdentityTokenSource{
		ctx:                ctx,
		oauth2Config:       oauth2Config,
		identityRepository: identityRepository,
		identity:           identity,
	}
}

func (s *IdentityTokenSource) current() *oauth2.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &oauth2.Token{
		AccessToken:  s.identity.AccessToken,
		RefreshToken: s.identity.RefreshToken,
		Expiry:       s.identity.ExpiresAt,
	}
}

func (s *IdentityTokenSource) Token() (*oauth2.Token, error) {
	token := s.current()
	if token.Valid() {
		return token, nil
	}

	if token.RefreshToken == "" || s.oauth2Config == nil {
		return nil, fmt.Errorf("access token of identity %s expired and cannot be refreshed", s.identity.ID)
	}

	v, err, joined := identityRefreshGroup.Do(s.identity.ID.String(), func() (any, error) {
		return s.refresh(token)
	})
	if err != nil {
		return nil, err
	}
	if joined {
		slog.Debug("joined running token refresh", "identity", s.identity.ID)
	}

	refreshed := v.(*oauth2.Token)
	s.mu.Lock()
	s.identity.AccessToken = refreshed.AccessToken
	if refreshed.RefreshToken != "" {
		s.identity.RefreshToken = refreshed.RefreshToken
	}
	s.identity.ExpiresAt = refreshed.Expiry
	s.mu.Unlock()

	return refreshed, nil
}

func (s *IdentityTokenSource) refresh(expired *oauth2.Token) (*oauth2.Token, error) {
	// an expired access token forces the refresh
	token, err := s.oauth2Config.TokenSource(s.ctx, &oauth2.Token{RefreshToken: expired.RefreshToken}).Token()
	if err != nil {
		return nil, fmt.Errorf("could not refresh access token of identity %s: %w", s.identity.ID, err)
	}

	if err := s.identityRepository.UpdateToken(nil, s.identity.ID, token.AccessToken, token.RefreshToken, token.Expiry); err != nil {
		return nil, fmt.Errorf("could not persist refreshed token of identity %s: %w", s.identity.ID, err)
	}
	slog.Info("refreshed access token", "identity", s.identity.ID, "expiry", token.Expiry)

	return token, nil
}
