package livreur

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"service-livreur-client/internal/apperr"
)

// RefreshingToken is a TokenSource that exchanges a refresh token for a new
// access token when the current one expires. Safe for concurrent use.
type RefreshingToken struct {
	mu         sync.Mutex
	access     string
	refresh    string
	endpoint   string
	httpClient *http.Client
}

// NewRefreshingToken creates a RefreshingToken against the backend's token
// refresh endpoint.
func NewRefreshingToken(baseURL, access, refresh string, timeout time.Duration) *RefreshingToken {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &RefreshingToken{
		access:     access,
		refresh:    refresh,
		endpoint:   baseURL + "/auth/refresh-token",
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Token returns the current access token.
func (t *RefreshingToken) Token(context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.access, nil
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Refresh exchanges the refresh token for a new access token. The refresh
// token may rotate; the response's copy replaces the stored one when set.
func (t *RefreshingToken) Refresh(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	payload, err := json.Marshal(refreshRequest{RefreshToken: t.refresh})
	if err != nil {
		return "", fmt.Errorf("refresh token: marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("refresh token: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: refresh token: %v", apperr.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("refresh token: status %d: %w", resp.StatusCode, apperr.ErrUnauthorized)
	}

	var out refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("refresh token: decode: %w", err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("refresh token: empty access token: %w", apperr.ErrUnauthorized)
	}

	t.access = out.AccessToken
	if out.RefreshToken != "" {
		t.refresh = out.RefreshToken
	}
	return t.access, nil
}
