// Package client holds HTTP clients for services called on behalf of the
// authenticated caller.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sample-be/internal/dto"
	"sample-be/internal/entity"
	"sample-be/internal/pkg/tokenrelay"

	"github.com/goccy/go-json"
)

var ErrUserNotFound = errors.New("user not found")

// IdentityClient reads users from the identity service. Every call carries the
// caller's bearer token.
type IdentityClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewIdentityClient(baseURL string, base http.RoundTripper) *IdentityClient {
	httpClient := tokenrelay.NewClient(base)
	httpClient.Timeout = 10 * time.Second
	return &IdentityClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// GetUser fetches GET {baseURL}/api/users/{id}. A 404 yields ErrUserNotFound.
func (c *IdentityClient) GetUser(ctx context.Context, id string) (*entity.User, error) {
	endpoint := fmt.Sprintf("%s/api/users/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity service request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrUserNotFound
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("identity service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var user dto.UserDTO
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode identity response: %w", err)
	}
	if user.Id == "" {
		return nil, fmt.Errorf("identity service returned a user without id")
	}
	return &entity.User{Id: user.Id, Login: user.Login}, nil
}
