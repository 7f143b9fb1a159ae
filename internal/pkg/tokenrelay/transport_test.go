package tokenrelay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newEchoServer(t *testing.T) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Seen-Authorization", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTransport_RelaysToken(t *testing.T) {
	srv := newEchoServer(t)
	client := NewClient(nil)

	ctx := WithToken(context.Background(), &oauth2.Token{AccessToken: "abc", TokenType: "Bearer"})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Bearer abc", resp.Header.Get("X-Seen-Authorization"))
	assert.Empty(t, req.Header.Get("Authorization"), "original request must stay untouched")
}

func TestTransport_NoTokenPassesThrough(t *testing.T) {
	srv := newEchoServer(t)
	client := NewClient(http.DefaultTransport)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Basic existing")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "Basic existing", resp.Header.Get("X-Seen-Authorization"))
}

func TestTransport_EmptyAccessTokenIgnored(t *testing.T) {
	srv := newEchoServer(t)
	client := NewClient(nil)

	ctx := WithToken(context.Background(), &oauth2.Token{})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, resp.Header.Get("X-Seen-Authorization"))
}

func TestTokenFromContext(t *testing.T) {
	assert.Nil(t, TokenFromContext(context.Background()))

	token := &oauth2.Token{AccessToken: "x"}
	assert.Same(t, token, TokenFromContext(WithToken(context.Background(), token)))
}
