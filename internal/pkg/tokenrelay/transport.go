// Package tokenrelay forwards the caller's bearer token on outbound HTTP calls.
package tokenrelay

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

type tokenKey struct{}

// WithToken returns a context carrying the caller's access token.
func WithToken(ctx context.Context, token *oauth2.Token) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the token stored by WithToken, or nil.
func TokenFromContext(ctx context.Context) *oauth2.Token {
	token, _ := ctx.Value(tokenKey{}).(*oauth2.Token)
	return token
}

// Transport sets "Authorization: <type> <token>" on every outbound request whose
// context carries a token. Requests without one pass through unchanged.
type Transport struct {
	Base http.RoundTripper
}

func NewTransport(base http.RoundTripper) *Transport {
	return &Transport{Base: base}
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	token := TokenFromContext(req.Context())
	if token == nil || token.AccessToken == "" {
		return t.base().RoundTrip(req)
	}

	// RoundTrip must not modify the caller's request
	outbound := req.Clone(req.Context())
	token.SetAuthHeader(outbound)
	return t.base().RoundTrip(outbound)
}

// NewClient returns an http.Client relaying the caller's token.
func NewClient(base http.RoundTripper) *http.Client {
	return &http.Client{Transport: NewTransport(base)}
}
