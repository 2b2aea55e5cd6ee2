package translate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	out string
	err error
}

func (s *stubProvider) Translate(ctx context.Context, text, from, to string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.out, nil
}

func TestAdapter_IdentityPassThrough(t *testing.T) {
	// The provider must never be consulted when from == to.
	a := NewAdapter(&stubProvider{err: errors.New("provider must not be called")})

	for _, text := range []string{"", "hello", "bajra ko kitna pani chahiye"} {
		out, err := a.Translate(context.Background(), text, "ur", "ur")
		require.NoError(t, err)
		assert.Equal(t, text, out)
	}
}

func TestAdapter_WrapsProviderFailure(t *testing.T) {
	a := NewAdapter(&stubProvider{err: errors.New("boom")})

	_, err := a.Translate(context.Background(), "text", "ur", "en")
	var trErr *Error
	require.True(t, errors.As(err, &trErr))
	assert.Equal(t, "ur", trErr.From)
	assert.Equal(t, "en", trErr.To)
}

func TestAdapter_PassesProviderOutput(t *testing.T) {
	a := NewAdapter(&stubProvider{out: "translated"})

	out, err := a.Translate(context.Background(), "original", "ur", "en")
	require.NoError(t, err)
	assert.Equal(t, "translated", out)
}

func TestGoogleProvider_ParsesSegments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ur", r.URL.Query().Get("sl"))
		assert.Equal(t, "en", r.URL.Query().Get("tl"))
		fmt.Fprint(w, `[[["How much water ","bajra ko",null],["does bajra need?","kitna pani",null]],null,"ur"]`)
	}))
	defer srv.Close()

	g := NewGoogleProviderWithEndpoint(srv.URL, srv.Client())
	out, err := g.Translate(context.Background(), "bajra ko kitna pani chahiye", "ur", "en")
	require.NoError(t, err)
	assert.Equal(t, "How much water does bajra need?", out)
}

func TestGoogleProvider_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGoogleProviderWithEndpoint(srv.URL, srv.Client())
	_, err := g.Translate(context.Background(), "text", "ur", "en")
	assert.Error(t, err)
}

func TestGoogleProvider_MalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"unexpected": "shape"}`)
	}))
	defer srv.Close()

	g := NewGoogleProviderWithEndpoint(srv.URL, srv.Client())
	_, err := g.Translate(context.Background(), "text", "ur", "en")
	assert.Error(t, err)
}
