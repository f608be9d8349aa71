package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenClient_Options(t *testing.T) {
	tc, ok := NewTokenClient().(*tokenClient)
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, tc.http.Timeout)

	customClient := &http.Client{Timeout: 3 * time.Second}
	tc = NewTokenClient(WithHTTPClient(customClient)).(*tokenClient)
	assert.Same(t, customClient, tc.http)

	tc = NewTokenClient(WithHTTPClient(nil), WithTimeout(5*time.Second)).(*tokenClient)
	assert.Equal(t, 5*time.Second, tc.http.Timeout)
}

func TestGetToken_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "maskflow", r.PostForm.Get("client_id"))
		assert.Equal(t, "protecto.read protecto.write", r.PostForm.Get("scope"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "test-token-123",
			"token_type":   "Bearer",
			"expires_in":   3600,
		})
	}))
	defer server.Close()

	token, expiresAt, err := NewTokenClient().GetToken(context.Background(), TokenRequestDTO{
		TokenURL:     server.URL,
		ClientID:     "maskflow",
		ClientSecret: "test-secret",
		Scopes:       []string{"protecto.read", "protecto.write"},
	})

	require.NoError(t, err)
	assert.Equal(t, "test-token-123", token)
	assert.True(t, expiresAt.After(time.Now()))
}

func TestGetToken_WithBasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "maskflow", user)
		assert.Equal(t, "s3cret", pass)
		assert.NoError(t, r.ParseForm())
		assert.Empty(t, r.PostForm.Get("client_id"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "basic-token", "expires_in": 60})
	}))
	defer server.Close()

	token, _, err := NewTokenClient().GetToken(context.Background(), TokenRequestDTO{
		TokenURL:     server.URL,
		ClientID:     "maskflow",
		ClientSecret: "s3cret",
		UseBasicAuth: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "basic-token", token)
}

func TestGetToken_Validation(t *testing.T) {
	client := NewTokenClient()

	_, _, err := client.GetToken(context.Background(), TokenRequestDTO{ClientID: "maskflow"})
	assert.ErrorContains(t, err, "token url is required")

	_, _, err = client.GetToken(context.Background(), TokenRequestDTO{TokenURL: "http://example.com/token"})
	assert.ErrorContains(t, err, "client_id is required")
}

func TestGetToken_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid credentials"))
	}))
	defer server.Close()

	_, _, err := NewTokenClient().GetToken(context.Background(), TokenRequestDTO{
		TokenURL:     server.URL,
		ClientID:     "maskflow",
		ClientSecret: "wrong-secret",
	})

	assert.ErrorContains(t, err, "status 401")
}

func TestGetToken_EmptyAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"access_token": "", "token_type": "Bearer"})
	}))
	defer server.Close()

	_, _, err := NewTokenClient().GetToken(context.Background(), TokenRequestDTO{
		TokenURL: server.URL,
		ClientID: "maskflow",
	})

	assert.ErrorContains(t, err, "empty access_token")
}

type stubTokenClient struct {
	calls  int
	tokens []string
	ttl    time.Duration
	err    error
}

func (s *stubTokenClient) GetToken(context.Context, TokenRequestDTO) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	token := s.tokens[s.calls]
	s.calls++
	return token, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(s.ttl), nil
}

func TestCachedTokenSource_ReusesUntilSkew(t *testing.T) {
	stub := &stubTokenClient{tokens: []string{"first", "second"}, ttl: time.Hour}
	source := NewCachedTokenSource(stub, TokenRequestDTO{}, time.Minute).(*cachedTokenSource)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	source.now = func() time.Time { return now }

	token, err := source.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", token)

	now = now.Add(58 * time.Minute)
	token, err = source.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", token)
	assert.Equal(t, 1, stub.calls)

	now = now.Add(90 * time.Second)
	token, err = source.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", token)
	assert.Equal(t, 2, stub.calls)
}

func TestCachedTokenSource_Error(t *testing.T) {
	source := NewCachedTokenSource(&stubTokenClient{err: errors.New("idp down")}, TokenRequestDTO{}, 0)

	_, err := source.Token(context.Background())
	assert.EqualError(t, err, "idp down")
}

func TestStaticTokenSource(t *testing.T) {
	token, err := NewStaticTokenSource("api-key").Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "api-key", token)
}
