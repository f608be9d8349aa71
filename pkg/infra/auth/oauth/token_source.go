package oauth

import (
	"context"
	"sync"
	"time"
)

const DefaultRefreshSkew = 30 * time.Second

// TokenSource supplies the bearer token sent to Protecto.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type staticTokenSource string

// NewStaticTokenSource always returns apiKey.
func NewStaticTokenSource(apiKey string) TokenSource {
	return staticTokenSource(apiKey)
}

func (s staticTokenSource) Token(context.Context) (string, error) {
	return string(s), nil
}

// cachedTokenSource reuses a client-credentials token until skew before it
// expires. Callers that find it stale wait on the mutex for a single refresh.
type cachedTokenSource struct {
	client    TokenClient
	request   TokenRequestDTO
	skew      time.Duration
	now       func() time.Time
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewCachedTokenSource(client TokenClient, request TokenRequestDTO, skew time.Duration) TokenSource {
	if skew <= 0 {
		skew = DefaultRefreshSkew
	}
	return &cachedTokenSource{
		client:  client,
		request: request,
		skew:    skew,
		now:     time.Now,
	}
}

func (s *cachedTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Add(s.skew).Before(s.expiresAt) {
		return s.token, nil
	}
	token, expiresAt, err := s.client.GetToken(ctx, s.request)
	if err != nil {
		return "", err
	}
	s.token = token
	s.expiresAt = expiresAt
	return token, nil
}
