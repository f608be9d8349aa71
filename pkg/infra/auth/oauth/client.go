package oauth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenClient exchanges client credentials for an access token.
type TokenClient interface {
	GetToken(ctx context.Context, dto TokenRequestDTO) (accessToken string, expiresAt time.Time, err error)
}

type tokenClient struct {
	http *http.Client
}

func NewTokenClient(opts ...TokenClientOption) TokenClient {
	tc := &tokenClient{http: &http.Client{Timeout: 30 * time.Second}}
	for _, opt := range opts {
		opt(tc)
	}
	return tc
}

type TokenRequestDTO struct {
	TokenURL string

	ClientID     string
	ClientSecret string
	UseBasicAuth bool

	Scopes   []string
	Audience string
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (c *tokenClient) GetToken(ctx context.Context, dto TokenRequestDTO) (string, time.Time, error) {
	tokenURL := strings.TrimSpace(dto.TokenURL)
	if tokenURL == "" {
		return "", time.Time{}, fmt.Errorf("token url is required")
	}
	if strings.TrimSpace(dto.ClientID) == "" {
		return "", time.Time{}, fmt.Errorf("client_id is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(buildForm(dto).Encode()))
	if err != nil {
		return "", time.Time{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if dto.UseBasicAuth {
		cred := dto.ClientID + ":" + dto.ClientSecret
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(cred)))
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", time.Time{}, err
	}
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return "", time.Time{}, fmt.Errorf("failed to read token response body: %w", readErr)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= 300 {
		trunc := string(body)
		if len(trunc) > 2048 {
			trunc = trunc[:2048] + "...(truncated)"
		}
		return "", time.Time{}, fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, trunc)
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("empty access_token in response")
	}

	expiresAt := time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	return tr.AccessToken, expiresAt, nil
}

func buildForm(dto TokenRequestDTO) url.Values {
	v := url.Values{}
	v.Set("grant_type", "client_credentials")
	if len(dto.Scopes) > 0 {
		v.Set("scope", strings.Join(dto.Scopes, " "))
	}
	if strings.TrimSpace(dto.Audience) != "" {
		v.Set("audience", dto.Audience)
	}
	if !dto.UseBasicAuth {
		v.Set("client_id", dto.ClientID)
		if dto.ClientSecret != "" {
			v.Set("client_secret", dto.ClientSecret)
		}
	}
	return v
}
