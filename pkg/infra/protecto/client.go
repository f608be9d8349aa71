package protecto

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/domain"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/protecto"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/auth/oauth"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/httpx"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

const maxErrorBody = 512

type Config struct {
	BaseURL string
	APIKey  string
	// Tokens overrides APIKey, e.g. with an OAuth client-credentials source.
	Tokens oauth.TokenSource
}

type client struct {
	logger  *logrus.Logger
	http    httpx.Client
	breaker httpx.CircuitBreaker
	baseURL string
	tokens  oauth.TokenSource
}

func NewClient(
	cfg Config,
	httpClient httpx.Client,
	breaker httpx.CircuitBreaker,
	logger *logrus.Logger,
) protecto.Client {
	tokens := cfg.Tokens
	if tokens == nil && cfg.APIKey != "" {
		tokens = oauth.NewStaticTokenSource(cfg.APIKey)
	}
	return &client{
		logger:  logger,
		http:    httpClient,
		breaker: breaker,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		tokens:  tokens,
	}
}

// CountsAsSuccess tells the circuit breaker which errors are answers rather
// than outages: unknown objects and other 4xx responses.
func CountsAsSuccess(err error) bool {
	if domain.IsValidationError(err) {
		return true
	}
	var collaboratorErr *domain.CollaboratorError
	if errors.As(err, &collaboratorErr) {
		return collaboratorErr.StatusCode >= 400 && collaboratorErr.StatusCode < 500
	}
	return false
}

func objectPath(object, suffix string) string {
	return "/objects/" + url.PathEscape(object) + suffix
}

func (c *client) ListScheduled(ctx context.Context) ([]masking.ScheduledObject, error) {
	scheduled := make([]masking.ScheduledObject, 0)
	if err := c.call(ctx, call{op: protecto.OpListScheduled, method: http.MethodGet, path: "/objects/scheduled-for-masking"}, &scheduled); err != nil {
		return nil, err
	}
	return scheduled, nil
}

func (c *client) ListObjects(ctx context.Context) ([]string, error) {
	objects := make([]string, 0)
	if err := c.call(ctx, call{op: protecto.OpListObjects, method: http.MethodGet, path: "/objects"}, &objects); err != nil {
		return nil, err
	}
	return objects, nil
}

func (c *client) ListFields(ctx context.Context, object string) ([]scan.Field, error) {
	fields := make([]scan.Field, 0)
	err := c.call(ctx, call{
		op:     protecto.OpListFields,
		method: http.MethodGet,
		path:   objectPath(object, "/fields"),
		object: object,
	}, &fields)
	if err != nil {
		return nil, err
	}
	return fields, nil
}

func (c *client) GetRecords(ctx context.Context, object string) (*masking.Table, error) {
	var raw json.RawMessage
	err := c.call(ctx, call{
		op:     protecto.OpGetRecords,
		method: http.MethodGet,
		path:   objectPath(object, "/query-execution-result"),
		object: object,
	}, &raw)
	if err != nil {
		return nil, err
	}
	table, err := parseRecords(raw)
	if err != nil {
		return nil, domain.NewCollaboratorError(protecto.OpGetRecords, 0, err)
	}
	return table, nil
}

func (c *client) SetExempt(ctx context.Context, object string, ids []string) (*protecto.MessageResult, error) {
	result := new(protecto.MessageResult)
	err := c.call(ctx, call{
		op:     protecto.OpSetExempt,
		method: http.MethodPost,
		path:   objectPath(object, "/no-mask"),
		object: object,
		body:   map[string]interface{}{"record_ids": nonNil(ids)},
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Retry sends ids only in specific mode; retry-all always sends an empty list.
func (c *client) Retry(ctx context.Context, object string, all bool, ids []string) (*protecto.RetryResult, error) {
	if all {
		ids = nil
	}
	result := new(protecto.RetryResult)
	err := c.call(ctx, call{
		op:     protecto.OpRetry,
		method: http.MethodPost,
		path:   objectPath(object, "/retry"),
		object: object,
		body:   map[string]interface{}{"retry_all": all, "record_ids": nonNil(ids)},
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *client) Approve(ctx context.Context, object string) (*protecto.ApproveResult, error) {
	result := new(protecto.ApproveResult)
	err := c.call(ctx, call{
		op:     protecto.OpApprove,
		method: http.MethodPost,
		path:   objectPath(object, "/approve"),
		object: object,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *client) Eligibility(ctx context.Context, object string) (*masking.Eligibility, error) {
	result := new(masking.Eligibility)
	err := c.call(ctx, call{
		op:     protecto.OpEligibility,
		method: http.MethodGet,
		path:   objectPath(object, "/approve-retry-status"),
		object: object,
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *client) SaveFieldSelection(ctx context.Context, object string, fields []string) (*protecto.SubmitResult, error) {
	result := new(protecto.SubmitResult)
	err := c.call(ctx, call{
		op:     protecto.OpSaveFieldSelection,
		method: http.MethodPost,
		path:   "/scan-metadata",
		object: object,
		body:   map[string]interface{}{"object_name": object, "fields": nonNil(fields)},
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *client) StartScan(ctx context.Context, fields []string) (*protecto.SubmitResult, error) {
	result := new(protecto.SubmitResult)
	err := c.call(ctx, call{
		op:     protecto.OpStartScan,
		method: http.MethodPost,
		path:   "/scan",
		body:   map[string]interface{}{"fields": nonNil(fields)},
	}, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

type call struct {
	op     string
	method string
	path   string
	// object is set on object-scoped calls; a 404 then means the object is unknown.
	object string
	body   interface{}
}

func (c *client) call(ctx context.Context, req call, out interface{}) error {
	start := time.Now()
	var callErr error
	breakerErr := c.breaker.Execute(func() error {
		callErr = c.roundTrip(ctx, req, out)
		return callErr
	})

	err := callErr
	if err == nil && breakerErr != nil {
		err = domain.NewCollaboratorError(req.op, 0, breakerErr)
	}
	c.observe(req, start, err)
	return err
}

func (c *client) roundTrip(ctx context.Context, req call, out interface{}) error {
	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return domain.NewCollaboratorError(req.op, 0, fmt.Errorf("failed to marshal request: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return domain.NewCollaboratorError(req.op, 0, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Accept-Encoding", "gzip, br, zstd, deflate")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return domain.NewCollaboratorError(req.op, 0, fmt.Errorf("failed to obtain access token: %w", err))
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if httpx.IsTimeout(err) {
			return domain.NewCollaboratorTimeoutError(req.op, err)
		}
		return domain.NewCollaboratorError(req.op, 0, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewCollaboratorError(req.op, resp.StatusCode, fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode == http.StatusNotFound && req.object != "" {
		return domain.NewUnknownObjectError(req.object)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.NewCollaboratorError(req.op, resp.StatusCode, errors.New(truncate(respBody)))
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return domain.NewCollaboratorError(req.op, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

func (c *client) observe(req call, start time.Time, err error) {
	elapsed := time.Since(start)
	outcome := "success"
	switch {
	case err == nil:
	case domain.IsCollaboratorTimeout(err):
		outcome = "timeout"
	case domain.IsValidationError(err):
		outcome = "rejected"
	default:
		outcome = "error"
	}

	if prometheus.Config.EnableCollaboratorMetrics {
		prometheus.CollaboratorRequestTotal.WithLabelValues(req.op, outcome).Inc()
		prometheus.CollaboratorLatency.WithLabelValues(req.op).Observe(float64(elapsed.Milliseconds()))
	}

	entry := c.logger.WithFields(logrus.Fields{
		"operation":  req.op,
		"object":     req.object,
		"outcome":    outcome,
		"latency_ms": elapsed.Milliseconds(),
	})
	if err != nil && outcome == "error" {
		entry.WithError(err).Warn("protecto call failed")
		return
	}
	entry.Debug("protecto call completed")
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func truncate(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "empty response body"
	}
	if len(text) > maxErrorBody {
		return text[:maxErrorBody] + "..."
	}
	return text
}
