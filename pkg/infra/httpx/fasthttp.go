package httpx

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	DefaultTimeout             = 10 * time.Second
	DefaultMaxConnsPerHost     = 64
	DefaultMaxIdleConnDuration = 10 * time.Second
	DefaultMaxResponseBodySize = 32 * 1024 * 1024
)

type FastHTTPClientOptions struct {
	// Timeout bounds a whole request unless the request context has an
	// earlier deadline.
	Timeout             time.Duration
	InsecureSkipVerify  bool
	MaxConnsPerHost     int
	MaxIdleConnDuration time.Duration
	MaxResponseBodySize int
	UserAgent           string
	TLSConfig           *tls.Config
}

type FastHTTPClientOption func(*FastHTTPClientOptions)

func WithTimeout(timeout time.Duration) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.Timeout = timeout
	}
}

func WithInsecureSkipVerify(skip bool) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.InsecureSkipVerify = skip
	}
}

func WithMaxConnsPerHost(max int) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.MaxConnsPerHost = max
	}
}

// WithTLSConfig sets client certificates and CAs. InsecureSkipVerify is
// applied on top of it.
func WithTLSConfig(cfg *tls.Config) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.TLSConfig = cfg
	}
}

func WithUserAgent(userAgent string) FastHTTPClientOption {
	return func(o *FastHTTPClientOptions) {
		o.UserAgent = userAgent
	}
}

type FastHTTPClient struct {
	client    *fasthttp.Client
	timeout   time.Duration
	userAgent string
}

func NewFastHTTPClient(opts ...FastHTTPClientOption) Client {
	options := &FastHTTPClientOptions{
		Timeout:             DefaultTimeout,
		MaxConnsPerHost:     DefaultMaxConnsPerHost,
		MaxIdleConnDuration: DefaultMaxIdleConnDuration,
		MaxResponseBodySize: DefaultMaxResponseBodySize,
	}
	for _, opt := range opts {
		opt(options)
	}

	client := &fasthttp.Client{
		MaxConnsPerHost:     options.MaxConnsPerHost,
		MaxIdleConnDuration: options.MaxIdleConnDuration,
		MaxResponseBodySize: options.MaxResponseBodySize,
		ReadTimeout:         options.Timeout,
		WriteTimeout:        options.Timeout,
	}
	if options.TLSConfig != nil {
		client.TLSConfig = options.TLSConfig.Clone()
	}
	if options.InsecureSkipVerify {
		if client.TLSConfig == nil {
			client.TLSConfig = &tls.Config{} //nolint:gosec
		}
		client.TLSConfig.InsecureSkipVerify = true //nolint:gosec // intentionally configurable
	}

	return &FastHTTPClient{
		client:    client,
		timeout:   options.Timeout,
		userAgent: options.UserAgent,
	}
}

// Do adapts a net/http request onto fasthttp. The response body is fully
// buffered and decompressed according to Content-Encoding.
func (c *FastHTTPClient) Do(req *http.Request) (*http.Response, error) {
	fastReq := fasthttp.AcquireRequest()
	fastResp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(fastReq)
	defer fasthttp.ReleaseResponse(fastResp)

	if req.URL != nil {
		fastReq.SetRequestURI(req.URL.String())
	}
	fastReq.Header.SetMethod(req.Method)
	if req.Host != "" {
		fastReq.Header.SetHost(req.Host)
	}
	for key, values := range req.Header {
		for _, value := range values {
			fastReq.Header.Add(key, value)
		}
	}
	if c.userAgent != "" && req.Header.Get("User-Agent") == "" {
		fastReq.Header.Set("User-Agent", c.userAgent)
	}
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
		fastReq.SetBodyRaw(body)
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := req.Context().Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := req.Context().Err(); err != nil {
		return nil, err
	}
	if err := c.client.DoDeadline(fastReq, fastResp, deadline); err != nil {
		return nil, err
	}

	body, _, err := DecodeBody(string(fastResp.Header.Peek(fasthttp.HeaderContentEncoding)), fastResp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	bodyCopy := make([]byte, len(body))
	copy(bodyCopy, body)

	headers := make(http.Header)
	fastResp.Header.VisitAll(func(key, value []byte) {
		headers.Add(string(key), string(value))
	})
	headers.Del(fasthttp.HeaderContentEncoding)

	statusCode := fastResp.StatusCode()
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		StatusCode:    statusCode,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        headers,
		Body:          io.NopCloser(bytes.NewReader(bodyCopy)),
		ContentLength: int64(len(bodyCopy)),
		Request:       req,
	}, nil
}
