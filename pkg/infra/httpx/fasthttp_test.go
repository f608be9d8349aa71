package httpx

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

func newInmemoryClient(t *testing.T, handler fasthttp.RequestHandler, opts ...FastHTTPClientOption) Client {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	go func() { _ = fasthttp.Serve(ln, handler) }()
	t.Cleanup(func() { _ = ln.Close() })

	c := NewFastHTTPClient(opts...)
	c.(*FastHTTPClient).client.Dial = func(string) (net.Conn, error) {
		return ln.Dial()
	}
	return c
}

func TestFastHTTPClient_Do(t *testing.T) {
	client := newInmemoryClient(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "POST", string(ctx.Method()))
		assert.Equal(t, "/objects/User/retry", string(ctx.Path()))
		assert.Equal(t, "Bearer secret", string(ctx.Request.Header.Peek("Authorization")))
		assert.Equal(t, "maskflow-test", string(ctx.Request.Header.Peek("User-Agent")))
		assert.JSONEq(t, `{"retry_all":true,"record_ids":[]}`, string(ctx.PostBody()))

		ctx.Response.Header.Set("Content-Encoding", "gzip")
		ctx.SetContentType("application/json")
		ctx.SetBody(gzipCompress([]byte(`{"is_retry_enabled":false,"message":"done"}`)))
	}, WithUserAgent("maskflow-test"))

	req, err := http.NewRequest(http.MethodPost, "http://protecto.local/objects/User/retry",
		strings.NewReader(`{"retry_all":true,"record_ids":[]}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer secret")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"is_retry_enabled":false,"message":"done"}`, string(body))
	assert.Empty(t, resp.Header.Get("Content-Encoding"))
}

func TestFastHTTPClient_Timeout(t *testing.T) {
	client := newInmemoryClient(t, func(ctx *fasthttp.RequestCtx) {
		time.Sleep(200 * time.Millisecond)
	}, WithTimeout(20*time.Millisecond))

	req, err := http.NewRequest(http.MethodGet, "http://protecto.local/objects", nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
}

func TestFastHTTPClient_CanceledContext(t *testing.T) {
	client := newInmemoryClient(t, func(ctx *fasthttp.RequestCtx) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://protecto.local/objects", nil)
	require.NoError(t, err)

	_, err = client.Do(req)
	assert.ErrorIs(t, err, context.Canceled)
}
