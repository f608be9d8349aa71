package httpx

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/valyala/fasthttp"
)

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore
type Client interface {
	Do(req *http.Request) (*http.Response, error)
}

// IsTimeout reports whether err is a client or context deadline.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, fasthttp.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
