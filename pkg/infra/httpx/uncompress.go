package httpx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

type decoder func(body []byte) ([]byte, error)

var decoders = map[string]decoder{
	"br":      decodeBrotli,
	"gzip":    decodeGzip,
	"zstd":    decodeZstd,
	"deflate": decodeDeflate,
}

// DecodeBody undoes a Content-Encoding header value, including chained
// encodings such as "gzip, br" which are applied right to left. It reports
// whether the body changed.
func DecodeBody(contentEncoding string, body []byte) ([]byte, bool, error) {
	if strings.TrimSpace(contentEncoding) == "" {
		return body, false, nil
	}
	encodings := strings.Split(contentEncoding, ",")
	changed := false
	for i := len(encodings) - 1; i >= 0; i-- {
		name := strings.ToLower(strings.TrimSpace(encodings[i]))
		switch name {
		case "", "identity":
			continue
		}
		decode, ok := decoders[name]
		if !ok {
			return nil, false, fmt.Errorf("unsupported content-encoding: %q", encodings[i])
		}
		out, err := decode(body)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", name, err)
		}
		body = out
		changed = true
	}
	return body, changed, nil
}

func decodeBrotli(body []byte) ([]byte, error) {
	return io.ReadAll(brotli.NewReader(bytes.NewReader(body)))
}

func decodeGzip(body []byte) ([]byte, error) {
	gr, err := gzip.NewReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer func() { _ = gr.Close() }()
	return io.ReadAll(gr)
}

func decodeZstd(body []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(body, nil)
}

// decodeDeflate accepts zlib-wrapped data and falls back to raw DEFLATE.
func decodeDeflate(body []byte) ([]byte, error) {
	if zr, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
		defer func() { _ = zr.Close() }()
		return io.ReadAll(zr)
	}
	fr := flate.NewReader(bytes.NewReader(body))
	defer func() { _ = fr.Close() }()
	return io.ReadAll(fr)
}
