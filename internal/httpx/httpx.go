package httpx

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/andybalholm/brotli"
)

// AcceptEncoding is sent on every request. Setting it by hand turns off the
// transport's transparent gzip, so Do decodes both encodings itself.
const AcceptEncoding = "br, gzip"

// HTTPError carries status/body for non-2xx responses.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http error: %s %s status=%d body=%s", e.Method, e.URL, e.StatusCode, Snippet(e.Body, 900))
}

// Snippet trims b and cuts it to at most max bytes for error messages,
// never splitting a UTF-8 sequence.
func Snippet(b []byte, max int) string {
	s := strings.TrimSpace(string(b))
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

// Do executes a single request built by buildReq. There is no retry.
// The body is always read in full and decoded. For non-2xx responses the
// body is still returned alongside an *HTTPError so callers can inspect
// error payloads.
func Do(
	ctx context.Context,
	client *http.Client,
	buildReq func(context.Context) (*http.Request, error),
) (*http.Response, []byte, error) {
	req, err := buildReq(ctx)
	if err != nil {
		return nil, nil, err
	}
	if req.Header.Get("Accept-Encoding") == "" {
		req.Header.Set("Accept-Encoding", AcceptEncoding)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}

	body, err := readBody(resp)
	if err != nil {
		return resp, nil, fmt.Errorf("httpx: read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp, body, &HTTPError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
			Body:       body,
		}
	}
	return resp, body, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	var r io.Reader = resp.Body
	switch strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding"))) {
	case "br":
		r = brotli.NewReader(resp.Body)
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		r = gz
	}
	return io.ReadAll(r)
}
