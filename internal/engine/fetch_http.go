package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// maxBodyBytes caps how much of a response is read.
const maxBodyBytes = 10 << 20

// BrowserHeaders returns the fixed browser-identifying header set sent with
// every plain HTTP request.
func BrowserHeaders() map[string]string {
	return map[string]string{
		"user-agent":      UserAgentChrome,
		"referer":         "https://www.baidu.com/",
		"accept-language": "zh-CN,zh;q=0.9",
	}
}

// HTTPFetcher fetches pages with net/http. Redirects are followed.
type HTTPFetcher struct {
	client  *http.Client
	headers map[string]string
}

// NewHTTPFetcher creates a fetcher whose requests time out after timeout,
// body read included.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{client: newFetchClient(timeout), headers: BrowserHeaders()}
}

// newFetchClient creates an HTTP client with proper settings for web scraping.
func newFetchClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: timeout,
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return errors.New("stopped after 10 redirects")
			}
			return nil
		},
	}
}

// Fetch performs a GET and decodes the body using the declared or sniffed charset.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range f.headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	return &Response{
		URL:         rawURL,
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        decodeBody(raw, contentType),
	}, nil
}

// decodeBody converts raw to UTF-8. The charset comes from contentType when
// declared, otherwise from a BOM or meta tag sniff. Undecodable input is
// returned as-is.
func decodeBody(raw []byte, contentType string) string {
	enc, _, _ := charset.DetermineEncoding(raw, contentType)
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
