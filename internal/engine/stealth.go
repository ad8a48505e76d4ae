package engine

import (
	"context"
	"fmt"
	"net/http"

	stealth "github.com/anatolykoptev/go-stealth"
)

// BrowserFetcher fetches pages through the go-stealth client, so requests
// carry a Chrome TLS fingerprint. Only the body and status returned by Do
// are used; ContentType is left empty and the charset is sniffed from the
// body. Not suitable for liveness probing, which needs Content-Type.
type BrowserFetcher struct {
	bc      *stealth.BrowserClient
	headers map[string]string
}

// NewBrowserFetcher creates a stealth client with opts.
func NewBrowserFetcher(opts ...stealth.ClientOption) (*BrowserFetcher, error) {
	bc, err := stealth.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("stealth client: %w", err)
	}

	headers := stealth.ChromeHeaders()
	headers["referer"] = "https://www.baidu.com/"
	headers["accept-language"] = "zh-CN,zh;q=0.9"
	return &BrowserFetcher{bc: bc, headers: headers}, nil
}

// Fetch performs a GET. The stealth client has its own timeout and cannot be
// cancelled mid-request; ctx is only checked before sending.
func (f *BrowserFetcher) Fetch(ctx context.Context, rawURL string) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, _, status, err := f.bc.Do(http.MethodGet, rawURL, f.headers, nil)
	if err != nil {
		return nil, fmt.Errorf("stealth get %s: %w", rawURL, err)
	}
	return &Response{
		URL:        rawURL,
		StatusCode: status,
		Body:       decodeBody(data, ""),
	}, nil
}
