package engine

import (
	"context"
	"errors"
)

// fakeFetcher serves canned responses keyed by URL.
type fakeFetcher struct {
	pages    map[string]*Response
	errs     map[string]error
	fallback *Response
	calls    []string
}

func (f *fakeFetcher) Fetch(_ context.Context, u string) (*Response, error) {
	f.calls = append(f.calls, u)
	if err, ok := f.errs[u]; ok {
		return nil, err
	}
	if r, ok := f.pages[u]; ok {
		return r, nil
	}
	if f.fallback != nil {
		return f.fallback, nil
	}
	return nil, errors.New("no such page")
}

func htmlPage(body string) *Response {
	return &Response{StatusCode: 200, ContentType: "text/html; charset=utf-8", Body: body}
}
