package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcherSendsBrowserHeaders(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	resp, err := NewHTTPFetcher(5*time.Second).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, UserAgentChrome, got.Get("User-Agent"))
	assert.Equal(t, "https://www.baidu.com/", got.Get("Referer"))
	assert.Equal(t, "zh-CN,zh;q=0.9", got.Get("Accept-Language"))
}

func TestHTTPFetcherDecodesDeclaredCharset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=gbk")
		w.Write([]byte("\xd3\xb0\xca\xd3\xbd\xd3\xbf\xda"))
	}))
	defer srv.Close()

	resp, err := NewHTTPFetcher(5*time.Second).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "影视接口", resp.Body)
	assert.Equal(t, "text/html; charset=gbk", resp.ContentType)
}

func TestHTTPFetcherSniffsMetaCharset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><head><meta charset="gbk"></head><body>` + "\xd3\xb0\xca\xd3" + `</body></html>`))
	}))
	defer srv.Close()

	resp, err := NewHTTPFetcher(5*time.Second).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, resp.Body, "影视")
}

func TestHTTPFetcherNon200IsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer srv.Close()

	resp, err := NewHTTPFetcher(5*time.Second).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusGone, resp.StatusCode)
}

func TestDecodeBodyUTF8Passthrough(t *testing.T) {
	assert.Equal(t, "影视 api", decodeBody([]byte("影视 api"), "application/json; charset=utf-8"))
}
