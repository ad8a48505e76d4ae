package engine

import (
	"net/url"
	"strings"
)

// ddgEngine queries the DuckDuckGo HTML lite endpoint. s is a zero-based
// result offset with 30 results per page; df=y restricts to the past year.
// The lite page carries no post dates, so every marker link is kept.
var ddgEngine = SearchEngine{
	ID:           "ddg",
	Name:         "DuckDuckGo",
	Template:     "https://html.duckduckgo.com/html/?q={query}&s={offset}",
	TimeFilter:   "&df=y",
	Paginator:    ResultIndex{PerPage: 30, Base: 0},
	LinkSelector: "a.result__a[href]",
	Unwrap:       ddgUnwrapURL,
}

// ddgUnwrapURL extracts the actual URL from DDG redirect wrappers.
// DDG HTML wraps links as: //duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com&rut=...
func ddgUnwrapURL(href string) string {
	if strings.Contains(href, "duckduckgo.com/l/") || strings.Contains(href, "uddg=") {
		if u, err := url.Parse(href); err == nil {
			if uddg := u.Query().Get("uddg"); uddg != "" {
				return uddg
			}
		}
	}
	// Already a direct URL
	if strings.HasPrefix(href, "http") {
		return href
	}
	return ""
}
