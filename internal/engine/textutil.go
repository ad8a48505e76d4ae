package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
)

// UserAgentChrome is the fixed desktop Chrome identity sent with plain HTTP requests.
const UserAgentChrome = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// previewLen is how much of a URL progress logs show.
const previewLen = 30

// Preview shortens s for log lines.
func Preview(s string) string {
	return strutil.TruncateWith(s, previewLen, "...")
}

// ContainsAny reports whether s contains at least one of subs.
func ContainsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
