package engine

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"
)

// apiURLRe matches candidate video API URLs. Group 1 is the scheme, host and
// path prefix up to and including a marker token; group 2 is the API suffix.
var apiURLRe = regexp.MustCompile(`(https?://[^\s()"'<>+?]*?(?:zy|api|lzi|caiji|cj)[^\s()"'<>*?]*?)(api\.php/provide/vod/|api/json)`)

var parenStripper = strings.NewReplacer("(", "", ")", "")

// ExtractAPIURLs returns group1+group2 for every structural match in body,
// in document order, duplicates included.
func ExtractAPIURLs(body string) []string {
	matches := apiURLRe.FindAllStringSubmatch(body, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1]+m[2])
	}
	return out
}

// NormalizeAPIURL trims surrounding whitespace and removes parentheses.
func NormalizeAPIURL(u string) string {
	return parenStripper.Replace(strings.TrimSpace(u))
}

// Scraper extracts candidate API URLs from channel pages.
type Scraper struct {
	Fetcher Fetcher
	Delay   time.Duration
}

// Scrape fetches every channel sequentially and returns the sorted set of
// normalized candidate URLs. Failed channels are logged and skipped.
func (s *Scraper) Scrape(ctx context.Context, channels []string) []string {
	found := make(map[string]struct{})
	slog.Info("scrape: start", slog.Int("channels", len(channels)))

	for i, ch := range channels {
		if err := sleepCtx(ctx, s.Delay); err != nil {
			break
		}
		metrics.ChannelFetches.Add(1)

		resp, err := s.Fetcher.Fetch(ctx, ch)
		if err != nil {
			metrics.ChannelErrors.Add(1)
			slog.Warn("scrape: channel failed",
				slog.Int("n", i+1), slog.Int("of", len(channels)),
				slog.String("channel", Preview(ch)), slog.Any("error", err))
			continue
		}

		urls := ExtractAPIURLs(resp.Body)
		for _, u := range urls {
			if u = NormalizeAPIURL(u); u != "" {
				found[u] = struct{}{}
			}
		}
		slog.Info("scrape: channel",
			slog.Int("n", i+1), slog.Int("of", len(channels)),
			slog.String("channel", Preview(ch)), slog.Int("matches", len(urls)))
	}

	slog.Info("scrape: done", slog.Int("candidates", len(found)))
	return sortedKeys(found)
}
