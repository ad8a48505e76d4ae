package engine

import (
	"context"
	"log/slog"
	"sort"
	"time"
)

// Harvester collects candidate channel links from search engines.
type Harvester struct {
	Engines    []SearchEngine
	Keywords   []string
	Pages      int
	Delay      time.Duration
	WindowDays int
	Markers    []string
	Fetcher    Fetcher
	Now        func() time.Time // defaults to time.Now
}

// NewHarvester builds a Harvester from cfg.
func NewHarvester(cfg Config, engines []SearchEngine, f Fetcher) *Harvester {
	return &Harvester{
		Engines:    engines,
		Keywords:   cfg.Keywords,
		Pages:      cfg.CrawlPages,
		Delay:      cfg.SleepTime,
		WindowDays: cfg.WindowDays,
		Markers:    cfg.Markers,
		Fetcher:    f,
	}
}

// Harvest runs every engine × keyword × page query sequentially and returns
// the sorted set of kept links. Failed requests are logged and skipped.
func (h *Harvester) Harvest(ctx context.Context) []string {
	seen := make(map[string]struct{})
	slog.Info("harvest: start", slog.Int("engines", len(h.Engines)), slog.Int("keywords", len(h.Keywords)))

	for _, e := range h.Engines {
		for _, kw := range h.Keywords {
			for page := 1; page <= h.Pages; page++ {
				if err := sleepCtx(ctx, h.Delay); err != nil {
					return sortedKeys(seen)
				}
				h.harvestPage(ctx, e, kw, page, seen)
			}
		}
	}

	slog.Info("harvest: done", slog.Int("channels", len(seen)))
	return sortedKeys(seen)
}

func (h *Harvester) harvestPage(ctx context.Context, e SearchEngine, keyword string, page int, seen map[string]struct{}) {
	u := e.QueryURL(keyword, page)
	metrics.SearchRequests.Add(1)

	resp, err := h.Fetcher.Fetch(ctx, u)
	if err != nil {
		metrics.SearchErrors.Add(1)
		slog.Warn("harvest: request failed",
			slog.String("engine", e.ID), slog.String("keyword", keyword),
			slog.Int("page", page), slog.Any("error", err))
		return
	}

	kept := h.filterPage(e, resp.Body, seen)
	slog.Info("harvest: page",
		slog.String("engine", e.ID), slog.String("keyword", keyword),
		slog.Int("page", page), slog.Int("status", resp.StatusCode),
		slog.Int("kept", kept), slog.Int("total", len(seen)))
}

// filterPage adds the page's marker links to seen and returns how many
// links passed. Links with a stale date at the same index are dropped.
func (h *Harvester) filterPage(e SearchEngine, body string, seen map[string]struct{}) int {
	links, dates, err := e.ParseResults(body)
	if err != nil {
		slog.Debug("harvest: unparseable page", slog.String("engine", e.ID), slog.Any("error", err))
		return 0
	}

	now := time.Now()
	if h.Now != nil {
		now = h.Now()
	}

	kept := 0
	for i, link := range links {
		if !ContainsAny(link, h.Markers) {
			continue
		}
		if i < len(dates) && !WithinWindow(dates[i], h.WindowDays, now) {
			metrics.LinksStale.Add(1)
			slog.Debug("harvest: stale link", slog.String("link", Preview(link)), slog.String("date", dates[i]))
			continue
		}
		seen[link] = struct{}{}
		metrics.LinksKept.Add(1)
		kept++
	}
	return kept
}

// sleepCtx pauses for d or until ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
