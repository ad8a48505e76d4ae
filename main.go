// Command vodhunt discovers and validates public video-resource API endpoints.
//
// Queries search engines for recent pages mentioning video APIs, scrapes
// those pages for candidate API URLs, probes each one and writes the live
// set to a JSON file. Runs to completion without arguments; configuration
// comes from the environment (optionally a .env file).
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	stealth "github.com/anatolykoptev/go-stealth"
	"github.com/anatolykoptev/go-stealth/proxypool"
	"github.com/anatolykoptev/vodhunt/internal/engine"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	initLogger(env.Str("LOG_LEVEL", "info"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	start := time.Now()
	cfg := loadConfig()

	slog.Info("starting vodhunt",
		slog.Int("keywords", len(cfg.Keywords)),
		slog.String("engines", strings.Join(cfg.Engines, ",")),
		slog.Int("window_days", cfg.WindowDays),
	)

	p, err := engine.New(cfg, pageFetcher(cfg))
	if err != nil {
		slog.Error("pipeline init failed", slog.Any("error", err))
		return 1
	}

	rep, err := p.Run(ctx)
	if err != nil {
		slog.Error("write output failed", slog.Any("error", err))
		return 1
	}

	slog.Info("run complete",
		slog.Duration("elapsed", time.Since(start).Round(100*time.Millisecond)),
		slog.Int("channels", rep.Channels),
		slog.Int("candidates", rep.Candidates),
		slog.Int("live", len(rep.Live)),
		slog.String("stopped", rep.Stopped),
	)
	logMetrics(slog.Default())
	return 0
}

// logMetrics writes the final counters as one line, keys sorted.
func logMetrics(l *slog.Logger) {
	m := engine.GetMetrics()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.Int64(k, m[k]))
	}
	l.Info("metrics", attrs...)
}

func loadConfig() engine.Config {
	c := engine.DefaultConfig()

	if kws := nonEmpty(env.List("SEARCH_KEYWORDS", "")); len(kws) > 0 {
		c.Keywords = kws
	}
	if path := env.Str("KEYWORDS_FILE", ""); path != "" {
		kws, err := engine.LoadKeywords(path)
		if err != nil {
			slog.Warn("keywords file unreadable, using defaults", slog.Any("error", err))
		} else if len(kws) > 0 {
			c.Keywords = kws
		}
	}
	if ids := nonEmpty(env.List("SEARCH_ENGINES", "")); len(ids) > 0 {
		c.Engines = ids
	}

	c.CrawlPages = env.Int("CRAWL_PAGES", c.CrawlPages)
	c.SleepTime = env.Duration("SLEEP_TIME", c.SleepTime)
	c.FetchTimeout = env.Duration("FETCH_TIMEOUT", c.FetchTimeout)
	c.VerifyTimeout = env.Duration("VERIFY_TIMEOUT", c.VerifyTimeout)
	c.VerifyMinLength = env.Int("VERIFY_MIN_LENGTH", c.VerifyMinLength)
	c.WindowDays = env.Int("WINDOW_DAYS", c.WindowDays)
	c.WindowLabel = env.Str("WINDOW_LABEL", c.WindowLabel)
	c.OutputFile = env.Str("OUTPUT_FILE", c.OutputFile)
	return c
}

// pageFetcher picks the transport for search and channel pages. The stealth
// client is opt-in; any init failure falls back to plain HTTP.
func pageFetcher(cfg engine.Config) engine.Fetcher {
	if env.Str("FETCH_MODE", "http") != "stealth" {
		return engine.NewHTTPFetcher(cfg.FetchTimeout)
	}

	var opts []stealth.ClientOption
	opts = append(opts, stealth.WithTimeout(int(cfg.FetchTimeout/time.Second)))

	if apiKey := env.Str("WEBSHARE_API_KEY", ""); apiKey != "" {
		pool, err := proxypool.NewWebshare(apiKey)
		if err != nil {
			slog.Warn("proxy pool init failed, running without proxy", slog.Any("error", err))
		} else {
			opts = append(opts, stealth.WithProxyPool(pool))
			slog.Info("proxy pool initialized", slog.Int("proxies", pool.Len()))
		}
	}

	bf, err := engine.NewBrowserFetcher(opts...)
	if err != nil {
		slog.Warn("stealth client init failed, using plain http", slog.Any("error", err))
		return engine.NewHTTPFetcher(cfg.FetchTimeout)
	}
	slog.Info("stealth browser client initialized")
	return bf
}

func initLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
