package engine

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all pipeline configuration, injected from main.
type Config struct {
	Keywords        []string
	Engines         []string // engine ids, see LookupEngine
	CrawlPages      int
	SleepTime       time.Duration // fixed pause before every search/channel request
	FetchTimeout    time.Duration
	VerifyTimeout   time.Duration
	VerifyMinLength int
	WindowDays      int
	WindowLabel     string
	Markers         []string // substrings a search-result link must contain
	OutputFile      string
	Remark          string
	Tags            []string
}

// DefaultKeywords are the search queries used when none are configured.
var DefaultKeywords = []string{
	"影视接口站 api.php/provide/vod/ 可用 2026",
	"zyapi 影视资源接口 免费 最新",
	"lziapi caiji 影视接口 有效",
	"影视API 资源站 公开 2026",
	"自动采集 影视接口配置 JSON 可用",
	"最新影视资源站 API 接口 2026",
}

// DefaultMarkers identify links that plausibly point at a video API site.
var DefaultMarkers = []string{"zy", "api", "lzi", "caiji", "cj"}

// DefaultConfig returns the tuned defaults: one-year window, three pages per
// keyword, 1.5s politeness delay and 10s timeouts.
func DefaultConfig() Config {
	return Config{
		Keywords:        append([]string(nil), DefaultKeywords...),
		Engines:         []string{"bing", "baidu", "so", "sogou"},
		CrawlPages:      3,
		SleepTime:       1500 * time.Millisecond,
		FetchTimeout:    10 * time.Second,
		VerifyTimeout:   10 * time.Second,
		VerifyMinLength: 50,
		WindowDays:      365,
		WindowLabel:     "1年内有效",
		Markers:         append([]string(nil), DefaultMarkers...),
		OutputFile:      "movie_api_list.json",
		Remark:          "GitHub Actions自动采集（近1年资源+验活通过）",
		Tags:            []string{"1年内有效", "自动验活", "可用"},
	}
}

// SearchEngines resolves the configured engine ids. Unknown ids are an error.
func (c Config) SearchEngines() ([]SearchEngine, error) {
	out := make([]SearchEngine, 0, len(c.Engines))
	for _, id := range c.Engines {
		e, ok := LookupEngine(strings.TrimSpace(id))
		if !ok {
			return nil, fmt.Errorf("unknown search engine %q", id)
		}
		out = append(out, e)
	}
	return out, nil
}

// LoadKeywords reads one keyword per line. Blank lines and lines starting
// with # are skipped.
func LoadKeywords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open keywords: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read keywords: %w", err)
	}
	return out, nil
}
