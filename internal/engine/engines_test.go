package engine

import (
	"strings"
	"testing"
)

func TestPaginators(t *testing.T) {
	tests := []struct {
		engine string
		want   []int // offsets for pages 1..3
	}{
		{"bing", []int{1, 11, 21}},
		{"baidu", []int{0, 10, 20}},
		{"so", []int{1, 2, 3}},
		{"sogou", []int{1, 2, 3}},
		{"ddg", []int{0, 30, 60}},
	}
	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			e, ok := LookupEngine(tt.engine)
			if !ok {
				t.Fatalf("engine %q not registered", tt.engine)
			}
			for i, want := range tt.want {
				if got := e.Paginator.Offset(i + 1); got != want {
					t.Errorf("page %d offset = %d, want %d", i+1, got, want)
				}
			}
		})
	}
}

func TestEngineIDs(t *testing.T) {
	got := strings.Join(EngineIDs(), ",")
	if got != "baidu,bing,ddg,so,sogou" {
		t.Errorf("EngineIDs() = %q", got)
	}
}

func TestQueryURL(t *testing.T) {
	tests := []struct {
		engine  string
		keyword string
		page    int
		want    string
	}{
		{"bing", "zyapi 接口", 2, `https://cn.bing.com/search?q=zyapi%20%E6%8E%A5%E5%8F%A3&first=11&filters=ex1:"ez7"`},
		{"baidu", "lziapi", 1, "https://www.baidu.com/s?wd=lziapi&pn=0&cr=0_513"},
		{"so", "a&b", 3, "https://www.so.com/s?q=a%26b&pn=3&t=1y"},
		{"sogou", "caiji", 1, "https://fanyi.sogou.com/websearch/searchList.jsp?query=caiji&page=1&stime=1y"},
	}
	for _, tt := range tests {
		t.Run(tt.engine, func(t *testing.T) {
			e, _ := LookupEngine(tt.engine)
			if got := e.QueryURL(tt.keyword, tt.page); got != tt.want {
				t.Errorf("QueryURL() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEscapeKeyword(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"hello world", "hello%20world"},
		{"a+b", "a%2Bb"},
		{"api.php/provide/vod/", "api.php%2Fprovide%2Fvod%2F"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := escapeKeyword(tt.input); got != tt.want {
			t.Errorf("escapeKeyword(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseResultsBing(t *testing.T) {
	html := `<html><body>
		<li><a href="https://zy.example.com/a" target="_blank">A</a><cite class="sb_csi_date">2026-09-01</cite></li>
		<li><a href="https://api.example.net/b" target="_blank">B</a><cite class="sb_csi_date">昨天</cite></li>
		<li><a href="https://plain.example.org/c">no target</a></li>
		<li><a href="/relative" target="_blank">relative</a></li>
		<li><a target="_blank" href="https://cj.example.io/d">attr order</a></li>
	</body></html>`

	links, dates, err := bingEngine.ParseResults(html)
	if err != nil {
		t.Fatalf("ParseResults() error = %v", err)
	}
	wantLinks := []string{"https://zy.example.com/a", "https://api.example.net/b", "https://cj.example.io/d"}
	if strings.Join(links, " ") != strings.Join(wantLinks, " ") {
		t.Errorf("links = %v, want %v", links, wantLinks)
	}
	if len(dates) != 1 || dates[0] != "2026-09-01" {
		t.Errorf("dates = %v, want [2026-09-01]", dates)
	}
}

func TestParseResultsBaiduDates(t *testing.T) {
	html := `<div>
		<a href="https://zy.example.com/" target="_blank">x</a>
		<span class="c-color-gray2">2025/12/24</span>
		<cite class="sb_csi_date">2020-01-01</cite>
	</div>`

	_, dates, err := baiduEngine.ParseResults(html)
	if err != nil {
		t.Fatalf("ParseResults() error = %v", err)
	}
	if len(dates) != 1 || dates[0] != "2025/12/24" {
		t.Errorf("dates = %v, want [2025/12/24]", dates)
	}
}

func TestParseResultsEmpty(t *testing.T) {
	links, dates, err := soEngine.ParseResults("")
	if err != nil {
		t.Fatalf("ParseResults() error = %v", err)
	}
	if len(links) != 0 || len(dates) != 0 {
		t.Errorf("expected nothing from empty page, got %v %v", links, dates)
	}
}
