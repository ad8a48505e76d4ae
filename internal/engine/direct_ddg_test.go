package engine

import "testing"

func TestDDGUnwrapURL(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"//duckduckgo.com/l/?uddg=https%3A%2F%2Fexample.com&rut=abc", "https://example.com"},
		{"https://example.com/direct", "https://example.com/direct"},
		{"", ""},
		{"/relative/path", ""},
	}

	for _, tt := range tests {
		got := ddgUnwrapURL(tt.input)
		if got != tt.want {
			t.Errorf("ddgUnwrapURL(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseDDGResults(t *testing.T) {
	html := `<html><body>
		<div class="result">
			<a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fzy.example.com%2Fpage1&rut=abc">First Result</a>
			<a class="result__snippet">First description.</a>
		</div>
		<div class="result">
			<a class="result__a" href="https://example.org/direct">Direct URL</a>
		</div>
		<div class="result">
			<a class="result__a" href="/relative">Dropped</a>
		</div>
	</body></html>`

	links, dates, err := ddgEngine.ParseResults(html)
	if err != nil {
		t.Fatalf("ParseResults() error = %v", err)
	}
	if len(dates) != 0 {
		t.Errorf("expected no dates from ddg lite page, got %v", dates)
	}
	want := []string{"https://zy.example.com/page1", "https://example.org/direct"}
	if len(links) != len(want) {
		t.Fatalf("ParseResults() returned %d links, want %d: %v", len(links), len(want), links)
	}
	for i := range want {
		if links[i] != want[i] {
			t.Errorf("links[%d] = %q, want %q", i, links[i], want[i])
		}
	}
}
