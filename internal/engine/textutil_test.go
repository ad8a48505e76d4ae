package engine

import "testing"

func TestContainsAny(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"https://zy.example.com/", true},
		{"https://www.lziapi.com/", true},
		{"https://caiji.site/", true},
		{"https://example.com/", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ContainsAny(tt.s, DefaultMarkers); got != tt.want {
			t.Errorf("ContainsAny(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
	if ContainsAny("anything", []string{""}) {
		t.Error("empty marker must not match")
	}
}

func TestPreview(t *testing.T) {
	short := "https://zy.a.com/"
	if got := Preview(short); got != short {
		t.Errorf("Preview(%q) = %q", short, got)
	}
	long := "https://zy.example.com/channels/list/page/2"
	if got := Preview(long); len(got) >= len(long) {
		t.Errorf("Preview did not shorten %q: %q", long, got)
	}
}
