package engine

import "context"

// --- Fetch layer ---

// Fetcher performs a single GET and returns the decoded response.
// Non-200 statuses are not errors; callers decide what a status means.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (*Response, error)
}

// Response is a fetched page with its body decoded to UTF-8.
type Response struct {
	URL         string
	StatusCode  int
	ContentType string // empty when the transport does not expose headers
	Body        string
}

// --- Output types (JSON file) ---

// Site is one verified API entry in the output file.
type Site struct {
	ID          string   `json:"id"`
	Key         string   `json:"key"`
	Name        string   `json:"name"`
	API         string   `json:"api"`
	Type        int      `json:"type"`
	IsActive    int      `json:"isActive"`
	Time        string   `json:"time"`
	IsDefault   int      `json:"isDefault"`
	Remark      string   `json:"remark"`
	Tags        []string `json:"tags"`
	Priority    int      `json:"priority"`
	ProxyMode   string   `json:"proxyMode"`
	CustomProxy string   `json:"customProxy"`
}

// Filters is always written with null members.
type Filters struct {
	Search *string `json:"search"`
	Tags   *string `json:"tags"`
	Status *string `json:"status"`
}

// Export is the top-level document of the output file.
type Export struct {
	Sites      []Site  `json:"sites"`
	ExportTime string  `json:"exportTime"`
	Total      int     `json:"total"`
	Filters    Filters `json:"filters"`
}

// --- Run summary ---

// Report summarises one pipeline run.
type Report struct {
	Channels   int
	Candidates int
	Live       []string
	Stopped    string // non-empty when a stage came back empty
}
