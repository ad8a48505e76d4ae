package engine

// soEngine queries 360 search (www.so.com) with a one-based page number.
var soEngine = SearchEngine{
	ID:           "so",
	Name:         "360搜索",
	Template:     "https://www.so.com/s?q={query}&pn={offset}",
	TimeFilter:   "&t=1y",
	Paginator:    PageNumber{},
	DateSelector: "cite.sb_csi_date",
}
