package engine

// sogouEngine queries Sogou web search with a one-based page number.
var sogouEngine = SearchEngine{
	ID:           "sogou",
	Name:         "搜狗搜索",
	Template:     "https://fanyi.sogou.com/websearch/searchList.jsp?query={query}&page={offset}",
	TimeFilter:   "&stime=1y",
	Paginator:    PageNumber{},
	DateSelector: "cite.sb_csi_date",
}
