package engine

// bingEngine queries cn.bing.com. "first" is the index of the first result
// on the page; ez7 restricts results to the past year.
var bingEngine = SearchEngine{
	ID:           "bing",
	Name:         "必应",
	Template:     "https://cn.bing.com/search?q={query}&first={offset}",
	TimeFilter:   `&filters=ex1:"ez7"`,
	Paginator:    ResultIndex{PerPage: 10, Base: 1},
	DateSelector: "cite.sb_csi_date",
}
