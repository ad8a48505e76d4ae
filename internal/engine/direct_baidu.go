package engine

// baiduEngine queries www.baidu.com. pn is a zero-based result offset;
// cr=0_513 limits results to the past year. Baidu renders post dates in a
// grey span instead of a cite element.
var baiduEngine = SearchEngine{
	ID:           "baidu",
	Name:         "百度",
	Template:     "https://www.baidu.com/s?wd={query}&pn={offset}",
	TimeFilter:   "&cr=0_513",
	Paginator:    ResultIndex{PerPage: 10, Base: 0},
	DateSelector: "span.c-color-gray2",
}
