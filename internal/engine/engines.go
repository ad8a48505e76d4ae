package engine

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Paginator maps a one-based page number to the engine's offset parameter.
type Paginator interface {
	Offset(page int) int
}

// ResultIndex paginates by result position: (page-1)*PerPage + Base.
// Base 1 gives a first-result index (1, 11, 21), Base 0 a zero-based offset.
type ResultIndex struct {
	PerPage int
	Base    int
}

func (p ResultIndex) Offset(page int) int { return (page-1)*p.PerPage + p.Base }

// PageNumber passes the one-based page number through unchanged.
type PageNumber struct{}

func (PageNumber) Offset(page int) int { return page }

// SearchEngine describes how to query one engine and read its result page.
type SearchEngine struct {
	ID           string
	Name         string
	Template     string // must contain {query} and {offset}
	TimeFilter   string // appended verbatim after the template
	Paginator    Paginator
	DateSelector string              // elements whose text is a post date
	LinkSelector string              // defaults to genericLinkSelector
	Unwrap       func(string) string // optional redirect unwrapping
}

// genericLinkSelector matches the anchor shape result pages use for outbound links.
const genericLinkSelector = "a[target=_blank][href]"

var engineRegistry = map[string]SearchEngine{
	bingEngine.ID:  bingEngine,
	baiduEngine.ID: baiduEngine,
	soEngine.ID:    soEngine,
	sogouEngine.ID: sogouEngine,
	ddgEngine.ID:   ddgEngine,
}

// LookupEngine returns the registered engine with the given id.
func LookupEngine(id string) (SearchEngine, bool) {
	e, ok := engineRegistry[id]
	return e, ok
}

// EngineIDs lists registered engine ids in sorted order.
func EngineIDs() []string {
	ids := make([]string, 0, len(engineRegistry))
	for id := range engineRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// QueryURL builds the request URL for keyword and page (one-based).
func (e SearchEngine) QueryURL(keyword string, page int) string {
	offset := page
	if e.Paginator != nil {
		offset = e.Paginator.Offset(page)
	}
	r := strings.NewReplacer(
		"{query}", escapeKeyword(keyword),
		"{offset}", strconv.Itoa(offset),
	)
	return r.Replace(e.Template) + e.TimeFilter
}

// escapeKeyword percent-encodes a keyword for a query string, spaces as %20.
func escapeKeyword(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

var dateTextRe = regexp.MustCompile(`^[\d\-/.]+$`)

// ParseResults extracts post dates and outbound links from a result page.
// The two slices are aligned by position only; the Nth date is assumed to
// belong to the Nth link.
func (e SearchEngine) ParseResults(body string) (links, dates []string, err error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("goquery parse: %w", err)
	}

	if e.DateSelector != "" {
		doc.Find(e.DateSelector).Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if dateTextRe.MatchString(text) {
				dates = append(dates, text)
			}
		})
	}

	sel := e.LinkSelector
	if sel == "" {
		sel = genericLinkSelector
	}
	doc.Find(sel).Each(func(i int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if e.Unwrap != nil {
			href = e.Unwrap(href)
		}
		href = strings.TrimSpace(href)
		if !strings.HasPrefix(href, "http://") && !strings.HasPrefix(href, "https://") {
			return
		}
		if strings.ContainsAny(href, " \t\r\n\"") {
			return
		}
		links = append(links, href)
	})

	return links, dates, nil
}
