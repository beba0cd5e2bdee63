package scraper

import (
	"bytes"
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jbrasil/fishplants/internal/plants"
)

// ErrTableNotFound signals a page without a schedule table; the view
// layer renders it as a user-visible message.
var ErrTableNotFound = errors.New("fish planting table not found")

// parseScheduleTable extracts stocking events for one county from the
// first table of the page. Rows are kept only when the county query is
// a case-insensitive substring of the county cell; rows with an empty
// water name or an unparseable start date are dropped, matching the
// upstream page's tolerance for occasional malformed rows.
func parseScheduleTable(body []byte, countyQuery string) ([]plants.StockingEvent, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	var events []plants.StockingEvent
	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return // header row
		}
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		water := leadingText(cells.Eq(1))
		if water == "" {
			return
		}
		if !plants.MatchesCounty(cellText(cells.Eq(2)), countyQuery) {
			return
		}

		ev, err := plants.ParseRow(cellText(cells.Eq(0)), water, cellText(cells.Eq(3)))
		if err != nil {
			return
		}
		events = append(events, ev)
	})
	return events, nil
}

// countyColumn collects the raw text of the third cell of every data
// row, for the county list provider to normalize.
func countyColumn(body []byte) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var counties []string
	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}
		if text := cellText(cells.Eq(2)); text != "" {
			counties = append(counties, text)
		}
	})
	return counties, nil
}

// leadingText returns a cell's text content up to, but not including,
// its first anchor element. The water-name cell often carries a
// trailing hatchery link whose text must not bleed into the name.
func leadingText(cell *goquery.Selection) string {
	if len(cell.Nodes) == 0 {
		return ""
	}
	var b strings.Builder
	for n := cell.Nodes[0].FirstChild; n != nil; n = n.NextSibling {
		switch {
		case n.Type == html.TextNode:
			b.WriteString(strings.TrimSpace(n.Data))
		case n.Type == html.ElementNode && n.Data == "a":
			return strings.TrimSpace(b.String())
		}
	}
	return strings.TrimSpace(b.String())
}

func cellText(cell *goquery.Selection) string {
	return strings.TrimSpace(cell.Text())
}
