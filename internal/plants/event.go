// Package plants holds the fish-planting domain model and the pure
// parsing/grouping logic over scraped schedule rows.
package plants

import (
	"errors"
	"strings"
	"time"
)

// StockingEvent is a single fish-planting record for a water body.
// Date is the calendar date parsed from the first token of Week and is
// always valid; rows with unparseable dates never become events.
type StockingEvent struct {
	Water   string
	Date    time.Time
	Week    string
	Species string
}

// WaterBodyResult pairs the most recent past event with the nearest
// future event for one water body. Either side may be nil.
type WaterBodyResult struct {
	Recent   *StockingEvent
	Upcoming *StockingEvent
}

// ErrNoDate reports a week label whose first token is not a
// month/day/year date.
var ErrNoDate = errors.New("week label has no parseable start date")

const dateLayout = "01/02/2006"

// ParseStartDate extracts the start date from a week label. Labels may
// be a single date or a range; the token before " - " (preferred) or
// "-" is parsed as month/day/4-digit-year.
func ParseStartDate(week string) (time.Time, error) {
	token := week
	if idx := strings.Index(week, " - "); idx >= 0 {
		token = week[:idx]
	} else if idx := strings.Index(week, "-"); idx >= 0 {
		token = week[:idx]
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(token))
	if err != nil {
		return time.Time{}, ErrNoDate
	}
	return t, nil
}

// ParseRow builds a StockingEvent from raw cell texts. It mirrors the
// leniency of the upstream page: an empty water name or an unparseable
// date yields ErrNoDate-style rejection rather than a partial event.
func ParseRow(week, water, species string) (StockingEvent, error) {
	water = strings.TrimSpace(water)
	if water == "" {
		return StockingEvent{}, errors.New("empty water name")
	}
	date, err := ParseStartDate(week)
	if err != nil {
		return StockingEvent{}, err
	}
	return StockingEvent{
		Water:   water,
		Date:    date,
		Week:    week,
		Species: strings.TrimSpace(species),
	}, nil
}

// MatchesCounty reports whether a county cell satisfies a user query.
// The match is a case-insensitive substring test, not equality: the
// query "fresno" matches both "Fresno County" and "North Fresno". The
// looseness is inherited upstream behavior and is kept deliberately.
func MatchesCounty(countyCell, query string) bool {
	return strings.Contains(strings.ToLower(countyCell), strings.ToLower(query))
}
