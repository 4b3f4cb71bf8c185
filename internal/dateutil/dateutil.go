// Package dateutil parses and formats résumé date values.
//
// Résumé dates are calendar values, not instants: "2021-03-15" means
// March 2021 in every timezone. All parsing therefore happens in UTC so
// that a host configured with a negative UTC offset can never roll a
// date-only value back into the previous month.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a date value that matches none of the accepted layouts.
var ErrInvalidDate = errors.New("invalid date value")

// PresentLabel is rendered for an absent end date.
const PresentLabel = "Present"

// acceptedLayouts are tried in order. All are date-only; none carry a zone.
var acceptedLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
}

// Parse converts a date-only string into a time.Time anchored in UTC.
// Accepted forms: YYYY-MM-DD, YYYY-MM, YYYY.
// Returns ErrInvalidDate for anything else, including RFC 3339 timestamps.
func Parse(value string) (time.Time, error) {
	t, _, err := parse(value)
	return t, err
}

// parse additionally reports which layout matched, so formatting can
// preserve the value's precision.
func parse(value string) (time.Time, string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, "", fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	for _, layout := range acceptedLayouts {
		// time.Parse without a zone designator yields UTC, which is exactly
		// the behavior we need: no implicit shift through time.Local.
		if t, err := time.Parse(layout, v); err == nil {
			return t, layout, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// FormatMonthYear renders a date value as a long-form month and year,
// e.g. "March 2021". A year-only value renders as the bare year, keeping
// the stated precision. Unparseable values pass through unchanged so that
// a free-form period string ("Summer 2019") still renders.
func FormatMonthYear(value string) string {
	t, layout, err := parse(value)
	if err != nil {
		return value
	}
	if layout == "2006" {
		return t.UTC().Format("2006")
	}
	return t.UTC().Format("January 2006")
}

// FormatRange renders a start/end pair as "March 2021 - June 2023".
// An empty end date renders the ongoing sentinel: "March 2021 - Present".
// An empty start date renders only the end portion.
func FormatRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case start == "":
		return FormatMonthYear(end)
	case end == "":
		return FormatMonthYear(start) + " - " + PresentLabel
	default:
		return FormatMonthYear(start) + " - " + FormatMonthYear(end)
	}
}
