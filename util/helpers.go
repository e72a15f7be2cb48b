// Package util provides date, string and package URL helpers shared by the converter.
package util

import (
	"strings"
	"time"

	"github.com/package-url/packageurl-go"
)

// DateLayout is the calendar date format used for expiry dates
const DateLayout = "2006-01-02"

// IsEmpty checks if a string is empty or contains only whitespace
func IsEmpty(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

// IsNotEmpty checks if a string is not empty
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}

// AddMonths adds a whole number of calendar months to a date, clamping the day
// to the last day of the target month (Jan 31 + 1 month -> Feb 28/29).
// The result is normalized to midnight in the input's location.
func AddMonths(date time.Time, months int) time.Time {
	if months == 0 {
		return date
	}

	monthIndex := int(date.Month()) - 1 + months
	year := date.Year() + floorDiv(monthIndex, 12)
	month := time.Month(monthIndex - floorDiv(monthIndex, 12)*12 + 1)

	day := min(date.Day(), DaysIn(year, month))
	return time.Date(year, month, day, 0, 0, 0, 0, date.Location())
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	// day 0 of the following month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatDate renders a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ParsePURL parses a PURL string and returns the parsed PackageURL
func ParsePURL(purlStr string) (*packageurl.PackageURL, error) {
	parsed, err := packageurl.FromString(purlStr)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// PURLType returns the lowercased package type of a PURL (npm, pypi, golang, ...)
func PURLType(purlStr string) (string, error) {
	parsed, err := ParsePURL(purlStr)
	if err != nil {
		return "", err
	}
	return strings.ToLower(parsed.Type), nil
}
