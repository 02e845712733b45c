package cleanup

import (
	"regexp"
	"strconv"
	"time"
)

// datePatterns are tried in priority order: the hyphenated shape first, then
// the compact shape. Each may match anywhere in the filename.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})`), // report-2025-11-07.html
	regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`),   // picks_xxx_20250907.json
}

// ExtractDate derives a calendar date from a filename, or reports that none
// exists. When a shape matches more than once, the last (rightmost)
// occurrence wins; filenames with multiple embedded numbers favor the
// trailing one, which is typically the creation date suffix.
//
// Once a shape has matched syntactically, its rightmost occurrence is final:
// if the digits do not form a valid calendar date, ExtractDate reports no
// date without trying the remaining shape.
func ExtractDate(filename string) (time.Time, bool) {
	for _, pattern := range datePatterns {
		matches := pattern.FindAllStringSubmatch(filename, -1)
		if len(matches) == 0 {
			continue
		}
		groups := matches[len(matches)-1]
		year, _ := strconv.Atoi(groups[1])
		month, _ := strconv.Atoi(groups[2])
		day, _ := strconv.Atoi(groups[3])
		return makeDate(year, month, day)
	}
	return time.Time{}, false
}

// makeDate builds a UTC midnight date and rejects components that do not
// form a real calendar date. time.Date normalizes out-of-range components
// (month 13 rolls into January), so the result is compared back against the
// inputs.
func makeDate(year, month, day int) (time.Time, bool) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}
