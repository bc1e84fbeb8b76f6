// Package dateutil provides region-aware date parsing and financial-year
// derivation shared by the CSV importer and the reporting services.
package dateutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Region identifies the operator's configured region. It controls day/month
// ordering when parsing slash-separated dates and the financial-year period.
type Region string

// Supported regions. Unknown regions fall back to ISO parsing and the
// Australian financial-year convention.
const (
	Australia  Region = "australia"
	NewZealand Region = "new_zealand"
	UK         Region = "uk"
	USA        Region = "usa"
	Canada     Region = "canada"
)

// ParseResult is the tagged outcome of a date normalization. Defaulted marks
// values substituted on total parse failure so callers can distinguish
// genuine dates from the today-fallback instead of losing that information.
type ParseResult struct {
	Date      time.Time
	Defaulted bool
	Original  string
}

var datePartsPattern = regexp.MustCompile(`^(\d{1,4})[/\-](\d{1,2})[/\-](\d{1,4})$`)

// ParseRegionalDate parses a date string per the region's day/month ordering:
// day-first for Australia, UK, and New Zealand; month-first for USA and
// Canada; ISO and common layouts otherwise. On total failure it defaults to
// now's date and tags the result as defaulted.
func ParseRegionalDate(s string, region Region, now time.Time) ParseResult {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ParseResult{Date: dateOnly(now), Defaulted: true, Original: s}
	}

	if m := datePartsPattern.FindStringSubmatch(trimmed); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])
		third, _ := strconv.Atoi(m[3])

		var day, month, year int
		switch region {
		case Australia, UK, NewZealand:
			day, month, year = first, second, third
		case USA, Canada:
			month, day, year = first, second, third
		default:
			// ISO-ordered numeric dates (2024/03/05) for unknown regions.
			year, month, day = first, second, third
		}

		if year >= 1000 && month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return ParseResult{
				Date:     time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
				Original: s,
			}
		}
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339, "2 Jan 2006", "2-Jan-2006"} {
		if d, err := time.Parse(layout, trimmed); err == nil {
			return ParseResult{Date: dateOnly(d), Original: s}
		}
	}

	return ParseResult{Date: dateOnly(now), Defaulted: true, Original: s}
}

// FinancialYearForDate derives the financial-year label (e.g. "2024-25") a
// date falls into, per the region's convention: Australia July 1, New
// Zealand April 1, UK April 6, USA October 1, Canada the calendar year.
func FinancialYearForDate(date time.Time, region Region) string {
	year := date.Year()
	month := date.Month()

	switch region {
	case NewZealand:
		if month >= time.April {
			return fyLabel(year)
		}
		return fyLabel(year - 1)
	case UK:
		if month > time.April || (month == time.April && date.Day() >= 6) {
			return fyLabel(year)
		}
		return fyLabel(year - 1)
	case USA:
		if month >= time.October {
			return fyLabel(year)
		}
		return fyLabel(year - 1)
	case Canada:
		return fmt.Sprintf("%d-%02d", year, year%100)
	default:
		// Australian July-June convention, also the fallback.
		if month >= time.July {
			return fyLabel(year)
		}
		return fyLabel(year - 1)
	}
}

// CurrentFinancialYear returns the financial-year label containing now.
func CurrentFinancialYear(region Region, now time.Time) string {
	return FinancialYearForDate(now, region)
}

// FinancialYearOptions returns the current financial year plus the previous
// count-1 years, newest first, for populating filter dropdowns.
func FinancialYearOptions(region Region, now time.Time, count int) []string {
	options := make([]string, 0, count)
	startYear := fyStartYear(now, region)
	for i := 0; i < count; i++ {
		year := startYear - i
		if region == Canada {
			options = append(options, fmt.Sprintf("%d-%02d", year, year%100))
		} else {
			options = append(options, fyLabel(year))
		}
	}
	return options
}

func fyStartYear(now time.Time, region Region) int {
	year := now.Year()
	month := now.Month()
	switch region {
	case NewZealand:
		if month < time.April {
			year--
		}
	case UK:
		if month < time.April || (month == time.April && now.Day() < 6) {
			year--
		}
	case USA:
		if month < time.October {
			year--
		}
	case Canada:
	default:
		if month < time.July {
			year--
		}
	}
	return year
}

func fyLabel(startYear int) string {
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
