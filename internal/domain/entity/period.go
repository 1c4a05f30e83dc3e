package entity

import (
	"regexp"
	"strings"
	"time"

	domainerror "github.com/finance-tracker/budget/internal/domain/error"
)

// Period is a YYYY-MM prefix used to filter record dates.
// The zero value, AllTime, matches every record.
type Period string

// AllTime disables period filtering.
const AllTime Period = ""

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Matches reports whether date falls in the period. This is a literal string
// prefix test, so "2024-3" does not match "2024-03-15".
func (p Period) Matches(date string) bool {
	return strings.HasPrefix(date, string(p))
}

// String returns the period as it is matched against dates.
func (p Period) String() string {
	return string(p)
}

// ParsePeriod validates a strict zero-padded YYYY-MM string. An empty string
// yields AllTime. The ledgers never call this; it is meant for outer surfaces.
func ParsePeriod(s string) (Period, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AllTime, nil
	}
	if !periodPattern.MatchString(s) {
		return AllTime, domainerror.ErrInvalidPeriod
	}
	return Period(s), nil
}

// CurrentPeriod returns the period containing now.
func CurrentPeriod(now time.Time) Period {
	return Period(now.Format("2006-01"))
}
