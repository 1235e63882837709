package entity

import (
	"fmt"
	"time"
)

// SeasonName is one of the four calendar seasons.
type SeasonName string

const (
	SeasonSpring SeasonName = "SPRING"
	SeasonSummer SeasonName = "SUMMER"
	SeasonFall   SeasonName = "FALL"
	SeasonWinter SeasonName = "WINTER"
)


// Season partitions time for the one-review-per-season rule.
// Winter spans December through February and carries December's year.
type Season struct {
	Year int
	Name SeasonName
}

// SeasonAt maps an instant to its season in the given location.
// A nil location evaluates the instant in UTC.
func SeasonAt(now time.Time, loc *time.Location) Season {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	year := local.Year()

	switch local.Month() {
	case time.March, time.April, time.May:
		return Season{Year: year, Name: SeasonSpring}
	case time.June, time.July, time.August:
		return Season{Year: year, Name: SeasonSummer}
	case time.September, time.October, time.November:
		return Season{Year: year, Name: SeasonFall}
	case time.December:
		return Season{Year: year, Name: SeasonWinter}
	default:
		// January and February belong to the winter that started last December.
		return Season{Year: year - 1, Name: SeasonWinter}
	}
}

// String renders the season label, e.g. "2026-FALL".
func (s Season) String() string {
	return fmt.Sprintf("%d-%s", s.Year, s.Name)
}
