package entity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeasonAt_MonthRanges(t *testing.T) {
	tests := []struct {
		name  string
		month time.Month
		year  int
		want  Season
	}{
		{name: "january belongs to previous winter", month: time.January, year: 2027, want: Season{Year: 2026, Name: SeasonWinter}},
		{name: "february belongs to previous winter", month: time.February, year: 2027, want: Season{Year: 2026, Name: SeasonWinter}},
		{name: "march", month: time.March, year: 2026, want: Season{Year: 2026, Name: SeasonSpring}},
		{name: "may", month: time.May, year: 2026, want: Season{Year: 2026, Name: SeasonSpring}},
		{name: "june", month: time.June, year: 2026, want: Season{Year: 2026, Name: SeasonSummer}},
		{name: "august", month: time.August, year: 2026, want: Season{Year: 2026, Name: SeasonSummer}},
		{name: "september", month: time.September, year: 2026, want: Season{Year: 2026, Name: SeasonFall}},
		{name: "november", month: time.November, year: 2026, want: Season{Year: 2026, Name: SeasonFall}},
		{name: "december starts winter", month: time.December, year: 2026, want: Season{Year: 2026, Name: SeasonWinter}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := time.Date(tt.year, tt.month, 15, 12, 0, 0, 0, time.UTC)
			assert.Equal(t, tt.want, SeasonAt(now, time.UTC))
		})
	}
}

func TestSeasonAt_EveryDayMapsToOneSeason(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day := start; day.Year() < 2027; day = day.AddDate(0, 0, 1) {
		season := SeasonAt(day, time.UTC)
		assert.Contains(t, []SeasonName{SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter}, season.Name)
		assert.Equal(t, fmt.Sprintf("%d-%s", season.Year, season.Name), season.String())
		assert.Contains(t, []int{day.Year(), day.Year() - 1}, season.Year)
	}
}

func TestSeasonAt_UsesLocation(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)

	// 2026-05-31 20:00 UTC is already June 1st in Seoul.
	instant := time.Date(2026, time.May, 31, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, Season{Year: 2026, Name: SeasonSpring}, SeasonAt(instant, time.UTC))
	assert.Equal(t, Season{Year: 2026, Name: SeasonSummer}, SeasonAt(instant, seoul))
}

func TestSeasonAt_NilLocationIsUTC(t *testing.T) {
	instant := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, SeasonAt(instant, time.UTC), SeasonAt(instant, nil))
}

func TestSeason_String(t *testing.T) {
	assert.Equal(t, "2026-FALL", Season{Year: 2026, Name: SeasonFall}.String())
}
