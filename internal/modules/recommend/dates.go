// README: Travel date optimization: score candidate start dates against the
// destination's best seasons.
package recommend

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"travelbuddy/internal/modules/catalog"
)

// seasonMonths maps a season name to northern-hemisphere months. Seed data
// with an explicit month range (e.g. "dry season (Apr-Oct)") overrides this.
var seasonMonths = map[string][]time.Month{
	"spring":       {time.March, time.April, time.May},
	"early summer": {time.June},
	"summer":       {time.June, time.July, time.August},
	"fall":         {time.September, time.October, time.November},
	"autumn":       {time.September, time.October, time.November},
	"winter":       {time.December, time.January, time.February},
}

var monthRangeRe = regexp.MustCompile(`\(([A-Za-z]{3})-([A-Za-z]{3})\)`)

var monthAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// bestMonths expands a destination's BestSeasons entries into a month set.
func bestMonths(d catalog.Destination) map[time.Month]bool {
	months := make(map[time.Month]bool)
	for _, season := range d.BestSeasons {
		if m := monthRangeRe.FindStringSubmatch(season); m != nil {
			from, okFrom := monthAbbrev[strings.ToLower(m[1])]
			to, okTo := monthAbbrev[strings.ToLower(m[2])]
			if okFrom && okTo {
				for mo := from; ; mo = mo%12 + 1 {
					months[mo] = true
					if mo == to {
						break
					}
				}
				continue
			}
		}
		key := strings.ToLower(strings.TrimSpace(season))
		// strip qualifiers like "cool season (...)" down to a known name
		for name, ms := range seasonMonths {
			if strings.HasPrefix(key, name) {
				for _, mo := range ms {
					months[mo] = true
				}
			}
		}
	}
	return months
}

const weekendStartBonus = 0.1

// OptimizeDates scores every possible start date in [windowStart, windowEnd]
// for a stay of durationDays and returns the options best-season-first.
// Scores are the fraction of trip days falling in a best-season month, plus
// a small bonus for Friday/Saturday departures.
func (s *Service) OptimizeDates(destinationName string, windowStart, windowEnd time.Time, durationDays int) ([]DateOption, error) {
	if durationDays < 1 {
		return nil, ErrBadRequest
	}
	if windowEnd.Before(windowStart) {
		return nil, ErrBadRequest
	}
	dest, err := s.catalog.GetDestinationByName(destinationName)
	if err != nil {
		return nil, ErrUnknownDestination
	}

	months := bestMonths(dest)
	var options []DateOption
	for start := windowStart; !start.After(windowEnd); start = start.AddDate(0, 0, 1) {
		end := start.AddDate(0, 0, durationDays)

		inSeason := 0
		for day := 0; day < durationDays; day++ {
			if months[start.AddDate(0, 0, day).Month()] {
				inSeason++
			}
		}
		score := float64(inSeason) / float64(durationDays)

		reason := fmt.Sprintf("%d of %d days in %s's best season", inSeason, durationDays, dest.Name)
		if wd := start.Weekday(); wd == time.Friday || wd == time.Saturday {
			score += weekendStartBonus
			reason += "; weekend departure"
		}

		options = append(options, DateOption{
			StartDate: start,
			EndDate:   end,
			Score:     score,
			Reason:    reason,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})
	return options, nil
}
