// README: Packing list types.
package packing

import (
	"time"
)

// Trip is everything the rule engine needs to know about the journey.
type Trip struct {
	Destination string
	Climate     string // overrides the catalog climate when set
	StartDate   time.Time
	EndDate     time.Time
	Activities  []string // interest categories
}

// DurationDays is the trip length in days.
func (t Trip) DurationDays() int {
	d := int(t.EndDate.Sub(t.StartDate).Hours() / 24)
	if d < 1 {
		d = 1
	}
	return d
}

// List groups packing suggestions. Essentials are always present; the other
// groups depend on climate, season, trip length, and planned activities.
type List struct {
	Essentials  []string
	Clothing    []string
	Gear        []string
	HealthCare  []string
	Extras      []string
	Notes       []string
	AIGenerated bool
}

// Items flattens every group in display order.
func (l List) Items() []string {
	var out []string
	for _, group := range [][]string{l.Essentials, l.Clothing, l.Gear, l.HealthCare, l.Extras} {
		out = append(out, group...)
	}
	return out
}
