package slots

import "time"

// Grid boundaries for the daily slot grid. Both ends are inclusive.
const (
	gridStartHour   = 9
	gridEndHour     = 21
	gridIntervalMin = 15
)

// DefaultDaysAhead is the rolling window of offerable dates.
const DefaultDaysAhead = 30

// Generator produces the universe of offerable slots and dates. The clock
// is injectable so tests can pin a reference date.
type Generator struct {
	now func() time.Time
}

// NewGenerator returns a Generator on the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock returns a Generator on a fixed clock for tests.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

// Times enumerates every 15-minute boundary from 09:00 through 21:00
// inclusive, rendered 12-hour with leading zeros ("09:00 AM" ... "09:00 PM").
// Pure function of the grid constants; identical on every call.
func Times() []string {
	start := time.Date(0, time.January, 1, gridStartHour, 0, 0, 0, time.UTC)
	end := time.Date(0, time.January, 1, gridEndHour, 0, 0, 0, time.UTC)

	var out []string
	for t := start; !t.After(end); t = t.Add(gridIntervalMin * time.Minute) {
		out = append(out, t.Format("03:04 PM"))
	}
	return out
}

// Dates returns daysAhead consecutive YYYY-MM-DD strings starting at the
// current local calendar date, inclusive. daysAhead values below one fall
// back to the default 30-day window.
func (g *Generator) Dates(daysAhead int) []string {
	if daysAhead < 1 {
		daysAhead = DefaultDaysAhead
	}
	today := g.now()
	out := make([]string, 0, daysAhead)
	for i := 0; i < daysAhead; i++ {
		out = append(out, today.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return out
}

// FilterBooked returns all minus booked, preserving the order of all.
func FilterBooked(all, booked []string) []string {
	taken := make(map[string]struct{}, len(booked))
	for _, s := range booked {
		taken[s] = struct{}{}
	}
	out := make([]string, 0, len(all))
	for _, s := range all {
		if _, ok := taken[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}
