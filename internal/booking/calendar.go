package booking

import (
	"fmt"
	"time"
)

const dayKeyLayout = "2006-01-02"

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using the system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Day is a single calendar day, independent of time zone and clock time.
type Day struct {
	Year       int
	Month      time.Month
	DayOfMonth int
}

// DayOf truncates a time to its calendar day.
func DayOf(t time.Time) Day {
	return Day{Year: t.Year(), Month: t.Month(), DayOfMonth: t.Day()}
}

// ParseDay parses a day key in "2006-01-02" form.
func ParseDay(value string) (Day, error) {
	t, err := time.Parse(dayKeyLayout, value)
	if err != nil {
		return Day{}, fmt.Errorf("invalid day %q: %w", value, err)
	}
	return DayOf(t), nil
}

// Key renders the day in "2006-01-02" form.
func (d Day) Key() string {
	return d.time().Format(dayKeyLayout)
}

// Format renders the day with the given time layout.
func (d Day) Format(layout string) string {
	return d.time().Format(layout)
}

// Weekday reports the day of the week.
func (d Day) Weekday() time.Weekday {
	return d.time().Weekday()
}

// IsWeekend reports whether the day falls on Saturday or Sunday.
func (d Day) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Before reports whether d is strictly before other.
func (d Day) Before(other Day) bool {
	return d.time().Before(other.time())
}

func (d Day) time() time.Time {
	return time.Date(d.Year, d.Month, d.DayOfMonth, 0, 0, 0, 0, time.UTC)
}

// Blocklist reports days the studio cannot offer. Implementations must be
// safe for concurrent readers; the booking core never mutates them.
type Blocklist interface {
	IsBlocked(day Day) bool
}

// StaticBlocklist is a fixed, in-memory Blocklist.
type StaticBlocklist map[string]struct{}

// NewStaticBlocklist builds a blocklist from day keys.
func NewStaticBlocklist(keys ...string) StaticBlocklist {
	list := make(StaticBlocklist, len(keys))
	for _, key := range keys {
		list[key] = struct{}{}
	}
	return list
}

func (b StaticBlocklist) IsBlocked(day Day) bool {
	_, blocked := b[day.Key()]
	return blocked
}

// DayCell is one selectable cell in a rendered month.
type DayCell struct {
	Day         Day
	Selected    bool
	Unavailable bool
	Past        bool
	Weekend     bool
}

// Selectable reports whether the cell accepts a toggle.
func (c DayCell) Selectable() bool {
	return !c.Unavailable && !c.Past
}

// MonthView is the derived read model for one displayed month. It is
// recomputed on every render and never mutated.
type MonthView struct {
	Year  int
	Month time.Month
	// LeadingBlanks is the number of empty cells before day 1 in a
	// Sunday-first grid.
	LeadingBlanks int
	Cells         []DayCell
}

// NewMonthView classifies every day of the month against the blocklist,
// the current selection, and today.
func NewMonthView(year int, month time.Month, selected []Day, blocked Blocklist, today Day) MonthView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	selectedKeys := make(map[string]struct{}, len(selected))
	for _, day := range selected {
		selectedKeys[day.Key()] = struct{}{}
	}

	view := MonthView{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Cells:         make([]DayCell, 0, daysInMonth),
	}
	for dom := 1; dom <= daysInMonth; dom++ {
		day := Day{Year: year, Month: month, DayOfMonth: dom}
		_, isSelected := selectedKeys[day.Key()]
		view.Cells = append(view.Cells, DayCell{
			Day:         day,
			Selected:    isSelected,
			Unavailable: blocked != nil && blocked.IsBlocked(day),
			Past:        day.Before(today),
			Weekend:     day.IsWeekend(),
		})
	}
	return view
}

// Title renders the month heading, e.g. "February 2026".
func (v MonthView) Title() string {
	return fmt.Sprintf("%s %d", v.Month.String(), v.Year)
}

// shiftMonth moves a year+month pair by delta months in either direction.
func shiftMonth(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}
