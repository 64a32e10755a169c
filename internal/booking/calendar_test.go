package booking

import (
	"testing"
	"time"
)

// fixedClock pins time-dependent behavior for tests.
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func mustDay(t *testing.T, key string) Day {
	t.Helper()
	day, err := ParseDay(key)
	if err != nil {
		t.Fatalf("parse day %q: %v", key, err)
	}
	return day
}

func TestParseDayRoundTrip(t *testing.T) {
	day, err := ParseDay("2026-02-07")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if day.Year != 2026 || day.Month != time.February || day.DayOfMonth != 7 {
		t.Fatalf("day: %+v", day)
	}
	if day.Key() != "2026-02-07" {
		t.Fatalf("key: %s", day.Key())
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "tomorrow", "2026-13-01", "07/02/2026"} {
		if _, err := ParseDay(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestDayBeforeAndWeekend(t *testing.T) {
	sat := mustDay(t, "2026-02-07")
	sun := mustDay(t, "2026-02-08")
	mon := mustDay(t, "2026-02-09")

	if !sat.IsWeekend() || !sun.IsWeekend() {
		t.Fatal("expected weekend days")
	}
	if mon.IsWeekend() {
		t.Fatal("monday is not a weekend")
	}
	if !sat.Before(sun) || sun.Before(sat) {
		t.Fatal("ordering broken")
	}
	if sat.Before(sat) {
		t.Fatal("a day is not before itself")
	}
}

func TestNewMonthViewFebruary2026(t *testing.T) {
	today := mustDay(t, "2026-02-05")
	blocked := NewStaticBlocklist("2026-02-10", "2026-02-14")
	selected := []Day{mustDay(t, "2026-02-12")}

	view := NewMonthView(2026, time.February, selected, blocked, today)

	// February 2026 starts on a Sunday.
	if view.LeadingBlanks != 0 {
		t.Fatalf("leading blanks: %d", view.LeadingBlanks)
	}
	if len(view.Cells) != 28 {
		t.Fatalf("cells: %d", len(view.Cells))
	}
	if view.Title() != "February 2026" {
		t.Fatalf("title: %s", view.Title())
	}

	byDay := make(map[int]DayCell, len(view.Cells))
	for _, cell := range view.Cells {
		byDay[cell.Day.DayOfMonth] = cell
	}

	if !byDay[4].Past {
		t.Fatal("feb 4 should be past")
	}
	if byDay[5].Past {
		t.Fatal("today is not past")
	}
	if !byDay[10].Unavailable || !byDay[14].Unavailable {
		t.Fatal("blocked days should be unavailable")
	}
	if byDay[10].Selectable() {
		t.Fatal("unavailable day must not be selectable")
	}
	if !byDay[12].Selected {
		t.Fatal("feb 12 should be selected")
	}
	if !byDay[7].Weekend || !byDay[8].Weekend {
		t.Fatal("feb 7/8 are a weekend")
	}
}

func TestNewMonthViewLeadingBlanks(t *testing.T) {
	today := mustDay(t, "2026-01-15")

	// January 2026 starts on a Thursday.
	view := NewMonthView(2026, time.January, nil, nil, today)
	if view.LeadingBlanks != 4 {
		t.Fatalf("leading blanks: %d", view.LeadingBlanks)
	}
	if len(view.Cells) != 31 {
		t.Fatalf("cells: %d", len(view.Cells))
	}
}

func TestShiftMonthAcrossYears(t *testing.T) {
	year, month := shiftMonth(2026, time.January, -1)
	if year != 2025 || month != time.December {
		t.Fatalf("back: %d %s", year, month)
	}

	year, month = shiftMonth(2025, time.December, 1)
	if year != 2026 || month != time.January {
		t.Fatalf("forward: %d %s", year, month)
	}
}
