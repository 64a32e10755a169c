package booking

import (
	"strings"
	"time"
)

// maxSelectedDates caps the preferred-dates sequence. When full, a new
// pick evicts the oldest selection rather than being rejected, so the
// draft always keeps the three most recent choices.
const maxSelectedDates = 3

// Draft is the in-progress, unsubmitted booking form state.
type Draft struct {
	Name    string
	Email   string
	Phone   string
	Company string

	PackageID string
	// SelectedDates preserves selection order; index 0 is the oldest
	// pick and the first evicted.
	SelectedDates []Day

	Notes        string
	AgreeDeposit bool
}

// HasSelected reports whether day is in the selected sequence.
func (d Draft) HasSelected(day Day) bool {
	for _, selected := range d.SelectedDates {
		if selected == day {
			return true
		}
	}
	return false
}

// State is the complete reducible state of one booking view: the draft
// plus which month the calendar is showing.
type State struct {
	Draft     Draft
	ViewYear  int
	ViewMonth time.Month
}

// Intent is a discrete user gesture consumed by the reducer. Every
// mutation of State flows through Apply; handlers never poke fields.
type Intent interface {
	isIntent()
}

// ToggleDate selects or deselects a calendar day.
type ToggleDate struct{ Day Day }

// RemoveDate explicitly removes a day from the selection.
type RemoveDate struct{ Day Day }

// SetField updates one free-text contact field.
type SetField struct {
	Field string
	Value string
}

// SetPackage changes the package selection.
type SetPackage struct{ ID string }

// SetAgreement records the deposit acknowledgement checkbox.
type SetAgreement struct{ Agreed bool }

// ShiftMonth moves the displayed month forward or back. It never touches
// the selected-dates sequence.
type ShiftMonth struct{ Delta int }

func (ToggleDate) isIntent()   {}
func (RemoveDate) isIntent()   {}
func (SetField) isIntent()     {}
func (SetPackage) isIntent()   {}
func (SetAgreement) isIntent() {}
func (ShiftMonth) isIntent()   {}

// PackageResolver reports whether a package identifier is known. The
// catalog satisfies this; tests supply fakes.
type PackageResolver interface {
	Has(id string) bool
}

// Env carries the read-only collaborators the reducer consults. All of
// them are shared safely across sessions.
type Env struct {
	Blocked  Blocklist
	Packages PackageResolver
	Today    Day
}

// Apply reduces a single intent into the state. Unknown or rejected
// intents leave the state unchanged.
func (s *State) Apply(intent Intent, env Env) {
	switch in := intent.(type) {
	case ToggleDate:
		s.toggleDate(in.Day, env)
	case RemoveDate:
		s.removeDate(in.Day)
	case SetField:
		s.setField(in.Field, in.Value)
	case SetPackage:
		s.setPackage(in.ID, env)
	case SetAgreement:
		s.Draft.AgreeDeposit = in.Agreed
	case ShiftMonth:
		s.ViewYear, s.ViewMonth = shiftMonth(s.ViewYear, s.ViewMonth, in.Delta)
	}
}

func (s *State) toggleDate(day Day, env Env) {
	if env.Blocked != nil && env.Blocked.IsBlocked(day) {
		return
	}
	if day.Before(env.Today) {
		return
	}

	if s.Draft.HasSelected(day) {
		s.removeDate(day)
		return
	}

	dates := s.Draft.SelectedDates
	if len(dates) >= maxSelectedDates {
		dates = dates[1:]
	}
	s.Draft.SelectedDates = append(dates, day)
}

func (s *State) removeDate(day Day) {
	dates := s.Draft.SelectedDates[:0]
	for _, selected := range s.Draft.SelectedDates {
		if selected != day {
			dates = append(dates, selected)
		}
	}
	s.Draft.SelectedDates = dates
}

func (s *State) setField(field, value string) {
	switch field {
	case "name":
		s.Draft.Name = value
	case "email":
		s.Draft.Email = value
	case "phone":
		s.Draft.Phone = value
	case "company":
		s.Draft.Company = value
	case "notes":
		s.Draft.Notes = value
	}
}

// setPackage keeps the invariant that the selection references a known
// package or stays empty. Unrecognized identifiers are ignored without
// error, matching how shareable booking links behave.
func (s *State) setPackage(id string, env Env) {
	id = strings.TrimSpace(id)
	if id == "" {
		s.Draft.PackageID = ""
		return
	}
	if env.Packages != nil && !env.Packages.Has(id) {
		return
	}
	s.Draft.PackageID = id
}
