package bookingform

import (
	"github.com/hightidestudios/website/internal/booking"
	"github.com/hightidestudios/website/internal/catalog"
	"github.com/hightidestudios/website/internal/config"
)

// View is everything the booking widgets need to render one state of a
// session. It is assembled fresh per request; components never reach
// back into the session.
type View struct {
	Month    booking.MonthView
	Draft    booking.Draft
	Errors   map[string]string
	Packages []catalog.Package
	// Quote is nil until a package is selected.
	Quote  *booking.Quote
	Studio config.StudioConfig
	// Submitting disables the submit control while a relay call is in
	// flight.
	Submitting bool
}

// NewView snapshots a session for rendering.
func NewView(session *booking.Session, packages []catalog.Package, studio config.StudioConfig) View {
	view := View{
		Month:      session.MonthView(),
		Draft:      session.Draft(),
		Errors:     session.Errors(),
		Packages:   packages,
		Studio:     studio,
		Submitting: session.Status() == booking.StatusSubmitting,
	}
	if quote, err := session.Quote(); err == nil {
		view.Quote = &quote
	}
	return view
}

// SelectedPackage resolves the draft's selection against the catalog
// slice carried by the view.
func (v View) SelectedPackage() (catalog.Package, bool) {
	for _, pkg := range v.Packages {
		if pkg.ID == v.Draft.PackageID {
			return pkg, true
		}
	}
	return catalog.Package{}, false
}
