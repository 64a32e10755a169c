// Package bookingform renders the booking calendar and details form.
package bookingform

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/hightidestudios/website/internal/booking"
)

const shortChipLayout = "Mon 2 Jan"

// Page is the full booking view: calendar card plus details form,
// wrapped in the swap target for submit responses.
func Page(view View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="booking-section" id="booking-view">`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="booking-header"><h1>Book Your Session</h1><p>Select your preferred dates, choose your package, and secure your booking with a 10% deposit.</p></div>`); err != nil {
			return err
		}
		if err := CalendarCard(view).Render(ctx, w); err != nil {
			return err
		}
		if err := FormCard(view).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// CalendarCard renders the month grid, its navigation, and the chips
// for the currently selected dates. It is the swap target for toggle
// and month-shift requests.
func CalendarCard(view View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<div class="booking-card" id="calendar-card">`)
		buf.WriteString(`<h2>Select Preferred Dates</h2>`)
		buf.WriteString(`<p class="hint">Choose up to 3 preferred dates. We&#39;ll confirm availability within 24 hours.</p>`)

		buf.WriteString(`<div class="calendar-header">`)
		buf.WriteString(`<button type="button" aria-label="Previous month" hx-post="/api/v1/booking/month?delta=-1" hx-target="#calendar-card" hx-swap="outerHTML">&lsaquo;</button>`)
		fmt.Fprintf(&buf, `<h3>%s</h3>`, html.EscapeString(view.Month.Title()))
		buf.WriteString(`<button type="button" aria-label="Next month" hx-post="/api/v1/booking/month?delta=1" hx-target="#calendar-card" hx-swap="outerHTML">&rsaquo;</button>`)
		buf.WriteString(`</div>`)

		buf.WriteString(`<div class="calendar-grid">`)
		for _, name := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
			fmt.Fprintf(&buf, `<div class="calendar-day-header">%s</div>`, name)
		}
		for i := 0; i < view.Month.LeadingBlanks; i++ {
			buf.WriteString(`<div class="calendar-day empty"></div>`)
		}
		for _, cell := range view.Month.Cells {
			writeDayCell(&buf, cell)
		}
		buf.WriteString(`</div>`)

		buf.WriteString(`<div class="calendar-legend">`)
		buf.WriteString(`<span class="legend-item available">Available</span>`)
		buf.WriteString(`<span class="legend-item selected">Selected</span>`)
		buf.WriteString(`<span class="legend-item unavailable">Unavailable</span>`)
		buf.WriteString(`<span class="legend-item weekend">Weekend (by request)</span>`)
		buf.WriteString(`</div>`)

		if msg := view.Errors["dates"]; msg != "" {
			fmt.Fprintf(&buf, `<div class="field-error">%s</div>`, html.EscapeString(msg))
		}

		if len(view.Draft.SelectedDates) > 0 {
			buf.WriteString(`<div class="selected-dates"><h4>Your Preferred Dates:</h4>`)
			for _, day := range view.Draft.SelectedDates {
				fmt.Fprintf(&buf,
					`<span class="date-chip">%s<button type="button" aria-label="Remove date" hx-post="/api/v1/booking/remove?day=%s" hx-target="#calendar-card" hx-swap="outerHTML">&times;</button></span>`,
					html.EscapeString(day.Format(shortChipLayout)), day.Key(),
				)
			}
			buf.WriteString(`</div>`)
		}

		buf.WriteString(`</div>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeDayCell(buf *bytes.Buffer, cell booking.DayCell) {
	class := "calendar-day"
	if cell.Unavailable {
		class += " unavailable"
	}
	if cell.Selected {
		class += " selected"
	}
	if cell.Past {
		class += " past"
	}
	if cell.Weekend && cell.Selectable() {
		class += " weekend"
	}

	if cell.Selectable() {
		fmt.Fprintf(buf,
			`<button type="button" class="%s" hx-post="/api/v1/booking/toggle?day=%s" hx-target="#calendar-card" hx-swap="outerHTML">%d</button>`,
			class, cell.Day.Key(), cell.Day.DayOfMonth,
		)
		return
	}
	fmt.Fprintf(buf, `<div class="%s" aria-disabled="true">%d</div>`, class, cell.Day.DayOfMonth)
}

// FormCard renders the contact details form, the deposit disclosure,
// and the submit control.
func FormCard(view View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<div class="booking-card" id="details-card">`)
		buf.WriteString(`<h2>Your Details</h2>`)
		buf.WriteString(`<form hx-post="/api/v1/booking/submit" hx-target="#booking-view" hx-swap="outerHTML" novalidate>`)

		if msg := view.Errors["submit"]; msg != "" {
			fmt.Fprintf(&buf, `<div class="alert" role="alert">%s</div>`, html.EscapeString(msg))
		}

		writeTextField(&buf, view, "name", "Full Name", "text", view.Draft.Name, true)
		writeTextField(&buf, view, "email", "Email", "email", view.Draft.Email, true)
		writeTextField(&buf, view, "phone", "Phone", "tel", view.Draft.Phone, true)
		writeTextField(&buf, view, "company", "Company / Podcast Name", "text", view.Draft.Company, false)

		buf.WriteString(`<div class="form-field"><label for="booking-package">Select Package <span class="required">*</span></label>`)
		buf.WriteString(`<select id="booking-package" name="package">`)
		buf.WriteString(`<option value="">Choose a package...</option>`)
		for _, pkg := range view.Packages {
			selected := ""
			if pkg.ID == view.Draft.PackageID {
				selected = ` selected`
			}
			fmt.Fprintf(&buf, `<option value="%s"%s>%s - %s (%s)</option>`,
				html.EscapeString(pkg.ID), selected,
				html.EscapeString(pkg.Title), html.EscapeString(pkg.Subtitle), html.EscapeString(pkg.Price),
			)
		}
		buf.WriteString(`</select>`)
		writeFieldError(&buf, view, "package")
		buf.WriteString(`</div>`)

		buf.WriteString(`<div class="form-field"><label for="booking-notes">Additional Notes</label>`)
		fmt.Fprintf(&buf, `<textarea id="booking-notes" name="notes" rows="3">%s</textarea>`, html.EscapeString(view.Draft.Notes))
		buf.WriteString(`</div>`)

		if pkg, ok := view.SelectedPackage(); ok && view.Quote != nil {
			buf.WriteString(`<div class="deposit-info">`)
			fmt.Fprintf(&buf, `<div><span>Package Price:</span><span>%s</span></div>`, html.EscapeString(pkg.Price))
			fmt.Fprintf(&buf, `<div><span>Deposit (10%%):</span><strong>%s</strong></div>`, html.EscapeString(view.Quote.DepositDisplay()))
			fmt.Fprintf(&buf, `<div><span>Balance Due on Session:</span><span>%s</span></div>`, html.EscapeString(view.Quote.BalanceDisplay()))
			buf.WriteString(`</div>`)
		}

		checked := ""
		if view.Draft.AgreeDeposit {
			checked = ` checked`
		}
		fmt.Fprintf(&buf, `<div class="form-check"><input type="checkbox" id="booking-agree" name="agree_deposit" value="true"%s/>`, checked)
		buf.WriteString(`<label for="booking-agree">I understand that a <strong>10% non-refundable deposit</strong> is required to secure my booking. The remaining balance is due 48 hours before the day of the first recording.</label>`)
		writeFieldError(&buf, view, "agreeDeposit")
		buf.WriteString(`</div>`)

		if view.Submitting {
			buf.WriteString(`<button type="submit" class="submit" disabled>Processing...</button>`)
		} else {
			buf.WriteString(`<button type="submit" class="submit" hx-disabled-elt="this">Request Booking</button>`)
		}

		buf.WriteString(`<p class="hint">Your information is secure and will only be used for booking purposes.</p>`)
		buf.WriteString(`</form></div>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func writeTextField(buf *bytes.Buffer, view View, name, label, inputType, value string, required bool) {
	requiredMark := ""
	if required {
		requiredMark = ` <span class="required">*</span>`
	}
	fmt.Fprintf(buf, `<div class="form-field"><label for="booking-%s">%s%s</label>`, name, html.EscapeString(label), requiredMark)
	fmt.Fprintf(buf, `<input type="%s" id="booking-%s" name="%s" value="%s"/>`, inputType, name, name, html.EscapeString(value))
	writeFieldError(buf, view, name)
	buf.WriteString(`</div>`)
}

func writeFieldError(buf *bytes.Buffer, view View, field string) {
	if msg := view.Errors[field]; msg != "" {
		fmt.Fprintf(buf, `<div class="field-error">%s</div>`, html.EscapeString(msg))
	}
}

// Confirmation replaces the booking view once a request is confirmed.
func Confirmation(view View) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<section class="booking-section" id="booking-view"><div class="booking-success">`)
		buf.WriteString(`<h1>Booking Request Received!</h1>`)

		deposit := ""
		if view.Quote != nil {
			deposit = view.Quote.DepositDisplay()
		}
		fmt.Fprintf(&buf,
			`<p>Thank you for your booking request. We&#39;ll review your preferred dates and contact you within 24 hours to confirm availability and arrange your <strong>%s</strong> non-refundable deposit.</p>`,
			html.EscapeString(deposit),
		)

		buf.WriteString(`<div class="booking-summary"><h3>Booking Summary</h3>`)
		if pkg, ok := view.SelectedPackage(); ok {
			fmt.Fprintf(&buf, `<p><strong>Package:</strong> %s</p>`, html.EscapeString(pkg.Label()))
		}
		buf.WriteString(`<p><strong>Preferred Dates:</strong> `)
		for i, day := range view.Draft.SelectedDates {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(day.Key())
		}
		buf.WriteString(`</p>`)
		if deposit != "" {
			fmt.Fprintf(&buf, `<p><strong>Deposit (10%%):</strong> %s</p>`, html.EscapeString(deposit))
		}
		buf.WriteString(`</div>`)
		buf.WriteString(`<a class="button" href="/">Return Home</a>`)
		buf.WriteString(`</div></section>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}
