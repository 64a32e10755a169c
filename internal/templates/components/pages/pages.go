// Package pages holds the static marketing pages. Dynamic content comes
// from the package catalog and studio config; everything else is fixed
// copy.
package pages

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/hightidestudios/website/internal/catalog"
	"github.com/hightidestudios/website/internal/config"
)

// Home renders the landing page: hero, package grid, and feature blurbs.
func Home(studio config.StudioConfig, packages []catalog.Package) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<section class="hero">`)
		fmt.Fprintf(&buf, `<h1>%s<span class="hero-sub">%s</span></h1>`,
			html.EscapeString(studio.BusinessName), html.EscapeString(studio.Tagline))
		buf.WriteString(`<p class="lead">A calm, broadcast-ready environment for serious voices.</p>`)
		buf.WriteString(`<div class="hero-actions"><a class="button" href="/book">Book a Session</a><a class="button secondary" href="/packages">View Packages</a></div>`)
		buf.WriteString(`</section>`)

		buf.WriteString(`<section class="packages-section"><h2>Our Packages</h2><p class="muted">Professional podcast production tailored to your needs</p><div class="package-grid">`)
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
		for _, pkg := range packages {
			if err := PackageCard(pkg).Render(ctx, w); err != nil {
				return err
			}
		}

		buf.Reset()
		buf.WriteString(`</div></section>`)

		buf.WriteString(`<section class="features">`)
		features := []struct{ title, body string }{
			{"Professional Audio", "Multi-mic studio recording with broadcast-quality mastering and noise reduction"},
			{"Video Production", "Multi-camera 4K video capture with professional lighting and editing"},
			{"Full Support", "Guided sessions with experienced broadcasters from setup to final delivery"},
		}
		for _, feature := range features {
			fmt.Fprintf(&buf, `<div class="feature-card"><h5>%s</h5><p class="muted">%s</p></div>`,
				html.EscapeString(feature.title), html.EscapeString(feature.body))
		}
		buf.WriteString(`</section>`)

		buf.WriteString(`<section class="testimonials"><h2>What Our Clients Say</h2><div class="testimonial-grid">`)
		for _, item := range testimonials {
			fmt.Fprintf(&buf,
				`<blockquote class="testimonial-card"><p>%s</p><footer><strong>%s</strong><span class="muted">%s</span></footer></blockquote>`,
				html.EscapeString(item.quote), html.EscapeString(item.author), html.EscapeString(item.role))
		}
		buf.WriteString(`</div></section>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

type testimonial struct {
	quote  string
	author string
	role   string
}

var testimonials = []testimonial{
	{
		quote:  "High Tide Studios gave us the professional environment we needed to launch our podcast. The team understood exactly what we were going for.",
		author: "Sarah Mitchell",
		role:   "Founder, Leadership Talks Podcast",
	},
	{
		quote:  "The quality of production exceeded our expectations. Colm and the team made us feel completely at ease behind the microphone.",
		author: "David O'Connor",
		role:   "CEO, TechStart Ireland",
	},
	{
		quote:  "Finally, a studio that takes audio seriously. No gimmicks, just broadcast-quality production from professionals who know their craft.",
		author: "Emma Byrne",
		role:   "Author & Speaker",
	},
}

// PackageCard renders one package tile. The book link carries the
// package id so the booking form opens pre-selected.
func PackageCard(pkg catalog.Package) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var buf bytes.Buffer
		class := "package-card"
		if pkg.Badge != "" {
			class += " featured"
		}
		fmt.Fprintf(&buf, `<div class="%s">`, class)
		if pkg.Badge != "" {
			fmt.Fprintf(&buf, `<span class="badge">%s</span>`, html.EscapeString(pkg.Badge))
		}
		fmt.Fprintf(&buf, `<h3>%s</h3><p class="subtitle">%s</p>`,
			html.EscapeString(pkg.Title), html.EscapeString(pkg.Subtitle))
		buf.WriteString(`<p class="price">`)
		if pkg.OriginalPrice != "" {
			fmt.Fprintf(&buf, `<s>%s</s> `, html.EscapeString(pkg.OriginalPrice))
		}
		fmt.Fprintf(&buf, `<strong>%s</strong></p>`, html.EscapeString(pkg.Price))
		fmt.Fprintf(&buf, `<p>%s</p>`, html.EscapeString(pkg.Description))
		buf.WriteString(`<ul class="feature-list">`)
		for _, feature := range pkg.Features {
			fmt.Fprintf(&buf, `<li>%s</li>`, html.EscapeString(feature))
		}
		buf.WriteString(`</ul>`)
		if pkg.Note != "" {
			fmt.Fprintf(&buf, `<p class="note">%s</p>`, html.EscapeString(pkg.Note))
		}
		if pkg.WhoFor != "" {
			fmt.Fprintf(&buf, `<p class="who-for">%s</p>`, html.EscapeString(pkg.WhoFor))
		}
		fmt.Fprintf(&buf, `<a class="button" href="/book?package=%s">Book This Package</a>`, html.EscapeString(pkg.ID))
		buf.WriteString(`</div>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Packages renders the full package listing page.
func Packages(packages []catalog.Package) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section class="packages-section"><h1>Our Packages</h1><p class="muted">All sessions include studio time, engineering, and post-production.</p><div class="package-grid">`); err != nil {
			return err
		}
		for _, pkg := range packages {
			if err := PackageCard(pkg).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div></section>`)
		return err
	})
}

// Contact renders the contact details page.
func Contact(studio config.StudioConfig) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var buf bytes.Buffer
		buf.WriteString(`<section class="contact-section"><h1>Get in Touch</h1>`)
		buf.WriteString(`<p class="lead">Questions about a session or package? We usually reply within one working day.</p>`)
		buf.WriteString(`<div class="contact-details">`)
		fmt.Fprintf(&buf, `<p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>`,
			html.EscapeString(studio.ContactEmail), html.EscapeString(studio.ContactEmail))
		fmt.Fprintf(&buf, `<p><strong>Phone:</strong> <a href="tel:%s">%s</a></p>`,
			html.EscapeString(studio.ContactPhone), html.EscapeString(studio.ContactPhone))
		fmt.Fprintf(&buf, `<p><strong>Address:</strong> %s</p>`, html.EscapeString(studio.Address))
		buf.WriteString(`<p><strong>Hours:</strong> Weekdays 9am&ndash;6pm, weekends by appointment</p>`)
		buf.WriteString(`</div>`)
		buf.WriteString(`<a class="button" href="/book">Book a Session</a>`)
		buf.WriteString(`</section>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// Privacy renders the privacy policy.
func Privacy(studio config.StudioConfig) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var buf bytes.Buffer
		name := html.EscapeString(studio.BusinessName)
		buf.WriteString(`<section class="privacy-section"><h1>Privacy Policy</h1><p class="muted">Last updated: February 2026</p>`)

		fmt.Fprintf(&buf, `<h2>1. Introduction</h2><p>%s (&quot;we&quot;, &quot;us&quot;, or &quot;our&quot;) is committed to protecting your privacy. This policy explains how we collect, use, and safeguard your information when you visit our website.</p>`, name)

		buf.WriteString(`<h2>2. Information We Collect</h2><p>When you use our booking form, we collect:</p><ul>`)
		for _, item := range []string{
			"Name", "Email address", "Phone number",
			"Company or podcast name (optional)",
			"Preferred booking dates", "Additional notes you provide",
		} {
			fmt.Fprintf(&buf, `<li>%s</li>`, html.EscapeString(item))
		}
		buf.WriteString(`</ul>`)

		buf.WriteString(`<h2>3. How We Use Your Information</h2><p>We use the information you provide solely to respond to your booking request, confirm availability, and arrange your session. We do not sell or share your information with third parties for marketing purposes.</p>`)

		buf.WriteString(`<h2>4. Data Retention</h2><p>Booking requests are retained only as long as needed to administer your session and meet our legal obligations.</p>`)

		fmt.Fprintf(&buf, `<h2>5. Contact Us</h2><p>For any privacy questions, contact us at <a href="mailto:%s">%s</a>.</p>`,
			html.EscapeString(studio.ContactEmail), html.EscapeString(studio.ContactEmail))
		buf.WriteString(`</section>`)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="notfound-section"><h1>404</h1><p class="lead">The page you&#39;re looking for has drifted out with the tide.</p><a class="button" href="/">Return Home</a></section>`)
		return err
	})
}
