package booking

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/hightidestudios/website/internal/catalog"
)

// Long-form date for the outbound email, e.g. "Monday 2 February 2026".
const payloadDateLayout = "Monday 2 January 2006"

const (
	companyPlaceholder = "Not provided"
	notesPlaceholder   = "None provided"
)

// defaultPhoneRegion guides parsing of numbers entered without a country
// prefix. The studio's audience is overwhelmingly Irish.
const defaultPhoneRegion = "IE"

// Payload is the structured booking request handed to the mail relay.
// Field meanings match the relay template one-to-one.
type Payload struct {
	ToName         string
	FromName       string
	FromEmail      string
	Phone          string
	Company        string
	Package        string
	PackagePrice   string
	DepositAmount  string
	BalanceDue     string
	PreferredDates string
	Notes          string
	ReplyTo        string
}

// BuildPayload assembles the relay payload from a validated draft. The
// quote is recomputed here so a nonsensical deposit can never be sent;
// callers must have validated the draft first.
func BuildPayload(draft Draft, pkg catalog.Package, businessName string) (Payload, error) {
	quote, err := ComputeQuote(pkg)
	if err != nil {
		return Payload{}, err
	}

	return Payload{
		ToName:         businessName,
		FromName:       draft.Name,
		FromEmail:      draft.Email,
		Phone:          normalizePhone(draft.Phone),
		Company:        orPlaceholder(draft.Company, companyPlaceholder),
		Package:        pkg.Label(),
		PackagePrice:   pkg.Price,
		DepositAmount:  quote.DepositDisplay(),
		BalanceDue:     quote.BalanceDisplay(),
		PreferredDates: FormatPreferredDates(draft.SelectedDates),
		Notes:          orPlaceholder(draft.Notes, notesPlaceholder),
		ReplyTo:        draft.Email,
	}, nil
}

// FormatPreferredDates renders the selected days as a bullet-joined
// block in selection order.
func FormatPreferredDates(days []Day) string {
	formatted := make([]string, 0, len(days))
	for _, day := range days {
		formatted = append(formatted, day.Format(payloadDateLayout))
	}
	return strings.Join(formatted, "\n• ")
}

// normalizePhone formats parseable numbers internationally and leaves
// everything else exactly as entered. Validation never depends on this.
func normalizePhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := phonenumbers.Parse(trimmed, defaultPhoneRegion)
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return trimmed
	}
	return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
