package booking

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks a draft on submit and returns field-scoped error
// messages. An empty map means the draft is ready to send. Validation is
// local: nothing here touches the network or the relay.
func Validate(draft Draft, packages PackageResolver) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(draft.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(draft.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(draft.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if strings.TrimSpace(draft.Phone) == "" {
		errs["phone"] = "Phone is required"
	}
	if draft.PackageID == "" || (packages != nil && !packages.Has(draft.PackageID)) {
		errs["package"] = "Please select a package"
	}
	if len(draft.SelectedDates) == 0 {
		errs["dates"] = "Please select at least one preferred date"
	}
	if !draft.AgreeDeposit {
		errs["agreeDeposit"] = "You must agree to the deposit terms"
	}

	return errs
}
