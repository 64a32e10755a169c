package booking

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hightidestudios/website/internal/catalog"
)

// depositRate is the fraction of the package price due up front. The
// deposit is disclosed to the visitor, never collected here.
const depositRate = 0.10

// ErrNoPackage marks a quote requested without a package selected. That
// is a caller bug, not user input, so it fails loudly instead of quoting
// zero.
var ErrNoPackage = errors.New("no package selected")

// Quote is the deposit disclosure derived from a package price.
type Quote struct {
	Price   int
	Deposit int
	Balance int
}

// DepositDisplay renders the deposit with the currency prefix.
func (q Quote) DepositDisplay() string { return fmt.Sprintf("€%d", q.Deposit) }

// BalanceDisplay renders the balance due with the currency prefix.
func (q Quote) BalanceDisplay() string { return fmt.Sprintf("€%d", q.Balance) }

// ComputeQuote derives the deposit and balance from a package's display
// price. The numeric price is every digit of the display string with
// symbols and separators discarded; a price without digits is a catalog
// defect and returns an error.
func ComputeQuote(pkg catalog.Package) (Quote, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, pkg.Price)
	if digits == "" {
		return Quote{}, fmt.Errorf("package %q has no numeric price in %q", pkg.ID, pkg.Price)
	}

	price, err := strconv.Atoi(digits)
	if err != nil {
		return Quote{}, fmt.Errorf("package %q price %q: %w", pkg.ID, pkg.Price, err)
	}

	deposit := int(math.Round(float64(price) * depositRate))
	return Quote{
		Price:   price,
		Deposit: deposit,
		Balance: price - deposit,
	}, nil
}

// QuoteForDraft resolves the draft's package and computes its quote.
// Returns ErrNoPackage when nothing is selected.
func QuoteForDraft(draft Draft, cat *catalog.Catalog) (Quote, error) {
	if strings.TrimSpace(draft.PackageID) == "" {
		return Quote{}, ErrNoPackage
	}
	pkg, ok := cat.ByID(draft.PackageID)
	if !ok {
		return Quote{}, fmt.Errorf("%w: unknown package %q", ErrNoPackage, draft.PackageID)
	}
	return ComputeQuote(pkg)
}
