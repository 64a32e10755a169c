package booking

import (
	"errors"
	"testing"

	"github.com/hightidestudios/website/internal/catalog"
)

func TestComputeQuoteForCatalogPrices(t *testing.T) {
	cases := []struct {
		price   string
		deposit int
		balance int
	}{
		{"€299", 30, 269},
		{"€399", 40, 359},
		{"€749", 75, 674},
		{"€1,299", 130, 1169},
	}

	for _, tc := range cases {
		quote, err := ComputeQuote(catalog.Package{ID: "test", Price: tc.price})
		if err != nil {
			t.Fatalf("quote %s: %v", tc.price, err)
		}
		if quote.Deposit != tc.deposit {
			t.Fatalf("price %s deposit: got %d, want %d", tc.price, quote.Deposit, tc.deposit)
		}
		if quote.Balance != tc.balance {
			t.Fatalf("price %s balance: got %d, want %d", tc.price, quote.Balance, tc.balance)
		}
		if quote.Deposit+quote.Balance != quote.Price {
			t.Fatalf("price %s does not reconcile: %+v", tc.price, quote)
		}
	}
}

func TestComputeQuoteDisplay(t *testing.T) {
	quote, err := ComputeQuote(catalog.Package{ID: "bronze", Price: "€299"})
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if quote.DepositDisplay() != "€30" {
		t.Fatalf("deposit display: %s", quote.DepositDisplay())
	}
	if quote.BalanceDisplay() != "€269" {
		t.Fatalf("balance display: %s", quote.BalanceDisplay())
	}
}

func TestComputeQuoteRejectsNonNumericPrice(t *testing.T) {
	if _, err := ComputeQuote(catalog.Package{ID: "broken", Price: "€"}); err == nil {
		t.Fatal("expected error for price without digits")
	}
}

func TestQuoteForDraftWithoutPackageFailsLoudly(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	_, err = QuoteForDraft(Draft{}, cat)
	if !errors.Is(err, ErrNoPackage) {
		t.Fatalf("expected ErrNoPackage, got %v", err)
	}

	_, err = QuoteForDraft(Draft{PackageID: "platinum"}, cat)
	if !errors.Is(err, ErrNoPackage) {
		t.Fatalf("expected ErrNoPackage for unknown id, got %v", err)
	}
}

func TestQuoteForDraftEveryCatalogPackage(t *testing.T) {
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	for _, pkg := range cat.All() {
		quote, err := QuoteForDraft(Draft{PackageID: pkg.ID}, cat)
		if err != nil {
			t.Fatalf("quote %s: %v", pkg.ID, err)
		}
		if quote.Deposit <= 0 || quote.Balance <= 0 {
			t.Fatalf("nonsensical quote for %s: %+v", pkg.ID, quote)
		}
	}
}
