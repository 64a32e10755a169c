package booking

import (
	"strings"
	"testing"

	"github.com/hightidestudios/website/internal/catalog"
)

func TestBuildPayloadCompleteDraft(t *testing.T) {
	draft := Draft{
		Name:      "Aoife Byrne",
		Email:     "aoife@example.com",
		Phone:     "unparseable",
		Company:   "Byrne Media",
		PackageID: "gold",
		SelectedDates: []Day{
			mustDay(t, "2026-02-02"),
			mustDay(t, "2026-02-04"),
		},
		Notes:        "Two guests, one remote call-in.",
		AgreeDeposit: true,
	}
	pkg := catalog.Package{
		ID:       "gold",
		Title:    "GOLD",
		Subtitle: "Signature Broadcast",
		Price:    "€749",
	}

	payload, err := BuildPayload(draft, pkg, "High Tide Studios")
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}

	if payload.ToName != "High Tide Studios" {
		t.Fatalf("to name: %s", payload.ToName)
	}
	if payload.Package != "GOLD - Signature Broadcast" {
		t.Fatalf("package: %s", payload.Package)
	}
	if payload.PackagePrice != "€749" {
		t.Fatalf("price: %s", payload.PackagePrice)
	}
	if payload.DepositAmount != "€75" || payload.BalanceDue != "€674" {
		t.Fatalf("quote: %s / %s", payload.DepositAmount, payload.BalanceDue)
	}
	if payload.ReplyTo != "aoife@example.com" {
		t.Fatalf("reply to: %s", payload.ReplyTo)
	}
	if payload.Company != "Byrne Media" {
		t.Fatalf("company: %s", payload.Company)
	}
	if payload.Notes != "Two guests, one remote call-in." {
		t.Fatalf("notes: %s", payload.Notes)
	}
	// An unparseable phone is passed through verbatim.
	if payload.Phone != "unparseable" {
		t.Fatalf("phone: %s", payload.Phone)
	}

	want := "Monday 2 February 2026\n• Wednesday 4 February 2026"
	if payload.PreferredDates != want {
		t.Fatalf("dates: %q", payload.PreferredDates)
	}
}

func TestBuildPayloadPlaceholders(t *testing.T) {
	draft := Draft{
		Name:          "Aoife Byrne",
		Email:         "aoife@example.com",
		Phone:         "087 123 4567",
		PackageID:     "bronze",
		SelectedDates: []Day{mustDay(t, "2026-02-03")},
		AgreeDeposit:  true,
	}
	pkg := catalog.Package{ID: "bronze", Title: "BRONZE", Subtitle: "Audio Foundation", Price: "€299"}

	payload, err := BuildPayload(draft, pkg, "High Tide Studios")
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}

	if payload.Company != "Not provided" {
		t.Fatalf("company placeholder: %s", payload.Company)
	}
	if payload.Notes != "None provided" {
		t.Fatalf("notes placeholder: %s", payload.Notes)
	}
}

func TestBuildPayloadNormalizesIrishPhone(t *testing.T) {
	draft := Draft{
		Name:          "Aoife Byrne",
		Email:         "aoife@example.com",
		Phone:         "0872562643",
		PackageID:     "bronze",
		SelectedDates: []Day{mustDay(t, "2026-02-03")},
		AgreeDeposit:  true,
	}
	pkg := catalog.Package{ID: "bronze", Title: "BRONZE", Subtitle: "Audio Foundation", Price: "€299"}

	payload, err := BuildPayload(draft, pkg, "High Tide Studios")
	if err != nil {
		t.Fatalf("build payload: %v", err)
	}

	if !strings.HasPrefix(payload.Phone, "+353") {
		t.Fatalf("expected +353 prefix, got %q", payload.Phone)
	}
}

func TestBuildPayloadRefusesBrokenPrice(t *testing.T) {
	draft := Draft{
		Name:          "Aoife Byrne",
		Email:         "aoife@example.com",
		Phone:         "087 123 4567",
		PackageID:     "broken",
		SelectedDates: []Day{mustDay(t, "2026-02-03")},
		AgreeDeposit:  true,
	}
	pkg := catalog.Package{ID: "broken", Title: "BROKEN", Subtitle: "Bad Data", Price: "POA"}

	if _, err := BuildPayload(draft, pkg, "High Tide Studios"); err == nil {
		t.Fatal("expected quote error for digitless price")
	}
}

func TestFormatPreferredDatesSingle(t *testing.T) {
	got := FormatPreferredDates([]Day{mustDay(t, "2026-02-02")})
	if got != "Monday 2 February 2026" {
		t.Fatalf("formatted: %q", got)
	}
}
