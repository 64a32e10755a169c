package bookingform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/hightidestudios/website/internal/booking"
	"github.com/hightidestudios/website/internal/catalog"
	"github.com/hightidestudios/website/internal/config"
	"github.com/hightidestudios/website/internal/testutil"
)

type fakeRelay struct {
	calls atomic.Int64
	err   error
}

func (f *fakeRelay) Send(ctx context.Context, payload booking.Payload) error {
	f.calls.Add(1)
	return f.err
}

func testStudio() config.StudioConfig {
	return config.StudioConfig{
		BusinessName: "High Tide Studios",
		Tagline:      "Greystones",
		ContactEmail: "hello@example.com",
		ContactPhone: "087 256 2643",
		Address:      "Greystones, Wicklow",
	}
}

func newTestHandlers(t *testing.T, relay booking.Relay) *Handlers {
	t.Helper()

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	database := testutil.NewTestDB(t)

	store := booking.NewStore(booking.Config{
		Catalog:         cat,
		Blocked:         booking.NewStaticBlocklist(),
		BusinessName:    "High Tide Studios",
		FallbackContact: "087 256 2643",
	}, 0)

	return New(store, cat, relay, database.Queries, testStudio())
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie
		}
	}
	t.Fatal("expected a session cookie")
	return nil
}

func TestBookingPageCreatesSession(t *testing.T) {
	h := newTestHandlers(t, &fakeRelay{})

	req := httptest.NewRequest(http.MethodGet, "/book", nil)
	rec := httptest.NewRecorder()
	h.HandleBookingPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Select Preferred Dates") {
		t.Error("expected calendar card in page")
	}
	if !strings.Contains(body, "Your Details") {
		t.Error("expected details form in page")
	}
	cookie := sessionCookie(t, rec)
	if _, ok := h.sessions.Get(cookie.Value); !ok {
		t.Error("cookie should reference a live session")
	}
}

func TestBookingPageSeedsKnownPackage(t *testing.T) {
	h := newTestHandlers(t, &fakeRelay{})

	req := httptest.NewRequest(http.MethodGet, "/book?package=gold", nil)
	rec := httptest.NewRecorder()
	h.HandleBookingPage(rec, req)

	if !strings.Contains(rec.Body.String(), `value="gold" selected`) {
		t.Error("expected gold package preselected")
	}
}

func TestBookingPageIgnoresUnknownPackage(t *testing.T) {
	h := newTestHandlers(t, &fakeRelay{})

	req := httptest.NewRequest(http.MethodGet, "/book?package=platinum", nil)
	rec := httptest.NewRecorder()
	h.HandleBookingPage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), ` selected>`) {
		t.Error("unknown package must not preselect anything")
	}
}

func TestToggleDateRendersChip(t *testing.T) {
	h := newTestHandlers(t, &fakeRelay{})

	pageRec := httptest.NewRecorder()
	h.HandleBookingPage(pageRec, httptest.NewRequest(http.MethodGet, "/book", nil))
	cookie := sessionCookie(t, pageRec)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking/toggle?day=2030-06-10", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	h.HandleToggleDate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Your Preferred Dates:") {
		t.Error("expected selected-dates block after toggle")
	}
	if !strings.Contains(body, "remove?day=2030-06-10") {
		t.Error("expected remove control for the toggled day")
	}
}

func TestToggleRejectsMalformedDay(t *testing.T) {
	h := newTestHandlers(t, &fakeRelay{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking/toggle?day=junk", nil)
	rec := httptest.NewRecorder()
	h.HandleToggleDate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestShiftMonthRendersNewTitle(t *testing.T) {
	h := newTestHandlers(t, &fakeRelay{})

	pageRec := httptest.NewRecorder()
	h.HandleBookingPage(pageRec, httptest.NewRequest(http.MethodGet, "/book", nil))
	cookie := sessionCookie(t, pageRec)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking/month?delta=1", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	h.HandleShiftMonth(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	session, _ := h.sessions.Get(cookie.Value)
	if !strings.Contains(rec.Body.String(), session.MonthView().Title()) {
		t.Error("calendar should show the shifted month")
	}
}

func submitForm(h *Handlers, cookie *http.Cookie, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/booking/submit", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"name":          {"Aoife Byrne"},
		"email":         {"aoife@example.com"},
		"phone":         {"0872562643"},
		"package":       {"silver"},
		"agree_deposit": {"true"},
	}
}

func TestSubmitValidDraftConfirms(t *testing.T) {
	relay := &fakeRelay{}
	h := newTestHandlers(t, relay)

	pageRec := httptest.NewRecorder()
	h.HandleBookingPage(pageRec, httptest.NewRequest(http.MethodGet, "/book", nil))
	cookie := sessionCookie(t, pageRec)

	toggleReq := httptest.NewRequest(http.MethodPost, "/api/v1/booking/toggle?day=2030-06-10", nil)
	toggleReq.AddCookie(cookie)
	h.HandleToggleDate(httptest.NewRecorder(), toggleReq)

	rec := submitForm(h, cookie, validForm())

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := relay.calls.Load(); got != 1 {
		t.Fatalf("expected 1 relay call, got %d", got)
	}
	if !strings.Contains(rec.Body.String(), "Booking Request Received!") {
		t.Error("expected confirmation view")
	}
	if _, ok := h.sessions.Get(cookie.Value); ok {
		t.Error("confirmed session should be dropped from the store")
	}

	requests, err := h.queries.ListBookingRequests(context.Background(), 10)
	if err != nil {
		t.Fatalf("list booking requests: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 recorded request, got %d", len(requests))
	}
	if requests[0].PackageID != "silver" {
		t.Errorf("recorded package = %q, want silver", requests[0].PackageID)
	}
	if requests[0].PreferredDates != "2030-06-10" {
		t.Errorf("recorded dates = %q", requests[0].PreferredDates)
	}
}

func TestSubmitInvalidDraftNeverCallsRelay(t *testing.T) {
	relay := &fakeRelay{}
	h := newTestHandlers(t, relay)

	pageRec := httptest.NewRecorder()
	h.HandleBookingPage(pageRec, httptest.NewRequest(http.MethodGet, "/book", nil))
	cookie := sessionCookie(t, pageRec)

	rec := submitForm(h, cookie, url.Values{"email": {"not-an-email"}})

	if got := relay.calls.Load(); got != 0 {
		t.Fatalf("relay must not be called for an invalid draft, got %d calls", got)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Name is required") {
		t.Error("expected name error in re-rendered form")
	}
	if !strings.Contains(body, "Please enter a valid email address") {
		t.Error("expected email error in re-rendered form")
	}
	if !strings.Contains(body, "Please select at least one preferred date") {
		t.Error("expected dates error in re-rendered calendar")
	}

	requests, err := h.queries.ListBookingRequests(context.Background(), 10)
	if err != nil {
		t.Fatalf("list booking requests: %v", err)
	}
	if len(requests) != 0 {
		t.Fatalf("invalid draft must not be recorded, got %d rows", len(requests))
	}
}

func TestSubmitRelayFailureKeepsDraft(t *testing.T) {
	relay := &fakeRelay{err: context.DeadlineExceeded}
	h := newTestHandlers(t, relay)

	pageRec := httptest.NewRecorder()
	h.HandleBookingPage(pageRec, httptest.NewRequest(http.MethodGet, "/book", nil))
	cookie := sessionCookie(t, pageRec)

	toggleReq := httptest.NewRequest(http.MethodPost, "/api/v1/booking/toggle?day=2030-06-10", nil)
	toggleReq.AddCookie(cookie)
	h.HandleToggleDate(httptest.NewRecorder(), toggleReq)

	rec := submitForm(h, cookie, validForm())

	body := rec.Body.String()
	if !strings.Contains(body, "Failed to send booking request") {
		t.Error("expected submit error banner")
	}
	if !strings.Contains(body, "087 256 2643") {
		t.Error("expected fallback contact in submit error")
	}
	if !strings.Contains(body, `value="Aoife Byrne"`) {
		t.Error("draft fields should survive a relay failure")
	}

	session, ok := h.sessions.Get(cookie.Value)
	if !ok {
		t.Fatal("session should survive a relay failure")
	}
	if session.Status() != booking.StatusEditing {
		t.Errorf("status = %v, want editing", session.Status())
	}
}
