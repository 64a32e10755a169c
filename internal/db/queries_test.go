package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hightidestudios/website/internal/db"
	"github.com/hightidestudios/website/internal/testutil"
)

func TestBlockedDatesRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	if err := database.Queries.UpsertBlockedDate(ctx, "2026-02-10", "maintenance"); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := database.Queries.UpsertBlockedDate(ctx, "2026-02-14", ""); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	// Updating an existing day replaces the reason, not the row.
	if err := database.Queries.UpsertBlockedDate(ctx, "2026-02-10", "private event"); err != nil {
		t.Fatalf("upsert again: %v", err)
	}

	dates, err := database.Queries.ListBlockedDates(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(dates) != 2 {
		t.Fatalf("expected 2 blocked dates, got %d", len(dates))
	}
	if dates[0].Day != "2026-02-10" || dates[0].Reason != "private event" {
		t.Fatalf("first date: %+v", dates[0])
	}

	removed, err := database.Queries.DeleteBlockedDate(ctx, "2026-02-10")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !removed {
		t.Fatal("expected a row to be removed")
	}
	removed, err = database.Queries.DeleteBlockedDate(ctx, "2026-02-10")
	if err != nil {
		t.Fatalf("delete again: %v", err)
	}
	if removed {
		t.Fatal("expected no row on second delete")
	}
}

func TestDeleteBlockedDatesBefore(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	for _, day := range []string{"2026-01-05", "2026-01-20", "2026-02-10"} {
		if err := database.Queries.UpsertBlockedDate(ctx, day, ""); err != nil {
			t.Fatalf("upsert %s: %v", day, err)
		}
	}

	removed, err := database.Queries.DeleteBlockedDatesBefore(ctx, "2026-02-01")
	if err != nil {
		t.Fatalf("delete before: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed: %d", removed)
	}

	dates, err := database.Queries.ListBlockedDates(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(dates) != 1 || dates[0].Day != "2026-02-10" {
		t.Fatalf("remaining: %+v", dates)
	}
}

func TestBookingRequestLog(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	id, err := database.Queries.InsertBookingRequest(ctx, db.InsertBookingRequestParams{
		Name:           "Aoife Byrne",
		Email:          "aoife@example.com",
		Phone:          "+353 87 256 2643",
		Company:        "Byrne Media",
		PackageID:      "gold",
		PackageLabel:   "GOLD - Signature Broadcast",
		DepositDisplay: "€75",
		BalanceDisplay: "€674",
		PreferredDates: "Monday 2 February 2026",
		Notes:          "None provided",
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if id <= 0 {
		t.Fatalf("id: %d", id)
	}

	requests, err := database.Queries.ListBookingRequests(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(requests) != 1 {
		t.Fatalf("expected 1 request, got %d", len(requests))
	}
	if requests[0].PackageID != "gold" || requests[0].DepositDisplay != "€75" {
		t.Fatalf("request: %+v", requests[0])
	}
}

func TestRunInTxRollsBackOnError(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	wantErr := errors.New("boom")
	err := database.RunInTx(ctx, func(q *db.Queries) error {
		if err := q.UpsertBlockedDate(ctx, "2026-03-01", ""); err != nil {
			return err
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}

	dates, err := database.Queries.ListBlockedDates(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(dates) != 0 {
		t.Fatalf("rollback left %d rows", len(dates))
	}
}

func TestRunInTxCommits(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	err := database.RunInTx(ctx, func(q *db.Queries) error {
		return q.UpsertBlockedDate(ctx, "2026-03-01", "festival")
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	dates, err := database.Queries.ListBlockedDates(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(dates) != 1 || dates[0].Reason != "festival" {
		t.Fatalf("committed rows: %+v", dates)
	}
}
