package db

import (
	"context"
	"database/sql"
	"time"
)

// DBTX matches both *sql.DB and *sql.Tx so queries run inside or
// outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Queries bundles the hand-written statements for this schema.
type Queries struct {
	db DBTX
}

func NewQueries(db DBTX) *Queries {
	return &Queries{db: db}
}

type BlockedDate struct {
	Day       string
	Reason    string
	CreatedAt time.Time
}

// ListBlockedDates returns all blocked days in ascending order.
func (q *Queries) ListBlockedDates(ctx context.Context) ([]BlockedDate, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT day, reason, created_at FROM blocked_dates ORDER BY day`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []BlockedDate
	for rows.Next() {
		var d BlockedDate
		if err := rows.Scan(&d.Day, &d.Reason, &d.CreatedAt); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// UpsertBlockedDate blocks a day, updating the reason when it is
// already blocked.
func (q *Queries) UpsertBlockedDate(ctx context.Context, day, reason string) error {
	_, err := q.db.ExecContext(ctx,
		`INSERT INTO blocked_dates (day, reason) VALUES (?, ?)
		 ON CONFLICT(day) DO UPDATE SET reason = excluded.reason`,
		day, reason,
	)
	return err
}

// DeleteBlockedDate unblocks a day. Reports whether a row was removed.
func (q *Queries) DeleteBlockedDate(ctx context.Context, day string) (bool, error) {
	result, err := q.db.ExecContext(ctx, `DELETE FROM blocked_dates WHERE day = ?`, day)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteBlockedDatesBefore removes blocked days strictly before the
// cutoff day key and returns how many were removed.
func (q *Queries) DeleteBlockedDatesBefore(ctx context.Context, cutoffDay string) (int64, error) {
	result, err := q.db.ExecContext(ctx, `DELETE FROM blocked_dates WHERE day < ?`, cutoffDay)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type InsertBookingRequestParams struct {
	Name           string
	Email          string
	Phone          string
	Company        string
	PackageID      string
	PackageLabel   string
	DepositDisplay string
	BalanceDisplay string
	PreferredDates string
	Notes          string
}

// InsertBookingRequest appends one submitted request to the audit log.
func (q *Queries) InsertBookingRequest(ctx context.Context, params InsertBookingRequestParams) (int64, error) {
	result, err := q.db.ExecContext(ctx,
		`INSERT INTO booking_requests
		 (name, email, phone, company, package_id, package_label,
		  deposit_display, balance_display, preferred_dates, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		params.Name, params.Email, params.Phone, params.Company,
		params.PackageID, params.PackageLabel,
		params.DepositDisplay, params.BalanceDisplay,
		params.PreferredDates, params.Notes,
	)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

type BookingRequest struct {
	ID             int64
	Name           string
	Email          string
	Phone          string
	Company        string
	PackageID      string
	PackageLabel   string
	DepositDisplay string
	BalanceDisplay string
	PreferredDates string
	Notes          string
	CreatedAt      time.Time
}

// ListBookingRequests returns the most recent requests first.
func (q *Queries) ListBookingRequests(ctx context.Context, limit int64) ([]BookingRequest, error) {
	rows, err := q.db.QueryContext(ctx,
		`SELECT id, name, email, phone, company, package_id, package_label,
		        deposit_display, balance_display, preferred_dates, notes, created_at
		 FROM booking_requests
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []BookingRequest
	for rows.Next() {
		var r BookingRequest
		if err := rows.Scan(
			&r.ID, &r.Name, &r.Email, &r.Phone, &r.Company,
			&r.PackageID, &r.PackageLabel,
			&r.DepositDisplay, &r.BalanceDisplay,
			&r.PreferredDates, &r.Notes, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}
