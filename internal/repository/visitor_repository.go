// This file defines the Visitor model and repository methods for the visitor
// ledger. A visitor entry is created IN, belongs to exactly one building
// fixed at creation time, and can transition to OUT exactly once. All
// queries are scoped by building_id so one building can never observe or
// mutate another building's entries.
package repository

import (
	"context"
	"database/sql"
	"time"
)

// Visitor status values.
const (
	StatusIn  = "IN"
	StatusOut = "OUT"
)

// Visitor represents a visitor row, joined with the building name when
// listed. ExitTime is NULL while the visitor is still inside.
type Visitor struct {
	ID              uint64
	Name            string
	RoomNumber      string
	Purpose         string
	VisitorMobile   string
	RoomOwnerMobile string
	PhotoURL        string
	EntryTime       time.Time
	ExitTime        sql.NullTime
	Status          string
	BuildingID      uint64
	BuildingName    string
}

// VisitorRepo encapsulates all database queries related to visitors.
type VisitorRepo struct {
	db *sql.DB
}

// NewVisitorRepo constructs a VisitorRepo with the provided DB handle.
func NewVisitorRepo(db *sql.DB) *VisitorRepo {
	return &VisitorRepo{db: db}
}

// Create inserts a check-in. It stamps the entry time and IN status itself;
// callers supply the building id from the authenticated context, never from
// client input. On success the visitor's ID and EntryTime are populated.
func (r *VisitorRepo) Create(ctx context.Context, v *Visitor) error {
	v.EntryTime = time.Now().UTC().Truncate(time.Second)
	v.Status = StatusIn
	const q = `INSERT INTO visitors
	           (name, room_number, purpose, visitor_mobile, room_owner_mobile, photo_url, entry_time, status, building_id)
	           VALUES (?,?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q,
		v.Name, v.RoomNumber, v.Purpose, v.VisitorMobile, v.RoomOwnerMobile,
		v.PhotoURL, v.EntryTime, v.Status, v.BuildingID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)
	return nil
}

// ListByBuilding returns all entries for one building joined with the
// building name, most recent entry first. Each call re-queries current
// state.
func (r *VisitorRepo) ListByBuilding(ctx context.Context, buildingID uint64) ([]*Visitor, error) {
	const q = `SELECT v.id, v.name, v.room_number, v.purpose, v.visitor_mobile, v.room_owner_mobile,
	                  v.photo_url, v.entry_time, v.exit_time, v.status, v.building_id, b.building_name
	           FROM visitors v
	           JOIN buildings b ON v.building_id = b.building_id
	           WHERE v.building_id = ?
	           ORDER BY v.entry_time DESC`
	rows, err := r.db.QueryContext(ctx, q, buildingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Visitor
	for rows.Next() {
		v := new(Visitor)
		if err := rows.Scan(&v.ID, &v.Name, &v.RoomNumber, &v.Purpose, &v.VisitorMobile,
			&v.RoomOwnerMobile, &v.PhotoURL, &v.EntryTime, &v.ExitTime, &v.Status,
			&v.BuildingID, &v.BuildingName); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Checkout flips one visitor from IN to OUT and stamps the exit time. The
// whole transition is a single conditional UPDATE: id, building and current
// status are all part of the WHERE clause, so two concurrent checkouts of
// the same visitor resolve to exactly one success. Zero affected rows means
// unknown id, another building's visitor, or an already-OUT entry; all
// three report ErrVisitorNotFound.
func (r *VisitorRepo) Checkout(ctx context.Context, id, buildingID uint64) error {
	const q = `UPDATE visitors
	           SET status = ?, exit_time = ?
	           WHERE id = ? AND building_id = ? AND status = ?`
	res, err := r.db.ExecContext(ctx, q, StatusOut, time.Now().UTC().Truncate(time.Second), id, buildingID, StatusIn)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVisitorNotFound
	}
	return nil
}
