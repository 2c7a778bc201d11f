// This file defines the Building model and repository methods. A Building is
// the tenancy unit of the whole system: every user belongs to one building
// and every visitor entry is pinned to the building of the guard or admin
// who recorded it. Buildings are created once and never updated or deleted.
package repository

import (
	"context"
	"database/sql"
	"strings"
)

// Building represents a building row. Address is optional and stored as an
// empty string when omitted.
type Building struct {
	ID      uint64 `json:"building_id"`
	Name    string `json:"building_name"`
	Address string `json:"building_address,omitempty"`
}

// BuildingRepo encapsulates all database queries related to buildings.
type BuildingRepo struct {
	db *sql.DB
}

// NewBuildingRepo constructs a BuildingRepo with the provided DB handle.
func NewBuildingRepo(db *sql.DB) *BuildingRepo {
	return &BuildingRepo{db: db}
}

// Create inserts a new building and returns its generated id. Name
// uniqueness is pre-checked for a friendly error; the unique index catches
// the concurrent-duplicate race and is mapped to the same sentinel.
func (r *BuildingRepo) Create(ctx context.Context, name, address string) (uint64, error) {
	var existing uint64
	err := r.db.QueryRowContext(ctx,
		"SELECT building_id FROM buildings WHERE building_name=? LIMIT 1", name).Scan(&existing)
	if err == nil {
		return 0, ErrBuildingExists
	}
	if err != sql.ErrNoRows {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO buildings (building_name, building_address) VALUES (?,?)",
		name, address)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrBuildingExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListAll returns all buildings ordered by name. It backs the public
// listing endpoint, so only id and name are selected.
func (r *BuildingRepo) ListAll(ctx context.Context) ([]*Building, error) {
	const q = `SELECT building_id, building_name FROM buildings ORDER BY building_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Building
	for rows.Next() {
		b := &Building{}
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
