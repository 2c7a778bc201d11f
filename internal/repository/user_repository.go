package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/visitor-entry-system/internal/utils"
)

// User mirrors the 'users' table. Users are immutable after creation: no
// update or delete path exists.
type User struct {
	ID           uint64
	Username     string
	PasswordHash string
	Role         string
	BuildingID   uint64
	CreatedAt    time.Time
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts the user, returning its ID.
// The existence pre-check gives a friendly conflict error; the unique index
// on username is the backstop when two identical registrations race, so a
// duplicate-key failure from the insert maps to ErrUsernameExists as well.
func (r *UserRepo) Create(ctx context.Context, username, password, role string, buildingID uint64, cost int) (uint64, error) {
	username = strings.TrimSpace(username)
	var existing uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id FROM users WHERE username=? LIMIT 1", username).Scan(&existing)
	if err == nil {
		return 0, ErrUsernameExists
	}
	if err != sql.ErrNoRows {
		return 0, err
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (username, password_hash, user_role, building_id) VALUES (?,?,?,?)",
		username, hash, role, buildingID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	username = strings.TrimSpace(username)
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id,username,password_hash,user_role,building_id,created_at FROM users WHERE username=? LIMIT 1",
		username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.BuildingID, &u.CreatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (User, error) {
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT user_id,username,password_hash,user_role,building_id,created_at FROM users WHERE user_id=? LIMIT 1",
		id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.BuildingID, &u.CreatedAt)
	return u, err
}
