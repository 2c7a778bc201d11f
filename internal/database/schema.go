package database

import (
	"context"
	"database/sql"
)

// schema contains the DDL for the visitor entry database.  Statements are
// idempotent so EnsureSchema can run on every startup.  Ordering matters:
// buildings first because users and visitors reference it.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS buildings (
		building_id      BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		building_name    VARCHAR(255) NOT NULL,
		building_address VARCHAR(512) NOT NULL DEFAULT '',
		UNIQUE KEY uq_buildings_name (building_name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS users (
		user_id       BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		username      VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		user_role     ENUM('super_admin','admin','guard') NOT NULL,
		building_id   BIGINT UNSIGNED NOT NULL,
		created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_username (username),
		CONSTRAINT fk_users_building FOREIGN KEY (building_id) REFERENCES buildings (building_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS visitors (
		id                BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name              VARCHAR(255) NOT NULL,
		room_number       VARCHAR(32) NOT NULL,
		purpose           VARCHAR(255) NOT NULL,
		visitor_mobile    VARCHAR(32) NOT NULL,
		room_owner_mobile VARCHAR(32) NOT NULL,
		photo_url         VARCHAR(512) NOT NULL,
		entry_time        DATETIME NOT NULL,
		exit_time         DATETIME NULL,
		status            ENUM('IN','OUT') NOT NULL DEFAULT 'IN',
		building_id       BIGINT UNSIGNED NOT NULL,
		KEY ix_visitors_building_entry (building_id, entry_time),
		CONSTRAINT fk_visitors_building FOREIGN KEY (building_id) REFERENCES buildings (building_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the tables if they do not exist yet.  It stops at the
// first failing statement and returns that error.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
