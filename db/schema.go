// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Live roll. One row per household member; identity is (booth, voter_no).
-- row_idx preserves entry order, a display hint only.
CREATE TABLE IF NOT EXISTS voter (
    booth TEXT NOT NULL,
    voter_no TEXT NOT NULL,
    ward TEXT NOT NULL DEFAULT '',
    house_no TEXT NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    relation_name TEXT NOT NULL DEFAULT '',
    gender TEXT NOT NULL DEFAULT '',
    original_age TEXT NOT NULL DEFAULT '',
    aadhar TEXT NOT NULL DEFAULT '',
    dob TEXT NOT NULL DEFAULT '',
    calculated_age TEXT NOT NULL DEFAULT '',
    aadhar_photo TEXT NOT NULL DEFAULT '',
    row_idx INTEGER NOT NULL,
    PRIMARY KEY (booth, voter_no)
);

CREATE INDEX IF NOT EXISTS idx_voter_booth_house ON voter(booth, house_no);
CREATE INDEX IF NOT EXISTS idx_voter_aadhar ON voter(aadhar);

-- Deletion archive. Deleted rows are copied here with the operator's
-- reason before leaving the live roll.
CREATE TABLE IF NOT EXISTS deleted_voter (
    id TEXT PRIMARY KEY,
    booth TEXT NOT NULL,
    voter_no TEXT NOT NULL,
    ward TEXT NOT NULL DEFAULT '',
    house_no TEXT NOT NULL,
    name TEXT NOT NULL DEFAULT '',
    relation_name TEXT NOT NULL DEFAULT '',
    gender TEXT NOT NULL DEFAULT '',
    original_age TEXT NOT NULL DEFAULT '',
    aadhar TEXT NOT NULL DEFAULT '',
    dob TEXT NOT NULL DEFAULT '',
    calculated_age TEXT NOT NULL DEFAULT '',
    reason TEXT NOT NULL,
    deleted_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_deleted_voter_key ON deleted_voter(booth, voter_no);
`
