// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - voter: the live roll, one row per household member
  - deleted_voter: archive of deleted rows with reason and timestamp

voter is keyed by (booth, voter_no). row_idx records entry order and is a
display hint only; matching always goes through the composite key.

# Indexes

  - voter.(booth, house_no): household search
  - voter.aadhar: duplicate check scan
  - deleted_voter.(booth, voter_no): archive lookup
*/
package db
