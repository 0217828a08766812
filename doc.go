// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the voter-roll store server.

The server exposes a spreadsheet-style query interface over a SQL-backed
electoral roll: field operators search household members by booth and
house number (or by name), edit demographic fields, and save the whole
working set back in one call. Deletions are archived with a reason.

# Starting the Server

	DATABASE_URL=file:roll.db go run .

Or with flags:

	go run . -p 4180 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string

Optional settings:

  - PORT (-p): server port (default: 4180)
  - DATABASE_TYPE (-t): sqlite (default) or postgres

A .env file in the working directory is loaded at startup.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: action-dispatched query interface (search, save, delete, ...)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request IDs, JSON helpers
  - models: domain and wire types
  - db: schema creation
  - cliparse: configuration parsing

The client-side entry workflow lives alongside it:

  - rollclient: typed HTTP client for the query interface
  - collection: in-memory editable record collection
  - reconcile: per-field edit reconciliation and duplicate detection
  - orchestrate: save validation gate and delete routing
  - ocr: best-effort identity-document extraction boundary
  - voterutil: pure normalization, age, and ordering helpers

See package documentation for each component.
*/
package main
