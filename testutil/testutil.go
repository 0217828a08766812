// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/voter-roll/cliparse"
	"github.com/danielhkuo/voter-roll/db"
	"github.com/danielhkuo/voter-roll/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// The pool must not open a second connection: each connection to
	// :memory: is its own database.
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { conn.Close() })
	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         4180,
		DatabaseURL:  ":memory:",
		DatabaseType: "sqlite",
	}
}

// SeedVoter inserts a roll row directly and returns the stored record.
func SeedVoter(t *testing.T, conn *sql.DB, v models.VoterRecord) models.VoterRecord {
	t.Helper()

	if v.RowIdx == 0 {
		if err := conn.QueryRow(`SELECT COALESCE(MAX(row_idx), 0) + 1 FROM voter`).Scan(&v.RowIdx); err != nil {
			t.Fatalf("Failed to compute row index: %v", err)
		}
	}

	_, err := conn.Exec(`INSERT INTO voter
		(booth, ward, voter_no, house_no, name, relation_name, gender,
		 original_age, aadhar, dob, calculated_age, aadhar_photo, row_idx)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		v.Booth, v.Ward, v.VoterNo, v.HouseNo, v.Name, v.RelationName, v.Gender,
		v.OriginalAge, v.Aadhar, v.DOB, v.CalculatedAge, v.AadharPhoto, v.RowIdx)
	if err != nil {
		t.Fatalf("Failed to seed voter: %v", err)
	}

	return v
}

// Voter returns a minimal valid record for the given identity.
func Voter(booth, voterNo, houseNo, name string) models.VoterRecord {
	return models.VoterRecord{
		Booth:        booth,
		VoterNo:      voterNo,
		HouseNo:      houseNo,
		Name:         name,
		RelationName: name + " Sr",
		Gender:       models.GenderMale,
		OriginalAge:  "30",
	}
}

// CountRows returns the row count of a table.
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
