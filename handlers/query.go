// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/voter-roll/middleware"
	"github.com/danielhkuo/voter-roll/models"
	"github.com/danielhkuo/voter-roll/voterutil"
)

const voterColumns = `booth, ward, voter_no, house_no, name, relation_name,
	gender, original_age, aadhar, dob, calculated_age, aadhar_photo, row_idx`

// GetMetadata handles action=getMetadata.
// Returns the booth list and the booth -> house-number map that populate
// the selection dropdowns, both in natural order.
func (h *RollHandler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`SELECT booth, ward, house_no FROM voter`)
	if err != nil {
		slog.Error("failed to query metadata", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	houseSet := map[string]map[string]bool{}
	wardSet := map[string]map[string]map[string]bool{}
	hasWards := false

	for rows.Next() {
		var booth, ward, house string
		if err := rows.Scan(&booth, &ward, &house); err != nil {
			slog.Error("failed to scan metadata row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		booth = strings.TrimSpace(booth)
		ward = strings.TrimSpace(ward)
		house = strings.TrimSpace(house)
		if booth == "" || house == "" {
			continue
		}
		if houseSet[booth] == nil {
			houseSet[booth] = map[string]bool{}
		}
		houseSet[booth][house] = true
		if ward != "" {
			hasWards = true
			if wardSet[booth] == nil {
				wardSet[booth] = map[string]map[string]bool{}
			}
			if wardSet[booth][ward] == nil {
				wardSet[booth][ward] = map[string]bool{}
			}
			wardSet[booth][ward][house] = true
		}
	}
	if err := rows.Err(); err != nil {
		slog.Error("metadata row iteration failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.MetadataResponse{
		Success:  true,
		Booths:   []string{},
		HouseMap: map[string][]string{},
	}
	for booth, houses := range houseSet {
		resp.Booths = append(resp.Booths, booth)
		resp.HouseMap[booth] = sortedKeys(houses)
	}
	voterutil.SortNatural(resp.Booths)

	if hasWards {
		resp.WardMap = map[string]map[string][]string{}
		for booth, wards := range wardSet {
			resp.WardMap[booth] = map[string][]string{}
			for ward, houses := range wards {
				resp.WardMap[booth][ward] = sortedKeys(houses)
			}
		}
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Search handles action=search.
// Exact match on trimmed booth and house number, optionally narrowed by
// ward. Zero rows is a success, not an error.
func (h *RollHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	booth := strings.TrimSpace(q.Get("booth"))
	ward := strings.TrimSpace(q.Get("ward"))
	house := strings.TrimSpace(q.Get("house"))

	if booth == "" || house == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "booth and house are required")
		return
	}

	query := `SELECT ` + voterColumns + ` FROM voter WHERE booth = $1 AND house_no = $2`
	args := []interface{}{booth, house}
	if ward != "" {
		query += ` AND ward = $3`
		args = append(args, ward)
	}
	query += ` ORDER BY row_idx`

	records, err := h.scanVoters(query, args...)
	if err != nil {
		slog.Error("search failed", "error", err, "booth", booth, "house", house)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SearchResponse{Success: true, Data: records})
}

// SearchByName handles action=searchByName.
// Case-insensitive substring match on name or relation name. An empty
// query returns an empty success result.
func (h *RollHandler) SearchByName(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		middleware.JSONResponse(w, http.StatusOK, models.SearchResponse{Success: true, Data: []models.VoterRecord{}})
		return
	}

	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	records, err := h.scanVoters(`SELECT `+voterColumns+` FROM voter
		WHERE lower(name) LIKE $1 ESCAPE '\'
		   OR lower(relation_name) LIKE $1 ESCAPE '\'
		ORDER BY row_idx`, pattern)
	if err != nil {
		slog.Error("name search failed", "error", err, "query", query)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SearchResponse{Success: true, Data: records})
}

// CheckAadhar handles action=checkAadhar.
// Scans for a row holding the same Aadhaar under a different voter
// number and returns the first match's minimal identity.
func (h *RollHandler) CheckAadhar(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	aadhar := strings.TrimSpace(q.Get("aadhar"))
	voterNo := strings.TrimSpace(q.Get("voterNo"))

	// Never match rows whose Aadhaar has not been entered yet.
	if aadhar == "" {
		middleware.JSONResponse(w, http.StatusOK, models.DuplicateCheckResponse{IsDuplicate: false})
		return
	}

	var member models.MemberRef
	err := h.db.QueryRow(`SELECT booth, voter_no, house_no, name FROM voter
		WHERE aadhar = $1 AND voter_no <> $2 LIMIT 1`, aadhar, voterNo).
		Scan(&member.Booth, &member.VoterNo, &member.HouseNo, &member.Name)
	if err != nil {
		// sql.ErrNoRows and transport errors both degrade to "no
		// duplicate"; a false negative must not block data entry.
		middleware.JSONResponse(w, http.StatusOK, models.DuplicateCheckResponse{IsDuplicate: false})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DuplicateCheckResponse{
		IsDuplicate: true,
		Member:      &member,
	})
}

func (h *RollHandler) scanVoters(query string, args ...interface{}) ([]models.VoterRecord, error) {
	rows, err := h.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.VoterRecord{}
	for rows.Next() {
		var v models.VoterRecord
		if err := rows.Scan(
			&v.Booth, &v.Ward, &v.VoterNo, &v.HouseNo, &v.Name, &v.RelationName,
			&v.Gender, &v.OriginalAge, &v.Aadhar, &v.DOB, &v.CalculatedAge,
			&v.AadharPhoto, &v.RowIdx,
		); err != nil {
			return nil, err
		}
		records = append(records, v)
	}
	return records, rows.Err()
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	voterutil.SortNatural(keys)
	return keys
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
