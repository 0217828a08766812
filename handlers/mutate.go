// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/voter-roll/middleware"
	"github.com/danielhkuo/voter-roll/models"
)

// Save handles action=save.
// Bulk upsert of the whole collection: each record updates the row
// matched by (booth, voterNo) or is appended with the next row_idx. The
// client does not diff, so every submitted record is written.
func (h *RollHandler) Save(w http.ResponseWriter, body []byte) {
	var req models.SaveRequest
	if err := json.Unmarshal(body, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Data) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "no records to save")
		return
	}

	for _, v := range req.Data {
		if strings.TrimSpace(v.Booth) == "" || strings.TrimSpace(v.VoterNo) == "" {
			middleware.ErrorResponse(w, http.StatusBadRequest, "record missing booth or voterNo")
			return
		}
		if v.Aadhar != "" && len(v.Aadhar) != models.AadharLength {
			middleware.ErrorResponse(w, http.StatusBadRequest, "aadhar must be empty or 12 digits")
			return
		}
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	for _, v := range req.Data {
		res, err := tx.Exec(`UPDATE voter
			SET name = $1, relation_name = $2, gender = $3, original_age = $4,
			    aadhar = $5, dob = $6, calculated_age = $7, aadhar_photo = $8
			WHERE booth = $9 AND voter_no = $10`,
			v.Name, v.RelationName, v.Gender, v.OriginalAge,
			v.Aadhar, v.DOB, v.CalculatedAge, v.AadharPhoto,
			v.Booth, v.VoterNo)
		if err != nil {
			slog.Error("failed to update voter", "error", err, "booth", v.Booth, "voter_no", v.VoterNo)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save")
			return
		}

		affected, err := res.RowsAffected()
		if err != nil {
			slog.Error("rows affected unavailable", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save")
			return
		}
		if affected > 0 {
			continue
		}

		// No existing row: append with the next positional index.
		var nextIdx int
		if err := tx.QueryRow(`SELECT COALESCE(MAX(row_idx), 0) + 1 FROM voter`).Scan(&nextIdx); err != nil {
			slog.Error("failed to compute row index", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save")
			return
		}

		_, err = tx.Exec(`INSERT INTO voter
			(booth, ward, voter_no, house_no, name, relation_name, gender,
			 original_age, aadhar, dob, calculated_age, aadhar_photo, row_idx)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			v.Booth, v.Ward, v.VoterNo, v.HouseNo, v.Name, v.RelationName, v.Gender,
			v.OriginalAge, v.Aadhar, v.DOB, v.CalculatedAge, v.AadharPhoto, nextIdx)
		if err != nil {
			slog.Error("failed to insert voter", "error", err, "booth", v.Booth, "voter_no", v.VoterNo)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit save", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save")
		return
	}

	slog.Info("roll saved", "records", len(req.Data))

	middleware.JSONResponse(w, http.StatusOK, models.SaveResponse{
		Success: true,
		Message: "Saved successfully",
	})
}

// Delete handles action=delete.
// Archives the matched row into deleted_voter with the operator's reason
// and a timestamp, then removes it from the live roll.
func (h *RollHandler) Delete(w http.ResponseWriter, body []byte) {
	var req models.DeleteRequest
	if err := json.Unmarshal(body, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Booth == "" || req.VoterNo == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "booth and voterNo are required")
		return
	}
	if strings.TrimSpace(req.Reason) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "reason is required")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	var v models.VoterRecord
	err = tx.QueryRow(`SELECT booth, ward, voter_no, house_no, name, relation_name,
			gender, original_age, aadhar, dob, calculated_age
		FROM voter WHERE booth = $1 AND voter_no = $2`, req.Booth, req.VoterNo).
		Scan(&v.Booth, &v.Ward, &v.VoterNo, &v.HouseNo, &v.Name, &v.RelationName,
			&v.Gender, &v.OriginalAge, &v.Aadhar, &v.DOB, &v.CalculatedAge)
	if err != nil {
		middleware.JSONResponse(w, http.StatusNotFound, models.DeleteResponse{
			Success: false,
			Message: "Record not found",
		})
		return
	}

	_, err = tx.Exec(`INSERT INTO deleted_voter
		(id, booth, ward, voter_no, house_no, name, relation_name, gender,
		 original_age, aadhar, dob, calculated_age, reason, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		uuid.New().String(), v.Booth, v.Ward, v.VoterNo, v.HouseNo, v.Name,
		v.RelationName, v.Gender, v.OriginalAge, v.Aadhar, v.DOB, v.CalculatedAge,
		req.Reason, time.Now().UTC())
	if err != nil {
		slog.Error("failed to archive voter", "error", err, "booth", req.Booth, "voter_no", req.VoterNo)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete")
		return
	}

	_, err = tx.Exec(`DELETE FROM voter WHERE booth = $1 AND voter_no = $2`, req.Booth, req.VoterNo)
	if err != nil {
		slog.Error("failed to delete voter", "error", err, "booth", req.Booth, "voter_no", req.VoterNo)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit delete", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete")
		return
	}

	slog.Info("voter deleted", "booth", req.Booth, "voter_no", req.VoterNo, "reason", req.Reason)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteResponse{
		Success: true,
		Message: "Deleted and archived",
	})
}
