// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"

	"github.com/danielhkuo/voter-roll/cliparse"
	"github.com/danielhkuo/voter-roll/middleware"
	"github.com/danielhkuo/voter-roll/models"
)

// RollHandler serves the action-dispatched query interface over the roll
// store. All operations live under one endpoint and select on the action
// name, GET for reads and POST for mutations.
type RollHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRollHandler(db *sql.DB, cfg cliparse.Config) *RollHandler {
	return &RollHandler{db: db, cfg: cfg}
}

// Exec handles GET /exec
func (h *RollHandler) Exec(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Query().Get("action") {
	case models.ActionGetMetadata:
		h.GetMetadata(w, r)
	case models.ActionSearch:
		h.Search(w, r)
	case models.ActionSearchByName:
		h.SearchByName(w, r)
	case models.ActionCheckAadhar:
		h.CheckAadhar(w, r)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid Action")
	}
}

// ExecPost handles POST /exec
func (h *RollHandler) ExecPost(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unreadable body")
		return
	}

	// Peek at the action before decoding the full payload.
	var probe struct {
		Action string `json:"action"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	switch probe.Action {
	case models.ActionSave:
		h.Save(w, body)
	case models.ActionDelete:
		h.Delete(w, body)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid Action")
	}
}
