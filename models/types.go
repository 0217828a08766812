// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Gender constants. Roll values are stored in Devanagari, matching the
// printed electoral roll.
const (
	GenderMale   = "पु"
	GenderFemale = "म"
	GenderOther  = "अन्य"
)

// Action names for the query interface
const (
	ActionGetMetadata  = "getMetadata"
	ActionSearch       = "search"
	ActionSearchByName = "searchByName"
	ActionCheckAadhar  = "checkAadhar"
	ActionSave         = "save"
	ActionDelete       = "delete"
)

// AadharLength is the digit count of a complete Aadhaar number.
const AadharLength = 12

// Domain types

// VoterRecord is one household member row. Identity is the composite
// (Booth, VoterNo) pair; RowIdx is a positional hint only and must never
// be used for matching.
type VoterRecord struct {
	Booth         string `json:"booth"`
	Ward          string `json:"ward,omitempty"`
	VoterNo       string `json:"voterNo"`
	HouseNo       string `json:"houseNo"`
	Name          string `json:"name"`
	RelationName  string `json:"relationName"`
	Gender        string `json:"gender"`
	OriginalAge   string `json:"originalAge"`
	Aadhar        string `json:"aadhar"`
	DOB           string `json:"dob"`
	CalculatedAge string `json:"calculatedAge"`
	AadharPhoto   string `json:"aadharPhoto,omitempty"`
	RowIdx        int    `json:"rowIdx,omitempty"`
	IsNew         bool   `json:"isNew,omitempty"`
}

// SameIdentity reports whether the record refers to the given roll entry.
func (v VoterRecord) SameIdentity(booth, voterNo string) bool {
	return v.Booth == booth && v.VoterNo == voterNo
}

// MemberRef is the minimal identity of a record, returned by duplicate
// checks for display.
type MemberRef struct {
	Booth   string `json:"booth"`
	VoterNo string `json:"voterNo"`
	HouseNo string `json:"houseNo"`
	Name    string `json:"name"`
}

// Request types

type SaveRequest struct {
	Action string        `json:"action"`
	Data   []VoterRecord `json:"data"`
}

type DeleteRequest struct {
	Action  string `json:"action"`
	Booth   string `json:"booth"`
	VoterNo string `json:"voterNo"`
	Reason  string `json:"reason"`
}

// Response types

type MetadataResponse struct {
	Success  bool                           `json:"success"`
	Booths   []string                       `json:"booths"`
	HouseMap map[string][]string            `json:"houseMap"`
	WardMap  map[string]map[string][]string `json:"wardMap,omitempty"`
	Error    string                         `json:"error,omitempty"`
}

type SearchResponse struct {
	Success bool          `json:"success"`
	Data    []VoterRecord `json:"data"`
	Error   string        `json:"error,omitempty"`
}

type SaveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type DuplicateCheckResponse struct {
	IsDuplicate bool       `json:"isDuplicate"`
	Member      *MemberRef `json:"member,omitempty"`
}

// Error response

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
