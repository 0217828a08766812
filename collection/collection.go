// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package collection

import (
	"strconv"
	"sync"

	"github.com/danielhkuo/voter-roll/models"
)

// Manager owns the in-memory ordered collection of editable records for
// the current view. Edits happen on the main event flow; the read lock
// exists for in-flight duplicate checks that re-read a record on
// completion.
type Manager struct {
	mu      sync.RWMutex
	records []models.VoterRecord
}

func NewManager() *Manager {
	return &Manager{}
}

// ReplaceAll discards the prior collection entirely. Used after any
// search; no merging across search contexts.
func (m *Manager) ReplaceAll(records []models.VoterRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make([]models.VoterRecord, len(records))
	copy(m.records, records)
}

// Records returns a snapshot copy of the collection.
func (m *Manager) Records() []models.VoterRecord {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.VoterRecord, len(m.records))
	copy(out, m.records)
	return out
}

// Len returns the number of records in the collection.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Get returns the record with the given composite key.
func (m *Manager) Get(booth, voterNo string) (models.VoterRecord, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.records {
		if v.SameIdentity(booth, voterNo) {
			return v, true
		}
	}
	return models.VoterRecord{}, false
}

// UpdateOne replaces the record matching updated's (booth, voterNo).
// Silently a no-op when no record matches: UI edit events can race with
// a collection replace, and that must never fault.
func (m *Manager) UpdateOne(updated models.VoterRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, v := range m.records {
		if v.SameIdentity(updated.Booth, updated.VoterNo) {
			m.records[i] = updated
			return
		}
	}
}

// AppendNew creates a locally-new record for the given household and
// appends it. The voter number is one greater than the largest numeric
// voter number present, or 1 for an empty collection.
func (m *Manager) AppendNew(booth, ward, houseNo string) models.VoterRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	maxNo := 0
	for _, v := range m.records {
		if n, err := strconv.Atoi(v.VoterNo); err == nil && n > maxNo {
			maxNo = n
		}
	}

	rec := models.VoterRecord{
		Booth:       booth,
		Ward:        ward,
		VoterNo:     strconv.Itoa(maxNo + 1),
		HouseNo:     houseNo,
		Gender:      models.GenderMale,
		OriginalAge: "0",
		IsNew:       true,
	}
	m.records = append(m.records, rec)
	return rec
}

// RemoveOne removes the record with the given composite key. No-op if
// absent.
func (m *Manager) RemoveOne(booth, voterNo string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, v := range m.records {
		if v.SameIdentity(booth, voterNo) {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return
		}
	}
}
