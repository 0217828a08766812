// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package orchestrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/voter-roll/collection"
	"github.com/danielhkuo/voter-roll/models"
)

var (
	// ErrReasonRequired rejects a remote delete without an audit reason.
	ErrReasonRequired = errors.New("a reason is required to delete a saved record")

	// ErrNotInCollection means the delete target is not loaded.
	ErrNotInCollection = errors.New("record not in current collection")
)

// ValidationError reports a record that failed the pre-save format
// check. No network call is made when validation fails.
type ValidationError struct {
	Booth   string
	VoterNo string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("voter %s/%s: aadhar must be empty or %d digits",
		e.Booth, e.VoterNo, models.AadharLength)
}

// Store is the remote side of the save/delete protocol.
type Store interface {
	Save(ctx context.Context, records []models.VoterRecord) (string, error)
	Delete(ctx context.Context, booth, voterNo, reason string) (string, error)
}

// Orchestrator reconciles local edits against the remote store.
type Orchestrator struct {
	col   *collection.Manager
	store Store
}

func NewOrchestrator(col *collection.Manager, store Store) *Orchestrator {
	return &Orchestrator{col: col, store: store}
}

// SaveAll validates the collection and submits it to the store in one
// call. An empty collection is a no-op. A single malformed Aadhaar
// aborts before any network call - all-or-nothing at the validation
// stage. The snapshot taken here is what gets saved; edits made while
// the call is in flight need a subsequent save.
func (o *Orchestrator) SaveAll(ctx context.Context) (string, error) {
	records := o.col.Records()
	if len(records) == 0 {
		return "", nil
	}

	for _, v := range records {
		if v.Aadhar != "" && len(v.Aadhar) != models.AadharLength {
			return "", &ValidationError{Booth: v.Booth, VoterNo: v.VoterNo}
		}
	}

	return o.store.Save(ctx, records)
}

// DeleteOne removes a record. A locally-new record vanishes without
// contacting the store; a persisted record is archived remotely with
// the reason first, and stays in the collection if that fails so the
// operator can retry.
func (o *Orchestrator) DeleteOne(ctx context.Context, booth, voterNo, reason string) error {
	rec, ok := o.col.Get(booth, voterNo)
	if !ok {
		return ErrNotInCollection
	}

	if rec.IsNew {
		o.col.RemoveOne(booth, voterNo)
		return nil
	}

	if reason == "" {
		return ErrReasonRequired
	}

	if _, err := o.store.Delete(ctx, booth, voterNo, reason); err != nil {
		return err
	}
	o.col.RemoveOne(booth, voterNo)
	return nil
}
