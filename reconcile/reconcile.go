// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"context"

	"github.com/danielhkuo/voter-roll/collection"
	"github.com/danielhkuo/voter-roll/models"
	"github.com/danielhkuo/voter-roll/voterutil"
)

// DuplicateChecker is the remote lookup for an Aadhaar value held by a
// different voter number. Implementations degrade failures to a
// no-duplicate result.
type DuplicateChecker interface {
	CheckDuplicateAadhar(ctx context.Context, aadhar, excludeVoterNo string) models.DuplicateCheckResponse
}

// ConflictSink receives the conflicting member when a duplicate is
// found. Called from the goroutine running the check, so it must be
// safe to invoke off the main event flow.
type ConflictSink func(member models.MemberRef)

// Controller keeps one record's editable surface consistent with the
// collection and triggers duplicate detection without blocking typing.
type Controller struct {
	col     *collection.Manager
	checker DuplicateChecker
	sink    ConflictSink
}

func NewController(col *collection.Manager, checker DuplicateChecker, sink ConflictSink) *Controller {
	return &Controller{col: col, checker: checker, sink: sink}
}

// ApplyAadharEdit normalizes raw input, writes it into the collection
// synchronously, and reports whether the value reached full length. The
// collection reflects every keystroke before any network round trip.
func (c *Controller) ApplyAadharEdit(booth, voterNo, raw string) (normalized string, complete bool) {
	normalized = voterutil.NormalizeAadhar(raw)

	rec, ok := c.col.Get(booth, voterNo)
	if !ok {
		return normalized, false
	}
	rec.Aadhar = normalized
	c.col.UpdateOne(rec)

	return normalized, len(normalized) == models.AadharLength
}

// RunDuplicateCheck looks the value up remotely and hands a conflict to
// the sink. The result is keyed to the value that produced it: if the
// record's Aadhaar has moved on by the time the response arrives, the
// result is discarded instead of surfacing a stale notification.
func (c *Controller) RunDuplicateCheck(ctx context.Context, booth, voterNo, value string) {
	resp := c.checker.CheckDuplicateAadhar(ctx, value, voterNo)
	if !resp.IsDuplicate || resp.Member == nil {
		return
	}

	rec, ok := c.col.Get(booth, voterNo)
	if !ok || rec.Aadhar != value {
		// Stale: the field changed while the check was in flight.
		return
	}

	if c.sink != nil {
		c.sink(*resp.Member)
	}
}

// OnAadharInput is the per-keystroke entry point: synchronous collection
// write, then an asynchronous duplicate check once the value is
// complete. Returns the normalized value for display.
func (c *Controller) OnAadharInput(ctx context.Context, booth, voterNo, raw string) string {
	normalized, complete := c.ApplyAadharEdit(booth, voterNo, raw)
	if complete {
		go c.RunDuplicateCheck(ctx, booth, voterNo, normalized)
	}
	return normalized
}

// ApplyDOBEdit writes the birth date and its derived age to the
// collection as one update, so no intermediate state ever shows a date
// with a mismatched age.
func (c *Controller) ApplyDOBEdit(booth, voterNo, dob string) {
	rec, ok := c.col.Get(booth, voterNo)
	if !ok {
		return
	}
	rec.DOB = dob
	rec.CalculatedAge = voterutil.CalculatedAge(dob)
	c.col.UpdateOne(rec)
}

// ApplyExtraction applies a best-effort document extraction to the
// record: the Aadhaar goes through the normal edit path (including the
// duplicate check, run synchronously since the caller is already off
// the keystroke path) and the birth date through the age reconciler.
// Empty fields mean the extractor found nothing and leave the record
// untouched.
func (c *Controller) ApplyExtraction(ctx context.Context, booth, voterNo, aadhar, dob string) {
	if aadhar != "" {
		value, complete := c.ApplyAadharEdit(booth, voterNo, aadhar)
		if complete {
			c.RunDuplicateCheck(ctx, booth, voterNo, value)
		}
	}
	if dob != "" {
		c.ApplyDOBEdit(booth, voterNo, dob)
	}
}

// AttachPhoto stores the captured document image on the record. Opaque
// to the reconciliation core; persisted on the next save.
func (c *Controller) AttachPhoto(booth, voterNo, photo string) {
	rec, ok := c.col.Get(booth, voterNo)
	if !ok {
		return
	}
	rec.AadharPhoto = photo
	c.col.UpdateOne(rec)
}
