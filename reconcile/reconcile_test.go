// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reconcile

import (
	"context"
	"sync"
	"testing"

	"github.com/danielhkuo/voter-roll/collection"
	"github.com/danielhkuo/voter-roll/models"
)

// fakeChecker records every lookup and returns a canned response.
type fakeChecker struct {
	mu    sync.Mutex
	calls []string
	resp  models.DuplicateCheckResponse
}

func (f *fakeChecker) CheckDuplicateAadhar(_ context.Context, aadhar, _ string) models.DuplicateCheckResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, aadhar)
	return f.resp
}

func (f *fakeChecker) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func setup(t *testing.T) (*collection.Manager, *fakeChecker, *[]models.MemberRef, *Controller) {
	t.Helper()

	col := collection.NewManager()
	col.ReplaceAll([]models.VoterRecord{
		{Booth: "12", VoterNo: "1", HouseNo: "5", Name: "Ram"},
	})

	checker := &fakeChecker{}
	var conflicts []models.MemberRef
	var mu sync.Mutex
	ctrl := NewController(col, checker, func(m models.MemberRef) {
		mu.Lock()
		defer mu.Unlock()
		conflicts = append(conflicts, m)
	})
	return col, checker, &conflicts, ctrl
}

func TestApplyAadharEdit_WritesEveryKeystroke(t *testing.T) {
	col, _, _, ctrl := setup(t)

	normalized, complete := ctrl.ApplyAadharEdit("12", "1", "12a3")
	if normalized != "123" || complete {
		t.Fatalf("got (%q, %v), want (123, false)", normalized, complete)
	}

	rec, _ := col.Get("12", "1")
	if rec.Aadhar != "123" {
		t.Errorf("collection not updated synchronously: aadhar = %q", rec.Aadhar)
	}
}

func TestApplyAadharEdit_CompleteAtTwelveDigits(t *testing.T) {
	_, _, _, ctrl := setup(t)

	tests := []struct {
		input    string
		complete bool
	}{
		{"12345678901", false},      // 11 digits: Partial
		{"123456789012", true},      // exactly 12: Complete
		{"1234 5678 9012 99", true}, // excess truncated to 12
		{"", false},
	}

	for _, tt := range tests {
		if _, complete := ctrl.ApplyAadharEdit("12", "1", tt.input); complete != tt.complete {
			t.Errorf("ApplyAadharEdit(%q) complete = %v, want %v", tt.input, complete, tt.complete)
		}
	}
}

func TestRunDuplicateCheck_SurfacesConflict(t *testing.T) {
	_, checker, conflicts, ctrl := setup(t)
	checker.resp = models.DuplicateCheckResponse{
		IsDuplicate: true,
		Member:      &models.MemberRef{Booth: "9", VoterNo: "4", Name: "Shyam"},
	}

	ctrl.ApplyAadharEdit("12", "1", "123456789012")
	ctrl.RunDuplicateCheck(context.Background(), "12", "1", "123456789012")

	if len(*conflicts) != 1 || (*conflicts)[0].Name != "Shyam" {
		t.Fatalf("conflicts = %v, want one entry for Shyam", *conflicts)
	}
}

func TestRunDuplicateCheck_DiscardsStaleResult(t *testing.T) {
	_, checker, conflicts, ctrl := setup(t)
	checker.resp = models.DuplicateCheckResponse{
		IsDuplicate: true,
		Member:      &models.MemberRef{Booth: "9", VoterNo: "4"},
	}

	// The field moved on while the check for the old value was in
	// flight: the old result must be dropped.
	ctrl.ApplyAadharEdit("12", "1", "999999999999")
	ctrl.RunDuplicateCheck(context.Background(), "12", "1", "123456789012")

	if len(*conflicts) != 0 {
		t.Errorf("stale result surfaced: %v", *conflicts)
	}
}

func TestRunDuplicateCheck_NoConflictNoSink(t *testing.T) {
	_, checker, conflicts, ctrl := setup(t)
	checker.resp = models.DuplicateCheckResponse{IsDuplicate: false}

	ctrl.ApplyAadharEdit("12", "1", "123456789012")
	ctrl.RunDuplicateCheck(context.Background(), "12", "1", "123456789012")

	if len(*conflicts) != 0 {
		t.Errorf("sink invoked without a duplicate: %v", *conflicts)
	}
}

func TestOnAadharInput_ChecksOnlyAtFullLength(t *testing.T) {
	_, checker, _, ctrl := setup(t)

	// Partial values never trigger a check, synchronously or otherwise.
	ctrl.ApplyAadharEdit("12", "1", "12345678901")
	if _, complete := ctrl.ApplyAadharEdit("12", "1", "12345678901"); complete {
		t.Fatal("11 digits reported complete")
	}
	if checker.callCount() != 0 {
		t.Fatalf("check issued below full length: %d calls", checker.callCount())
	}

	// Full length triggers exactly one check with the normalized value.
	value, complete := ctrl.ApplyAadharEdit("12", "1", "123456789012")
	if !complete {
		t.Fatal("12 digits not reported complete")
	}
	ctrl.RunDuplicateCheck(context.Background(), "12", "1", value)
	if checker.callCount() != 1 {
		t.Fatalf("expected exactly one check, got %d", checker.callCount())
	}
	checker.mu.Lock()
	got := checker.calls[0]
	checker.mu.Unlock()
	if got != "123456789012" {
		t.Errorf("check called with %q, want the normalized value", got)
	}
}

func TestApplyDOBEdit_AtomicAgeUpdate(t *testing.T) {
	col, _, _, ctrl := setup(t)

	ctrl.ApplyDOBEdit("12", "1", "2020-01-01")
	rec, _ := col.Get("12", "1")
	if rec.DOB != "2020-01-01" || rec.CalculatedAge != "6" {
		t.Errorf("got dob=%q age=%q, want 2020-01-01/6", rec.DOB, rec.CalculatedAge)
	}

	// Clearing the date clears the age with it.
	ctrl.ApplyDOBEdit("12", "1", "")
	rec, _ = col.Get("12", "1")
	if rec.DOB != "" || rec.CalculatedAge != "" {
		t.Errorf("cleared dob left age %q", rec.CalculatedAge)
	}

	// Invalid dates yield an empty age, not zero and not an error.
	ctrl.ApplyDOBEdit("12", "1", "31-31-2020")
	rec, _ = col.Get("12", "1")
	if rec.CalculatedAge != "" {
		t.Errorf("invalid dob produced age %q", rec.CalculatedAge)
	}
}

func TestApplyExtraction(t *testing.T) {
	col, checker, _, ctrl := setup(t)

	ctrl.ApplyExtraction(context.Background(), "12", "1", "123456789012", "2000-06-15")

	rec, _ := col.Get("12", "1")
	if rec.Aadhar != "123456789012" {
		t.Errorf("aadhar = %q", rec.Aadhar)
	}
	if rec.DOB != "2000-06-15" || rec.CalculatedAge != "25" {
		t.Errorf("dob/age = %q/%q", rec.DOB, rec.CalculatedAge)
	}
	if checker.callCount() != 1 {
		t.Errorf("extraction should run the duplicate check once, got %d", checker.callCount())
	}

	// Empty extraction leaves the record untouched.
	ctrl.ApplyExtraction(context.Background(), "12", "1", "", "")
	rec2, _ := col.Get("12", "1")
	if rec2.Aadhar != rec.Aadhar || rec2.DOB != rec.DOB {
		t.Error("empty extraction mutated the record")
	}
}

func TestEditsForUnknownRecordNeverFault(t *testing.T) {
	_, checker, _, ctrl := setup(t)

	// A concurrent collection replace can orphan an edit event.
	if _, complete := ctrl.ApplyAadharEdit("404", "404", "123456789012"); complete {
		t.Error("edit for unknown record reported complete")
	}
	ctrl.ApplyDOBEdit("404", "404", "2020-01-01")
	ctrl.AttachPhoto("404", "404", "data:image/jpeg;base64,xxxx")

	if checker.callCount() != 0 {
		t.Errorf("unknown-record edit triggered a check")
	}
}
