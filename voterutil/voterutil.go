// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voterutil

import (
	"strconv"
	"strings"
	"time"

	"github.com/danielhkuo/voter-roll/models"
)

// ReferenceDate is the fixed date displayed ages are computed against.
// Independent of the wall clock so every device shows the same age.
var ReferenceDate = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// NormalizeAadhar strips everything but digits and truncates to 12
// characters. Lossy by design: excess and non-digit input is dropped
// silently, never reported as an error.
func NormalizeAadhar(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteByte(byte(r))
		if b.Len() == models.AadharLength {
			break
		}
	}
	return b.String()
}

// AgeAsOf returns the whole-year age at ref for a YYYY-MM-DD birth date,
// clamped at zero. Empty or unparseable input yields "".
func AgeAsOf(ref time.Time, dob string) string {
	if dob == "" {
		return ""
	}
	d, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return ""
	}
	age := ref.Year() - d.Year()
	if ref.Month() < d.Month() || (ref.Month() == d.Month() && ref.Day() < d.Day()) {
		age--
	}
	if age < 0 {
		age = 0
	}
	return strconv.Itoa(age)
}

// CalculatedAge is AgeAsOf against the fixed ReferenceDate.
func CalculatedAge(dob string) string {
	return AgeAsOf(ReferenceDate, dob)
}
