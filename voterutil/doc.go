// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voterutil holds the pure helper functions of the roll system.

# Aadhaar Normalization

NormalizeAadhar reduces free-form input to at most 12 digits:

	NormalizeAadhar("1234 5678 9012") // "123456789012"
	NormalizeAadhar("12ab34")         // "1234"

Idempotent and lossy by design; there is no error path.

# Age Computation

Displayed ages are computed against the fixed ReferenceDate (2026-01-01),
not the wall clock:

	CalculatedAge("2020-01-01") // "6"
	CalculatedAge("2020-01-02") // "5" (birthday not yet reached)
	CalculatedAge("")           // ""
	CalculatedAge("garbage")    // ""

Future dates clamp to "0"; the result is never negative.

# Natural Ordering

NaturalLess and SortNatural give the numeric-then-lexicographic ordering
used for booth and house number lists ("2" before "10" before "B1").
*/
package voterutil
