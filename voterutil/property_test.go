// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voterutil

import (
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Normalization is idempotent and always yields at most 12 digits,
// for arbitrary input.
func TestProperty_NormalizeAadhar(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("idempotent", prop.ForAll(
		func(s string) bool {
			once := NormalizeAadhar(s)
			return NormalizeAadhar(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("digits only, length at most 12", prop.ForAll(
		func(s string) bool {
			out := NormalizeAadhar(s)
			if len(out) > 12 {
				return false
			}
			for i := 0; i < len(out); i++ {
				if out[i] < '0' || out[i] > '9' {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// Age is a pure function of the birth date: deterministic, never
// negative, and consistent with shifting the reference year.
func TestProperty_AgeAsOf(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	ref := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	dobGen := gen.Struct(reflect.TypeOf(timeParts{}), map[string]gopter.Gen{
		"Year":  gen.IntRange(1900, 2030),
		"Month": gen.IntRange(1, 12),
		"Day":   gen.IntRange(1, 28),
	})

	properties.Property("deterministic and non-negative", prop.ForAll(
		func(p timeParts) bool {
			dob := p.format()
			first := AgeAsOf(ref, dob)
			second := AgeAsOf(ref, dob)
			if first != second {
				return false
			}
			return first != "" && first[0] != '-'
		},
		dobGen,
	))

	properties.Property("age differs by at most one from year delta", prop.ForAll(
		func(p timeParts) bool {
			age := AgeAsOf(ref, p.format())
			delta := 2026 - p.Year
			if delta < 0 {
				return age == "0"
			}
			return age == itoaTest(delta) || age == itoaTest(delta-1)
		},
		dobGen,
	))

	properties.TestingRun(t)
}

type timeParts struct {
	Year  int
	Month int
	Day   int
}

func (p timeParts) format() string {
	return time.Date(p.Year, time.Month(p.Month), p.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func itoaTest(n int) string {
	if n < 0 {
		n = 0
	}
	return strconv.Itoa(n)
}
