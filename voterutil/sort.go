// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voterutil

import "sort"

// NaturalLess compares two strings numeric-then-lexicographic: runs of
// digits compare by value, everything else byte-wise. Gives the dropdown
// ordering "2" < "10" < "B1" that booth and house lists need.
func NaturalLess(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			// Compare the full digit runs by value, then by length
			// so "01" sorts before "1" deterministically.
			ia, ja := i, j
			for ia < len(a) && isDigit(a[ia]) {
				ia++
			}
			for ja < len(b) && isDigit(b[ja]) {
				ja++
			}
			na, nb := trimZeros(a[i:ia]), trimZeros(b[j:ja])
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			if ia-i != ja-j {
				return ia-i > ja-j
			}
			i, j = ia, ja
			continue
		}
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}
	return len(a)-i < len(b)-j
}

// SortNatural sorts the slice in place using NaturalLess.
func SortNatural(list []string) {
	sort.Slice(list, func(i, j int) bool { return NaturalLess(list[i], list[j]) })
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}
