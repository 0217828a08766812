// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package collection manages the in-memory editable record set for the
current view (a booth/house selection or a name-query result).

# Operations

  - ReplaceAll: install a fresh search result, discarding the old set
  - UpdateOne: replace by (booth, voterNo); silent no-op when absent
  - AppendNew: create a locally-new record with the next voter number
  - RemoveOne: drop by (booth, voterNo); no-op when absent
  - Get / Records / Len: reads (Records returns a snapshot copy)

# Invariants

No two records in a loaded collection share a (booth, voterNo) pair;
updates match on that pair, never on slice position. AppendNew assigns
max(numeric voterNo)+1, so an initially-empty collection numbers its
records 1..n. New records carry IsNew=true, the default gender sentinel
and an original age of "0" until the operator fills them in.

The collection is the transient editing surface only - the remote store
is the sole durable copy.
*/
package collection
