// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package rollclient is the typed HTTP client for the roll store's query
interface.

# Usage

	client := rollclient.NewClient("https://host/exec", nil)
	records, err := client.Search(ctx, "12", "", "5")

The endpoint URL is injected at construction; nothing is read from
ambient global state.

# Operations

  - FetchMetadata: booths and house-number maps for selection controls
  - Search: exact booth/house match, optional ward
  - SearchByName: substring match; empty query skips the network
  - Save: bulk upsert of the whole collection
  - Delete: archive-then-remove with a required reason
  - CheckDuplicateAadhar: first conflicting row, degrading on failure

# Failure Model

Transport problems (unreachable, timeout, non-2xx without a parseable
body, malformed JSON) wrap ErrConnectivity. Failures the store declares
in a well-formed body surface as *RemoteError carrying the store's
message verbatim. CheckDuplicateAadhar is the exception: every failure
degrades to isDuplicate:false with a warning log, because a false
negative is preferable to blocking data entry.

Every call reads and parses the response body; success is never assumed
from the absence of a transport error.
*/
package rollclient
