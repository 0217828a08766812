// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the roll store's query interface.

All operations share one endpoint and dispatch on the action name,
keeping the wire contract of the spreadsheet deployment this store
replaces:

	GET  /exec?action=getMetadata
	GET  /exec?action=search&booth=12&house=5[&ward=3]
	GET  /exec?action=searchByName&query=kumar
	GET  /exec?action=checkAadhar&aadhar=...&voterNo=...
	POST /exec  {"action":"save","data":[...]}
	POST /exec  {"action":"delete","booth":"12","voterNo":"5","reason":"..."}

# Semantics

  - getMetadata: booths and the booth -> house list, natural-sorted;
    wardMap included only when the roll carries wards
  - search: exact match on trimmed booth/house; empty result is success
  - searchByName: case-insensitive substring on name or relation name
  - checkAadhar: first row with the same Aadhaar under a different voter
    number; failures degrade to isDuplicate:false
  - save: bulk upsert of the full collection in one transaction
  - delete: archive into deleted_voter with a reason, then remove

Failures are reported in-body with the uniform {success:false, ...}
shape so the entry client never has to interpret a bare status code.
*/
package handlers
