// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and wire types shared by the roll store
server and the entry client.

# Domain Types

  - VoterRecord: one household member row, keyed by (booth, voterNo)
  - MemberRef: minimal identity used in duplicate-check responses

A VoterRecord created locally carries IsNew=true and no RowIdx until its
first save. RowIdx is a positional hint into the store, never an identity.

# Wire Types

Request bodies (POST):

  - SaveRequest: action "save" with the full record collection
  - DeleteRequest: action "delete" with booth, voterNo and a reason

Response shapes:

  - MetadataResponse: booths, houseMap, optional wardMap
  - SearchResponse: records for a booth/house or name query
  - SaveResponse, DeleteResponse: success flag plus message
  - DuplicateCheckResponse: isDuplicate plus the conflicting member
  - ErrorResponse: uniform failure shape

# Constants

Gender values (Devanagari, as printed on the roll):

	GenderMale   = "पु"
	GenderFemale = "म"
	GenderOther  = "अन्य"

Query interface actions:

	getMetadata, search, searchByName, checkAadhar, save, delete

AadharLength (12) is the digit count of a complete Aadhaar number.
*/
package models
