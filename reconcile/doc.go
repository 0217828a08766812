// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reconcile mediates between a record's editable fields and the
collection, and triggers duplicate detection as the operator types.

# Aadhaar Field

The field moves through Empty -> Partial (1-11 digits) -> Complete
(12 digits). Every keystroke is normalized and written to the collection
synchronously; only the transition into Complete issues a duplicate
check. The check runs asynchronously and its result is keyed to the
value that produced it - a response arriving after the field has changed
again is discarded rather than surfacing a stale conflict.

# Birth Date

ApplyDOBEdit recomputes the derived age against the fixed reference date
and writes date and age as one update; the two fields are never visible
in a mismatched state.

# Document Extraction

ApplyExtraction feeds a best-effort OCR result ({aadhar, dob}, either
possibly empty) through the same edit paths, and AttachPhoto stores the
captured image for the next save.
*/
package reconcile
