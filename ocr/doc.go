// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ocr is the boundary to the image-to-text extraction service used
for auto-filling the document number and birth date from a captured
identity-document photo.

Extraction is strictly best-effort: a result is only usable when the
Aadhaar came back at full length and the date parses; anything else is
reported as empty. Callers feed the result through
reconcile.ApplyExtraction so it takes the same validation path as typed
input.
*/
package ocr
