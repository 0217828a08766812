// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package orchestrate runs the save and delete protocols between the local
collection and the remote store.

# Save

SaveAll snapshots the collection, validates every Aadhaar (empty or
exactly 12 digits), and submits the whole set as one bulk upsert. A
validation failure aborts before any network traffic. On success the
caller should re-issue the last search: the save is a blind upsert and
the store may normalize values. On failure nothing local changed, so
there is no rollback.

# Delete

DeleteOne routes by record state: locally-new records are removed
in-memory only; persisted records require a reason, are archived
remotely first, and are removed locally only after the store confirms.
A failed remote delete leaves the record in place for retry.

Concurrent edits from two clients to the same record are last-save-wins
with silent overwrite - a documented limitation of the single-operator
deployment model, not a defect.
*/
package orchestrate
