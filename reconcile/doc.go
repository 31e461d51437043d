// Package reconcile cross-references approved Overseerr requests against the
// Sonarr and Radarr catalogs.
//
// A run fetches the approved request collection, snapshots each reachable
// downstream catalog once, and walks the requests in fetch order. Items the
// broker considers satisfied but which never reached the downstream service
// are reported (check mode) or re-submitted directly to that service (sync
// mode). Direct submission is deliberate: it bypasses whatever broker-side
// state machine originally failed to push the request.
//
// Sync mode repairs as it scans rather than collecting and batch-adding:
// the operator gets real-time feedback, at the cost of no rollback across
// the batch. A failed add stays in the final report, so the sync summary is
// a superset of what check mode would still consider missing. A single
// item's failure never aborts the run.
package reconcile
