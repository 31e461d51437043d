// Package filter compiles expr expressions into request predicates.
//
// Expressions see the request's properties as top-level variables (Title,
// MediaType, RequestedBy, TmdbID, TvdbID, Status) plus helper functions for
// strings and dates. Examples:
//
//	requestedBy("alice")
//	isMovie() and contains(Title, "star")
//	requestedAfter(daysAgo(30))
//
// Compilation errors are reported up front; a runtime evaluation error
// excludes the request rather than failing the run.
package filter
