// Package overseerr provides a client for interacting with the Overseerr API.
//
// Overseerr is a request management and media discovery tool for Plex/Jellyfin/Emby.
// This package implements the broker side of reconciliation: fetching the
// request collection with pagination, resolving display titles, and asking the
// broker to re-push individual requests.
//
// # Schema tolerance
//
// Overseerr's request payload has drifted across versions: title fields move
// between the nested media object and the top level, and TVDB ids are often
// absent for series. Parsing is therefore defensive — each item is decoded
// independently and dropped with a warning when it lacks an id, and title
// resolution walks an ordered list of fallback fields ending in a synthetic
// "Request #<id>" placeholder.
//
// # Error Handling
//
// Read operations return errors from the shared httpclient package.
// RetryRequest converts failure into a boolean plus a logged message, since
// its callers only care whether the push was accepted.
package overseerr
