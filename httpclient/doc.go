// Package httpclient provides the shared HTTP executor used by every service
// client in this tool.
//
// All three services (Overseerr, Sonarr, Radarr) speak JSON over HTTP and
// authenticate with an X-Api-Key header. This package centralizes that,
// together with the retry policy: 429 and 5xx responses are retried with
// exponential backoff (bounded to a small fixed attempt count), other 4xx
// responses are surfaced immediately since they indicate a non-transient
// client error. Every call carries a fixed request timeout.
//
// Failures are reported as a single *RequestError carrying the endpoint, the
// status code when a response was received, and a truncated copy of the
// response body for diagnostics.
package httpclient
