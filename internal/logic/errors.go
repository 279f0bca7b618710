package logic

import "errors"

// ErrNotFound is the normal miss outcome for identity and beatmap lookups.
// Handlers render it as an empty list (v1) or a not-found body (v2), never
// as a fault.
var ErrNotFound = errors.New("not found")

// ErrUpstream marks a failure of the remote stats API or of replay
// transcoding. It propagates to the handler, which renders an error body.
var ErrUpstream = errors.New("upstream unavailable")
