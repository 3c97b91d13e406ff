// Package server exposes the HTTP surface and owns the request pipeline.
//
// Gated endpoints compose an ordered list of gate functions —
// authenticate, then rate-limit — followed by validation and
// orchestration. Each gate either passes the request through or
// terminates it; later stages never run after a failure.
//
// This package is the only place that knows about wire-level status
// codes: every component reports failures through its own sentinel error
// kinds, and the mapping to 401/400/429/500 plus the client-facing
// message lives in errors.go. Authentication failures share one generic
// user-facing category with distinct server-side log tags;
// infrastructure failures are logged in full and surfaced to callers as
// a generic message.
package server
