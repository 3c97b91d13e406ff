// Package embedding turns validated text into fixed-length vectors.
//
// The split mirrors the service boundary: a Provider talks to the
// external inference backend and returns raw per-token hidden states;
// the Client owns the pooling and normalization policy on top of them.
// Application code should depend on *Client, not on Provider.
//
// The Client applies mean pooling over the token dimension and, when
// requested, rescales each vector to unit Euclidean norm (a zero vector
// normalizes to itself). Output dimension is backend-determined and must
// be identical across all items of a call; a mismatch is an internal
// invariant violation, not a user error.
package embedding
