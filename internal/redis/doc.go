// Package redis provides the service's connection to its key-value store.
//
// The store serves exactly two purposes here: it holds the fixed-window
// rate-limit counters and it answers liveness probes for the health
// endpoint. The package follows the "accept interfaces, return structs"
// pattern:
//   - Store interface: the contract consumed by the rate limiter and
//     the health reporter
//   - Client struct: concrete implementation backed by go-redis
//   - NewClient constructor: returns *Client
//   - FXModule: provides both *Client and Store for dependency injection
//     and fails application startup if the store is unreachable
package redis
