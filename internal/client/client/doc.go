// Package client contains the client side of the shop transport.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) used by the
//     CLI: account, catalog, cart and order calls plus Ping.
//  2. A concrete gRPC implementation (see GRPCClient) that manages a
//     connection, injects the session access token via an interceptor and
//     maps gRPC status codes back to sentinel errors.
//
// # Error Handling
//
// Transport conditions are exposed as ErrUnavailable and ErrUnauthorized.
// Business outcomes come back as the shared sentinels from internal/common
// (ErrDuplicateUsername, ErrInvalidCredentials, ErrEmptyCart,
// ErrInvalidArgument). Match them with errors.Is.
//
// Concurrency & Contexts
//
// GRPCClient is safe for concurrent use; the online watcher pings while the
// REPL issues calls. All operations honor context cancellation.
package client
