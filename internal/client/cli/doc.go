// Package cli provides the interactive shop command-line client.
//
// It wires configuration, the gRPC client and a read-eval-print loop. A
// background watcher pings the server and reports when it goes offline or
// comes back.
//
// Key features:
//   - Register / Login / Logout / password change
//   - Catalog maintenance: list, add, edit, remove products
//   - Cart: add or replace a line, view the cart, place an order, list orders
//   - demo: runs the example workflow (register, login, add a product,
//     fill the cart, place the order) against the server
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
