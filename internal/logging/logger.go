// Package logging is the structured logger shared by the server and the CLI,
// backed by slog or zerolog (see New).
package logging

import "context"

// Logger takes alternating key-value pairs after the message:
//
//	log.Info(ctx, "Order placed", "user_id", userID, "order_id", id)
//
// Pairs attached to ctx with ContextWith are emitted as well.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}
