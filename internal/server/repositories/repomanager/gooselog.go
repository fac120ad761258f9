package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/pressly/goose/v3"
)

// gooseLogger routes goose output through the application logger.
type gooseLogger struct {
	ctx context.Context
	l   logging.Logger
}

func newGooseLogger(ctx context.Context, l logging.Logger) goose.Logger {
	if l == nil {
		return goose.NopLogger()
	}
	return &gooseLogger{ctx: ctx, l: l.With("component", "migrations")}
}

func (g *gooseLogger) Printf(format string, v ...interface{}) {
	g.l.Info(g.ctx, strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Fatalf panics instead of exiting the process.
func (g *gooseLogger) Fatalf(format string, v ...interface{}) {
	msg := strings.TrimSpace(fmt.Sprintf(format, v...))
	g.l.Error(g.ctx, msg)
	panic(msg)
}
