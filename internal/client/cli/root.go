package cli

import (
	"context"
	"fmt"
	"strings"
)

// getStatus renders the prompt suffix, e.g. "(daniel lima [admin], online)".
func (a *App) getStatus() string {
	var parts []string
	if a.isLoggedIn() {
		user := a.userName
		if a.isAdmin {
			user += " [admin]"
		}
		parts = append(parts, user)
	}
	if m := a.mode(); m != "" {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Root starts the online watcher and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to shop CLI (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}
