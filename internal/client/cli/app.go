package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/client/client"
	"github.com/dmitrijs2005/shopkeeper/internal/client/config"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	client client.Client
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer

	userName string
	isAdmin  bool

	mu   sync.Mutex
	Mode Mode
}

func NewApp(c *config.Config) (*App, error) {
	logger, err := logging.New(c.LogFormat, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.NewShopClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{
		config: c,
		client: apiClient,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "Switched mode", "mode", string(mode))
	}
}

func (a *App) mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// StartOnlineStatusWatcher pings the server every interval and switches
// Mode accordingly until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, a.config.PingTimeout)
			err := a.client.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
