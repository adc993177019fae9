// Package cli is the interactive terminal client. It walks the user through
// the home, login, register and dashboard screens on top of an
// accounts.Service, which is either a local store-backed service or a gRPC
// client.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dmitrijs2005/securelogin/internal/accounts"
	"github.com/dmitrijs2005/securelogin/internal/common"
	"github.com/dmitrijs2005/securelogin/internal/logging"
)

type Mode string

const (
	ModeLocal   Mode = "local"
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// pinger is implemented by the gRPC client.
type pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	accounts accounts.Service
	session  Session
	reader   *bufio.Reader
	inFd     int
	out      io.Writer

	// password of the logged-in user, sent with updates as proof of ownership
	password []byte
	logger   logging.Logger

	pinger        pinger
	checkInterval time.Duration

	mu   sync.Mutex
	mode Mode
}

type Option func(*App)

// WithOnlineCheck makes the app probe p every interval and show the result
// in the prompt.
func WithOnlineCheck(p pinger, interval time.Duration) Option {
	return func(a *App) {
		a.pinger = p
		a.checkInterval = interval
	}
}

func NewApp(svc accounts.Service, in io.Reader, out io.Writer, logger logging.Logger, opts ...Option) *App {
	if logger == nil {
		logger = logging.Nop()
	}
	a := &App{
		accounts: svc,
		session:  NewSession(),
		reader:   bufio.NewReader(in),
		inFd:     terminalFd(in),
		out:      out,
		logger:   logger.With("module", "cli"),
		mode:     ModeLocal,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Session returns a copy of the navigation state.
func (a *App) Session() Session {
	return a.session
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "Switched mode", "mode", mode)
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.pinger.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
	} else {
		a.setMode(ctx, ModeOnline)
	}
}

// StartOnlineStatusWatcher pings the server every interval until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Run drives the screens until the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.pinger != nil {
		a.checkOnline(ctx)
		if a.checkInterval > 0 {
			go a.StartOnlineStatusWatcher(ctx, a.checkInterval)
		}
	}

	a.println(titleStyle.Render("Secure Login System"))
	a.showScreen()

	return a.repl(ctx)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// report prints a failed command. Service errors that the screens do not
// handle themselves end up here.
func (a *App) report(ctx context.Context, err error) {
	switch {
	case errors.Is(err, common.ErrUnavailable):
		a.println(errorStyle.Render("Server unavailable, try again later."))
	case errors.Is(err, common.ErrRateLimited):
		a.println(warningStyle.Render("Too many requests, slow down."))
	case errors.Is(err, io.EOF):
		return
	default:
		a.println(errorStyle.Render("Error: " + err.Error()))
	}
	a.logger.Error(ctx, "command failed", "screen", a.session.Screen, "error", err)
}
