package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-firebase-client/internal/logger"
	"github.com/MKhiriev/go-firebase-client/internal/service"
	"github.com/MKhiriev/go-firebase-client/internal/store"
)

// DefaultRefreshSkew is how long before expiry data commands refresh the
// identity token.
const DefaultRefreshSkew = time.Minute

// App runs one fbclient command.
type App struct {
	auth service.AuthService
	db   service.DatabaseService

	out      io.Writer
	copyText func(string) error
	skew     time.Duration

	commands map[string]command
	logger   *logger.Logger
}

// NewApp wires the CLI to services. Command output goes to out.
func NewApp(services *service.ClientServices, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		auth:     services.AuthService,
		db:       services.DatabaseService,
		out:      out,
		copyText: clipboard.WriteAll,
		skew:     DefaultRefreshSkew,
		logger:   logger,
	}
	a.commands = a.commandTable()
	return a
}

// Run restores the cached session and executes args[0] with the remaining
// arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	params := args[1:]
	if len(params) < cmd.minArgs || (cmd.maxArgs >= 0 && len(params) > cmd.maxArgs) {
		return fmt.Errorf("%w: %s %s", ErrUsage, args[0], cmd.usage)
	}

	if err := a.auth.Restore(ctx); err != nil && !errors.Is(err, store.ErrLocalSessionNotFound) {
		a.logger.Warn().Err(err).Msg("cached session could not be restored")
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, params)
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(titleStyle.Render("usage: fbclient [flags] <command> [args]"))
	b.WriteString("\n\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %-15s %s\n", name, labelStyle.Render(a.commands[name].usage))
	}
	_, _ = io.WriteString(a.out, b.String())
}

func (a *App) printOK(format string, args ...any) {
	_, _ = fmt.Fprintln(a.out, okStyle.Render(fmt.Sprintf(format, args...)))
}

func (a *App) printField(label, value string) {
	_, _ = fmt.Fprintf(a.out, "%s %s\n", labelStyle.Render(label+":"), value)
}
