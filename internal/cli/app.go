package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"training-reels/internal/core/port"

	"golang.org/x/term"
)

// ErrUsage is returned when the command line cannot be understood
var ErrUsage = errors.New("usage")

// Services groups what the commands talk to
type Services struct {
	Auth       port.AuthService
	Uploads    port.UploadService
	Processing port.ProcessingService
	Search     port.SearchService
}

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

// App is the reelctl command dispatcher
type App struct {
	services Services
	in       *bufio.Reader
	out      io.Writer
	colors   bool
	commands map[string]command
	logger   *slog.Logger
}

// NewApp wires the commands. Colors are only used when out is a terminal.
func NewApp(services Services, in io.Reader, out io.Writer, logger *slog.Logger) *App {
	a := &App{
		services: services,
		in:       bufio.NewReader(in),
		out:      out,
		logger:   logger,
	}
	if f, ok := out.(*os.File); ok {
		a.colors = term.IsTerminal(int(f.Fd()))
	}

	a.commands = map[string]command{
		"login":               {"login [-email address]", a.Login},
		"logout":              {"logout", a.Logout},
		"verify-email":        {"verify-email <token>", a.VerifyEmail},
		"resend-verification": {"resend-verification [-email address]", a.ResendVerification},
		"forgot-password":     {"forgot-password [-email address]", a.ForgotPassword},
		"reset-password":      {"reset-password <token>", a.ResetPassword},
		"upload":              {"upload [-title t] [-description d] [-tags a,b] [-wait] <file>", a.Upload},
		"resume":              {"resume [-wait] <sessionId> <resumeURL> <file>", a.Resume},
		"cancel-upload":       {"cancel-upload <sessionId>", a.CancelUpload},
		"status":              {"status [-wait] <jobId>", a.Status},
		"retry":               {"retry [-wait] <jobId>", a.Retry},
		"cancel-job":          {"cancel-job <jobId>", a.CancelJob},
		"search":              {"search [-sort s] [-page n] [-size n] [-tag t] [-machine m] <query>", a.Search},
		"suggest":             {"suggest <prefix>", a.Suggest},
		"facets":              {"facets", a.Facets},
		"recent":              {"recent [-clear]", a.Recent},
		"history":             {"history [-clear] [-delete id]", a.History},
		"saved":               {"saved [list | create -name n [-notify] <query> | delete <id>]", a.Saved},
	}
	return a
}

// Run executes the command named by args[0]
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.printUsage()
		if len(args) == 0 {
			return ErrUsage
		}
		return nil
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	a.logger.Debug("running command", "command", args[0])
	return cmd.run(ctx, args[1:])
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: reelctl <command> [flags] [args]")
	fmt.Fprintln(a.out)
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s\n", a.commands[name].usage)
	}
}
