package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is swapped in tests to avoid touching the terminal
var readPassword = term.ReadPassword

// stdinIsTerminal decides between a hidden prompt and a plain line read
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// prompt prints label and reads one trimmed line. A last line without newline is accepted.
func (a *App) prompt(label string) (string, error) {
	fmt.Fprintf(a.out, "%s: ", label)
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads without echo on a terminal, from the input stream otherwise
func (a *App) promptPassword(label string) (string, error) {
	if !stdinIsTerminal() {
		return a.prompt(label)
	}

	fmt.Fprintf(a.out, "%s: ", label)
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// valueOrPrompt returns v unless it is blank
func (a *App) valueOrPrompt(v, label string) (string, error) {
	if v = strings.TrimSpace(v); v != "" {
		return v, nil
	}
	return a.prompt(label)
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

// parseArgs parses flags and checks the positional count
func (a *App) parseArgs(fs *flag.FlagSet, args []string, want int) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != want {
		usage := fs.Name()
		if cmd, ok := a.commands[fs.Name()]; ok {
			usage = cmd.usage
		}
		return nil, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	return fs.Args(), nil
}
