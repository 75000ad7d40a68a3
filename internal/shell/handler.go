// Package shell runs zile's interactive command loop. Each line names a
// command and its arguments; lines starting with "(" are evaluated as Lisp.
package shell

import (
	"errors"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"zile/internal/commands"
	"zile/internal/editor"
	"zile/internal/logger"
	"zile/internal/minibuf"
	"zile/internal/output"
	"zile/internal/parser"
	"zile/pkg/ziletypes"
)

// Prompt is the command-line prompt.
const Prompt = "zile> "

// Shell dispatches input lines to the command registry.
type Shell struct {
	sess     *editor.Session
	registry *commands.Registry
	out      *output.Printer
	log      *log.Logger
}

// New returns a shell running commands from registry against sess.
func New(sess *editor.Session, registry *commands.Registry, out *output.Printer) *Shell {
	return &Shell{
		sess:     sess,
		registry: registry,
		out:      out,
		log:      logger.NewStyledLogger("Shell"),
	}
}

// ProcessInput runs one line and reports whether the shell should exit.
// Errors are printed, never returned.
func (s *Shell) ProcessInput(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, ";") {
		return false
	}

	if strings.HasPrefix(line, "(") {
		s.report("eval-expression", s.registry.Execute("eval-expression", s.sess, []string{line}))
		return false
	}

	cmd, err := parser.ParseCommand(line)
	if err != nil {
		s.report(line, err)
		return false
	}
	if cmd.Name == "exit" || cmd.Name == "quit" {
		return true
	}

	s.report(cmd.Name, s.registry.Execute(cmd.Name, s.sess, cmd.Args))
	return false
}

func (s *Shell) report(command string, err error) {
	switch {
	case err == nil:
	case errors.Is(err, ziletypes.ErrCancelled):
		s.out.Error("Quit")
	case errors.Is(err, commands.ErrUnknownCommand):
		s.out.Error("Error: " + err.Error())
		s.out.Info("Type help for available commands")
	default:
		s.log.Debug("command failed", "command", command, "error", err)
		s.out.Error("Error: " + err.Error())
	}
}

// Completer returns the completer for command lines: command names in the
// first word, nothing after it or inside Lisp.
func (s *Shell) Completer() readline.AutoCompleter {
	names := append(s.registry.Names(), "exit")
	return &commandCompleter{names: minibuf.NewCompleter(names)}
}

type commandCompleter struct {
	names *minibuf.Completer
}

func (c *commandCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}
	typed := string(line[:pos])
	if strings.ContainsAny(typed, " \t(") {
		return nil, 0
	}
	return c.names.Do(line, pos)
}

// Run reads lines from rl until EOF or exit. Ctrl-C abandons the current line.
func (s *Shell) Run(rl *readline.Instance) error {
	rl.Config.AutoComplete = s.Completer()
	rl.SetPrompt(Prompt)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if s.ProcessInput(line) {
			return nil
		}
	}
}
