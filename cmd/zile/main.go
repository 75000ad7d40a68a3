// Package main provides the zile command-line entry point: an interactive
// command shell over zile's variable table and Lisp reader, plus batch
// subcommands for scripting.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zile/internal/commands"
	"zile/internal/commands/builtin"
	"zile/internal/config"
	"zile/internal/editor"
	"zile/internal/lisp"
	"zile/internal/logger"
	"zile/internal/minibuf"
	"zile/internal/output"
	"zile/internal/shell"
	"zile/internal/version"
	"zile/pkg/ziletypes"
)

var (
	logLevel   string
	logFile    string
	configFile string
	initFile   string
	noInitFile bool
	dump       bool
	detailed   bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "zile",
	Short: "Zile - a small Emacs-like editor core",
	Long: `Zile keeps an editor's typed variable table and reads its Lisp
configuration language. Without a subcommand it starts the interactive shell.`,
	RunE:          runShell,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive command shell",
	RunE:  runShell,
}

var evalCmd = &cobra.Command{
	Use:   "eval <expression>",
	Short: "Evaluate Lisp forms and print each result",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runBatch("eval-expression", []string{strings.Join(args, " ")})
	},
}

var loadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Load a Lisp file",
	Long: `Load a Lisp file, applying its setq forms. With --dump, print each
form with its evaluation result followed by the variable listing instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "List all variables",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runBatch("list-variables", nil)
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Describe a variable",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runBatch("describe-variable", args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		if detailed {
			fmt.Println(version.GetDetailedVersion())
			return
		}
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&logLevel, config.KeyLogLevel, "", "Set log level (debug|info|warn|error) [default: warn]")
	flags.StringVar(&logFile, config.KeyLogFile, "", "Write logs to file instead of stderr")
	flags.StringVar(&initFile, config.KeyInitFile, "", "Lisp file applied at startup [default: ~/.zile]")
	flags.StringVar(&configFile, "config", "", "Config file [default: $XDG_CONFIG_HOME/zile/config.yaml]")
	flags.BoolVarP(&noInitFile, "no-init-file", "q", false, "Do not load an init file")

	for _, key := range []string{config.KeyLogLevel, config.KeyLogFile, config.KeyInitFile} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", key, err)
			os.Exit(1)
		}
	}

	loadCmd.Flags().BoolVar(&dump, "dump", false, "Print the evaluation trace and variable listing")
	versionCmd.Flags().BoolVar(&detailed, "detailed", false, "Show build details")

	rootCmd.AddCommand(shellCmd, evalCmd, loadCmd, varsCmd, describeCmd, versionCmd)

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	loaded, err := config.NewLoader(viper.GetViper()).Load(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Configure(loaded.LogLevel, loaded.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded
	logger.Debug("configuration loaded", "path", cfg.ConfigFile)
}

// openSession starts a session and applies the init file unless disabled.
func openSession(prompter ziletypes.Prompter, out *output.Printer) (*editor.Session, *commands.Registry, error) {
	sess, err := editor.New(editor.Options{
		Variables: cfg.Variables,
		Prompter:  prompter,
		Out:       out,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start session: %w", err)
	}

	if !noInitFile && cfg.InitFile != "" {
		if !sess.LoadInitFile(cfg.InitFile) {
			logger.Debug("init file not loaded", "path", cfg.InitFile)
		}
	}

	registry, err := builtin.NewRegistry()
	if err != nil {
		sess.Close()
		return nil, nil, err
	}
	return sess, registry, nil
}

func runShell(_ *cobra.Command, _ []string) error {
	logger.Info("Starting zile", "version", version.Version)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          shell.Prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	defer func() { _ = rl.Close() }()

	mode := output.ModePlain
	if output.IsTerminal(os.Stdout) {
		mode = output.ModeStyled
	}
	out := output.NewPrinter(output.WithWriter(rl.Stdout()), output.WithMode(mode))
	sess, registry, err := openSession(minibuf.New(minibuf.NewReadlineTerminal(rl)), out)
	if err != nil {
		return err
	}
	defer sess.Close()

	out.Println(version.GetFormattedVersion())
	out.Info("Type 'help' for commands, 'exit' to quit.")

	return shell.New(sess, registry, out).Run(rl)
}

func runBatch(command string, args []string) error {
	out := output.NewPrinter()
	sess, registry, err := openSession(nil, out)
	if err != nil {
		return err
	}
	defer sess.Close()

	return registry.Execute(command, sess, args)
}

func runLoad(_ *cobra.Command, args []string) error {
	if !dump {
		return runBatch("load-file", args)
	}

	out := output.NewPrinter()
	sess, _, err := openSession(nil, out)
	if err != nil {
		return err
	}
	defer sess.Close()

	list := lisp.ReadFile(args[0])
	if list == nil {
		return fmt.Errorf("cannot open load file: %s", args[0])
	}
	out.Print(sess.Dump(list))
	return nil
}
