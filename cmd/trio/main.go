package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"trio/cmd/trio/ui"
	"trio/internal/config"
	"trio/internal/console"
	"trio/internal/logging"
	"trio/internal/menu"
)

var (
	// Global flags
	verbose    bool
	configPath string
	useTUI     bool

	// Loaded in PersistentPreRunE
	cfg *config.Config

	// Logger
	logger *zap.Logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trio",
	Short: "trio - three small console tasks behind one menu",
	Long: `trio offers three independent tasks from a numbered menu:

  1. Longest Even-Length Word   find the longest word with an even length
  2. Matrix Multiplication      multiply a 2x3 by a 3x4 matrix
  3. Validate Unique Digits     check a 4-digit number for repeated digits

Run without arguments to get the menu. Each task is also a subcommand.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: $TRIO_CONFIG or trio.yaml)")
	rootCmd.Flags().BoolVar(&useTUI, "tui", false, "Use the full-screen menu")

	rootCmd.AddCommand(wordCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(digitsCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := executeArgs(ctx, os.Args[1:])
	stop()

	if errors.Is(err, context.Canceled) {
		os.Exit(130)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// executeArgs runs the command tree for args under ctx.
func executeArgs(ctx context.Context, args []string) error {
	rootCmd.SetArgs(protectNegativeNumbers(args))
	return rootCmd.ExecuteContext(ctx)
}

// protectNegativeNumbers inserts "--" in front of the first negative number
// after the digits command, so "trio digits -1234" reaches the task instead
// of failing as an unknown shorthand flag.
func protectNegativeNumbers(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if arg != digitsCmd.Name() {
			continue
		}
		for j := i + 1; j < len(args); j++ {
			if args[j] == "--" {
				return args
			}
			if isNegativeNumber(args[j]) {
				out := make([]string, 0, len(args)+1)
				out = append(out, args[:j]...)
				out = append(out, "--")
				return append(out, args[j:]...)
			}
		}
		return args
	}
	return args
}

func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	for _, r := range arg[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// setup loads the config file and initializes logging from it.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(config.Path(configPath))
	if err != nil {
		return err
	}
	cfg = loaded

	if err := initLogging(cfg.Logging); err != nil {
		return err
	}
	logger.Debug("config loaded",
		zap.String("path", config.Path(configPath)),
		zap.String("command", cmd.Name()))
	return nil
}

// setupDefaults initializes logging without reading the config file, for
// commands that must work when the file is missing or broken.
func setupDefaults(cmd *cobra.Command, args []string) error {
	if err := initLogging(config.DefaultConfig().Logging); err != nil {
		return err
	}
	logger.Debug("config file skipped", zap.String("command", cmd.Name()))
	return nil
}

func initLogging(lc config.LoggingConfig) error {
	if verbose {
		zc := zap.NewDevelopmentConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		lc.DebugMode = true
		logging.InitializeWith(l, lc)
	} else if err := logging.Initialize(lc); err != nil {
		return err
	}

	logger = logging.Get(logging.CategoryBoot)
	return nil
}

// currentConfig returns the loaded config, or defaults when a command runs
// without the root pre-run (tests call RunE functions directly).
func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// runMenu shows the menu once, either as line prompts or full screen.
func runMenu(cmd *cobra.Command, args []string) error {
	c := currentConfig()
	a, b, err := c.Matrix.Operands()
	if err != nil {
		return err
	}

	if useTUI || c.UX.TUI {
		logger.Debug("starting full-screen menu")
		return ui.Run(commandContext(cmd), cmd.InOrStdin(), cmd.OutOrStdout(), ui.Options{
			A:         a,
			B:         b,
			MaxLength: c.Input.MaxSentenceLength,
			Styles:    ui.NewStyles(ui.ThemeFor(c.UX.Theme)),
		})
	}

	con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), c.Input.MaxSentenceLength)
	return menu.NewRunner(con, a, b).Run(commandContext(cmd))
}
