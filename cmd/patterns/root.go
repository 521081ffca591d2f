// Root command for the patterns CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sghaida/patterns/demo"
	"github.com/sghaida/patterns/logger"
)

const version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagScript    string
	flagPlain     bool
	flagDebug     bool
)

// Set by PersistentPreRunE so all subcommands can use them.
var (
	runScript  *demo.Script
	plainMode  bool
	logCleanup func() error
)

var rootCmd = &cobra.Command{
	Use:     "patterns",
	Short:   "Patterns runs the design-pattern demonstrations",
	Long: `Patterns drives the prototype, singleton and proxy demonstrations
from the library packages and prints their results, optionally
parameterized by a YAML script file.`,
	Version: version,
	// Do not print usage on errors returned by subcommands.
	SilenceUsage:       true,
	PersistentPreRunE:  setupRun,
	PersistentPostRunE: teardownRun,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.patterns)")
	rootCmd.PersistentFlags().StringVar(&flagScript, "script", "", "YAML script file with demo parameters")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "disable styled banners")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "verbose logging")

	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(prototypeCmd)
	rootCmd.AddCommand(singletonCmd)
	rootCmd.AddCommand(proxyCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupRun loads config, installs the logger and resolves the demo script.
func setupRun(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir := resolveConfigDir()

	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	debug := flagDebug || cfg.GetBool(cfgKeyDebug)
	plainMode = flagPlain || cfg.GetBool(cfgKeyPlain)

	// A broken log setup falls back to the discard logger; demos still run.
	if cleanup, lerr := logger.Setup(logger.Config{
		Dir:   filepath.Join(configDir, "logs"),
		Debug: debug,
	}); lerr == nil {
		logCleanup = cleanup
	}

	scriptPath := flagScript
	if scriptPath == "" {
		scriptPath = cfg.GetString(cfgKeyScriptFile)
	}
	if scriptPath == "" {
		runScript = demo.DefaultScript()
		return nil
	}

	runScript, err = demo.LoadScript(scriptPath)
	return err
}

// teardownRun releases the logger.
func teardownRun(*cobra.Command, []string) error {
	if logCleanup == nil {
		return nil
	}
	cleanup := logCleanup
	logCleanup = nil
	return cleanup()
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if v := os.Getenv("PATTERNS_CONFIG_DIR"); v != "" {
		return v
	}
	return ".patterns"
}

// newRunner builds a demo runner for the command's output stream, sized to the
// terminal when one is attached.
func newRunner(cmd *cobra.Command) *demo.Runner {
	opts := []demo.Option{demo.WithLogger(logger.L())}

	width, isTerm := terminalWidth()
	if isTerm {
		opts = append(opts, demo.WithWidth(width))
	}
	if plainMode || !isTerm {
		opts = append(opts, demo.WithPlain(true))
	}

	return demo.NewRunner(cmd.OutOrStdout(), opts...)
}

// terminalWidth reports the width of the attached terminal, if any.
func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}
