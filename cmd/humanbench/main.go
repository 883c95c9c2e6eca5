// Package main provides the CLI entrypoint for humanbench.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/verte-zerg/humanbench/internal/config"
	"github.com/verte-zerg/humanbench/internal/game"
	"github.com/verte-zerg/humanbench/internal/generator"
	"github.com/verte-zerg/humanbench/internal/logging"
	"github.com/verte-zerg/humanbench/internal/model"
	"github.com/verte-zerg/humanbench/internal/replay"
	"github.com/verte-zerg/humanbench/internal/session"
	"github.com/verte-zerg/humanbench/internal/stats"
	"github.com/verte-zerg/humanbench/internal/store"
	"github.com/verte-zerg/humanbench/internal/tui"
)

var (
	playSeed      int64
	playFPS       int
	playLogFile   string
	playLogLevel  string
	replayLogLvl  string
	replaySeed    int64
	replaySummary bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	defaults := config.Defaults()
	rootCmd := &cobra.Command{
		Use:           "humanbench",
		Short:         "Reaction, aim and sequence memory benchmarks in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPlayCmd,
	}
	rootCmd.Flags().Int64Var(&playSeed, "seed", defaults.Seed, "random seed (0: seed from the clock)")
	rootCmd.Flags().IntVar(&playFPS, "fps", defaults.FPS, "frames per second")
	rootCmd.Flags().StringVar(&playLogFile, "log-file", defaults.Log.File, "write JSON logs to this file")
	rootCmd.Flags().StringVar(&playLogLevel, "log-level", defaults.Log.Level, "log level (debug, info, warn, error)")
	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("humanbench needs an interactive terminal; use 'humanbench replay' for scripted runs")
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	st, err := store.Open()
	if err != nil {
		return fmt.Errorf("failed to open result store: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close result store: %v\n", cerr)
		}
	}()

	ctrl := session.New(game.DefaultLayout(), newGenerator(cfg.Seed),
		session.WithRecorder(st),
		session.WithLogger(logger),
	)
	logger.Info("starting", zap.Int64("seed", cfg.Seed), zap.Int("fps", cfg.FPS))

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(tui.NewModel(ctrl, st, logger, cfg.FPS), opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	summaries, err := stats.BuildReport(context.Background(), st)
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}
	return stats.RenderSummary(cmd.OutOrStdout(), summaries)
}

// resolveConfig layers defaults, the config file and changed flags, in that order.
func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	cfg := config.Defaults()
	fileCfg.Apply(&cfg)
	applyFlag(cmd, "seed", &cfg.Seed, playSeed)
	applyFlag(cmd, "fps", &cfg.FPS, playFPS)
	applyFlag(cmd, "log-file", &cfg.Log.File, playLogFile)
	applyFlag(cmd, "log-level", &cfg.Log.Level, playLogLevel)
	if err := config.Validate(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newGenerator(seed int64) *generator.Generator {
	if seed == 0 {
		return generator.NewRandom()
	}
	return generator.NewSeeded(seed)
}

func newReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay SCRIPT",
		Short: "Run a pointer script headlessly and print what happened",
		Args:  cobra.ExactArgs(1),
		RunE:  runReplayCmd,
	}
	cmd.Flags().StringVar(&replayLogLvl, "log-level", "warn", "log level for stderr output")
	cmd.Flags().Int64Var(&replaySeed, "seed", 0, "override the script seed")
	cmd.Flags().BoolVar(&replaySummary, "summary", false, "print a stats summary of the finished sessions")
	return cmd
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	script, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	applyFlag(cmd, "seed", &script.Seed, replaySeed)

	logger, err := logging.NewConsole(replayLogLvl, zapcore.Lock(os.Stderr))
	if err != nil {
		return err
	}
	defer func() {
		// Syncing stderr fails on some platforms; nothing to recover.
		_ = logger.Sync()
	}()

	records := replay.Run(script, game.DefaultLayout(), logger)
	return writeRecords(cmd.OutOrStdout(), records, replaySummary)
}

func writeRecords(w io.Writer, records []replay.Record, summary bool) error {
	var results []model.SessionResult
	for _, r := range records {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if r.Event.Kind == game.EventSessionEnded {
			results = append(results, model.SessionResult{
				Mode:   r.Mode,
				Score:  r.Event.Score,
				Unit:   r.Mode.Unit(),
				Rounds: r.Event.Rounds,
			})
		}
	}
	if !summary {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return stats.RenderSummary(w, stats.Summarize(results))
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyFlag[T any](cmd *cobra.Command, name string, target *T, value T) {
	if !cmd.Flags().Changed(name) {
		return
	}
	*target = value
}

func defaultConfigTemplate() string {
	d := config.Defaults()
	return fmt.Sprintf(`# humanbench configuration
# Uncomment a value to enable it. CLI flags override config values.

[play]
# seed = %d               # Random seed, 0 seeds from the clock
# fps = %d                # Frames per second (%d-%d)
# alt-screen = %t         # Draw in the alternate screen buffer

[log]
# file = %q
# level = %q          # debug, info, warn, error
# max-size = %d           # Megabytes before rotation
# max-backups = %d         # Rotated files to keep
# max-age = %d             # Days to keep rotated files
`,
		d.Seed,
		d.FPS, config.MinFPS, config.MaxFPS,
		d.AltScreen,
		config.DefaultLogPath(),
		d.Log.Level,
		d.Log.MaxSizeMB,
		d.Log.MaxBackups,
		d.Log.MaxAgeDays,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
