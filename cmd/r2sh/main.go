// Command r2sh is a small shell for driving radare2 over r2pipe.
//
// It spawns radare2 against a target binary (or connects to a TCP/HTTP
// command server) and either runs a single command with -c or drops into an
// interactive prompt. The exec subcommand fans one command out across
// several targets concurrently.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/meme/r2pipe"
)

var (
	promptColor = color.New(color.FgCyan, color.Bold)
	targetColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed)
)

type shellFlags struct {
	configPath string
	r2Path     string
	r2Args     []string
	tcpAddr    string
	httpHost   string
	command    string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &shellFlags{}

	cmd := &cobra.Command{
		Use:   "r2sh [target]",
		Short: "Interactive radare2 shell over r2pipe",
		Long: "r2sh drives a radare2 instance through the r2pipe protocol.\n" +
			"By default it spawns radare2 against the target binary; --tcp and\n" +
			"--http connect to running command servers instead.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := ""
			if len(args) == 1 {
				target = args[0]
			}

			return runShell(cmd, flags, target)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "path to a TOML config file")
	cmd.PersistentFlags().StringVar(&flags.r2Path, "r2", "", "explicit path to the radare2 binary")
	cmd.PersistentFlags().StringArrayVarP(&flags.r2Args, "arg", "a", nil, "extra radare2 argument (repeatable)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging to stderr")
	cmd.Flags().StringVar(&flags.tcpAddr, "tcp", "", "connect to a radare2 TCP server at addr:port")
	cmd.Flags().StringVar(&flags.httpHost, "http", "", "connect to a radare2 HTTP server at addr:port")
	cmd.Flags().StringVarP(&flags.command, "cmd", "c", "", "run a single command and exit")

	cmd.AddCommand(newExecCmd(flags))

	return cmd
}

// resolve merges the config file (if any) under the command-line flags.
func (f *shellFlags) resolve() (shellConfig, error) {
	cfg := defaultShellConfig()

	if f.configPath != "" {
		var err error

		cfg, err = loadShellConfig(f.configPath)
		if err != nil {
			return shellConfig{}, err
		}
	}

	if f.r2Path != "" {
		cfg.R2Path = f.r2Path
	}

	if len(f.r2Args) > 0 {
		cfg.R2Args = f.r2Args
	}

	if f.verbose {
		cfg.Verbose = true
	}

	return cfg, nil
}

func (f *shellFlags) logger(cfg shellConfig) *slog.Logger {
	if !cfg.Verbose {
		return r2pipe.NopLogger()
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func openPipe(cmd *cobra.Command, flags *shellFlags, cfg shellConfig, target string) (r2pipe.Pipe, error) {
	ctx := cmd.Context()
	log := flags.logger(cfg)

	switch {
	case flags.tcpAddr != "":
		return r2pipe.Dial(ctx, flags.tcpAddr, r2pipe.WithLogger(log))
	case flags.httpHost != "":
		return r2pipe.NewHTTP(flags.httpHost, r2pipe.WithLogger(log)), nil
	default:
		return r2pipe.Spawn(ctx, target,
			r2pipe.WithLogger(log),
			r2pipe.WithExePath(cfg.R2Path),
			r2pipe.WithArgs(cfg.R2Args...),
		)
	}
}

func runShell(cmd *cobra.Command, flags *shellFlags, target string) error {
	cfg, err := flags.resolve()
	if err != nil {
		return err
	}

	pipe, err := openPipe(cmd, flags, cfg, target)
	if err != nil {
		return err
	}
	defer pipe.Close()

	// One-shot mode.
	if flags.command != "" {
		res, err := pipe.Cmd(cmd.Context(), flags.command)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), res)

		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		promptColor.Fprint(cmd.OutOrStdout(), "[r2sh]> ")

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == "q" || line == "exit" {
			break
		}

		res, err := pipe.Cmd(cmd.Context(), line)
		if err != nil {
			errorColor.Fprintln(cmd.OutOrStdout(), err)

			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), res)
	}

	return scanner.Err()
}

func newExecCmd(flags *shellFlags) *cobra.Command {
	var command string

	cmd := &cobra.Command{
		Use:   "exec -c <command> <target>...",
		Short: "Run one command across several targets concurrently",
		Long: "exec spawns an independent radare2 instance per target and runs the\n" +
			"same command against each, printing one result block per target.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, targets []string) error {
			if command == "" {
				return fmt.Errorf("exec requires a command (-c)")
			}

			return runExec(cmd, flags, command, targets)
		},
	}

	cmd.Flags().StringVarP(&command, "cmd", "c", "", "command to run against every target")

	return cmd
}

func runExec(cmd *cobra.Command, flags *shellFlags, command string, targets []string) error {
	cfg, err := flags.resolve()
	if err != nil {
		return err
	}

	spawnOpts := make([]*r2pipe.SpawnOptions, len(targets))
	for i := range targets {
		spawnOpts[i] = &r2pipe.SpawnOptions{ExePath: cfg.R2Path, Args: cfg.R2Args}
	}

	workers, err := r2pipe.Threads(targets, spawnOpts, nil, r2pipe.WithLogger(flags.logger(cfg)))
	if err != nil {
		return err
	}

	results := make([]string, len(workers))

	var g errgroup.Group

	for i, w := range workers {
		i, w := i, w
		g.Go(func() error {
			if err := w.Send(command); err != nil {
				return fmt.Errorf("worker %d: %w", w.ID, err)
			}

			res, err := w.Recv(true)
			if err != nil {
				if joinErr := w.Join(); joinErr != nil {
					return fmt.Errorf("worker %d (%s): %w", w.ID, targets[i], joinErr)
				}

				return fmt.Errorf("worker %d (%s): %w", w.ID, targets[i], err)
			}

			results[i] = res

			if err := w.Send(r2pipe.QuitCommand); err != nil {
				return fmt.Errorf("worker %d: %w", w.ID, err)
			}

			return w.Join()
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, res := range results {
		targetColor.Fprintf(out, "== %s\n", targets[i])
		fmt.Fprintln(out, res)
	}

	return nil
}
