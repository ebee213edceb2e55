package main

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/muliwe/go-dispatch-sorter/internal/config"
	"github.com/muliwe/go-dispatch-sorter/internal/demo"
	"github.com/muliwe/go-dispatch-sorter/internal/logger"
	"github.com/muliwe/go-dispatch-sorter/internal/render"
)

// app bundles what every subcommand needs once flags are parsed
type app struct {
	runID    string
	log      *logger.Logger
	renderer render.Renderer
	out      io.Writer
}

// newRootCmd creates the root command for sorter
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sorter",
		Short: "Sort packages into dispatch stacks",
		Long: `Classify packages as STANDARD, SPECIAL or REJECTED from their
dimensions (cm) and mass (kg).

A package is bulky when its volume reaches 1,000,000 cm³ or any dimension
reaches 150 cm, and heavy when its mass reaches 20 kg. Bulky and heavy
packages are REJECTED, packages that are one or the other are SPECIAL.

Example:
  sorter classify 160 50 50 21
  sorter classify --output json -- 10 -1 10 5
  sorter demo --output yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringP("config", "c", "", "Path to configuration file (YAML or TOML)")
	pf.StringP("log-level", "l", "info", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")
	pf.StringP("output", "o", "table", "Output format (table, json, yaml)")
	pf.Bool("no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "demo",
			Short: "Classify the built-in example packages",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runDemo(cmd, stdout, stderr)
			},
		},
		&cobra.Command{
			Use:   "classify WIDTH HEIGHT LENGTH MASS",
			Short: "Classify a single package",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runClassify(cmd, args, stdout, stderr)
			},
		},
	)

	return rootCmd
}

// setup loads configuration and builds the logger and renderer
func setup(cmd *cobra.Command, stdout, stderr io.Writer) (*app, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		NoColor: cfg.Log.NoColor,
		Output:  stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	r, err := render.New(cfg.Output.Format, cfg.Output.NoColor)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log.Debug("configuration loaded",
		"run_id", runID,
		"log_level", cfg.Log.Level,
		"output", cfg.Output.Format,
	)

	return &app{runID: runID, log: log, renderer: r, out: stdout}, nil
}

func runDemo(cmd *cobra.Command, stdout, stderr io.Writer) error {
	a, err := setup(cmd, stdout, stderr)
	if err != nil {
		return err
	}

	outcomes := demo.RunAll(a.runID, demo.Examples(), a.log)
	return a.renderer.Render(a.out, outcomes)
}

func runClassify(cmd *cobra.Command, args []string, stdout, stderr io.Writer) error {
	a, err := setup(cmd, stdout, stderr)
	if err != nil {
		return err
	}

	var inputs [4]any
	for i, arg := range args {
		inputs[i] = parseArg(arg)
	}

	outcomes := demo.RunAll(a.runID, []demo.Example{{Inputs: inputs}}, a.log)
	if err := a.renderer.Render(a.out, outcomes); err != nil {
		return err
	}
	return outcomes[0].Err
}

// parseArg turns a CLI argument into a number when it parses as one. Anything
// else is passed through as a string so the classifier reports its type
func parseArg(s string) any {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f
	}
	// out of float64 range, keep the exact value
	if errors.Is(err, strconv.ErrRange) {
		if r, ok := new(big.Rat).SetString(s); ok {
			return r
		}
	}
	return s
}
