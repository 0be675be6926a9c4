// Package main provides the CLI interface for gobasics.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sivchari/gobasics/internal/buildinfo"
	"github.com/sivchari/gobasics/internal/compare"
	"github.com/sivchari/gobasics/internal/config"
	"github.com/sivchari/gobasics/internal/logging"
	"github.com/sivchari/gobasics/internal/parity"
	"github.com/sivchari/gobasics/internal/record"
	"github.com/sivchari/gobasics/pkg/gobasics"
)

type options struct {
	configFile string
	verbose    bool
	format     string
	outputFile string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "gobasics",
		Short: "Run a small fixed demonstration program",
		Long: `gobasics builds a labelled record, compares two integers and counts,
then reports the even members of a sequence.

Every input is configurable through .gobasics.yaml; the defaults reproduce
the built-in program exactly.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runProgram(opts, stdout, stderr)
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (default is .gobasics.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the program",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runProgram(opts, stdout, stderr)
		},
	}
	runCmd.Flags().StringVar(&opts.format, "format", "", "output format (text, json, html)")
	runCmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "write the report to a file instead of stdout")

	rootCmd.AddCommand(
		runCmd,
		newCalcCmd(stdout),
		newCompareCmd(stdout),
		newEvensCmd(stdout),
		newVersionCmd(stdout),
		newConfigCmd(opts, stdout),
	)

	return rootCmd
}

func runProgram(opts *options, stdout, stderr io.Writer) error {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.verbose {
		cfg.Verbose = true
	}

	if opts.format != "" {
		cfg.Output.Format = opts.format
	}

	if opts.outputFile != "" {
		cfg.Output.File = opts.outputFile
	}

	logger := logging.New(cfg.Verbose, stderr)
	defer func() { _ = logger.Sync() }()

	engine, err := gobasics.NewEngine(cfg,
		gobasics.WithLogger(logger),
		gobasics.WithOutput(stdout))
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	if _, err := engine.Run(); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	return nil
}

func newCalcCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "calc a b c",
		Short: "Print a + b*c",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(stdout, record.Calculate(nums[0], nums[1], nums[2]))

			return err
		},
	}
}

func newCompareCmd(stdout io.Writer) *cobra.Command {
	var (
		count int
		label string
	)

	cmd := &cobra.Command{
		Use:   "compare x y",
		Short: "Compare two integers, then count from zero",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}

			return compare.Compare(stdout, nums[0], nums[1],
				compare.WithCount(count),
				compare.WithLabel(label))
		},
	}

	cmd.Flags().IntVar(&count, "count", compare.DefaultCount, "how many integers to print after the comparison")
	cmd.Flags().StringVar(&label, "label", compare.DefaultLabel, "label attached to the comparison")

	return cmd
}

func newEvensCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "evens n...",
		Short: "Report the even members of the given integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}

			return parity.Report(stdout, nums)
		},
	}
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(stdout, buildinfo.String())
		},
	}
}

func newConfigCmd(opts *options, stdout io.Writer) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gobasics configuration",
		Long:  "Commands for managing gobasics configuration files",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new gobasics configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")

			filename := opts.configFile
			if filename == "" {
				filename = config.DefaultFile
			}

			if _, err := os.Stat(filename); err == nil && !force {
				return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", filename)
			}

			if err := config.Default().Save(filename); err != nil {
				return err
			}

			fmt.Fprintf(stdout, "Created %s\n", filename)

			return nil
		},
	}
	initCmd.Flags().Bool("force", false, "overwrite existing config file")

	validateCmd := &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			filename := opts.configFile
			if len(args) > 0 {
				filename = args[0]
			}

			if _, err := config.Load(filename); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			fmt.Fprintln(stdout, "Configuration is valid")

			return nil
		},
	}

	configCmd.AddCommand(initCmd, validateCmd)

	return configCmd
}

func parseInts(args []string) ([]int, error) {
	nums := make([]int, 0, len(args))

	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", arg, err)
		}

		nums = append(nums, n)
	}

	return nums, nil
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
