package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/karu-codes/karu-stackfmt/config"
	"github.com/karu-codes/karu-stackfmt/errors"
	"github.com/karu-codes/karu-stackfmt/kcolor"
	"github.com/karu-codes/karu-stackfmt/klog"
	"github.com/karu-codes/karu-stackfmt/kstack"
)

type cliOptions struct {
	configPath string
	color      string
	warning    bool
	debug      bool

	stdin     io.Reader
	stdout    io.Writer
	newLogger func(debug bool) (*zap.Logger, error)
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := &cliOptions{
		stdin:     stdin,
		stdout:    stdout,
		newLogger: klog.InitProvider,
	}
	return executeWith(opts, args, stderr)
}

func executeWith(opts *cliOptions, args []string, stderr io.Writer) int {
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetIn(opts.stdin)
	cmd.SetOut(opts.stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, errors.ToCMDErrorWithDetails(err, "path"))
		return errors.ExitCode(err)
	}
	return 0
}

func newRootCommand(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kstack [report.json]",
		Short: "Render a script exception report",
		Long: "kstack reads a JSON exception report (from a file, or stdin when the\n" +
			"argument is omitted or \"-\") and prints it with its source excerpt,\n" +
			"call stack and cause chain.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.Newf(errors.CodeInvalidArgument, "expected at most one report file, got %d", len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, opts, args)
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Wrap(err, errors.CodeInvalidArgument, "invalid flags")
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "settings file (yaml or json)")
	flags.StringVar(&opts.color, "color", "", "color output: auto, always or never")
	flags.BoolVar(&opts.warning, "warning", false, "render as a warning rather than an error")
	flags.BoolVar(&opts.debug, "debug", false, "log diagnostics to stderr")
	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts *cliOptions, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var loadOpts []config.Option
	if cmd.Flags().Changed("color") {
		loadOpts = append(loadOpts, config.WithOverride("color", opts.color))
	}
	if opts.debug {
		loadOpts = append(loadOpts, config.WithOverride("debug", true))
	}
	settings, err := config.Load(opts.configPath, loadOpts...)
	if err != nil {
		return err
	}

	zl, err := opts.newLogger(settings.Debug)
	if err != nil {
		return errors.Wrap(err, errors.CodeInternal, "init logger")
	}
	defer func() { _ = zl.Sync() }()

	logger := klog.NewSlogBuilder(zl).
		WithDebug(settings.Debug).
		WithRunID().
		Build()
	ctx, _ = klog.WithRunID(ctx)

	logger.DebugContext(ctx, "settings loaded",
		"config", opts.configPath,
		"color", settings.Color,
		"max_cause_depth", settings.MaxCauseDepth,
	)

	report, source, err := readReport(args, opts.stdin)
	if err != nil {
		logger.ErrorContext(ctx, "cannot read report", "source", source, "err", err)
		return err
	}

	causes := report.Causes(0)
	if len(causes) > settings.MaxCauseDepth {
		logger.WarnContext(ctx, "cause chain truncated",
			"causes", len(causes),
			"max_cause_depth", settings.MaxCauseDepth,
		)
	}

	styler := kcolor.ForWriter(settings.ColorMode(), opts.stdout)
	f := kstack.New(settings.FormatterOptions(styler)...)
	out := f.FormatStack(report, !opts.warning, 0)

	logger.DebugContext(ctx, "report rendered",
		"source", source,
		"frames", len(report.Frames),
		"causes", len(causes),
		"bytes", len(out),
	)

	if _, err := fmt.Fprintln(opts.stdout, out); err != nil {
		return errors.Wrap(err, errors.CodeFileSystem, "write report")
	}
	return nil
}

func readReport(args []string, stdin io.Reader) (*kstack.Report, string, error) {
	if len(args) == 0 || args[0] == "-" {
		r, err := kstack.Decode(stdin)
		return r, "stdin", err
	}

	path := args[0]
	file, err := os.Open(path)
	if err != nil {
		code := errors.CodeFileSystem
		if errors.Is(err, os.ErrNotExist) {
			code = errors.CodeNotFound
		}
		return nil, path, errors.Wrap(err, code, "open report").WithDetail("path", path)
	}
	defer file.Close()

	r, err := kstack.Decode(file)
	if err != nil {
		return nil, path, errors.Wrapf(err, errors.GetCode(err), "read %s", path).WithDetail("path", path)
	}
	return r, path, nil
}
