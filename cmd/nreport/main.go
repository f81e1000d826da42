// nreport converts an NUnit 2.x results file into a self-contained HTML report.
//
// Usage:
//
//	nreport TestResult.xml
//	nreport TestResult.xml report.html --title "Nightly" --summary terminal
//
// The output path defaults to the input path with its extension replaced by
// .html. Settings may also come from .nreport.yaml or NREPORT_* variables.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkoosis/nreport/internal/config"
	"github.com/dkoosis/nreport/internal/detect"
	"github.com/dkoosis/nreport/internal/version"
	"github.com/dkoosis/nreport/internal/watch"
	"github.com/dkoosis/nreport/pkg/htmlreport"
	"github.com/dkoosis/nreport/pkg/nunit"
	"github.com/dkoosis/nreport/pkg/render"
)

const usageLine = "Usage: nreport <input-file> [output-file]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	flags   config.CliFlags
	summary string
	watch   bool
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		opts options
		code int
	)

	cmd := &cobra.Command{
		Use:           "nreport <input-file> [output-file]",
		Short:         "Convert NUnit 2 test results to a self-contained HTML report",
		Version:       version.String(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.flags.NoColorSet = cmd.Flags().Changed("no-color")
			opts.flags.DebugSet = cmd.Flags().Changed("debug")
			code = convert(args, opts, stdout, stderr)
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("nreport {{.Version}}\n")

	f := cmd.Flags()
	f.StringVar(&opts.flags.Title, "title", "", "Document title")
	f.StringVar(&opts.flags.Fixtures, "fixtures", "", "Suites rendered as cards: top, all")
	f.StringVar(&opts.summary, "summary", "none", "Run summary on stdout: none, terminal, json")
	f.StringVar(&opts.flags.ThemeName, "theme", "", "Terminal summary theme: default, orca, mono")
	f.BoolVar(&opts.flags.NoColor, "no-color", false, "Disable colours in the terminal summary")
	f.StringVar(&opts.flags.ConfigPath, "config", "", "Path to a config file")
	f.BoolVar(&opts.flags.Debug, "debug", false, "Print debug traces to stderr")
	f.BoolVar(&opts.watch, "watch", false, "Regenerate the report whenever the input file changes")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "nreport: %v\n", err)
		return 2
	}
	return code
}

func convert(args []string, opts options, stdout, stderr io.Writer) int {
	if len(args) == 0 || len(args) > 2 {
		fmt.Fprintln(stdout, usageLine)
		return 2
	}
	switch opts.summary {
	case "none", "terminal", "json":
	default:
		fmt.Fprintf(stderr, "nreport: unknown summary %q (expected none, terminal, json)\n", opts.summary)
		return 2
	}

	cfg, err := config.Resolve(opts.flags)
	if err != nil {
		fmt.Fprintf(stderr, "nreport: %v\n", err)
		return 2
	}
	debugf := newDebugf(stderr, cfg.Debug)
	if cfg.ConfigPath != "" {
		debugf("config %s", cfg.ConfigPath)
	}
	debugf("title=%q (%s) fixtures=%s (%s) theme=%s (%s)",
		cfg.Title, cfg.TitleSource, cfg.Fixtures, cfg.FixturesSource, cfg.ThemeName, cfg.ThemeSource)

	input := args[0]
	if _, err := os.Stat(input); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(stderr, "Input file %q not found.\n", input)
		return 1
	}
	output := outputPath(input)
	if len(args) == 2 {
		output = args[1]
	}
	debugf("input=%s output=%s", input, output)

	summary, err := generate(input, output, cfg, debugf)
	if err != nil {
		fmt.Fprintf(stderr, "Error generating HTML report: %v\n", err)
		return 1
	}
	printSummary(stdout, opts.summary, cfg, summary)

	if !opts.watch {
		return 0
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fmt.Fprintf(stderr, "nreport: watching %s (Ctrl-C to stop)\n", input)
	err = watch.Run(ctx, input, watch.DefaultDebounce, func() {
		summary, err := generate(input, output, cfg, debugf)
		if err != nil {
			fmt.Fprintf(stderr, "Error generating HTML report: %v\n", err)
			return
		}
		printSummary(stdout, opts.summary, cfg, summary)
	})
	if err != nil {
		fmt.Fprintf(stderr, "nreport: %v\n", err)
		return 1
	}
	return 0
}

func printSummary(w io.Writer, mode string, cfg *config.ResolvedConfig, summary *render.Summary) {
	var r render.Renderer
	switch mode {
	case "terminal":
		theme := render.ThemeByName(cfg.ThemeName)
		if cfg.NoColor {
			theme = render.MonoTheme()
		}
		r = render.NewTerminal(theme, termWidth(w))
	case "json":
		r = render.NewJSON()
	default:
		return
	}
	fmt.Fprint(w, r.Render(summary))
}

// generate reads input, renders it and writes the document to output.
func generate(input, output string, cfg *config.ResolvedConfig, debugf func(string, ...any)) (*render.Summary, error) {
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	switch format := detect.Sniff(data); format {
	case detect.NUnit3, detect.JUnit:
		return nil, fmt.Errorf("%s results are not supported (expected NUnit 2 test-results)", format)
	default:
		debugf("format %s", format)
	}

	report, err := nunit.ReadBytes(data)
	if err != nil {
		return nil, err
	}

	renderOpts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}
	renderer := htmlreport.New(renderOpts)
	doc, err := renderer.Render(report)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	debugf("wrote %d bytes", len(doc))

	summary := render.Summarize(report, renderer.Fixtures(report))
	summary.Output = output
	return summary, nil
}

// outputPath replaces the extension of input with .html.
func outputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
}

func newDebugf(w io.Writer, enabled bool) func(string, ...any) {
	return func(format string, args ...any) {
		if enabled {
			fmt.Fprintf(w, "nreport: debug: "+format+"\n", args...)
		}
	}
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}
