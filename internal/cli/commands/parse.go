package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/interrolog/interrolog/pkg/output"
	"github.com/interrolog/interrolog/pkg/transcript"
)

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Config             string
	Style              string
	Speaker            string
	Keyword            string
	Action             string
	TimestampLayout    string
	IncludeDiagnostics bool
	Verbose            bool
	Quiet              bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <log-file>",
		Short: "Parse a transcript log and render it",
		Long: `Parse an interrogation transcript log and render it in the chosen style.

Reads the raw in-game chat log, groups lines into speaker turns and events,
attaches timestamps, and reports diagnostics for anything malformed. Use "-"
as the file argument to read from stdin.

Styles:
  display  Aligned, human-readable (default)
  plain    Speaker and utterance only
  export   Machine-stable, re-parseable text
  json     Structured entries and diagnostics
  html     Colored markup matching the in-game categories

Exit codes:
  0 - Parsed with no diagnostics
  1 - Parsed with diagnostics
  2 - Configuration or input error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (YAML)")
	cmd.Flags().StringVarP(&opts.Style, "style", "s", "", "Output style (display|plain|export|json|html)")
	cmd.Flags().StringVar(&opts.Speaker, "speaker", "", "Only entries spoken by this speaker")
	cmd.Flags().StringVar(&opts.Keyword, "filter", "", "Only entries whose utterance contains this keyword")
	cmd.Flags().StringVar(&opts.Action, "action", "", "Only entries tagged with this action category")
	cmd.Flags().StringVar(&opts.TimestampLayout, "timestamp-layout", "", "Go time layout for rendered timestamps")
	cmd.Flags().BoolVarP(&opts.IncludeDiagnostics, "include-diagnostics", "d", false, "Append a diagnostics section to the output")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include source line ranges and summary details")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no rendered entries")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	result, err := parseTranscript(args[0], cfg.ParseOptions())
	if err != nil {
		return err
	}

	result.Entries = applyFilters(result.Entries, opts)

	if opts.Quiet {
		fmt.Printf("%d entries, %d diagnostics (%d lines)\n",
			len(result.Entries), len(result.Diagnostics), result.Summary.TotalLines)
	} else {
		style := opts.Style
		if style == "" {
			style = cfg.DefaultStyle
		}
		layout := opts.TimestampLayout
		if layout == "" {
			layout = cfg.OutputTimestampLayout
		}

		formatter, err := output.New(style, output.FormatOptions{
			TimestampLayout:    layout,
			IncludeDiagnostics: opts.IncludeDiagnostics || cfg.IncludeDiagnostics,
			Verbose:            opts.Verbose,
			ActionColors:       cfg.ActionColors,
		})
		if err != nil {
			return err
		}

		if err := formatter.Format(ctx, result, os.Stdout); err != nil {
			return fmt.Errorf("formatting output: %w", err)
		}
	}

	if result.HasDiagnostics() {
		ExitCode = 1
	}

	return nil
}

func applyFilters(entries []transcript.Entry, opts *ParseOptions) []transcript.Entry {
	if opts.Speaker != "" {
		entries = transcript.FilterSpeaker(entries, opts.Speaker)
	}
	if opts.Keyword != "" {
		entries = transcript.FilterKeyword(entries, opts.Keyword)
	}
	if opts.Action != "" {
		entries = transcript.FilterAction(entries, opts.Action)
	}
	return entries
}
