package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/interrolog/interrolog/pkg/transcript"
)

// DiagnoseOptions holds options for the diagnose command.
type DiagnoseOptions struct {
	Config  string
	Verbose bool
}

// NewDiagnoseCommand creates the diagnose command.
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <log-file>",
		Short: "Trace how each transcript line classifies",
		Long: `Trace the line-by-line classification of a transcript log.

For every line, shows which classification rule fired and the fragments it
extracted. Use this to understand why a line ended up unrecognized or why a
continuation attached to the wrong turn.

Example:
  interrolog diagnose session.log
  interrolog diagnose -v session.log  # include extracted fragments`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (YAML)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show extracted fragments per line")

	return cmd
}

func runDiagnose(cmd *cobra.Command, args []string, opts *DiagnoseOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	raw, err := readTranscript(args[0])
	if err != nil {
		return err
	}

	parseOpts := cfg.ParseOptions()
	result, err := transcript.Parse(raw, parseOpts)
	if err != nil {
		return err
	}

	fmt.Println("=== Line Classification Trace ===")
	fmt.Println()

	// Replay classification against the same turn-open state the parser saw,
	// so the trace matches what Parse actually did.
	classifier := transcript.NewClassifier(parseOpts)
	turnOpen := false
	for _, line := range transcript.SplitLines(raw) {
		cl := classifier.Classify(line, turnOpen)

		fmt.Printf("%4d  %-14s %s\n", line.Num, cl.Rule, truncate(line.Text, 60))
		if opts.Verbose {
			printFragments(cl)
		}

		// Mirror the accumulator's turn state: speaker turns open one,
		// blanks and emote annotations close it, everything else leaves
		// it as is.
		switch cl.Kind {
		case transcript.KindSpeakerTurn:
			turnOpen = true
		case transcript.KindBlank, transcript.KindEvent:
			turnOpen = false
		}
	}

	fmt.Println()
	fmt.Printf("Summary: %d lines, %d entries, %d diagnostics\n",
		result.Summary.TotalLines, result.Summary.Entries, result.Summary.Diagnostics)

	if result.HasDiagnostics() {
		fmt.Println()
		fmt.Println("Diagnostics:")
		for _, d := range result.Diagnostics {
			if d.EndLine > d.Line {
				fmt.Printf("  lines %d-%d: %s: %s\n", d.Line, d.EndLine, d.Kind, d.Detail)
			} else {
				fmt.Printf("  line %d: %s: %s\n", d.Line, d.Kind, d.Detail)
			}
		}
		ExitCode = 1
	}

	return nil
}

func printFragments(cl transcript.Classification) {
	if cl.RawTimestamp != "" {
		fmt.Printf("        timestamp: %s\n", cl.RawTimestamp)
	}
	if cl.Action != "" {
		fmt.Printf("        action:    %s\n", cl.Action)
	}
	if cl.Speaker != "" {
		fmt.Printf("        speaker:   %s\n", cl.Speaker)
	}
	if cl.Tone != "" {
		fmt.Printf("        tone:      %s\n", cl.Tone)
	}
	if cl.Addressee != "" {
		fmt.Printf("        addressee: %s\n", cl.Addressee)
	}
	if cl.Radio {
		fmt.Printf("        radio:     true\n")
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
