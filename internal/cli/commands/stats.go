package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/interrolog/interrolog/pkg/stats"
)

// StatsOptions holds command-line options for the stats command.
type StatsOptions struct {
	Config   string
	Output   string
	Speakers []string
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats <log-file>",
		Short: "Summarize a transcript",
		Long: `Compute summary statistics for a transcript log.

Reports turn and word counts per speaker, entry counts per action category
and tone, and the time span covered by timestamped entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (YAML)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringSliceVar(&opts.Speakers, "speaker", nil, "Limit speaker breakdown to these speakers (can be repeated)")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, opts *StatsOptions) error {
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

	var collectOpts []stats.Option
	if len(opts.Speakers) > 0 {
		collectOpts = append(collectOpts, stats.WithSpeakerFilter(opts.Speakers))
	}
	s := stats.Collect(result, collectOpts...)

	switch opts.Output {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(s); err != nil {
			return fmt.Errorf("encoding stats: %w", err)
		}
	case "text":
		printStatsText(s, cfg.OutputTimestampLayout)
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}

	if result.HasDiagnostics() {
		ExitCode = 1
	}

	return nil
}

func printStatsText(s *stats.Stats, layout string) {
	fmt.Println("=== Transcript Statistics ===")
	fmt.Println()
	fmt.Printf("Entries:      %d (%d speech, %d events)\n", s.TotalEntries, s.SpeechTurns, s.Events)
	fmt.Printf("Diagnostics:  %d\n", s.Diagnostics)

	if !s.First.IsZero() {
		fmt.Printf("Time span:    %s to %s (%s)\n",
			s.First.Format(layout), s.Last.Format(layout), s.Duration())
	}
	fmt.Println()

	if len(s.Speakers) > 0 {
		fmt.Println("Speakers:")
		for _, sp := range s.Speakers {
			line := fmt.Sprintf("  %-30s %4d turns, %5d words", sp.Name, sp.Turns, sp.Words)
			if sp.RadioTurns > 0 {
				line += fmt.Sprintf(" (%d on radio)", sp.RadioTurns)
			}
			fmt.Println(line)
		}
		fmt.Println()
	}

	if len(s.Actions) > 0 {
		fmt.Println("Action categories:")
		for _, action := range sortedKeys(s.Actions) {
			fmt.Printf("  %-30s %4d\n", action, s.Actions[action])
		}
		fmt.Println()
	}

	if len(s.Tones) > 0 {
		fmt.Println("Tones:")
		for _, tone := range sortedKeys(s.Tones) {
			fmt.Printf("  %-30s %4d\n", tone, s.Tones[tone])
		}
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
