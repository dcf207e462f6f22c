package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/interrolog/interrolog/pkg/transcript"
)

// SpeakersOptions holds command-line options for the speakers command.
type SpeakersOptions struct {
	Config string
	Counts bool
	Sorted bool
}

// NewSpeakersCommand creates the speakers command.
func NewSpeakersCommand() *cobra.Command {
	opts := &SpeakersOptions{}

	cmd := &cobra.Command{
		Use:   "speakers <log-file>",
		Short: "List the unique speakers in a transcript",
		Long: `List every unique speaker appearing in a transcript log.

By default speakers are listed in order of first appearance. With --sort the
list is collated alphabetically using Polish collation rules, so names with
diacritics sort the way the in-game logs expect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpeakers(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Config file (YAML)")
	cmd.Flags().BoolVar(&opts.Counts, "count", false, "Show turn counts per speaker")
	cmd.Flags().BoolVar(&opts.Sorted, "sort", false, "Sort alphabetically (Polish collation)")

	return cmd
}

func runSpeakers(cmd *cobra.Command, args []string, opts *SpeakersOptions) error {
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

	speakers := result.Speakers()
	if opts.Sorted {
		collate.New(language.Polish).SortStrings(speakers)
	}

	if opts.Counts {
		turns := make(map[string]int)
		for i := range result.Entries {
			if result.Entries[i].Kind == transcript.EntrySpeech {
				turns[result.Entries[i].Speaker]++
			}
		}
		for _, s := range speakers {
			fmt.Printf("%4d  %s\n", turns[s], s)
		}
	} else {
		for _, s := range speakers {
			fmt.Println(s)
		}
	}

	if result.HasDiagnostics() {
		ExitCode = 1
	}

	return nil
}
