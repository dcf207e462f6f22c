package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/interrolog/interrolog/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate an interrolog configuration file without parsing anything.

Checks:
  - YAML syntax
  - Timestamp layouts round-trip a reference time
  - Tone verbs are non-empty
  - Output style is known
  - Action colors are #rrggbb values`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Timestamp layouts: %d\n", len(cfg.TimestampLayouts))
	for _, l := range cfg.TimestampLayouts {
		fmt.Printf("    - %s\n", l)
	}
	fmt.Printf("  Tones:             %v\n", cfg.Tones)
	fmt.Printf("  Default style:     %s\n", cfg.DefaultStyle)
	if len(cfg.ActionColors) > 0 {
		fmt.Printf("  Action colors:     %d override(s)\n", len(cfg.ActionColors))
	}

	return nil
}
