// Package commands implements the interrolog subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/interrolog/interrolog/pkg/config"
	"github.com/interrolog/interrolog/pkg/transcript"
)

// ExitCode is set by commands to indicate the result:
// 0 - clean parse, 1 - diagnostics reported, 2 - configuration or input error.
var ExitCode = 0

// loadConfig loads the config file at path, or returns defaults when no
// path was given.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		cfg := config.DefaultConfig()
		if err := config.Validate(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	return config.Load(ctx, path)
}

// readTranscript reads the transcript text from a file, or from stdin when
// the path is "-".
func readTranscript(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided log path is expected
	if err != nil {
		return "", fmt.Errorf("reading transcript: %w", err)
	}
	return string(data), nil
}

// parseTranscript reads and parses a transcript, translating non-text input
// into a user-facing error.
func parseTranscript(path string, opts transcript.Options) (*transcript.Result, error) {
	raw, err := readTranscript(path)
	if err != nil {
		return nil, err
	}

	result, err := transcript.Parse(raw, opts)
	if err != nil {
		var inputErr *transcript.InputError
		if errors.As(err, &inputErr) {
			return nil, fmt.Errorf("%s is not a text transcript (invalid UTF-8 at byte %d)", path, inputErr.Offset)
		}
		return nil, err
	}
	return result, nil
}
