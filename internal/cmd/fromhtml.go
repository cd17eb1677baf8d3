package cmd

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/stateful/draftjshtml/internal/log"
	"github.com/stateful/draftjshtml/pkg/draftjs"
	"github.com/stateful/draftjshtml/pkg/draftjshtml"
)

func fromHTMLCmd() *cobra.Command {
	var (
		markdown          bool
		squeezeWhitespace bool
	)

	cmd := cobra.Command{
		Use:   "fromhtml [file|-|https://...]",
		Short: "Convert HTML into Draft.js raw JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts := cfg.FromHTMLOptions()
			opts.Logger = log.Get()
			if cmd.Flags().Changed("squeeze-whitespace") {
				opts.SqueezeWhitespaceBlocks = squeezeWhitespace
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var raw *draftjs.RawDraftJS
			if markdown {
				raw, err = draftjshtml.FromMarkdown(data, opts)
			} else {
				raw, err = draftjshtml.FromHTMLReader(bytes.NewReader(data), opts)
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return errors.Wrap(enc.Encode(raw), "failed to write result")
		},
	}

	cmd.Flags().BoolVar(&markdown, "markdown", false, "Treat the input as Markdown.")
	cmd.Flags().BoolVar(&squeezeWhitespace, "squeeze-whitespace", false, "Drop blocks made only of whitespace.")

	return &cmd
}
