package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/stateful/draftjshtml/internal/log"
	"github.com/stateful/draftjshtml/pkg/draftjshtml"
)

func toHTMLCmd() *cobra.Command {
	var (
		encoding        string
		squeezeNewlines bool
	)

	cmd := cobra.Command{
		Use:   "tohtml [file|-]",
		Short: "Render Draft.js raw JSON as HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts := cfg.ToHTMLOptions()
			opts.Logger = log.Get()
			if cmd.Flags().Changed("squeeze-newlines") {
				opts.SqueezeNewlines = squeezeNewlines
			}
			if encoding != "" {
				opts.Encoding = encoding
			}

			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			result, err := draftjshtml.ToHTMLJSON(data, opts)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result)
			return errors.Wrap(err, "failed to write result")
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "", "Output encoding label, for example windows-1252. Defaults to UTF-8.")
	cmd.Flags().BoolVar(&squeezeNewlines, "squeeze-newlines", false, "Collapse consecutive newlines into a single <br>.")

	return &cmd
}
