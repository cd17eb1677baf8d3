package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stateful/draftjshtml/internal/config"
	"github.com/stateful/draftjshtml/internal/log"
)

const (
	configF  = "config"
	verboseF = "verbose"
)

var (
	fConfig  string
	fVerbose bool
)

func setGlobalFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&fConfig, configF, "", "Path to a YAML or TOML options file.")
	flagSet.BoolVar(&fVerbose, verboseF, false, "Log anomalies recovered during conversion.")
}

func Root() *cobra.Command {
	cmd := cobra.Command{
		Use:           "draftjshtml",
		Short:         "Convert Draft.js raw documents to HTML and back",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Set(fVerbose)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}

	setGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(toHTMLCmd())
	cmd.AddCommand(fromHTMLCmd())

	return &cmd
}

func loadConfig() (*config.Config, error) {
	if fConfig == "" {
		return &config.Config{Version: config.Version}, nil
	}

	path, err := filepath.Abs(fConfig)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	loader := config.NewLoader(os.DirFS(filepath.Dir(path)), config.WithLogger(log.Get()))
	return loader.Load(filepath.Base(path))
}
