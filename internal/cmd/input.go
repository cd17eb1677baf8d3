package cmd

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var httpClient = &http.Client{
	Timeout: time.Second * 10,
}

// readInput reads the named file, stdin for "-" or no name, or an
// https:// URL.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	fileName := "-"
	if len(args) > 0 {
		fileName = args[0]
	}

	switch {
	case fileName == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, errors.Wrap(err, "failed to read from stdin")
		}
		return data, nil

	case strings.HasPrefix(fileName, "https://"):
		req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, fileName, nil)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid url %q", fileName)
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get a file %q", fileName)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return nil, errors.Errorf("failed to get a file %q: %s", fileName, resp.Status)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read body")
		}
		return data, nil

	default:
		data, err := os.ReadFile(fileName)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read from file %q", fileName)
		}
		return data, nil
	}
}
