// ytlens collects YouTube comment data, prepares the annotated corpus,
// and renders insight charts.
//
// The three subcommands mirror the pipeline stages and are run in order:
//
//	ytlens collect --video-id VIDEO -o raw.csv
//	ytlens prepare -i raw.csv -o corpus.csv
//	ytlens insight -i corpus.csv --sentiment -o ratio.png
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	root := &cobra.Command{
		Use:           "ytlens",
		Short:         "YouTube comment analysis pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCollectCmd(), newPrepareCmd(), newInsightCmd())

	if err := root.Execute(); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
