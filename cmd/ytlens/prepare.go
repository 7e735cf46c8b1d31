package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abljoel/youtube-comments-analysis/corpus"
)

func newPrepareCmd() *cobra.Command {
	var (
		input   string
		output  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Clean and annotate a raw comment CSV into the analysis corpus",
		RunE: func(*cobra.Command, []string) error {
			return runPrepare(input, output, workers)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file path for reading raw data")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path for storing processed corpus data")
	cmd.Flags().IntVar(&workers, "workers", 1, "parallel annotation workers")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}

func runPrepare(input, output string, workers int) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", input, err)
	}
	rows, err := corpus.ReadRaw(f)
	f.Close()
	if err != nil {
		return err
	}

	annotator, err := corpus.NewDefaultAnnotator()
	if err != nil {
		return err
	}
	annotated := annotator.AnnotateAll(rows, workers)
	logger.Info("annotated corpus", "rows", len(annotated), "workers", workers)

	out, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	if err := corpus.WriteAnnotated(out, annotated); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	logger.Info("saved processed corpus", "path", output)
	return nil
}
