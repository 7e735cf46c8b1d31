package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abljoel/youtube-comments-analysis/corpus"
	"github.com/abljoel/youtube-comments-analysis/insight"
)

func newInsightCmd() *cobra.Command {
	var (
		input           string
		output          string
		sentimentRatio  bool
		topViewer       bool
		topViewerTopics int
		engagement      bool
		fontFile        string
	)
	cmd := &cobra.Command{
		Use:   "insight",
		Short: "Render descriptive charts from an annotated corpus",
		RunE: func(*cobra.Command, []string) error {
			selected := 0
			for _, on := range []bool{sentimentRatio, topViewer, topViewerTopics > 0, engagement} {
				if on {
					selected++
				}
			}
			if selected != 1 {
				return errors.New("pick exactly one of --sentiment, --top-viewer, --top-viewer-topics, --engagement")
			}

			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("opening %s: %w", input, err)
			}
			rows, err := corpus.ReadAnnotated(f)
			f.Close()
			if err != nil {
				return err
			}

			out, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating %s: %w", output, err)
			}

			switch {
			case sentimentRatio:
				err = insight.SentimentRatio(rows, "Ratio Chart of Sentiments", out)
			case topViewer:
				err = insight.TopViewerRatio(rows, out)
			case topViewerTopics > 0:
				err = insight.WordCloud(rows, topViewerTopics, insight.WordCloudOptions{FontFile: fontFile}, out)
			case engagement:
				err = insight.EngagementCurve(rows, out)
			}
			if err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
			logger.Info("saved chart", "path", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "input file path for loading corpus data")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path for saving the chart")
	cmd.Flags().BoolVar(&sentimentRatio, "sentiment", false, "plot ratio of sentiments")
	cmd.Flags().BoolVar(&topViewer, "top-viewer", false, "plot top viewer sentiment ratio")
	cmd.Flags().IntVar(&topViewerTopics, "top-viewer-topics", 0, "word cloud over the N most liked comments")
	cmd.Flags().BoolVar(&engagement, "engagement", false, "plot engagement curve")
	cmd.Flags().StringVar(&fontFile, "font", "", "TTF font file for the word cloud")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")
	return cmd
}
