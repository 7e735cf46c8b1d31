package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abljoel/youtube-comments-analysis/corpus"
	"github.com/abljoel/youtube-comments-analysis/youtube"
)

// defaultMaxComments caps a collection run to keep quota usage bounded.
const defaultMaxComments = 3000

func newCollectCmd() *cobra.Command {
	var (
		videoID string
		output  string
		max     int
	)
	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Fetch YouTube comments for a video into a raw CSV",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCollect(cmd.Context(), videoID, output, max)
		},
	}
	cmd.Flags().StringVar(&videoID, "video-id", "", "YouTube video ID for comments extraction")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path for storing comments data")
	cmd.Flags().IntVar(&max, "max", defaultMaxComments, "maximum number of comments to fetch (0 for all)")
	cmd.MarkFlagRequired("video-id")
	cmd.MarkFlagRequired("output")
	return cmd
}

func runCollect(ctx context.Context, videoID, output string, max int) error {
	// A missing .env is fine; the key may be exported directly.
	_ = godotenv.Load()
	key := os.Getenv("YOUTUBE_API_KEY")
	if key == "" {
		return errors.New("YOUTUBE_API_KEY is not set: export it or put it in a .env file")
	}

	client := youtube.Client{APIKey: key, MaxComments: max}
	rows, err := client.Comments(ctx, videoID)
	if err != nil {
		return err
	}
	logger.Info("fetched comment data", "video", videoID, "rows", len(rows))

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	if err := corpus.WriteRaw(f, rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	logger.Info("saved comment data", "path", output)
	return nil
}
