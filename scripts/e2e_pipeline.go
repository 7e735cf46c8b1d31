//go:build ignore

// e2e_pipeline exercises the full annotation pipeline on a fixed mini-corpus
// and renders every chart type into a temp directory.
// Run from the project root:
//
//	go run scripts/e2e_pipeline.go
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/abljoel/youtube-comments-analysis/corpus"
	"github.com/abljoel/youtube-comments-analysis/insight"
)

var rows = []corpus.RawComment{
	{Author: "alice", PublishedAt: "2024-01-01T10:00:00Z", UpdatedAt: "2024-01-01T10:00:00Z", Likes: 12, Text: "This movie was AMAZING!! 😊 <b>loved it</b>"},
	{Author: "bob", PublishedAt: "2024-01-01T11:30:00Z", UpdatedAt: "2024-01-01T11:30:00Z", Likes: 0, Text: "Worst pacing I have ever seen :("},
	{Author: "alice", PublishedAt: "2024-01-02T09:00:00Z", UpdatedAt: "2024-01-02T09:15:00Z", Likes: 4, Text: "Rewatched it, still great :)"},
	{Author: "carol", PublishedAt: "2024-01-03T17:45:00Z", UpdatedAt: "2024-01-03T17:45:00Z", Likes: 1, Text: "the 123 cat"},
	{Author: "dave", PublishedAt: "2024-01-03T18:00:00Z", UpdatedAt: "2024-01-03T18:00:00Z", Likes: 0, Text: ""},
}

func main() {
	annotator, err := corpus.NewDefaultAnnotator()
	if err != nil {
		log.Fatalf("building annotator: %v", err)
	}

	annotated := annotator.AnnotateAll(rows, 4)
	for _, ac := range annotated {
		fmt.Printf("%-8s %-8s %6.4f  %q\n", ac.Author, ac.SentClass, ac.SentScore, ac.LemmatizedText)
	}

	var buf bytes.Buffer
	if err := corpus.WriteAnnotated(&buf, annotated); err != nil {
		log.Fatalf("writing corpus: %v", err)
	}

	outDir, err := os.MkdirTemp("", "ytlens-e2e-")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("output dir:", outDir)

	writeChart(filepath.Join(outDir, "ratio.png"), func(f *os.File) error {
		return insight.SentimentRatio(annotated, "Ratio Chart of Sentiments", f)
	})
	writeChart(filepath.Join(outDir, "top_viewer.png"), func(f *os.File) error {
		return insight.TopViewerRatio(annotated, f)
	})
	writeChart(filepath.Join(outDir, "engagement.png"), func(f *os.File) error {
		return insight.EngagementCurve(annotated, f)
	})
}

func writeChart(path string, render func(*os.File) error) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("creating %s: %v", path, err)
	}
	if err := render(f); err != nil {
		log.Fatalf("rendering %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("wrote", path)
}
