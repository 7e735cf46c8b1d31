// Package corpus defines the comment data model and the batch annotation
// step that turns raw comment rows into an analysis-ready corpus.
//
// Each row is annotated independently through a strict one-way chain:
// cleaned text is derived from the raw text, filtered text from cleaned,
// lemmatized from filtered, sentiment from cleaned, and the presence flags
// from the raw text only. No derived field is ever recomputed out of this
// order, and rows never influence each other.
//
// Annotation is embarrassingly parallel; AnnotateAll can fan rows out across
// workers without changing output or row order.
package corpus

import (
	"sync"

	"github.com/abljoel/youtube-comments-analysis/cleanse"
	"github.com/abljoel/youtube-comments-analysis/sentiment"
)

// RawComment is one entry from the ingestion source. Timestamps stay in
// their ISO-8601 string form at this boundary.
type RawComment struct {
	Author      string `json:"author"`
	PublishedAt string `json:"published_at"`
	UpdatedAt   string `json:"updated_at"`
	Likes       int    `json:"likes"`
	Text        string `json:"text"`
}

// AnnotatedComment is a RawComment plus the derived analysis fields.
// The flag fields use 0/1 rather than bool to match the downstream
// column contract.
type AnnotatedComment struct {
	RawComment

	CleanedText    string          `json:"cleaned_text"`
	FilteredText   string          `json:"filtered_text"`
	LemmatizedText string          `json:"lemmatized_text"`
	HasEmojis      int             `json:"has_emojis"`
	HasEmoticons   int             `json:"has_emoticons"`
	SentClass      sentiment.Class `json:"sent_class"`
	SentScore      float64         `json:"sent_score"`
}

// Annotator combines the cleansing pipeline and the sentiment analyzer.
type Annotator struct {
	norm *cleanse.Normalizer
	sent *sentiment.Analyzer
}

// NewAnnotator wires a normalizer and an analyzer into an Annotator.
func NewAnnotator(norm *cleanse.Normalizer, sent *sentiment.Analyzer) *Annotator {
	return &Annotator{norm: norm, sent: sent}
}

// NewDefaultAnnotator builds an Annotator with the default tables and the
// standard VADER lexicon.
func NewDefaultAnnotator() (*Annotator, error) {
	norm, err := cleanse.Default()
	if err != nil {
		return nil, err
	}
	sent, err := sentiment.NewAnalyzer()
	if err != nil {
		return nil, err
	}
	return NewAnnotator(norm, sent), nil
}

// Annotate derives all six analysis fields for one comment.
func (a *Annotator) Annotate(rc RawComment) AnnotatedComment {
	cleaned := a.norm.Clean(rc.Text)
	filtered := a.norm.FilterStopwords(cleaned)
	score := a.sent.Score(cleaned)

	out := AnnotatedComment{
		RawComment:     rc,
		CleanedText:    cleaned,
		FilteredText:   filtered,
		LemmatizedText: a.norm.Lemmatize(filtered),
		SentClass:      a.sent.Label(cleaned, score),
		SentScore:      score,
	}
	if a.norm.HasEmojis(rc.Text) {
		out.HasEmojis = 1
	}
	if a.norm.HasEmoticons(rc.Text) {
		out.HasEmoticons = 1
	}
	return out
}

// AnnotateAll annotates a row sequence, preserving input order. With
// workers <= 1 rows are processed sequentially; otherwise they are fanned
// out across that many goroutines, each writing its result by index.
func (a *Annotator) AnnotateAll(rows []RawComment, workers int) []AnnotatedComment {
	out := make([]AnnotatedComment, len(rows))
	if workers <= 1 || len(rows) < 2 {
		for i, rc := range rows {
			out[i] = a.Annotate(rc)
		}
		return out
	}

	if workers > len(rows) {
		workers = len(rows)
	}
	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				out[i] = a.Annotate(rows[i])
			}
		}()
	}
	for i := range rows {
		idx <- i
	}
	close(idx)
	wg.Wait()
	return out
}
