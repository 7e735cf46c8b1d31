// Package insight renders descriptive charts over an annotated corpus:
// sentiment ratio pies, a top-commenter word cloud, and an engagement
// curve of likes and comment volume over time.
//
// The package is pure presentation: it never recomputes derived fields,
// it only aggregates and draws what the corpus already carries.
package insight

import (
	"errors"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/psykhi/wordclouds"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"

	"github.com/abljoel/youtube-comments-analysis/corpus"
	"github.com/abljoel/youtube-comments-analysis/sentiment"
)

// Chart canvas defaults.
const (
	pieSize     = 550
	curveWidth  = 1000
	curveHeight = 500
)

// SentimentRatio renders a pie chart of sent_class proportions as PNG.
func SentimentRatio(rows []corpus.AnnotatedComment, title string, w io.Writer) error {
	if len(rows) == 0 {
		return errors.New("insight: no rows to chart")
	}

	counts := make(map[sentiment.Class]int, 3)
	for _, ac := range rows {
		counts[ac.SentClass]++
	}

	values := make([]chart.Value, 0, 3)
	for _, class := range []sentiment.Class{sentiment.Positive, sentiment.Neutral, sentiment.Negative} {
		n := counts[class]
		if n == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(n),
			Label: fmt.Sprintf("%s %.0f%%", class, 100*float64(n)/float64(len(rows))),
		})
	}

	pie := chart.PieChart{
		Title:  title,
		Width:  pieSize,
		Height: pieSize,
		Values: values,
	}
	return pie.Render(chart.PNG, w)
}

// TopViewer returns the most frequent author and their rows. Ties resolve
// to the author seen first.
func TopViewer(rows []corpus.AnnotatedComment) (string, []corpus.AnnotatedComment) {
	counts := make(map[string]int)
	top, best := "", 0
	for _, ac := range rows {
		counts[ac.Author]++
		if counts[ac.Author] > best {
			top, best = ac.Author, counts[ac.Author]
		}
	}
	if top == "" {
		return "", nil
	}
	var theirs []corpus.AnnotatedComment
	for _, ac := range rows {
		if ac.Author == top {
			theirs = append(theirs, ac)
		}
	}
	return top, theirs
}

// TopViewerRatio renders the sentiment ratio pie for the most frequent
// author's comments.
func TopViewerRatio(rows []corpus.AnnotatedComment, w io.Writer) error {
	viewer, theirs := TopViewer(rows)
	if viewer == "" {
		return errors.New("insight: no rows to chart")
	}
	return SentimentRatio(theirs, fmt.Sprintf("Ratio Chart of %s Sentiments", viewer), w)
}

// WordCloudOptions controls word cloud rendering. FontFile must point at a
// TTF file; the drawing library has no built-in font.
type WordCloudOptions struct {
	FontFile   string
	Width      int
	Height     int
	Background color.Color
}

// WordCloud renders a word cloud PNG from the lemmatized text of the topN
// most-liked comments.
func WordCloud(rows []corpus.AnnotatedComment, topN int, opts WordCloudOptions, w io.Writer) error {
	freqs := topLikedWordFrequencies(rows, topN)
	if len(freqs) == 0 {
		return errors.New("insight: no words to draw")
	}
	if opts.FontFile == "" {
		return errors.New("insight: word cloud needs a font file")
	}
	if opts.Width <= 0 {
		opts.Width = pieSize
	}
	if opts.Height <= 0 {
		opts.Height = pieSize
	}
	if opts.Background == nil {
		opts.Background = color.White
	}

	wc := wordclouds.NewWordcloud(freqs,
		wordclouds.FontFile(opts.FontFile),
		wordclouds.FontMaxSize(110),
		wordclouds.FontMinSize(10),
		wordclouds.Width(opts.Width),
		wordclouds.Height(opts.Height),
		wordclouds.BackgroundColor(opts.Background),
	)
	return png.Encode(w, wc.Draw())
}

// topLikedWordFrequencies counts lemmatized tokens across the topN
// most-liked comments. The lemmatized text is already stopword-free.
func topLikedWordFrequencies(rows []corpus.AnnotatedComment, topN int) map[string]int {
	byLikes := append([]corpus.AnnotatedComment(nil), rows...)
	sort.SliceStable(byLikes, func(i, j int) bool {
		return byLikes[i].Likes > byLikes[j].Likes
	})
	if topN > 0 && topN < len(byLikes) {
		byLikes = byLikes[:topN]
	}

	freqs := make(map[string]int)
	for _, ac := range byLikes {
		for _, tok := range strings.Fields(ac.LemmatizedText) {
			freqs[tok]++
		}
	}
	return freqs
}

// EngagementCurve renders per-day comment counts and like sums over time,
// both min-max normalized onto [0, 1], as two series on one PNG chart.
func EngagementCurve(rows []corpus.AnnotatedComment, w io.Writer) error {
	days, comments, likes, err := dailyEngagement(rows)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		return errors.New("insight: no rows to chart")
	}

	graph := chart.Chart{
		Title:  "Engagement Curve",
		Width:  curveWidth,
		Height: curveHeight,
		XAxis:  chart.XAxis{ValueFormatter: chart.TimeDateValueFormatter},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Comments",
				XValues: days,
				YValues: minMaxScale(comments),
				Style:   chart.Style{StrokeColor: drawing.ColorBlue},
			},
			chart.TimeSeries{
				Name:    "Likes",
				XValues: days,
				YValues: minMaxScale(likes),
				Style:   chart.Style{StrokeColor: drawing.ColorRed},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

// dailyEngagement buckets rows by publication date (UTC) in ascending
// order. A malformed timestamp is a contract violation and fails the run.
func dailyEngagement(rows []corpus.AnnotatedComment) ([]time.Time, []float64, []float64, error) {
	type bucket struct {
		comments int
		likes    int
	}
	buckets := make(map[time.Time]*bucket)
	for _, ac := range rows {
		ts, err := time.Parse(time.RFC3339, ac.PublishedAt)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("insight: bad published_at %q: %w", ac.PublishedAt, err)
		}
		day := ts.UTC().Truncate(24 * time.Hour)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.comments++
		b.likes += ac.Likes
	}

	days := make([]time.Time, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	comments := make([]float64, len(days))
	likes := make([]float64, len(days))
	for i, day := range days {
		comments[i] = float64(buckets[day].comments)
		likes[i] = float64(buckets[day].likes)
	}
	return days, comments, likes, nil
}

// minMaxScale maps vals onto [0, 1]. A constant series maps to all zeros.
func minMaxScale(vals []float64) []float64 {
	if len(vals) == 0 {
		return vals
	}
	lo, hi := floats.Min(vals), floats.Max(vals)
	scaled := make([]float64, len(vals))
	if hi == lo {
		return scaled
	}
	for i, v := range vals {
		scaled[i] = (v - lo) / (hi - lo)
	}
	return scaled
}
