// Package sentiment scores the polarity of English text and maps compound
// scores onto a three-way classification.
//
// Scoring is delegated to a VADER lexicon model, which produces a compound
// score in [-1.0, +1.0]. Classification applies fixed thresholds:
//
//	score > 0.4          positive
//	-0.1 < score <= 0.4  neutral
//	score <= -0.1        negative
//
// An Analyzer is built once (the lexicon load is the expensive part) and is
// safe for concurrent use by multiple goroutines. The lexicons are embedded
// in the binary, so construction never touches the filesystem.
package sentiment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/drankou/go-vader/vader"

	"github.com/abljoel/youtube-comments-analysis/data"
)

// maxInputBytes is the maximum input size. Inputs exceeding this score 0.
const maxInputBytes = 1 << 20 // 1 MiB

// Classification thresholds over the compound score.
const (
	positiveThreshold = 0.4
	negativeThreshold = -0.1
)

// Class is the sentiment classification of a text.
type Class int

const (
	Negative Class = -1
	Neutral  Class = 0
	Positive Class = 1
)

// classNames maps Class values to their column labels.
var classNames = map[Class]string{
	Negative: "negative",
	Neutral:  "neutral",
	Positive: "positive",
}

// classFromName maps column labels back to Class values.
var classFromName = map[string]Class{
	"negative": Negative,
	"neutral":  Neutral,
	"positive": Positive,
}

// String returns the column label of the class.
func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// MarshalJSON encodes the class as a JSON string.
func (c Class) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a JSON string into a Class.
func (c *Class) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	v, err := ParseClass(str)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseClass converts a column label into a Class.
func ParseClass(label string) (Class, error) {
	if c, ok := classFromName[label]; ok {
		return c, nil
	}
	return Neutral, fmt.Errorf("sentiment: unknown class label %q", label)
}

// Classify maps a compound score onto a Class. The boundaries are closed on
// the right: exactly 0.4 is neutral, exactly -0.1 is negative.
func Classify(score float64) Class {
	switch {
	case score > positiveThreshold:
		return Positive
	case score <= negativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Analyzer wraps a VADER intensity analyzer with its loaded lexicon.
type Analyzer struct {
	sia vader.SentimentIntensityAnalyzer
}

// NewAnalyzer builds an Analyzer from the embedded VADER lexicons. The
// underlying analyzer's own loader reads lexicon files relative to the
// process working directory, so the maps are populated directly instead.
func NewAnalyzer() (*Analyzer, error) {
	lexicon := parseLexicon(data.VaderLexicon)
	if len(lexicon) == 0 {
		return nil, errors.New("sentiment: embedded vader lexicon has no entries")
	}
	a := &Analyzer{}
	a.sia.LexiconMap = lexicon
	a.sia.EmojiLexiconMap = parseEmojiLexicon(data.VaderEmojiLexicon)
	return a, nil
}

// parseLexicon reads "token<TAB>valence" lines. Blank lines, comment lines
// and lines whose valence does not parse are skipped.
func parseLexicon(raw string) map[string]float64 {
	m := make(map[string]float64, 256)
	for _, line := range strings.Split(raw, "\n") {
		if line == "" || line[0] == '#' {
			continue
		}
		token, rest, ok := strings.Cut(line, "\t")
		if !ok || token == "" {
			continue
		}
		valence, err := strconv.ParseFloat(strings.TrimRight(rest, "\r"), 64)
		if err != nil {
			continue
		}
		m[token] = valence
	}
	return m
}

// parseEmojiLexicon reads "glyph<TAB>description" lines.
func parseEmojiLexicon(raw string) map[string]string {
	m := make(map[string]string, 64)
	for _, line := range strings.Split(raw, "\n") {
		if line == "" || line[0] == '#' {
			continue
		}
		glyph, desc, ok := strings.Cut(line, "\t")
		if !ok || glyph == "" {
			continue
		}
		desc = strings.TrimRight(desc, "\r")
		if desc == "" {
			continue
		}
		m[glyph] = desc
	}
	return m
}

// neutralPad is prepended to every scored text. The underlying analyzer
// indexes one position before the first token whenever that token has a
// lexicon entry; the pad keeps a harmless token in that slot. It carries no
// lexicon, booster, negation or idiom meaning, and its upper casing leaves
// the all-caps emphasis differential unchanged for any input.
const neutralPad = "TO "

// Score returns the compound polarity score of text in [-1.0, +1.0].
// Empty or oversized input scores 0.
func (a *Analyzer) Score(text string) float64 {
	if text == "" || len(text) > maxInputBytes {
		return 0
	}
	return a.sia.PolarityScores(neutralPad + text)["compound"]
}

// Label classifies text given an externally supplied compound score.
// A score of exactly 0.0 is indistinguishable from "no score given" and is
// recomputed from the text.
func (a *Analyzer) Label(text string, score float64) Class {
	if score == 0 {
		score = a.Score(text)
	}
	return Classify(score)
}
