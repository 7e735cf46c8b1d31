// Package cleanse turns raw comment text into analysis-ready derived fields.
//
// The pipeline applies a fixed sequence of total transformations:
//
//  1. StripMarkup removes HTML tags and resolves entities.
//  2. TranslateEmojis replaces whole-token emoji glyphs with their names.
//  3. TranslateEmoticons replaces emoticon substrings with phrases.
//  4. FilterNoise replaces every non-letter rune with a space.
//  5. Clean composes stages 1-4 and lower-cases the result.
//  6. FilterStopwords drops stopword tokens from cleaned text.
//  7. Lemmatize reduces each remaining token to its dictionary base form.
//
// HasEmojis and HasEmoticons run against the original text, independently of
// the cleaning chain, so flags survive even when cleaning removes the match.
//
// Every function accepts any string, including the empty string, and returns
// a string without error. An empty result is valid and flows through the
// remaining stages unchanged.
//
// All methods are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Emoji glyphs are only translated when they form a whole
//     whitespace-delimited token. A glyph fused to adjacent text
//     ("great😊") is left untouched.
//   - Emoticon patterns are matched anywhere in the text, so punctuation
//     runs that happen to contain a pattern (":/" inside a URL) are
//     translated too.
package cleanse

import (
	"io"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"golang.org/x/net/html"
)

// Normalizer applies the cleansing pipeline using injected lookup tables.
type Normalizer struct {
	tables Tables
	lemmas *golem.Lemmatizer
}

// New creates a Normalizer with the given tables and the English lemma
// dictionary. Substitute tables make the pipeline testable in isolation.
func New(tables Tables) (*Normalizer, error) {
	lemmas, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return &Normalizer{tables: tables, lemmas: lemmas}, nil
}

// Default creates a Normalizer with DefaultTables.
func Default() (*Normalizer, error) {
	return New(DefaultTables())
}

// StripMarkup parses text as HTML and keeps visible text only. Malformed
// markup is error-corrected by the tokenizer and degrades to literal text;
// this function never fails.
func StripMarkup(text string) string {
	if text == "" {
		return text
	}
	z := html.NewTokenizer(strings.NewReader(text))
	var b strings.Builder
	b.Grow(len(text))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// The only error a string-backed tokenizer reports is EOF;
			// everything else is absorbed as text or malformed-tag recovery.
			if z.Err() != io.EOF {
				b.Write(z.Raw())
			}
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		}
	}
}

// TranslateEmojis replaces every whitespace-delimited token that exactly
// matches a known emoji glyph with that emoji's canonical name. Tokens are
// rejoined with single spaces. Glyphs embedded inside a larger token are
// left untouched.
func (n *Normalizer) TranslateEmojis(text string) string {
	if text == "" {
		return text
	}
	fields := strings.Fields(text)
	for i, tok := range fields {
		if name, ok := n.tables.EmojiNames[tok]; ok {
			fields[i] = name
		}
	}
	return strings.Join(fields, " ")
}

// TranslateEmoticons replaces every occurrence of a known emoticon with its
// phrase. The table is ordered longest pattern first, so a longer emoticon
// is never corrupted by one of its substrings.
func (n *Normalizer) TranslateEmoticons(text string) string {
	if text == "" {
		return text
	}
	for _, e := range n.tables.Emoticons {
		if strings.Contains(text, e.Pattern) {
			text = strings.ReplaceAll(text, e.Pattern, e.Phrase)
		}
	}
	return text
}

// FilterNoise replaces every rune that is not a letter with a single space.
// Idempotent: FilterNoise(FilterNoise(s)) == FilterNoise(s).
func FilterNoise(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

// Clean runs the full cleaning chain: markup stripping, emoji and emoticon
// translation, noise filtering, case folding. The stage order is load-bearing:
// noise filtering must run after the translations (their output is prose) and
// before stopword removal (digits glued to stopwords would otherwise shield
// them from the drop set).
func (n *Normalizer) Clean(text string) string {
	s := StripMarkup(text)
	s = n.TranslateEmojis(s)
	s = n.TranslateEmoticons(s)
	s = FilterNoise(s)
	return strings.ToLower(s)
}

// FilterStopwords drops stopword tokens and rejoins with single spaces.
// Never produces more tokens than its input.
func (n *Normalizer) FilterStopwords(text string) string {
	if text == "" {
		return text
	}
	fields := strings.Fields(text)
	kept := fields[:0]
	for _, tok := range fields {
		if _, drop := n.tables.Stopwords[tok]; !drop {
			kept = append(kept, tok)
		}
	}
	return strings.Join(kept, " ")
}

// Lemmatize maps each token to its dictionary base form. Unknown tokens pass
// through unchanged. Never produces more tokens than its input.
func (n *Normalizer) Lemmatize(text string) string {
	if text == "" {
		return text
	}
	fields := strings.Fields(text)
	for i, tok := range fields {
		fields[i] = n.lemmas.Lemma(tok)
	}
	return strings.Join(fields, " ")
}

// HasEmojis reports whether any whitespace-delimited token of the original
// text is a known emoji glyph. Uses the same exact-token rule as
// TranslateEmojis.
func (n *Normalizer) HasEmojis(text string) bool {
	for _, tok := range strings.Fields(text) {
		if _, ok := n.tables.EmojiNames[tok]; ok {
			return true
		}
	}
	return false
}

// HasEmoticons reports whether the original text contains any known
// emoticon substring.
func (n *Normalizer) HasEmoticons(text string) bool {
	for _, e := range n.tables.Emoticons {
		if strings.Contains(text, e.Pattern) {
			return true
		}
	}
	return false
}
