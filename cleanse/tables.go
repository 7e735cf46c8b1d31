package cleanse

import (
	"sort"
	"strings"

	"github.com/forPelevin/gomoji"

	"github.com/abljoel/youtube-comments-analysis/data"
)

// Emoticon is one substring replacement entry.
type Emoticon struct {
	Pattern string
	Phrase  string
}

// Tables holds the static lookup tables the pipeline depends on. Build once
// (DefaultTables) and share by reference; all fields are read-only after
// construction and safe for concurrent use without locking.
type Tables struct {
	// EmojiNames maps an emoji glyph to its canonical name with separators
	// replaced by spaces, e.g. "😊" -> "smiling face with smiling eyes".
	EmojiNames map[string]string

	// Emoticons lists substring replacements in longest-pattern-first order
	// so that extended variants (":-))") are consumed before their prefixes
	// (":-)", ":)") and cannot be corrupted by a partial match.
	Emoticons []Emoticon

	// Stopwords is the token drop set for FilterStopwords.
	Stopwords map[string]struct{}
}

// DefaultTables builds the standard tables: the full emoji inventory, the
// embedded emoticon table, and the embedded English stopword set.
func DefaultTables() Tables {
	return Tables{
		EmojiNames: emojiNames(),
		Emoticons:  parseEmoticons(data.Emoticons),
		Stopwords:  parseStopwords(data.Stopwords),
	}
}

// emojiNames maps every known glyph to its slug with hyphens spaced out.
func emojiNames() map[string]string {
	all := gomoji.AllEmojis()
	m := make(map[string]string, len(all))
	for _, e := range all {
		m[e.Character] = strings.ReplaceAll(e.Slug, "-", " ")
	}
	return m
}

// parseEmoticons parses tab-separated "pattern\tphrase" lines and returns
// entries sorted longest pattern first. Duplicate patterns keep the first
// occurrence. Blank lines and #-comments are skipped.
func parseEmoticons(raw string) []Emoticon {
	seen := make(map[string]struct{}, 128)
	var entries []Emoticon
	for _, line := range strings.Split(raw, "\n") {
		if line == "" || line[0] == '#' {
			continue
		}
		pattern, phrase, ok := strings.Cut(line, "\t")
		if !ok || pattern == "" {
			continue
		}
		phrase = strings.TrimRight(phrase, "\r")
		if _, dup := seen[pattern]; dup {
			continue
		}
		seen[pattern] = struct{}{}
		entries = append(entries, Emoticon{Pattern: pattern, Phrase: phrase})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].Pattern) > len(entries[j].Pattern)
	})
	return entries
}

// parseStopwords parses one token per line, skipping blanks and #-comments.
func parseStopwords(raw string) map[string]struct{} {
	m := make(map[string]struct{}, 256)
	for _, line := range strings.Split(raw, "\n") {
		word := strings.TrimSpace(line)
		if word == "" || word[0] == '#' {
			continue
		}
		m[word] = struct{}{}
	}
	return m
}
