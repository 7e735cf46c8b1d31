package cleanse

import (
	"strings"
	"testing"
	"unicode"
)

func FuzzClean(f *testing.F) {
	f.Add("This movie was AMAZING!! 😊 <b>loved it</b>")
	f.Add("")
	f.Add(":) :( :-))")
	f.Add("<p>nested <b>markup</b></p>")
	f.Add("the 123 cat")
	f.Add("!!!???...")

	n, err := New(testTables())
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, s string) {
		got := n.Clean(s)

		// Cleaned text is letters and spaces only.
		for _, r := range got {
			if r != ' ' && !unicode.IsLetter(r) {
				t.Fatalf("Clean(%q) = %q contains non-letter rune %q", s, got, r)
			}
		}

		// Case folding on its own output is a no-op.
		if got != strings.ToLower(got) {
			t.Errorf("Clean(%q) = %q is not fully lower-cased", s, got)
		}

		// Noise filtering on its own output is a no-op.
		if FilterNoise(got) != got {
			t.Errorf("Clean(%q) = %q is not noise-filter stable", s, got)
		}
	})
}

func FuzzChainTokenCounts(f *testing.F) {
	f.Add("the cats were running")
	f.Add("")
	f.Add("a 1 b 2 c 3")

	n, err := New(testTables())
	if err != nil {
		f.Fatal(err)
	}

	f.Fuzz(func(t *testing.T, s string) {
		cleaned := n.Clean(s)
		filtered := n.FilterStopwords(cleaned)
		lemmatized := n.Lemmatize(filtered)

		nc := len(strings.Fields(cleaned))
		nf := len(strings.Fields(filtered))
		nl := len(strings.Fields(lemmatized))
		if nf > nc || nl > nf {
			t.Errorf("token counts grew along the chain for %q: %d -> %d -> %d", s, nc, nf, nl)
		}
	})
}
