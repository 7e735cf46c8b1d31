// Package data embeds the static lookup tables used by the cleansing
// pipeline and the sentiment analyzer.
package data

import _ "embed"

//go:embed stopwords.txt
var Stopwords string

//go:embed emoticons.tsv
var Emoticons string

//go:embed vader_lexicon.txt
var VaderLexicon string

//go:embed vader_emoji_lexicon.txt
var VaderEmojiLexicon string
