package text

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-ego/gse"
	"github.com/rivo/uniseg"
	"github.com/sirupsen/logrus"

	"github.com/tsingjyujing/vestigo-analyzer/utils"
)

// UnicodeSegmenter splits text on UAX#29 word boundaries.
type UnicodeSegmenter struct{}

func (UnicodeSegmenter) Tokenize(text ProcessedText) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		rest := text.Processed
		state := -1
		start := 0
		var segment string
		for len(rest) > 0 {
			segment, rest, state = uniseg.FirstWordInString(rest, state)
			end := start + len(segment)
			if !yield(newToken(segment, start, end)) {
				return
			}
			start = end
		}
	}
}

// LegacySegmenter is the historical ad-hoc segmenter: runs of letters and
// digits are words, runs of anything else are merged into one separator and
// every CJK character stands alone.
type LegacySegmenter struct{}

type legacyClass uint8

const (
	legacyNone legacyClass = iota
	legacyWord
	legacySeparator
	legacyCJK
)

func classifyLegacy(r rune) legacyClass {
	switch {
	case unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana):
		return legacyCJK
	case isWordRune(r):
		return legacyWord
	default:
		return legacySeparator
	}
}

func (LegacySegmenter) Tokenize(text ProcessedText) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s := text.Processed
		start := 0
		current := legacyNone
		for i := 0; i < len(s); {
			r, size := utf8.DecodeRuneInString(s[i:])
			class := classifyLegacy(r)
			// CJK characters never merge, other classes extend the current run.
			if current != legacyNone && (class != current || class == legacyCJK) {
				if !yield(newToken(s[start:i], start, i)) {
					return
				}
				start = i
			}
			current = class
			i += size
		}
		if start < len(s) {
			yield(newToken(s[start:], start, len(s)))
		}
	}
}

// GSETokenizer segments Chinese text with the gse dictionary segmenter.
type GSETokenizer struct {
	seg *gse.Segmenter
	hmm bool
}

// NewGSETokenizer loads the embedded Chinese dictionary.
// hmm enables the hidden Markov model for words missing from the dictionary.
func NewGSETokenizer(hmm bool) (*GSETokenizer, error) {
	t := &GSETokenizer{
		seg: new(gse.Segmenter),
		hmm: hmm,
	}
	if err := t.seg.LoadDictEmbed("zh"); err != nil {
		return nil, err
	}
	utils.Logger.WithField("hmm", hmm).Debug("Loaded gse Chinese dictionary")
	return t, nil
}

// Tokenize cuts the whole text on the first pull, then hands tokens out one
// by one. Offsets are recovered by searching each piece forward from the
// previous one; bytes gse skipped are emitted as their own tokens.
func (t *GSETokenizer) Tokenize(text ProcessedText) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s := text.Processed
		if s == "" {
			return
		}
		cursor := 0
		for _, piece := range t.seg.Cut(s, t.hmm) {
			if piece == "" {
				continue
			}
			idx := strings.Index(s[cursor:], piece)
			if idx < 0 {
				utils.Logger.WithFields(logrus.Fields{
					"piece":  piece,
					"cursor": cursor,
				}).Debug("gse piece not found in text, skipping")
				continue
			}
			if idx > 0 {
				if !yield(newToken(s[cursor:cursor+idx], cursor, cursor+idx)) {
					return
				}
			}
			start := cursor + idx
			cursor = start + len(piece)
			if !yield(newToken(piece, start, cursor)) {
				return
			}
		}
		if cursor < len(s) {
			yield(newToken(s[cursor:], cursor, len(s)))
		}
	}
}

func newToken(word string, start, end int) Token {
	return Token{
		Kind:      kindOf(word),
		Word:      word,
		ByteStart: start,
		ByteEnd:   end,
	}
}
