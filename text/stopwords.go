package text

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/blevesearch/vellum"
	"github.com/go-ego/gse"
	"github.com/samber/lo"
)

var (
	ErrUnsortedStopWords = errors.New("stop words are not sorted or contain duplicates")
	ErrInvalidStopWord   = errors.New("stop word is not valid UTF-8")
)

// StopWords is an immutable sorted set of words stored as a finite state
// transducer. Lookups cost the length of the key, whatever the set size.
type StopWords struct {
	fst *vellum.FST
}

// NewStopWords builds the set from strictly increasing UTF-8 words.
func NewStopWords(words []string) (*StopWords, error) {
	if len(words) == 0 {
		return &StopWords{}, nil
	}
	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, err
	}
	for i, w := range words {
		if !utf8.ValidString(w) {
			return nil, fmt.Errorf("%w: %q at index %d", ErrInvalidStopWord, w, i)
		}
		if i > 0 && words[i-1] >= w {
			return nil, fmt.Errorf("%w: %q after %q", ErrUnsortedStopWords, w, words[i-1])
		}
		if err := builder.Insert([]byte(w), 0); err != nil {
			return nil, fmt.Errorf("insert stop word %q: %w", w, err)
		}
	}
	if err := builder.Close(); err != nil {
		return nil, err
	}
	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return &StopWords{fst: fst}, nil
}

// SortedStopWords deduplicates and sorts words before building the set.
func SortedStopWords(words []string) (*StopWords, error) {
	words = lo.Uniq(lo.Filter(words, func(w string, _ int) bool { return w != "" }))
	sort.Strings(words)
	return NewStopWords(words)
}

// EmbeddedStopWordList returns the unsorted stop-word list shipped with gse.
func EmbeddedStopWordList() ([]string, error) {
	var seg gse.Segmenter
	if err := seg.LoadStopEmbed(); err != nil {
		return nil, err
	}
	return lo.Keys(seg.StopWordMap), nil
}

// EmbeddedStopWords builds a set from the gse stop-word list.
func EmbeddedStopWords() (*StopWords, error) {
	words, err := EmbeddedStopWordList()
	if err != nil {
		return nil, err
	}
	return SortedStopWords(words)
}

// Contains reports whether word is in the set.
func (s *StopWords) Contains(word string) bool {
	if s == nil || s.fst == nil {
		return false
	}
	ok, err := s.fst.Contains([]byte(word))
	return err == nil && ok
}

// HasPrefix reports whether some word of the set starts with prefix.
func (s *StopWords) HasPrefix(prefix string) bool {
	if s == nil || s.fst == nil {
		return false
	}
	p := []byte(prefix)
	itr, err := s.fst.Iterator(p, nil)
	if err != nil {
		return false
	}
	key, _ := itr.Current()
	return bytes.HasPrefix(key, p)
}

func (s *StopWords) Len() int {
	if s == nil || s.fst == nil {
		return 0
	}
	return s.fst.Len()
}
