package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kljensen/snowball"
	"github.com/longbridgeapp/opencc"
	"github.com/mozillazg/go-unidecode"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tsingjyujing/vestigo-analyzer/utils"
)

// IdentityNormalizer returns tokens unchanged.
type IdentityNormalizer struct{}

func (IdentityNormalizer) Normalize(token Token) Token {
	return token
}

// Normalizers applies every normalizer in order.
type Normalizers []Normalizer

func (ns Normalizers) Normalize(token Token) Token {
	for _, n := range ns {
		token = n.Normalize(token)
	}
	return token
}

// LowercaseNormalizer lowercases the token word.
type LowercaseNormalizer struct{}

func (LowercaseNormalizer) Normalize(token Token) Token {
	token.Word = strings.ToLower(token.Word)
	return token
}

// TransliterateNormalizer rewrites words to ASCII: combining marks are
// stripped after compatibility decomposition and whatever is still not ASCII
// is transliterated.
type TransliterateNormalizer struct {
	// Skip leaves matching words untouched.
	Skip func(word string) bool
}

// NewCJKTransliterateNormalizer transliterates everything except CJK words.
func NewCJKTransliterateNormalizer() TransliterateNormalizer {
	return TransliterateNormalizer{Skip: IsCJK}
}

func (n TransliterateNormalizer) Normalize(token Token) Token {
	if isASCII(token.Word) {
		return token
	}
	if n.Skip != nil && n.Skip(token.Word) {
		return token
	}
	token.Word = transliterate(token.Word)
	return token
}

func transliterate(s string) string {
	// transform chains keep state, build one per call.
	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}
	if isASCII(folded) {
		return folded
	}
	return unidecode.Unidecode(folded)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// CJKNormalizer folds CJK token words into a canonical form:
// 1. Unicode NFKC normalization
// 2. Traditional Chinese Kanji -> Simplified Chinese Kanji
// 3. lowercasing
type CJKNormalizer struct {
	t2s *opencc.OpenCC
}

// NewCJKNormalizer creates a CJK normalizer, useT2s controls whether the
// opencc t2s conversion is applied.
func NewCJKNormalizer(useT2s bool) (*CJKNormalizer, error) {
	n := &CJKNormalizer{}
	if useT2s {
		t2s, err := opencc.New("t2s") // Traditional Chinese Kanji -> Simplified Chinese Kanji
		if err != nil {
			return nil, err
		}
		n.t2s = t2s
	}
	return n, nil
}

// Normalize keeps the original word when the conversion fails.
func (n *CJKNormalizer) Normalize(token Token) Token {
	s := norm.NFKC.String(token.Word)
	if n.t2s != nil {
		converted, err := n.t2s.Convert(s)
		if err != nil {
			return token
		}
		s = converted
	}
	token.Word = strings.ToLower(s)
	return token
}

// StemNormalizer reduces words to their snowball stem. Stop words are left
// alone so the classifier still recognizes them.
type StemNormalizer struct {
	Language string
}

func NewEnglishStemNormalizer() StemNormalizer {
	return StemNormalizer{Language: "english"}
}

func (n StemNormalizer) Normalize(token Token) Token {
	if token.Kind != Word || token.Word == "" {
		return token
	}
	stemmed, err := snowball.Stem(token.Word, n.Language, false)
	if err != nil {
		utils.Logger.WithError(err).WithFields(logrus.Fields{
			"word":     token.Word,
			"language": n.Language,
		}).Debug("Stemming failed, keeping word")
		return token
	}
	token.Word = stemmed
	return token
}

type cacheKey struct {
	kind TokenKind
	word string
}

// CachedNormalizer memoizes an inner normalizer, which must only depend on
// the kind and word of a token. Safe for concurrent use.
type CachedNormalizer struct {
	inner Normalizer
	cache *lru.Cache[cacheKey, string]
}

// NewCachedNormalizer keeps up to size normalized words.
func NewCachedNormalizer(inner Normalizer, size int) (*CachedNormalizer, error) {
	cache, err := lru.New[cacheKey, string](size)
	if err != nil {
		return nil, err
	}
	return &CachedNormalizer{inner: inner, cache: cache}, nil
}

func (n *CachedNormalizer) Normalize(token Token) Token {
	key := cacheKey{kind: token.Kind, word: token.Word}
	if word, ok := n.cache.Get(key); ok {
		token.Word = word
		return token
	}
	normalized := n.inner.Normalize(token)
	n.cache.Add(key, normalized.Word)
	token.Word = normalized.Word
	return token
}

func (n *CachedNormalizer) Len() int {
	return n.cache.Len()
}
