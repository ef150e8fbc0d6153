package text

import (
	"fmt"
	"unicode"
)

// SeparatorKind tells how strongly a separator breaks a phrase.
type SeparatorKind uint8

const (
	// Hard separators end a sentence or a clause.
	Hard SeparatorKind = iota
	// Soft separators are whitespace and intra-phrase punctuation.
	Soft
)

func (k SeparatorKind) String() string {
	if k == Hard {
		return "Hard"
	}
	return "Soft"
}

// TokenKind is the classification attached to every token.
type TokenKind uint8

const (
	Word TokenKind = iota
	// StopWord can be ignored to save index space or indexed as a Word.
	StopWord
	// SoftSeparator and HardSeparator are not indexed, they only drive word proximity.
	SoftSeparator
	HardSeparator
)

// SeparatorKind returns the separator strength, ok is false for words and stop words.
func (k TokenKind) SeparatorKind() (SeparatorKind, bool) {
	switch k {
	case HardSeparator:
		return Hard, true
	case SoftSeparator:
		return Soft, true
	default:
		return Soft, false
	}
}

func (k TokenKind) String() string {
	switch k {
	case Word:
		return "Word"
	case StopWord:
		return "StopWord"
	case SoftSeparator:
		return "Separator(Soft)"
	case HardSeparator:
		return "Separator(Hard)"
	default:
		return "Unknown"
	}
}

func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *TokenKind) UnmarshalText(data []byte) error {
	for _, kind := range []TokenKind{Word, StopWord, SoftSeparator, HardSeparator} {
		if kind.String() == string(data) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown token kind: %q", data)
}

func separatorToken(kind SeparatorKind) TokenKind {
	if kind == Hard {
		return HardSeparator
	}
	return SoftSeparator
}

// Token is a piece of analyzed text.
// ByteStart and ByteEnd always point into the original text, Word is the
// normalized content and may differ from the bytes it covers.
type Token struct {
	Kind      TokenKind `json:"kind"`
	Word      string    `json:"word"`
	ByteStart int       `json:"byte_start"`
	ByteEnd   int       `json:"byte_end"`
}

// Text returns the normalized word.
func (t Token) Text() string {
	return t.Word
}

func (t Token) ByteLen() int {
	return t.ByteEnd - t.ByteStart
}

func (t Token) IsWord() bool {
	return t.Kind == Word
}

func (t Token) IsStopWord() bool {
	return t.Kind == StopWord
}

// IsSeparator returns the separator kind when the token is a separator.
func (t Token) IsSeparator() (SeparatorKind, bool) {
	return t.Kind.SeparatorKind()
}

// classifySeparator returns the kind of separator a rune is, ok is false if
// the rune has no special meaning as a separator.
func classifySeparator(r rune) (SeparatorKind, bool) {
	switch r {
	case '.', ';', ',', '!', '?', '(', ')', '[', ']', '{', '}', '|',
		'。', '，', '、', '；', '！', '？', '（', '）', '【', '】', '「', '」', '『', '』', '《', '》',
		'﹐', '﹑', '﹒', '﹔', '﹖', '﹗', '…', '¡', '¿':
		return Hard, true
	case '-', '_', '\'', ':', '/', '\\', '@', '"', '+', '~', '=', '^', '*', '#', '：':
		return Soft, true
	}
	if unicode.IsSpace(r) {
		return Soft, true
	}
	return Soft, false
}

// isWordRune reports whether r belongs inside a word.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r)
}

// separatorKindOf classifies a whole segment. A segment holding any word
// rune is not a separator; otherwise it is hard as soon as one rune is hard.
func separatorKindOf(s string) (SeparatorKind, bool) {
	if s == "" {
		return Soft, false
	}
	kind := Soft
	for _, r := range s {
		if isWordRune(r) {
			return Soft, false
		}
		if k, ok := classifySeparator(r); ok && k == Hard {
			kind = Hard
		}
	}
	return kind, true
}

// kindOf gives the initial kind of a raw segment.
func kindOf(s string) TokenKind {
	if sep, ok := separatorKindOf(s); ok {
		return separatorToken(sep)
	}
	return Word
}
