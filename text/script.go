package text

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Script is the writing system detected for a text.
type Script uint8

const (
	Arabic Script = iota
	Bengali
	Cyrillic
	Devanagari
	Ethiopic
	Georgian
	Greek
	Gujarati
	Gurmukhi
	Hangul
	Hebrew
	Hiragana
	Kannada
	Katakana
	Khmer
	Latin
	Malayalam
	Mandarin
	Myanmar
	Oriya
	Sinhala
	Tamil
	Telugu
	Thai
	// ScriptOther is used when no script could be detected.
	ScriptOther
)

var scriptTables = [...]*unicode.RangeTable{
	Arabic:     unicode.Arabic,
	Bengali:    unicode.Bengali,
	Cyrillic:   unicode.Cyrillic,
	Devanagari: unicode.Devanagari,
	Ethiopic:   unicode.Ethiopic,
	Georgian:   unicode.Georgian,
	Greek:      unicode.Greek,
	Gujarati:   unicode.Gujarati,
	Gurmukhi:   unicode.Gurmukhi,
	Hangul:     unicode.Hangul,
	Hebrew:     unicode.Hebrew,
	Hiragana:   unicode.Hiragana,
	Kannada:    unicode.Kannada,
	Katakana:   unicode.Katakana,
	Khmer:      unicode.Khmer,
	Latin:      unicode.Latin,
	Malayalam:  unicode.Malayalam,
	Mandarin:   unicode.Han,
	Myanmar:    unicode.Myanmar,
	Oriya:      unicode.Oriya,
	Sinhala:    unicode.Sinhala,
	Tamil:      unicode.Tamil,
	Telugu:     unicode.Telugu,
	Thai:       unicode.Thai,
}

var scriptNames = [...]string{
	Arabic:      "Arabic",
	Bengali:     "Bengali",
	Cyrillic:    "Cyrillic",
	Devanagari:  "Devanagari",
	Ethiopic:    "Ethiopic",
	Georgian:    "Georgian",
	Greek:       "Greek",
	Gujarati:    "Gujarati",
	Gurmukhi:    "Gurmukhi",
	Hangul:      "Hangul",
	Hebrew:      "Hebrew",
	Hiragana:    "Hiragana",
	Kannada:     "Kannada",
	Katakana:    "Katakana",
	Khmer:       "Khmer",
	Latin:       "Latin",
	Malayalam:   "Malayalam",
	Mandarin:    "Mandarin",
	Myanmar:     "Myanmar",
	Oriya:       "Oriya",
	Sinhala:     "Sinhala",
	Tamil:       "Tamil",
	Telugu:      "Telugu",
	Thai:        "Thai",
	ScriptOther: "Other",
}

func (s Script) String() string {
	if int(s) < len(scriptNames) {
		return scriptNames[s]
	}
	return "Unknown"
}

// ParseScript parses a script name, case-insensitively.
func ParseScript(name string) (Script, error) {
	for i, n := range scriptNames {
		if strings.EqualFold(n, name) {
			return Script(i), nil
		}
	}
	return ScriptOther, fmt.Errorf("unknown script: %q", name)
}

// DetectScript returns the script most letters of text belong to.
// Ties go to the script declared first; text without letters is ScriptOther.
func DetectScript(text string) Script {
	var counts [ScriptOther]int
	for _, r := range text {
		if r < utf8.RuneSelf {
			if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
				counts[Latin]++
			}
			continue
		}
		if !unicode.IsLetter(r) {
			continue
		}
		for i, table := range scriptTables {
			if unicode.Is(table, r) {
				counts[i]++
				break
			}
		}
	}
	best, bestCount := ScriptOther, 0
	for i, c := range counts {
		if c > bestCount {
			best, bestCount = Script(i), c
		}
	}
	return best
}

// cjkRanges holds ideographs, CJK punctuation, kana, Hangul and full-width forms.
var cjkRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x1100, Hi: 0x11ff, Stride: 1},
		{Lo: 0x2e80, Hi: 0x2fdf, Stride: 1},
		{Lo: 0x2ff0, Hi: 0x303f, Stride: 1},
		{Lo: 0x3040, Hi: 0x31ff, Stride: 1},
		{Lo: 0x3200, Hi: 0x4dbf, Stride: 1},
		{Lo: 0x4e00, Hi: 0x9fff, Stride: 1},
		{Lo: 0xa960, Hi: 0xa97f, Stride: 1},
		{Lo: 0xac00, Hi: 0xd7ff, Stride: 1},
		{Lo: 0xf900, Hi: 0xfaff, Stride: 1},
		{Lo: 0xff00, Hi: 0xffef, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x20000, Hi: 0x2fa1f, Stride: 1},
		{Lo: 0x30000, Hi: 0x3134f, Stride: 1},
	},
}

func isCJKRune(r rune) bool {
	return unicode.Is(cjkRanges, r)
}

// IsCJK reports whether text starts with a CJK character.
func IsCJK(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return isCJKRune(r)
}
