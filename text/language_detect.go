package text

import (
	"fmt"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Language is the detected language of a text.
type Language uint8

const (
	English Language = iota
	// LanguageOther covers every text whose language is not detected.
	LanguageOther
)

func (l Language) String() string {
	if l == English {
		return "English"
	}
	return "Other"
}

// ParseLanguage parses a language name, case-insensitively.
func ParseLanguage(name string) (Language, error) {
	switch strings.ToLower(name) {
	case "english":
		return English, nil
	case "other", "":
		return LanguageOther, nil
	}
	return LanguageOther, fmt.Errorf("unknown language: %q", name)
}

// LanguageDetector must be total and safe for concurrent use.
type LanguageDetector interface {
	Detect(text string) Language
}

// PlaceholderLanguageDetector always answers LanguageOther.
type PlaceholderLanguageDetector struct{}

func (PlaceholderLanguageDetector) Detect(string) Language {
	return LanguageOther
}

// LinguaLanguageDetector detects the language of a given text using lingua-go.
type LinguaLanguageDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaLanguageDetector only tells English apart; Chinese and Japanese
// are loaded so that CJK text is not forced into English.
func NewLinguaLanguageDetector() *LinguaLanguageDetector {
	languages := []lingua.Language{
		lingua.Chinese,
		lingua.Japanese,
		lingua.English,
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()

	return &LinguaLanguageDetector{
		detector: detector,
	}
}

func (d *LinguaLanguageDetector) Detect(text string) Language {
	if text == "" {
		return LanguageOther
	}

	detectedLang, exists := d.detector.DetectLanguageOf(text)
	if !exists || detectedLang != lingua.English {
		return LanguageOther
	}
	return English
}
