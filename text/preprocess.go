package text

import (
	"strings"
	"unicode/utf8"

	"github.com/longbridgeapp/opencc"
	"github.com/sirupsen/logrus"

	"github.com/tsingjyujing/vestigo-analyzer/utils"
)

// IdentityPreProcessor leaves the text untouched.
type IdentityPreProcessor struct{}

func (IdentityPreProcessor) Process(text string) ProcessedText {
	return Unprocessed(text)
}

// ChineseTranslationPreProcessor maps Traditional Chinese characters to
// Simplified ones so a single dictionary segments both.
type ChineseTranslationPreProcessor struct {
	t2s *opencc.OpenCC
}

// NewChineseTranslationPreProcessor loads the opencc t2s dictionaries.
func NewChineseTranslationPreProcessor() (*ChineseTranslationPreProcessor, error) {
	t2s, err := opencc.New("t2s") // Traditional Chinese -> Simplified Chinese
	if err != nil {
		return nil, err
	}
	return &ChineseTranslationPreProcessor{t2s: t2s}, nil
}

func (p *ChineseTranslationPreProcessor) Process(text string) ProcessedText {
	converted, err := p.t2s.Convert(text)
	if err != nil {
		utils.Logger.WithError(err).Warn("t2s conversion failed, keeping original text")
		return Unprocessed(text)
	}
	if converted == text {
		return Unprocessed(text)
	}
	if aligned(converted, text) {
		return ProcessedText{Processed: converted, Original: text}
	}
	// Phrase conversions changed the length somewhere, fall back to
	// converting rune by rune.
	utils.Logger.WithFields(logrus.Fields{
		"original_len":  len(text),
		"converted_len": len(converted),
	}).Debug("t2s output not aligned, converting per character")
	return ProcessedText{Processed: p.convertRunes(text), Original: text}
}

// convertRunes only keeps substitutions producing a single rune of the same
// encoded length.
func (p *ChineseTranslationPreProcessor) convertRunes(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		s := text[i : i+size]
		i += size
		if r < utf8.RuneSelf || r == utf8.RuneError {
			b.WriteString(s)
			continue
		}
		c, err := p.t2s.Convert(s)
		if err != nil || len(c) != len(s) || utf8.RuneCountInString(c) != 1 {
			b.WriteString(s)
			continue
		}
		b.WriteString(c)
	}
	return b.String()
}
