package text

import (
	"fmt"
	"iter"

	"github.com/sirupsen/logrus"

	"github.com/tsingjyujing/vestigo-analyzer/utils"
)

// Analyzer detects the script of a text and runs it through the matching
// pipeline. It is safe for concurrent use.
type Analyzer struct {
	config *AnalyzerConfig
}

// NewAnalyzer creates a new analyzer over a registry.
func NewAnalyzer(config *AnalyzerConfig) *Analyzer {
	return &Analyzer{config: config}
}

// Detect returns the script and language used for pipeline resolution.
func (a *Analyzer) Detect(text string) (Script, Language) {
	return DetectScript(text), a.config.languages.Detect(text)
}

// PipelineFor returns the pipeline text would be analyzed with.
func (a *Analyzer) PipelineFor(text string) *Pipeline {
	return a.config.Resolve(a.Detect(text))
}

// Analyze resolves the pipeline and pre-processes text. Tokens are only
// produced when the result is iterated.
func (a *Analyzer) Analyze(text string) *AnalyzedText {
	script, language := a.Detect(text)
	pipeline := a.config.Resolve(script, language)
	processed := pipeline.preProcessor.Process(text)
	if processed.Original != text || !processed.Aligned() {
		utils.Logger.WithFields(logrus.Fields{
			"pre_processor": fmt.Sprintf("%T", pipeline.preProcessor),
			"original_len":  len(text),
			"processed_len": len(processed.Processed),
		}).Error("Pre-processor broke byte alignment, analyzing the original text")
		processed = Unprocessed(text)
	}
	return &AnalyzedText{
		processed:  processed,
		pipeline:   pipeline,
		classifier: NewTokenClassifier(a.config.stopWords),
		script:     script,
		language:   language,
	}
}

// AnalyzedText is the result of Analyze, valid as long as the analyzer is.
type AnalyzedText struct {
	processed  ProcessedText
	pipeline   *Pipeline
	classifier TokenClassifier
	script     Script
	language   Language
}

func (t *AnalyzedText) Script() Script {
	return t.script
}

func (t *AnalyzedText) Language() Language {
	return t.language
}

// Pipeline returns the pipeline the text was resolved to.
func (t *AnalyzedText) Pipeline() *Pipeline {
	return t.pipeline
}

// Processed returns the pre-processed text the tokenizer runs on.
func (t *AnalyzedText) Processed() ProcessedText {
	return t.processed
}

// Tokens returns a lazy sequence chaining the tokenizer, the normalizer and
// the classifier. Every call starts a fresh pass over the text.
func (t *AnalyzedText) Tokens() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for token := range t.pipeline.tokenizer.Tokenize(t.processed) {
			normalized := t.pipeline.normalizer.Normalize(token)
			// Normalizers only own the word.
			token.Word = normalized.Word
			if !yield(t.classifier.Classify(token)) {
				return
			}
		}
	}
}

// Stream returns a pull based view of Tokens. Stop must be called when the
// stream is abandoned before its end.
func (t *AnalyzedText) Stream() *TokenStream {
	next, stop := iter.Pull(t.Tokens())
	return &TokenStream{next: next, stop: stop}
}

// Reconstruct pairs every token with the slice of the original text it
// covers. Concatenating the slices gives back the original text.
func (t *AnalyzedText) Reconstruct() iter.Seq2[string, Token] {
	original := t.processed.Original
	return func(yield func(string, Token) bool) {
		for token := range t.Tokens() {
			if token.ByteStart < 0 || token.ByteStart > token.ByteEnd || token.ByteEnd > len(original) {
				panic(fmt.Sprintf("text: token %q has offsets [%d, %d) outside of a %d bytes text",
					token.Word, token.ByteStart, token.ByteEnd, len(original)))
			}
			if !yield(original[token.ByteStart:token.ByteEnd], token) {
				return
			}
		}
	}
}

// TokenStream hands out tokens one at a time.
type TokenStream struct {
	next func() (Token, bool)
	stop func()
}

// Next returns the next token, ok is false at the end of the stream.
func (s *TokenStream) Next() (Token, bool) {
	return s.next()
}

func (s *TokenStream) Stop() {
	s.stop()
}
