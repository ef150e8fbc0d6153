package text

import (
	"iter"
	"sync"
)

// PreProcessor rewrites raw text before segmentation.
// Implementations must be safe for concurrent use and keep the output byte
// aligned with the input (see ProcessedText).
type PreProcessor interface {
	Process(text string) ProcessedText
}

// Tokenizer splits processed text into tokens.
// The returned sequence is lazy and single pass; calling Tokenize again
// redoes the work. Tokens carry Word or separator kinds and offsets into the
// processed text.
type Tokenizer interface {
	Tokenize(text ProcessedText) iter.Seq[Token]
}

// Normalizer rewrites the Word of a token. It must not change Kind or offsets.
type Normalizer interface {
	Normalize(token Token) Token
}

// Pipeline binds one implementation of every stage.
// Pipelines are built once and then shared read-only between analyses.
type Pipeline struct {
	preProcessor PreProcessor
	tokenizer    Tokenizer
	normalizer   Normalizer
}

// NewPipeline returns a pipeline with the identity pre-processor, the
// Unicode segmenter and the identity normalizer.
func NewPipeline() Pipeline {
	return Pipeline{
		preProcessor: IdentityPreProcessor{},
		tokenizer:    UnicodeSegmenter{},
		normalizer:   IdentityNormalizer{},
	}
}

// SetPreProcessor returns a copy of p using preProcessor.
func (p Pipeline) SetPreProcessor(preProcessor PreProcessor) Pipeline {
	p.preProcessor = preProcessor
	return p
}

// SetTokenizer returns a copy of p using tokenizer.
func (p Pipeline) SetTokenizer(tokenizer Tokenizer) Pipeline {
	p.tokenizer = tokenizer
	return p
}

// SetNormalizer returns a copy of p using normalizer.
func (p Pipeline) SetNormalizer(normalizer Normalizer) Pipeline {
	p.normalizer = normalizer
	return p
}

func (p *Pipeline) PreProcessor() PreProcessor {
	return p.preProcessor
}

func (p *Pipeline) Tokenizer() Tokenizer {
	return p.tokenizer
}

func (p *Pipeline) Normalizer() Normalizer {
	return p.normalizer
}

var builtinPipeline = sync.OnceValue(func() *Pipeline {
	p := NewPipeline()
	return &p
})

// BuiltinPipeline is the last resort of pipeline resolution.
// It is created once, on the first call, and shared by every registry.
func BuiltinPipeline() *Pipeline {
	return builtinPipeline()
}
