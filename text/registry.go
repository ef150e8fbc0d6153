package text

import (
	"cmp"
	"maps"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/tsingjyujing/vestigo-analyzer/utils"
)

// PipelineKey identifies a pipeline in the registry.
type PipelineKey struct {
	Script   Script
	Language Language
}

func (k PipelineKey) String() string {
	return k.Script.String() + "/" + k.Language.String()
}

// AnalyzerConfig is the pipeline registry. It is read-only once built.
type AnalyzerConfig struct {
	pipelines map[PipelineKey]*Pipeline
	stopWords *StopWords
	languages LanguageDetector
	builtin   *Pipeline
}

// ConfigOption customizes an AnalyzerConfig at construction.
type ConfigOption func(*AnalyzerConfig)

// WithLanguageDetector replaces the placeholder language detector.
func WithLanguageDetector(detector LanguageDetector) ConfigOption {
	return func(c *AnalyzerConfig) {
		if detector != nil {
			c.languages = detector
		}
	}
}

// NewAnalyzerConfig builds a registry from a caller supplied mapping.
// Unset stages of a pipeline fall back to the NewPipeline defaults.
func NewAnalyzerConfig(pipelines map[PipelineKey]Pipeline, stopWords *StopWords, opts ...ConfigOption) *AnalyzerConfig {
	c := &AnalyzerConfig{
		pipelines: make(map[PipelineKey]*Pipeline, len(pipelines)),
		stopWords: stopWords,
		languages: PlaceholderLanguageDetector{},
		builtin:   BuiltinPipeline(),
	}
	for key, p := range pipelines {
		p = completePipeline(p)
		c.pipelines[key] = &p
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultPipelines returns the Latin and Mandarin specializations.
func DefaultPipelines() (map[PipelineKey]Pipeline, error) {
	chineseTranslation, err := NewChineseTranslationPreProcessor()
	if err != nil {
		return nil, err
	}
	jieba, err := NewGSETokenizer(false)
	if err != nil {
		return nil, err
	}
	return map[PipelineKey]Pipeline{
		{Script: Latin, Language: LanguageOther}: NewPipeline().
			SetTokenizer(LegacySegmenter{}).
			SetNormalizer(Normalizers{TransliterateNormalizer{}, LowercaseNormalizer{}}),
		{Script: Mandarin, Language: LanguageOther}: NewPipeline().
			SetPreProcessor(chineseTranslation).
			SetTokenizer(jieba).
			SetNormalizer(Normalizers{NewCJKTransliterateNormalizer(), LowercaseNormalizer{}}),
	}, nil
}

// DefaultWithStopWords builds the registry with the default specializations.
func DefaultWithStopWords(stopWords *StopWords, opts ...ConfigOption) (*AnalyzerConfig, error) {
	pipelines, err := DefaultPipelines()
	if err != nil {
		return nil, err
	}
	return NewAnalyzerConfig(pipelines, stopWords, opts...), nil
}

// Keys lists the registered pipeline keys in script order.
func (c *AnalyzerConfig) Keys() []PipelineKey {
	keys := slices.Collect(maps.Keys(c.pipelines))
	slices.SortFunc(keys, func(a, b PipelineKey) int {
		return cmp.Or(cmp.Compare(a.Script, b.Script), cmp.Compare(a.Language, b.Language))
	})
	return keys
}

func (c *AnalyzerConfig) StopWords() *StopWords {
	return c.stopWords
}

// Resolve picks the pipeline for a detected script and language, trying
// (script, language), (script, Other), (Other, Other) and finally the builtin
// pipeline. It never fails.
func (c *AnalyzerConfig) Resolve(script Script, language Language) *Pipeline {
	candidates := [...]PipelineKey{
		{Script: script, Language: language},
		{Script: script, Language: LanguageOther},
		{Script: ScriptOther, Language: LanguageOther},
	}
	debug := utils.Logger.IsLevelEnabled(logrus.DebugLevel)
	for _, key := range candidates {
		if p, ok := c.pipelines[key]; ok {
			if debug {
				utils.Logger.WithFields(logrus.Fields{
					"script":   script,
					"language": language,
					"matched":  key,
				}).Debug("Resolved analysis pipeline")
			}
			return p
		}
	}
	if debug {
		utils.Logger.WithFields(logrus.Fields{
			"script":   script,
			"language": language,
		}).Debug("No registered pipeline, using builtin")
	}
	return c.builtin
}

// Pipeline returns the pipeline registered under key, without fallback.
func (c *AnalyzerConfig) Pipeline(key PipelineKey) (*Pipeline, bool) {
	p, ok := c.pipelines[key]
	return p, ok
}

// Builtin returns the pipeline used when nothing is registered.
func (c *AnalyzerConfig) Builtin() *Pipeline {
	return c.builtin
}

func completePipeline(p Pipeline) Pipeline {
	defaults := NewPipeline()
	if p.preProcessor == nil {
		p.preProcessor = defaults.preProcessor
	}
	if p.tokenizer == nil {
		p.tokenizer = defaults.tokenizer
	}
	if p.normalizer == nil {
		p.normalizer = defaults.normalizer
	}
	return p
}
