package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/tsingjyujing/vestigo-analyzer/text"
	"github.com/tsingjyujing/vestigo-analyzer/utils"
)

// Build turns the envelope into an analyzer registry.
func Build(envelope *Envelope) (*text.AnalyzerConfig, error) {
	stopWords, err := envelope.loadStopWords()
	if err != nil {
		return nil, fmt.Errorf("load stop words: %w", err)
	}
	var opts []text.ConfigOption
	switch strings.ToLower(envelope.LanguageDetection) {
	case "", LanguageDetectionPlaceholder:
	case LanguageDetectionLingua:
		opts = append(opts, text.WithLanguageDetector(text.NewLinguaLanguageDetector()))
	default:
		return nil, fmt.Errorf("unknown language detection: %q", envelope.LanguageDetection)
	}

	if len(envelope.Pipelines) == 0 {
		utils.Logger.WithField("stop_words", stopWords.Len()).Info("Using default pipelines")
		return text.DefaultWithStopWords(stopWords, opts...)
	}

	f := &stageFactory{gse: make(map[bool]*text.GSETokenizer)}
	pipelines := make(map[text.PipelineKey]text.Pipeline, len(envelope.Pipelines))
	for i, p := range envelope.Pipelines {
		key, pipeline, err := f.pipeline(p)
		if err != nil {
			return nil, fmt.Errorf("pipeline #%d: %w", i, err)
		}
		if _, exists := pipelines[key]; exists {
			return nil, fmt.Errorf("pipeline #%d: duplicate pipeline for %s", i, key)
		}
		pipelines[key] = pipeline
	}
	utils.Logger.WithField("pipelines", len(pipelines)).WithField("stop_words", stopWords.Len()).Info("Using custom pipelines")
	return text.NewAnalyzerConfig(pipelines, stopWords, opts...), nil
}

func (e *Envelope) loadStopWords() (*text.StopWords, error) {
	words := append([]string{}, e.StopWords...)
	if e.StopWordsFile != "" {
		fileWords, err := readWordList(e.StopWordsFile)
		if err != nil {
			return nil, err
		}
		words = append(words, fileWords...)
	}
	if e.EmbeddedStopWords {
		embedded, err := text.EmbeddedStopWordList()
		if err != nil {
			return nil, err
		}
		words = append(words, embedded...)
	}
	return text.SortedStopWords(words)
}

// readWordList reads one word per line, blank lines and lines starting with
// '#' are ignored.
func readWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}

// stageFactory shares the stages that load dictionaries.
type stageFactory struct {
	gse map[bool]*text.GSETokenizer
	t2s *text.ChineseTranslationPreProcessor
	cjk *text.CJKNormalizer
}

func (f *stageFactory) pipeline(p Pipeline) (text.PipelineKey, text.Pipeline, error) {
	script, err := text.ParseScript(lo.Ternary(p.Script == "", "Other", p.Script))
	if err != nil {
		return text.PipelineKey{}, text.Pipeline{}, err
	}
	language, err := text.ParseLanguage(p.Language)
	if err != nil {
		return text.PipelineKey{}, text.Pipeline{}, err
	}
	pipeline := text.NewPipeline()
	preProcessor, err := f.preProcessor(p.PreProcessor)
	if err != nil {
		return text.PipelineKey{}, text.Pipeline{}, err
	}
	tokenizer, err := f.tokenizer(p.Tokenizer)
	if err != nil {
		return text.PipelineKey{}, text.Pipeline{}, err
	}
	normalizers := make(text.Normalizers, 0, len(p.Normalizers))
	for _, name := range p.Normalizers {
		n, err := f.normalizer(name)
		if err != nil {
			return text.PipelineKey{}, text.Pipeline{}, err
		}
		normalizers = append(normalizers, n)
	}
	pipeline = pipeline.SetPreProcessor(preProcessor).SetTokenizer(tokenizer)
	if len(normalizers) > 0 {
		pipeline = pipeline.SetNormalizer(normalizers)
	}
	if p.NormalizerCache > 0 {
		cached, err := text.NewCachedNormalizer(pipeline.Normalizer(), p.NormalizerCache)
		if err != nil {
			return text.PipelineKey{}, text.Pipeline{}, err
		}
		pipeline = pipeline.SetNormalizer(cached)
	}
	return text.PipelineKey{Script: script, Language: language}, pipeline, nil
}

func (f *stageFactory) preProcessor(name string) (text.PreProcessor, error) {
	switch name {
	case "", "identity":
		return text.IdentityPreProcessor{}, nil
	case "t2s":
		if f.t2s == nil {
			t2s, err := text.NewChineseTranslationPreProcessor()
			if err != nil {
				return nil, err
			}
			f.t2s = t2s
		}
		return f.t2s, nil
	}
	return nil, fmt.Errorf("unknown pre-processor: %q", name)
}

func (f *stageFactory) tokenizer(name string) (text.Tokenizer, error) {
	switch name {
	case "", "unicode":
		return text.UnicodeSegmenter{}, nil
	case "legacy":
		return text.LegacySegmenter{}, nil
	case "gse", "gse_hmm":
		hmm := name == "gse_hmm"
		if f.gse[hmm] == nil {
			t, err := text.NewGSETokenizer(hmm)
			if err != nil {
				return nil, err
			}
			f.gse[hmm] = t
		}
		return f.gse[hmm], nil
	}
	return nil, fmt.Errorf("unknown tokenizer: %q", name)
}

func (f *stageFactory) normalizer(name string) (text.Normalizer, error) {
	switch name {
	case "identity":
		return text.IdentityNormalizer{}, nil
	case "lowercase":
		return text.LowercaseNormalizer{}, nil
	case "transliterate":
		return text.TransliterateNormalizer{}, nil
	case "cjk_transliterate":
		return text.NewCJKTransliterateNormalizer(), nil
	case "stem":
		return text.NewEnglishStemNormalizer(), nil
	case "cjk":
		if f.cjk == nil {
			cjk, err := text.NewCJKNormalizer(true)
			if err != nil {
				return nil, err
			}
			f.cjk = cjk
		}
		return f.cjk, nil
	}
	return nil, fmt.Errorf("unknown normalizer: %q", name)
}
