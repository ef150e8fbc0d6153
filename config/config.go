package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	LanguageDetectionPlaceholder = "placeholder"
	LanguageDetectionLingua      = "lingua"
)

// Envelope is the content of the configuration file.
// Stop words do not need to be sorted. A non empty Pipelines list replaces
// the default Latin and Mandarin specializations.
type Envelope struct {
	LanguageDetection string     `yaml:"language_detection"`
	StopWords         []string   `yaml:"stop_words"`
	StopWordsFile     string     `yaml:"stop_words_file"`
	EmbeddedStopWords bool       `yaml:"embedded_stop_words"`
	Pipelines         []Pipeline `yaml:"pipelines"`
}

// Pipeline describes one registry entry by stage names.
// NormalizerCache, when positive, memoizes that many normalized words.
type Pipeline struct {
	Script          string   `yaml:"script"`
	Language        string   `yaml:"language"`
	PreProcessor    string   `yaml:"pre_processor"`
	Tokenizer       string   `yaml:"tokenizer"`
	Normalizers     []string `yaml:"normalizers"`
	NormalizerCache int      `yaml:"normalizer_cache"`
}

// LoadConfigFromFile decodes a YAML configuration file.
func LoadConfigFromFile(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Envelope, error) {
	envelope := &Envelope{}
	if err := yaml.Unmarshal(data, envelope); err != nil {
		return nil, err
	}
	return envelope, nil
}
