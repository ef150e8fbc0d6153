package cmd

import (
	"errors"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tsingjyujing/vestigo-analyzer/config"
	"github.com/tsingjyujing/vestigo-analyzer/text"
	"github.com/tsingjyujing/vestigo-analyzer/utils"
)

var logger = utils.Logger

// configFlags are shared by every command building an analyzer.
type configFlags struct {
	configFile        string
	languageDetection string
}

func (f *configFlags) register(flags *pflag.FlagSet) {
	flags.StringVar(&f.configFile, "config", "", "Path to config file")
	flags.StringVar(&f.languageDetection, "language-detection", config.LanguageDetectionPlaceholder, "Language detection: placeholder or lingua")
}

// readConfig locates the configuration file with viper. Running without a
// configuration file is fine, the default pipelines are used then.
func (f *configFlags) readConfig(flags *pflag.FlagSet) (*config.Envelope, error) {
	viperInstance := viper.New()
	if f.configFile != "" {
		viperInstance.SetConfigFile(f.configFile)
	} else {
		viperInstance.SetConfigName("config")
		viperInstance.SetConfigType("yaml")
		viperInstance.AddConfigPath("/etc/vestigo-analyzer/")
		viperInstance.AddConfigPath("$HOME/.vestigo-analyzer")
		viperInstance.AddConfigPath("./config")
	}
	viperInstance.SetEnvPrefix("VESTIGO_ANALYZER")
	viperInstance.AutomaticEnv()
	viperInstance.SetDefault("language_detection", config.LanguageDetectionPlaceholder)
	if err := viperInstance.BindPFlag("language_detection", flags.Lookup("language-detection")); err != nil {
		return nil, err
	}

	envelope := &config.Envelope{}
	err := viperInstance.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	switch {
	case errors.As(err, &notFound) && f.configFile == "":
		logger.Debug("No config file found, using default pipelines")
	case err != nil:
		return nil, err
	default:
		logger.Debugf("Using config file: %s", viperInstance.ConfigFileUsed())
		envelope, err = config.LoadConfigFromFile(viperInstance.ConfigFileUsed())
		if err != nil {
			return nil, err
		}
	}
	envelope.LanguageDetection = viperInstance.GetString("language_detection")
	return envelope, nil
}

func (f *configFlags) analyzer(flags *pflag.FlagSet) (*text.Analyzer, *text.AnalyzerConfig, error) {
	envelope, err := f.readConfig(flags)
	if err != nil {
		return nil, nil, err
	}
	analyzerConfig, err := config.Build(envelope)
	if err != nil {
		return nil, nil, err
	}
	return text.NewAnalyzer(analyzerConfig), analyzerConfig, nil
}
