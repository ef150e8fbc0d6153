package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tsingjyujing/vestigo-analyzer/text"
)

// AnalyzedToken is the JSON form of a token.
type AnalyzedToken struct {
	text.Token
	Original string `json:"original,omitempty"`
}

const (
	FormatText = "text"
	FormatJSON = "json"
)

func NewAnalyzeCommand() *cobra.Command {
	var flags configFlags
	var format string
	var reconstruct bool

	analyzeCommand := &cobra.Command{
		Use:   "analyze [text]",
		Short: "Print the tokens of a text, read from stdin when no argument is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			analyzer, _, err := flags.analyzer(cmd.Flags())
			if err != nil {
				return err
			}
			analyzed := analyzer.Analyze(input)
			logger.WithField("script", analyzed.Script()).WithField("language", analyzed.Language()).Debug("Analyzing text")

			tokens := make([]AnalyzedToken, 0)
			for original, token := range analyzed.Reconstruct() {
				item := AnalyzedToken{Token: token}
				if reconstruct {
					item.Original = original
				}
				tokens = append(tokens, item)
			}
			return writeTokens(cmd.OutOrStdout(), tokens, format, reconstruct)
		},
	}
	flags.register(analyzeCommand.Flags())
	analyzeCommand.Flags().StringVarP(&format, "format", "f", FormatText, "Output format: text or json")
	analyzeCommand.Flags().BoolVarP(&reconstruct, "reconstruct", "r", false, "Also print the original text covered by every token")
	return analyzeCommand
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func writeTokens(w io.Writer, tokens []AnalyzedToken, format string, reconstruct bool) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		return encoder.Encode(tokens)
	case FormatText:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, t := range tokens {
			if reconstruct {
				fmt.Fprintf(tw, "%s\t%q\t%d..%d\t%q\n", t.Kind, t.Word, t.ByteStart, t.ByteEnd, t.Original)
			} else {
				fmt.Fprintf(tw, "%s\t%q\t%d..%d\n", t.Kind, t.Word, t.ByteStart, t.ByteEnd)
			}
		}
		return tw.Flush()
	}
	return fmt.Errorf("unknown format: %q", format)
}
