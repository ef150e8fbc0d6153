package cmd

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/tsingjyujing/vestigo-analyzer/text"
)

func NewDetectCommand() *cobra.Command {
	var flags configFlags

	detectCommand := &cobra.Command{
		Use:   "detect [text]",
		Short: "Print the detected script, language and the pipeline selected for a text",
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			analyzer, _, err := flags.analyzer(cmd.Flags())
			if err != nil {
				return err
			}
			script, language := analyzer.Detect(input)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "script:   %s\n", script)
			fmt.Fprintf(out, "language: %s\n", language)
			printPipeline(out, analyzer.PipelineFor(input))
			return nil
		},
	}
	flags.register(detectCommand.Flags())
	return detectCommand
}

func NewPipelinesCommand() *cobra.Command {
	var flags configFlags

	pipelinesCommand := &cobra.Command{
		Use:   "pipelines",
		Short: "List the registered analysis pipelines",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, analyzerConfig, err := flags.analyzer(cmd.Flags())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, key := range analyzerConfig.Keys() {
				pipeline, _ := analyzerConfig.Pipeline(key)
				fmt.Fprintf(out, "%s\n", key)
				printPipeline(out, pipeline)
			}
			fmt.Fprintln(out, "builtin")
			printPipeline(out, analyzerConfig.Builtin())
			fmt.Fprintf(out, "stop words: %d\n", analyzerConfig.StopWords().Len())
			return nil
		},
	}
	flags.register(pipelinesCommand.Flags())
	return pipelinesCommand
}

func printPipeline(w io.Writer, pipeline *text.Pipeline) {
	fmt.Fprintf(w, "  pre-processor: %s\n", stageName(pipeline.PreProcessor()))
	fmt.Fprintf(w, "  tokenizer:     %s\n", stageName(pipeline.Tokenizer()))
	if normalizers, ok := pipeline.Normalizer().(text.Normalizers); ok {
		fmt.Fprintf(w, "  normalizers:   %v\n", lo.Map(normalizers, func(n text.Normalizer, _ int) string {
			return stageName(n)
		}))
		return
	}
	fmt.Fprintf(w, "  normalizer:    %s\n", stageName(pipeline.Normalizer()))
}

func stageName(stage any) string {
	return fmt.Sprintf("%T", stage)
}
