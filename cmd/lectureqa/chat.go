package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"lecture-qa/internal/conversation"
	"lecture-qa/internal/honor"

	"github.com/spf13/cobra"
)

func chatCmd() *cobra.Command {
	var flags pipelineFlags

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive conversation about course lectures",
		Long: `Starts an interactive session. Questions that reference a lecture and a
timestamp range (e.g. "summarize the first 5 minutes of lecture 4") are
answered from the local transcript corpus; everything else goes through the
semantic search service. History lives for the session only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPipeline(flags)
			if err != nil {
				return err
			}
			runInteractive(cmd.Context(), p)
			return nil
		},
	}

	addPipelineFlags(cmd, &flags)
	return cmd
}

func runInteractive(ctx context.Context, p *pipeline) {
	scanner := bufio.NewScanner(os.Stdin)
	hist := conversation.New()

	fmt.Println("Lecture QA - Ask questions about the course lectures (type 'exit' to quit)")

	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if strings.ToLower(input) == "exit" || strings.ToLower(input) == "quit" {
			break
		}
		if input == "" {
			continue
		}

		if honor.IsHomeworkRelated(input) {
			fmt.Println("It seems your question may relate to homework. " +
				"Please refer to the official honor code, which does not allow the use of AI " +
				"to solve or assist in completing the homework.")
			if !confirm(scanner, "Would you like to proceed with this question?") {
				fmt.Println("Please ask a different question.")
				continue
			}
		}

		_, err := p.answer(ctx, hist, input, func(delta string) {
			fmt.Print(delta)
		})
		if err != nil {
			fmt.Println("Failed to process your question. Please try again.")
			continue
		}
		fmt.Println()
	}
}

// confirm defaults to proceeding; only an explicit "n" declines.
func confirm(scanner *bufio.Scanner, prompt string) bool {
	fmt.Printf("%s [Y/n] ", prompt)
	if !scanner.Scan() {
		return false
	}
	reply := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return reply != "n" && reply != "no"
}

func addPipelineFlags(cmd *cobra.Command, flags *pipelineFlags) {
	cmd.Flags().StringVar(&flags.corpusPath, "corpus", "", "Path to the transcript corpus (JSONL)")
	cmd.Flags().StringVar(&flags.searchURL, "search-url", "", "Semantic search endpoint URL")
	cmd.Flags().StringVar(&flags.chatModel, "model", "", "Ollama model for answering")
	cmd.Flags().StringVar(&flags.ollamaHost, "ollama", "", "Ollama host (default uses OLLAMA_HOST env var)")
}
