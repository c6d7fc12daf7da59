package main

import (
	"fmt"
	"os"

	"lecture-qa/internal/conversation"
	"lecture-qa/internal/honor"

	"github.com/spf13/cobra"
)

func askCmd() *cobra.Command {
	var flags pipelineFlags

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a single question and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := args[0]

			if honor.IsHomeworkRelated(question) {
				fmt.Fprintln(os.Stderr, "Note: this question may relate to homework; the honor code does not allow AI assistance on homework.")
			}

			p, err := newPipeline(flags)
			if err != nil {
				return err
			}

			_, err = p.answer(cmd.Context(), conversation.New(), question, func(delta string) {
				fmt.Print(delta)
			})
			if err != nil {
				return fmt.Errorf("failed to process question: %w", err)
			}
			fmt.Println()
			return nil
		},
	}

	addPipelineFlags(cmd, &flags)
	return cmd
}
