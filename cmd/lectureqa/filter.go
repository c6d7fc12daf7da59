package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"lecture-qa/internal/config"
	"lecture-qa/internal/corpus"

	"github.com/spf13/cobra"
)

func filterCmd() *cobra.Command {
	var corpusPath string

	cmd := &cobra.Command{
		Use:   "filter <lecture> <start> <end>",
		Short: "Print transcript blocks of a lecture overlapping a time range",
		Long:  `Runs the transcript filter directly, without any model calls. Times are seconds from the start of the lecture. Useful for checking what a timestamp-scoped question would retrieve.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lecture, err := strconv.Atoi(args[0])
			if err != nil || lecture <= 0 {
				return fmt.Errorf("invalid lecture number %q", args[0])
			}
			start, err := strconv.Atoi(args[1])
			if err != nil || start < 0 {
				return fmt.Errorf("invalid start time %q", args[1])
			}
			end, err := strconv.Atoi(args[2])
			if err != nil || end < start {
				return fmt.Errorf("invalid end time %q", args[2])
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if corpusPath != "" {
				cfg.CorpusPath = corpusPath
			}

			blocks, err := corpus.Filter(cfg.CorpusPath, lecture, start, end)
			if err != nil {
				return err
			}

			if len(blocks) == 0 {
				fmt.Fprintln(os.Stderr, "No matching blocks.")
				return nil
			}

			enc := json.NewEncoder(os.Stdout)
			for _, block := range blocks {
				if err := enc.Encode(block); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "Path to the transcript corpus (JSONL)")
	return cmd
}
