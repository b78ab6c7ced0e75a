package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/persistorai/atna/internal/models"
)

func newBatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <file|->",
		Short: "Render every request in a YAML or JSON batch file",
		Long: "Render a list of message requests concurrently. Output keeps input order, " +
			"one document per request separated by a blank line. Use - to read stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			reqs, err := models.DecodeBatch(data)
			if err != nil {
				return err
			}

			docs, err := svc.Batch(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			log.WithField("count", len(docs)).Info("batch rendered")
			return writeDocuments(docs)
		},
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading batch file: %w", err)
	}
	return data, nil
}
