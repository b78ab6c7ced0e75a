package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/persistorai/atna/internal/models"
)

// documentSeparator goes between documents in multi-message output.
var documentSeparator = []byte("\n\n")

// openOutput returns the --output file, or stdout when none is set.
func openOutput() (io.WriteCloser, error) {
	if flagOutput == "" {
		return nopCloser{os.Stdout}, nil
	}

	f, err := os.Create(flagOutput)
	if err != nil {
		return nil, fmt.Errorf("opening output: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// writeDocuments writes docs separated by a blank line, ending in a newline.
func writeDocuments(docs [][]byte) error {
	w, err := openOutput()
	if err != nil {
		return err
	}

	data := append(bytes.Join(docs, documentSeparator), '\n')
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("writing output: %w", err)
	}

	return w.Close()
}

func formatJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// emitRequest renders a single request and writes it to the output.
func emitRequest(cmd *cobra.Command, req *models.MessageRequest) error {
	doc, err := svc.Render(cmd.Context(), req)
	if err != nil {
		return err
	}
	return writeDocuments([][]byte{doc})
}
