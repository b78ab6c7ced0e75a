package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/persistorai/atna/internal/models"
	"github.com/persistorai/atna/internal/service"
)

func newStreamCmd() *cobra.Command {
	var queueSize int
	cmd := &cobra.Command{
		Use:   "stream",
		Short: "Render newline-delimited JSON requests from stdin as they arrive",
		Long: "Read one JSON message request per line from stdin and write each rendered " +
			"document followed by a newline. Malformed or invalid lines are logged and skipped.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openOutput()
			if err != nil {
				return err
			}
			defer w.Close()

			return runStream(cmd.Context(), os.Stdin, w, queueSize)
		},
	}
	cmd.Flags().IntVar(&queueSize, "queue", 100, "Pending request buffer size")
	return cmd
}

func runStream(ctx context.Context, in io.Reader, out io.Writer, queueSize int) error {
	worker := service.NewEmitWorker(svc, out, log, queueSize)

	workerCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Run(workerCtx)
		close(done)
	}()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var submitErr error
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var req models.MessageRequest
		if err := json.Unmarshal([]byte(text), &req); err != nil {
			log.WithError(err).WithField("line", line).Warn("skipping malformed request")
			continue
		}
		if err := worker.Submit(ctx, &req); err != nil {
			submitErr = err
			break
		}
	}

	cancel()
	<-done

	if submitErr != nil {
		return submitErr
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading requests: %w", err)
	}

	return nil
}
