package main

import (
	"github.com/spf13/cobra"

	"github.com/persistorai/atna/internal/models"
)

func newAppActivityCmd() *cobra.Command {
	var (
		user string
		stop bool
	)
	cmd := &cobra.Command{
		Use:   "app-activity",
		Short: "Build an application start or stop message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return emitRequest(cmd, &models.MessageRequest{
				Kind:     models.KindAppActivity,
				Username: user,
				Stop:     stop,
			})
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "Launching user (default root)")
	cmd.Flags().BoolVar(&stop, "stop", false, "Record an application stop instead of a start")
	return cmd
}
