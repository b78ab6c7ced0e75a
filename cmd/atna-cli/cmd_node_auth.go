package main

import (
	"github.com/spf13/cobra"

	"github.com/persistorai/atna/internal/models"
)

func newNodeAuthCmd() *cobra.Command {
	var outcome string
	cmd := &cobra.Command{
		Use:   "node-auth <node-ip>",
		Short: "Build a node authentication security alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emitRequest(cmd, &models.MessageRequest{
				Kind:    models.KindNodeAuthentication,
				Outcome: outcome,
				NodeIP:  args[0],
			})
		},
	}
	cmd.Flags().StringVar(&outcome, "outcome", "success", "Outcome: success|minor-failure|serious-failure|major-failure or 0|4|8|12")
	return cmd
}
