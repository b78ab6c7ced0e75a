package main

import (
	"github.com/spf13/cobra"

	"github.com/persistorai/atna/internal/models"
)

func newLoginCmd() *cobra.Command {
	var role, roleCode, outcome string
	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Build a user authentication (login) message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return emitRequest(cmd, &models.MessageRequest{
				Kind:         models.KindUserLogin,
				Outcome:      outcome,
				Username:     args[0],
				UserRole:     role,
				UserRoleCode: roleCode,
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "User role, recorded as the role code and its original text (required)")
	cmd.Flags().StringVar(&roleCode, "role-code", "", "Coding system of the user role")
	cmd.Flags().StringVar(&outcome, "outcome", "success", "Outcome: success|minor-failure|serious-failure|major-failure or 0|4|8|12")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}
