package main

import (
	"github.com/spf13/cobra"

	"github.com/persistorai/atna/internal/models"
)

func newAuditLogUsedCmd() *cobra.Command {
	var user, role, roleCode, outcome, detailType, detailValue string
	cmd := &cobra.Command{
		Use:   "audit-log-used <audit-log-uri>",
		Short: "Build an audit log access message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &models.MessageRequest{
				Kind:         models.KindAuditLogUsed,
				Outcome:      outcome,
				Username:     user,
				UserRole:     role,
				UserRoleCode: roleCode,
				AuditLogURI:  args[0],
			}
			if detailType != "" {
				req.Detail = &models.Detail{Type: detailType, Value: detailValue}
			}
			return emitRequest(cmd, req)
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "Accessing user (required)")
	cmd.Flags().StringVar(&role, "role", "", "User role, recorded as the role code and its original text (required)")
	cmd.Flags().StringVar(&roleCode, "role-code", "", "Coding system of the user role")
	cmd.Flags().StringVar(&outcome, "outcome", "success", "Outcome: success|minor-failure|serious-failure|major-failure or 0|4|8|12")
	cmd.Flags().StringVar(&detailType, "detail-type", "", "Object detail type")
	cmd.Flags().StringVar(&detailValue, "detail-value", "", "Object detail value (base64-encoded in the output)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("role")
	return cmd
}
