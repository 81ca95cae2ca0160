package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freelanceshield/api/pkg/client"
)

func newLetterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "letter",
		Short: "Payment demand letter commands",
	}

	cmd.AddCommand(newLetterDemandCmd())

	return cmd
}

func newLetterDemandCmd() *cobra.Command {
	var req client.DemandLetterRequest

	cmd := &cobra.Command{
		Use:   "demand",
		Short: "Draft a payment demand letter (Pro and Agency)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if req.ClientName == "" {
				req.ClientName = promptInput("Client name: ")
			}
			if req.ProjectName == "" {
				req.ProjectName = promptInput("Project name: ")
			}
			if req.FreelancerName == "" {
				req.FreelancerName = promptInput("Your name: ")
			}
			if req.PaymentDueDate == "" {
				req.PaymentDueDate = promptInput("Payment due date (e.g. 2026-08-01): ")
			}

			ctx := context.Background()
			letter, err := apiClient.Letters().Generate(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to generate letter: %w", err)
			}

			fmt.Println(letter)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.ClientName, "client", "", "client name")
	cmd.Flags().StringVar(&req.ProjectName, "project", "", "project name")
	cmd.Flags().StringVar(&req.ProjectDescription, "description", "", "project description")
	cmd.Flags().Float64Var(&req.AmountOwed, "amount", 0, "amount owed in USD")
	cmd.Flags().StringVar(&req.PaymentDueDate, "due", "", "payment due date")
	cmd.Flags().IntVar(&req.PastDueDays, "past-due", 0, "days past due")
	cmd.Flags().StringVar(&req.FreelancerName, "name", "", "your name")
	cmd.Flags().StringVar(&req.USState, "state", "", "US state")

	return cmd
}
