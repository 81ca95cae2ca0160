package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/freelanceshield/api/pkg/client"
)

func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Contract review commands",
	}

	cmd.AddCommand(newReviewCreateCmd())
	cmd.AddCommand(newReviewListCmd())
	cmd.AddCommand(newReviewGetCmd())
	cmd.AddCommand(newReviewShareCmd())
	cmd.AddCommand(newReviewNegotiateCmd())
	cmd.AddCommand(newReviewDeleteCmd())

	return cmd
}

func newReviewCreateCmd() *cobra.Command {
	var freelancerType, usState string

	cmd := &cobra.Command{
		Use:   "create <contract.pdf>",
		Short: "Upload a contract PDF for analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}

			fmt.Println("Uploading and analyzing... this can take a minute.")

			ctx := context.Background()
			rev, err := apiClient.Reviews().Create(ctx, filepath.Base(args[0]), data, &client.CreateReviewOptions{
				FreelancerType: freelancerType,
				USState:        usState,
			})
			if err != nil {
				return fmt.Errorf("review failed: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(rev)
			}

			fmt.Printf("Review %d: %s\n", rev.ID, formatStatus(rev.Status))
			if rev.OverallRiskScore != nil {
				fmt.Printf("Risk score: %d/10\n", *rev.OverallRiskScore)
			}
			if rev.RiskSummary != nil {
				fmt.Printf("Summary: %s\n", *rev.RiskSummary)
			}
			fmt.Printf("Run 'shieldctl review get %d' for the full report\n", rev.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&freelancerType, "type", "", "freelancer type (developer, designer, writer, video)")
	cmd.Flags().StringVar(&usState, "state", "", "US state for jurisdiction context")

	return cmd
}

func newReviewListCmd() *cobra.Command {
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			reviews, pg, err := apiClient.Reviews().List(ctx, page, pageSize)
			if err != nil {
				return fmt.Errorf("failed to list reviews: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(reviews)
			}

			table := NewTable("ID", "FILE", "STATUS", "SCORE", "CREATED")
			for _, r := range reviews {
				score := "-"
				if r.OverallRiskScore != nil {
					score = strconv.Itoa(*r.OverallRiskScore)
				}
				table.AddRow(
					strconv.FormatInt(r.ID, 10),
					truncate(r.FileName, 40),
					formatStatus(r.Status),
					score,
					r.CreatedAt.Format("2006-01-02 15:04"),
				)
			}
			table.Render()
			fmt.Printf("\nPage %d of %d (%d total)\n", pg.Page, pg.TotalPages, pg.TotalItems)
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "items per page")

	return cmd
}

func newReviewGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <review-id>",
		Short: "Show the report for a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reviewID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid review id: %s", args[0])
			}

			ctx := context.Background()
			report, err := apiClient.Reviews().GetReport(ctx, reviewID)
			if err != nil {
				return fmt.Errorf("failed to get report: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(report)
			}

			printReport(report)
			return nil
		},
	}
}

func printReport(report *client.Report) {
	rev := report.Review
	fmt.Printf("%s (%s)\n", rev.FileName, formatStatus(rev.Status))
	if rev.OverallRiskScore != nil {
		fmt.Printf("Overall risk: %d/10\n", *rev.OverallRiskScore)
	}
	if rev.RiskSummary != nil {
		fmt.Printf("%s\n", *rev.RiskSummary)
	}
	fmt.Println()

	for _, c := range report.Clauses {
		fmt.Printf("%s  %s\n", formatRisk(c.RiskLevel), c.ClauseType)
		fmt.Printf("  %s\n", c.PlainEnglish)
		if c.SpecificConcern != "" {
			fmt.Printf("  Concern: %s\n", c.SpecificConcern)
		}
		if c.SuggestedEdit != nil {
			fmt.Printf("  Suggested edit: %s\n", *c.SuggestedEdit)
		}
		fmt.Println()
	}

	if report.HiddenClauses > 0 {
		fmt.Printf("%d more clauses hidden. Upgrade to see the full report.\n", report.HiddenClauses)
	}
}

func newReviewShareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "share <review-id>",
		Short: "Create a public share link for a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reviewID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid review id: %s", args[0])
			}

			ctx := context.Background()
			token, err := apiClient.Reviews().Share(ctx, reviewID)
			if err != nil {
				return fmt.Errorf("failed to share review: %w", err)
			}

			fmt.Printf("Share token: %s\n", token)
			return nil
		},
	}
}

func newReviewNegotiateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "negotiate <review-id> <clause-id>",
		Short: "Get negotiation coaching for a clause (Pro and Agency)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reviewID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid review id: %s", args[0])
			}
			clauseID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid clause id: %s", args[1])
			}

			ctx := context.Background()
			coaching, err := apiClient.Reviews().Negotiate(ctx, reviewID, clauseID)
			if err != nil {
				return fmt.Errorf("failed to generate coaching: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(coaching)
			}

			fmt.Println("Talking points:")
			for _, p := range coaching.TalkingPoints {
				fmt.Printf("  - %s\n", p)
			}
			fmt.Printf("\nYour position:\n  %s\n", coaching.YourPosition)
			fmt.Printf("\nTheir likely response:\n  %s\n", coaching.TheirLikelyResponse)
			fmt.Printf("\nCounter-argument:\n  %s\n", coaching.CounterArgument)
			fmt.Printf("\nOpening script:\n  %s\n", coaching.OpeningScript)
			return nil
		},
	}
}

func newReviewDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <review-id>",
		Short: "Delete a review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reviewID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid review id: %s", args[0])
			}

			ctx := context.Background()
			if err := apiClient.Reviews().Delete(ctx, reviewID); err != nil {
				return fmt.Errorf("failed to delete review: %w", err)
			}

			fmt.Println("Review deleted")
			return nil
		},
	}
}
