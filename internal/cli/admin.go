package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/freelanceshield/api/pkg/client"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin back-office commands",
	}

	cmd.AddCommand(newAdminUsersCmd())
	cmd.AddCommand(newAdminSetPlanCmd())
	cmd.AddCommand(newAdminStatsCmd())

	return cmd
}

func newAdminUsersCmd() *cobra.Command {
	var search, plan string

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			users, pg, err := apiClient.Admin().ListUsers(ctx, &client.ListUsersOptions{
				Search: search,
				Plan:   plan,
			})
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(users)
			}

			table := NewTable("ID", "EMAIL", "PLAN", "ROLE", "REVIEWS", "JOINED")
			for _, u := range users {
				table.AddRow(
					strconv.FormatInt(u.ID, 10),
					u.Email,
					u.Plan,
					u.Role,
					strconv.Itoa(u.ReviewsUsedThisMonth),
					u.CreatedAt.Format("2006-01-02"),
				)
			}
			table.Render()
			fmt.Printf("\n%d users total\n", pg.TotalItems)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "email substring filter")
	cmd.Flags().StringVar(&plan, "plan", "", "plan filter")

	return cmd
}

func newAdminSetPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-plan <user-id> <plan>",
		Short: "Change a user's plan",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id: %s", args[0])
			}

			ctx := context.Background()
			if err := apiClient.Admin().SetUserPlan(ctx, userID, args[1]); err != nil {
				return fmt.Errorf("failed to set plan: %w", err)
			}

			fmt.Printf("User %d moved to %s\n", userID, args[1])
			return nil
		},
	}
}

func newAdminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stats, err := apiClient.Admin().GetStats(ctx)
			if err != nil {
				return fmt.Errorf("failed to get stats: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(stats)
			}

			fmt.Println("FreelanceShield Dashboard")
			fmt.Printf("  Users:    %d (%d free, %d solo)\n", stats.TotalUsers, stats.FreeUsers, stats.SoloUsers)
			fmt.Printf("  Reviews:  %d\n", stats.TotalReviews)
			if len(stats.RecentSignups) > 0 {
				fmt.Println("  Recent signups:")
				for _, u := range stats.RecentSignups {
					fmt.Printf("    %s (%s)\n", u.Email, u.Plan)
				}
			}
			return nil
		},
	}
}
