package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBillingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Subscription and billing commands",
	}

	cmd.AddCommand(newBillingPlansCmd())
	cmd.AddCommand(newBillingUpgradeCmd())
	cmd.AddCommand(newBillingPortalCmd())

	return cmd
}

func newBillingPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plans",
		Short: "Show the plan catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			plans, err := apiClient.Billing().ListPlans(ctx)
			if err != nil {
				return fmt.Errorf("failed to list plans: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(plans)
			}

			table := NewTable("PLAN", "PRICE", "FEATURES")
			for _, p := range plans {
				price := "free"
				if p.PriceMonthly > 0 {
					price = "$" + strconv.Itoa(p.PriceMonthly) + "/mo"
				}
				features := ""
				if len(p.Features) > 0 {
					features = p.Features[0]
					if len(p.Features) > 1 {
						features += fmt.Sprintf(" (+%d more)", len(p.Features)-1)
					}
				}
				table.AddRow(p.Name, price, features)
			}
			table.Render()
			return nil
		},
	}
}

func newBillingUpgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <plan>",
		Short: "Start checkout for a paid plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			url, err := apiClient.Billing().CreateCheckout(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to create checkout: %w", err)
			}

			fmt.Println("Open this URL in your browser to complete checkout:")
			fmt.Println(url)
			return nil
		},
	}
}

func newBillingPortalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "portal",
		Short: "Open the billing portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			url, err := apiClient.Billing().CreatePortal(ctx)
			if err != nil {
				return fmt.Errorf("failed to create portal session: %w", err)
			}

			fmt.Println("Open this URL in your browser to manage your subscription:")
			fmt.Println(url)
			return nil
		},
	}
}
