package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Contract template commands",
	}

	cmd.AddCommand(newTemplateListCmd())
	cmd.AddCommand(newTemplateDownloadCmd())

	return cmd
}

func newTemplateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available contract templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			templates, err := apiClient.Templates().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list templates: %w", err)
			}

			if getOutputFormat() != "table" {
				return printOutput(templates)
			}

			table := NewTable("ID", "NAME", "FOR", "DESCRIPTION")
			for _, t := range templates {
				forType := t.FreelancerType
				if forType == "" {
					forType = "all"
				}
				table.AddRow(
					strconv.FormatInt(t.ID, 10),
					t.Name,
					forType,
					truncate(t.Description, 50),
				)
			}
			table.Render()
			return nil
		},
	}
}

func newTemplateDownloadCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "download <template-id>",
		Short: "Download a template as a PDF (paid plans)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			templateID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid template id: %s", args[0])
			}

			ctx := context.Background()
			data, err := apiClient.Templates().Download(ctx, templateID)
			if err != nil {
				return fmt.Errorf("failed to download template: %w", err)
			}

			if outFile == "" {
				outFile = fmt.Sprintf("template-%d.pdf", templateID)
			}
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}

			fmt.Printf("Saved %s (%d bytes)\n", outFile, len(data))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "f", "", "output file path")

	return cmd
}
