package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SubhankarA8415/portfolio/internal/content"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the portfolio content file",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := content.Load(cfg.Content)
		if err != nil {
			return err
		}
		source := cfg.Content
		if source == "" {
			source = "embedded content"
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: ok\n", source)
		fmt.Fprintf(out, "  sections:       %v\n", p.Sections())
		fmt.Fprintf(out, "  education:      %d\n", len(p.Education))
		fmt.Fprintf(out, "  skills:         %d\n", len(p.Skills))
		fmt.Fprintf(out, "  experience:     %d\n", len(p.Experience))
		fmt.Fprintf(out, "  projects:       %d\n", len(p.Projects))
		fmt.Fprintf(out, "  certifications: %d\n", len(p.Certifications))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
