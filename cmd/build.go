package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SubhankarA8415/portfolio/internal/content"
	"github.com/SubhankarA8415/portfolio/internal/render"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as a static site",
	Long: `build writes index.html, the stylesheet and boot script, and the compiled
client (when found in the assets directory) into the output directory. The
output directory is removed first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := content.Load(cfg.Content)
		if err != nil {
			return err
		}
		r, err := render.New()
		if err != nil {
			return err
		}
		res, err := render.Export(r, p, cfg.Output, cfg.Assets)
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}
		if !res.Client {
			log.Warn("client not found, exported page works without it", "assets", cfg.Assets)
		}
		log.Info("site exported", "dir", res.Dir, "files", res.Files, "client", res.Client)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringP("output", "o", "public", "output directory")
	rootCmd.AddCommand(buildCmd)
}
