package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SubhankarA8415/portfolio/internal/config"
	"github.com/SubhankarA8415/portfolio/internal/pkg/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site",
	Long: `portfolio serves a single-page personal portfolio rendered from a YAML
content file, or exports it as a static site. The page's live behaviour
(active section highlighting, theme and menu toggles) runs in a small
WebAssembly client built from ./client.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyFlags(cmd)
		if err := cfg.Validate(); err != nil {
			return err
		}
		log, err = logger.New(cfg.Mode)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Sync()
		}
	},
}

// Execute runs the root command. Errors are already printed by cobra.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yaml", "config file path")
	rootCmd.PersistentFlags().String("content", "", "portfolio content YAML (default: embedded content)")
	rootCmd.PersistentFlags().String("assets", "", "directory with the compiled client (app.wasm, wasm_exec.js)")
}

// applyFlags lets explicitly set flags override file and env config.
func applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.Content, _ = flags.GetString("content")
	}
	if flags.Changed("assets") {
		cfg.Assets, _ = flags.GetString("assets")
	}
	if f := flags.Lookup("port"); f != nil && f.Changed {
		cfg.Port, _ = flags.GetInt("port")
	}
	if f := flags.Lookup("watch"); f != nil && f.Changed {
		cfg.Watch, _ = flags.GetBool("watch")
	}
	if f := flags.Lookup("output"); f != nil && f.Changed {
		cfg.Output, _ = flags.GetString("output")
	}
}
