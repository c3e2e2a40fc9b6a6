package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"margadarsaka-be/internal/config"
	"margadarsaka-be/pkg/sites"
)

func main() {
	var opts sites.Options

	rootCmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the site and app function to Appwrite",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sites.Verify(); err != nil {
				return err
			}

			// Flags win over config; config fills the gaps.
			cfg := config.Load()
			if opts.Endpoint == "" {
				opts.Endpoint = cfg.Keys.AppwriteEndpoint
			}
			if opts.ProjectID == "" {
				opts.ProjectID = cfg.Keys.AppwriteProjectID
			}
			if opts.APIKey == "" {
				opts.APIKey = cfg.Keys.AppwriteAPIKey
			}

			return sites.NewManager(opts).Deploy()
		},
	}

	rootCmd.Flags().StringVar(&opts.Endpoint, "endpoint", "", "Appwrite endpoint")
	rootCmd.Flags().StringVar(&opts.ProjectID, "project", "", "Appwrite project ID")
	rootCmd.Flags().StringVar(&opts.APIKey, "key", "", "Appwrite API key")
	rootCmd.Flags().StringVar(&opts.SiteID, "site-id", "", "Appwrite site ID")
	rootCmd.Flags().StringVar(&opts.Domain, "domain", "", "Public domain to report after deployment")
	rootCmd.Flags().BoolVar(&opts.StaticOnly, "static-only", false, "Deploy only the static site")
	rootCmd.Flags().BoolVar(&opts.AppOnly, "app-only", false, "Deploy only the app function")

	if err := rootCmd.Execute(); err != nil {
		color.Red("✘ %v", err)
		os.Exit(1)
	}
}
