package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

var resolveAll bool

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Print the resolved settings as JSON",
	Long: `Resolve workspace folder placeholders and merge custom dictionaries,
then print the resulting settings as JSON.

Examples:
  spell-warden resolve
  spell-warden resolve -w workspace.yaml -t Client
  spell-warden resolve -w workspace.yaml --all`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		s, err := loadSession()
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		if resolveAll {
			results, err := s.svc.ResolveAll(ctx, s.request.Settings, s.request.Folders)
			if err != nil {
				return err
			}
			for _, res := range results {
				reportFailures(res.Target, res.Failures)
			}
			return encoder.Encode(results)
		}

		res, err := s.svc.Resolve(ctx, s.request)
		if err != nil {
			return err
		}
		reportFailures(res.Target, res.Failures)
		return encoder.Encode(res.Settings)
	},
}

func reportFailures(target string, failures []string) {
	for _, f := range failures {
		warnColor.Fprintf(os.Stderr, "unresolved %s", f)
		if target != "" {
			dimColor.Fprintf(os.Stderr, " (target %s)", target)
		}
		os.Stderr.WriteString("\n")
	}
}

func init() { //nolint:gochecknoinits // Cobra command registration
	resolveCmd.Flags().BoolVar(&resolveAll, "all", false, "resolve once per open folder")
	rootCmd.AddCommand(resolveCmd)
}
