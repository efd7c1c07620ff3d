package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/sevigo/spell-warden/internal/app"
)

var (
	checkMarkdown bool
	checkJSON     bool
)

var errCheckFailed = errors.New("settings check found problems")

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Report unresolved placeholders and invalid ignore globs",
	Long: `Resolve the settings and report placeholders that name no open folder
(with the closest folder name), ignorePaths entries that are not valid globs,
and for every file given whether ignorePaths excludes it.

Examples:
  spell-warden check
  spell-warden check -w workspace.yaml src/main.ts dist/bundle.js
  spell-warden check --markdown`,
	RunE: func(cmd *cobra.Command, files []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}

		report, err := s.svc.Check(cmd.Context(), s.request, files)
		if err != nil {
			return err
		}

		switch {
		case checkJSON:
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(report); err != nil {
				return err
			}
		case checkMarkdown:
			if err := renderMarkdown(report.Markdown()); err != nil {
				return err
			}
		default:
			printReport(s.settingsPath, report)
		}

		if !report.OK() {
			return errCheckFailed
		}
		return nil
	},
}

func renderMarkdown(md string) error {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Print(out)
	return nil
}

func printReport(settingsPath string, report *app.CheckReport) {
	titleColor.Printf("Checking %s\n", settingsPath)
	if report.CurrentFolder != "" {
		dimColor.Printf("  current folder: %s\n", report.CurrentFolder)
	}
	dimColor.Printf("  dictionaries:   %d enabled\n", len(report.Dictionaries))

	for _, f := range report.Failures {
		errorColor.Printf("✗ unresolved %s", f.Placeholder)
		if f.Suggestion != "" {
			warnColor.Printf("  did you mean %q?", f.Suggestion)
		}
		fmt.Println()
	}
	for _, g := range report.InvalidGlobs {
		errorColor.Printf("✗ invalid ignore glob %q\n", g.Pattern)
	}
	for _, f := range report.Files {
		if f.IgnoredBy != "" {
			dimColor.Printf("- %s ignored by %s\n", f.File, f.IgnoredBy)
		} else {
			fmt.Printf("+ %s\n", f.File)
		}
	}

	if report.OK() {
		successColor.Println("✓ no problems found")
	}
}

func init() { //nolint:gochecknoinits // Cobra command registration
	checkCmd.Flags().BoolVar(&checkMarkdown, "markdown", false, "render the report as Markdown")
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print the report as JSON")
	rootCmd.AddCommand(checkCmd)
}
