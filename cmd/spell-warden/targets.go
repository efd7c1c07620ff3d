package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sevigo/spell-warden/internal/picker"
	"github.com/sevigo/spell-warden/internal/target"
)

var (
	kindFlag  string
	scopeFlag string
	bestOnly  bool
	negate    bool
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the places a new word can be saved to",
	Long: `List dictionaries, cspell files and editor settings scopes matching
a kind and scope pattern.

Examples:
  spell-warden targets
  spell-warden targets --kind dictionary,cspell --scope all-but-user
  spell-warden targets --best`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		targets, pattern, err := discover(cmd.Context(), s)
		if err != nil {
			return err
		}

		if bestOnly {
			targets = target.FindBestMatching(pattern, targets)
		} else {
			targets = target.Filter(targets, target.MatchesPattern(pattern))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "KIND\tSCOPE\tNAME\tLOCATION")
		for _, t := range targets {
			location := string(t.URI)
			if t.Kind == target.KindVSCode {
				location = t.Setting.String()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Kind, t.Scope, t.Name, location)
		}
		return w.Flush()
	},
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively choose where a new word should be saved",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := loadSession()
		if err != nil {
			return err
		}
		targets, pattern, err := discover(cmd.Context(), s)
		if err != nil {
			return err
		}

		tui := picker.New(picker.WithTheme(picker.ThemeName(s.cfg.Theme)))
		chosen, err := target.PickBestMatch(cmd.Context(), pattern, targets, tui)
		if err != nil {
			return err
		}
		if chosen == nil {
			dimColor.Println("No selection.")
			return nil
		}
		successColor.Printf("✓ %s\n", chosen.Describe())
		return nil
	},
}

func discover(ctx context.Context, s *session) ([]target.ConfigTarget, target.Pattern, error) {
	kind, err := target.ParseMatchKind(kindFlag)
	if err != nil {
		return nil, target.Pattern{}, err
	}
	scope, err := target.ParseMatchScope(scopeFlag)
	if err != nil {
		return nil, target.Pattern{}, err
	}
	pattern := target.Pattern{Kind: kind, Scope: scope}
	if negate {
		pattern = target.Negate(pattern)
	}

	targets, err := s.svc.Targets(ctx, s.request)
	if err != nil {
		return nil, target.Pattern{}, err
	}
	return targets, pattern, nil
}

func init() { //nolint:gochecknoinits // Cobra command registration
	for _, cmd := range []*cobra.Command{targetsCmd, pickCmd} {
		cmd.Flags().StringVar(&kindFlag, "kind", "all", "kinds to match: dictionary, cspell, vscode, all, none")
		cmd.Flags().StringVar(&scopeFlag, "scope", "all", "scopes to match: user, workspace, folder, unknown, all, all-but-user, none")
		cmd.Flags().BoolVar(&negate, "not", false, "match everything the pattern does not")
		rootCmd.AddCommand(cmd)
	}
	targetsCmd.Flags().BoolVar(&bestOnly, "best", false, "only show the most specific matches")
}
