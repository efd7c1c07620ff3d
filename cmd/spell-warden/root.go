package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	workspaceFile string
	settingsFile  string
	targetFlag    string
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
	dimColor     = color.New(color.FgHiBlack)
)

var rootCmd = &cobra.Command{
	Use:   "spell-warden",
	Short: "spell-warden resolves workspace-relative spell checker settings.",
	Long: `Resolve ${workspaceFolder} placeholders and merge custom dictionaries
for a multi-root workspace, and find where new words should be saved.`,
	SilenceUsage: true,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&workspaceFile, "workspace", "w", "", "workspace description file (YAML or JSON)")
	flags.StringVarP(&settingsFile, "settings", "s", "", "settings file; discovered in the current folder when empty")
	flags.StringVarP(&targetFlag, "target", "t", "", "folder name, folder or document path owning the settings")
	flags.String("override-root", "", "root used when the target lies in no open folder")
	flags.String("home", "", "directory ~ and user dictionaries resolve to")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("theme", "", "picker theme (cyan, matrix, amber, dracula)")

	for key, name := range map[string]string{
		"OVERRIDE_ROOT": "override-root",
		"HOME_DIR":      "home",
		"LOG_LEVEL":     "log-level",
		"THEME":         "theme",
	} {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			slog.Error("Error binding flag", "flag", name, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("SW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
