package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screenterm",
	Short: "Early screening checklist in the terminal",
	Long: "Screenterm runs the Giftolexia early screening checklist: contact\n" +
		"details, an age- and language-specific questionnaire, and a scored result.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: user config dir)")
	rootCmd.Flags().String("api", "", "Base URL of the screening service (overrides config)")
	rootCmd.Flags().String("lang", "", "Questionnaire language code (overrides config)")

	rootCmd.AddCommand(langsCmd)
	rootCmd.AddCommand(versionCmd)
}
