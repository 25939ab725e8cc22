package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giftolexia/screenterm/internal/langs"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List the questionnaire languages",
	Run: func(cmd *cobra.Command, args []string) {
		for _, l := range langs.Supported() {
			fmt.Printf("%-8s %s\n", l.Code, l.Name)
		}
	},
}
