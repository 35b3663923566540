package cmd

import (
	"fmt"

	"github.com/alexiusacademia/argoprssm/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of argoprssm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("ARGO to PRSSM bridge beam converter")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
