package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gocold/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gocold",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gocold v%s\n", version.Version)
		fmt.Println("Reinforced Concrete Column Detailing Tool")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
